package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"techpulse/usecase/fetch_feed_usecase"
)

var (
	feedLimit  int
	feedRanked bool
	feedJSON   bool
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the newest stored articles",
	Long: `Show the newest stored articles. With --ranked the newest window is
ordered by the time-decayed score instead of by timestamp.`,
	RunE: runFeed,
}

func init() {
	rootCmd.AddCommand(feedCmd)
	feedCmd.Flags().IntVarP(&feedLimit, "limit", "n", 0, "articles to show (default FEED_DEFAULT_LIMIT)")
	feedCmd.Flags().BoolVar(&feedRanked, "ranked", false, "order by decayed score")
	feedCmd.Flags().BoolVar(&feedJSON, "json", false, "output as JSON")
}

func runFeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	container, err := openContainer(ctx)
	if err != nil {
		return err
	}
	defer container.Close()

	now := time.Now()
	var items []fetch_feed_usecase.RankedArticle
	if feedRanked {
		items, err = container.FetchFeedUsecase.ExecuteRanked(ctx, feedLimit, now.Unix())
		if err != nil {
			return toCLIError("failed to read feed", err)
		}
	} else {
		articles, err := container.FetchFeedUsecase.Execute(ctx, feedLimit)
		if err != nil {
			return toCLIError("failed to read feed", err)
		}
		for _, a := range articles {
			items = append(items, fetch_feed_usecase.RankedArticle{Article: a})
		}
	}

	if feedJSON {
		if items == nil {
			items = []fetch_feed_usecase.RankedArticle{}
		}
		return writeJSON(cmd.OutOrStdout(), items)
	}
	return renderArticles(printer, items, feedRanked, now)
}
