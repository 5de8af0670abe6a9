package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"techpulse/domain"
	"techpulse/usecase/fetch_feed_usecase"
	"techpulse/utils/output"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderReport(p *output.Printer, report *domain.TrendReport) error {
	p.Header(fmt.Sprintf("Trends at %s", time.Unix(report.Timestamp, 0).UTC().Format(time.RFC3339)))
	if len(report.Trends) == 0 {
		p.Info("No keyword matched the latest articles")
		return nil
	}

	trends := append([]domain.Trend(nil), report.Trends...)
	sort.SliceStable(trends, func(i, j int) bool {
		if trends[i].Score != trends[j].Score {
			return trends[i].Score > trends[j].Score
		}
		return trends[i].Keyword < trends[j].Keyword
	})

	table := output.NewTable(p.Out(), []string{"KEYWORD", "VOLUME", "SCORE", "ARTICLES"}, p.IsQuiet())
	for _, t := range trends {
		ids := make([]string, 0, len(t.RelatedArticles))
		for _, id := range t.RelatedArticles {
			ids = append(ids, id.String())
		}
		table.AddRow(p.Bold(t.Keyword), fmt.Sprint(t.Volume), fmt.Sprintf("%.1f", t.Score), strings.Join(ids, ", "))
	}
	return table.Render()
}

func renderArticles(p *output.Printer, items []fetch_feed_usecase.RankedArticle, ranked bool, now time.Time) error {
	if len(items) == 0 {
		p.Info("No articles stored yet")
		return nil
	}

	header := []string{"ID", "TITLE", "SOURCE", "AGE", ""}
	if ranked {
		header = append([]string{"RANK"}, header...)
	}
	table := output.NewTable(p.Out(), header, p.IsQuiet())
	for _, it := range items {
		a := it.Article
		row := []string{a.ID.String(), a.Title, a.Source.String(), p.Dim(age(now, a.Timestamp)), p.HotBadge(a.IsHotOnSource)}
		if ranked {
			row = append([]string{fmt.Sprintf("%.2f", it.RankScore)}, row...)
		}
		table.AddRow(row...)
	}
	return table.Render()
}

func age(now time.Time, ts int64) string {
	if ts <= 0 {
		return "-"
	}
	d := now.Sub(time.Unix(ts, 0))
	switch {
	case d < 0:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 48*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
