package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"techpulse/di"
	"techpulse/domain"
)

func registerArticleRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/feed", handleFeed(container))
	v1.GET("/articles/:id", handleFetchArticle(container))
}

func handleFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit, err := queryInt(c, "limit")
		if err != nil {
			return handleError(c, err, "fetch_feed")
		}
		ranked, err := queryBool(c, "ranked")
		if err != nil {
			return handleError(c, err, "fetch_feed")
		}

		ctx := c.Request().Context()
		if ranked {
			items, err := container.FetchFeedUsecase.ExecuteRanked(ctx, limit, time.Now().Unix())
			if err != nil {
				return handleError(c, err, "fetch_ranked_feed")
			}
			return c.JSON(http.StatusOK, map[string]any{"articles": items, "count": len(items)})
		}

		articles, err := container.FetchFeedUsecase.Execute(ctx, limit)
		if err != nil {
			return handleError(c, err, "fetch_feed")
		}
		if articles == nil {
			articles = []*domain.Article{}
		}
		return c.JSON(http.StatusOK, articlesResponse{Articles: articles, Count: len(articles)})
	}
}

func handleFetchArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		article, err := container.FetchArticleUsecase.Execute(c.Request().Context(), c.Param("id"))
		if err != nil {
			return handleError(c, err, "fetch_article")
		}
		return c.JSON(http.StatusOK, article)
	}
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.ValidationError{Field: name, Reason: "must be an integer"}
	}
	if v < 1 {
		return 0, &domain.ValidationError{Field: name, Reason: "must be at least 1"}
	}
	return v, nil
}

func queryBool(c echo.Context, name string) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &domain.ValidationError{Field: name, Reason: "must be a boolean"}
	}
	return v, nil
}
