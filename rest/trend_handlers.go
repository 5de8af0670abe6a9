package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"techpulse/config"
	"techpulse/di"
)

func registerTrendRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	v1.POST("/trends", handleCalculateTrends(container, cfg.Ingest.Keywords))
	v1.GET("/trends/latest", handleLatestTrendReport(container))
}

// handleCalculateTrends falls back to the configured keywords, then to the
// built-in set, when the body names none.
func handleCalculateTrends(container *di.ApplicationComponents, configured []string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req trendsRequest
		if err := bindAndValidate(c, &req, "calculate_trends"); err != nil {
			return handleError(c, err, "calculate_trends")
		}

		keywords := req.Keywords
		if len(keywords) == 0 {
			keywords = configured
		}

		report, err := container.RefreshTrendsUsecase.Execute(c.Request().Context(), keywords, time.Now().Unix())
		if err != nil {
			return handleError(c, err, "calculate_trends")
		}
		return c.JSON(http.StatusCreated, report)
	}
}

func handleLatestTrendReport(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		report, err := container.FetchLatestTrendReportUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "fetch_latest_trend_report")
		}
		return c.JSON(http.StatusOK, report)
	}
}
