package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"techpulse/di"
)

func registerIngestRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.POST("/ingest", handleIngest(container))
}

// handleIngest runs one ingestion pass synchronously.
func handleIngest(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req ingestRequest
		if err := bindAndValidate(c, &req, "ingest_articles"); err != nil {
			return handleError(c, err, "ingest_articles")
		}

		fetched, err := container.IngestArticlesUsecase.Execute(c.Request().Context(), req.Limit)
		if err != nil {
			return handleError(c, err, "ingest_articles")
		}
		return c.JSON(http.StatusOK, ingestResponse{Fetched: fetched, Source: container.SourceGateway.Name()})
	}
}
