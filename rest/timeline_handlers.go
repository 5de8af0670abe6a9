package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"techpulse/di"
	"techpulse/usecase/timeline_usecase"
)

func registerTimelineRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.POST("/timeline", handleRegisterTimelineEvent(container))
	v1.GET("/timeline", handleListTimelineEvents(container))
}

func handleRegisterTimelineEvent(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req timelineEventRequest
		if err := bindAndValidate(c, &req, "register_timeline_event"); err != nil {
			return handleError(c, err, "register_timeline_event")
		}

		event, err := container.TimelineUsecase.Register(c.Request().Context(), timeline_usecase.TimelineEventInput{
			ID:              req.ID,
			Title:           req.Title,
			Date:            req.Date,
			Description:     req.Description,
			Category:        req.Category,
			ImportanceScore: req.ImportanceScore,
		})
		if err != nil {
			return handleError(c, err, "register_timeline_event")
		}
		return c.JSON(http.StatusCreated, toTimelineEventResponse(event))
	}
}

func handleListTimelineEvents(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		events, err := container.TimelineUsecase.List(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_timeline_events")
		}

		out := make([]timelineEventResponse, 0, len(events))
		for _, e := range events {
			out = append(out, toTimelineEventResponse(e))
		}
		return c.JSON(http.StatusOK, map[string]any{"events": out, "count": len(out)})
	}
}
