package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"techpulse/di"
	"techpulse/domain"
)

func registerUserRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.POST("/users", handleRegisterUser(container))
	v1.GET("/users/:id", handleFetchUser(container))
	v1.GET("/users/:id/feed", handlePersonalFeed(container))
}

func handleRegisterUser(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req userProfileRequest
		if err := bindAndValidate(c, &req, "register_user"); err != nil {
			return handleError(c, err, "register_user")
		}

		profile, err := container.UserProfileUsecase.Register(c.Request().Context(), req.DisplayName, req.Interests)
		if err != nil {
			return handleError(c, err, "register_user")
		}
		return c.JSON(http.StatusCreated, profile)
	}
}

func handleFetchUser(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		profile, err := container.UserProfileUsecase.Fetch(c.Request().Context(), c.Param("id"))
		if err != nil {
			return handleError(c, err, "fetch_user")
		}
		return c.JSON(http.StatusOK, profile)
	}
}

func handlePersonalFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit, err := queryInt(c, "limit")
		if err != nil {
			return handleError(c, err, "personal_feed")
		}
		if limit == 0 {
			limit = container.Config.Feed.DefaultLimit
		}
		if limit > container.Config.Feed.MaxLimit {
			limit = container.Config.Feed.MaxLimit
		}

		articles, err := container.UserProfileUsecase.PersonalFeed(c.Request().Context(), c.Param("id"), limit)
		if err != nil {
			return handleError(c, err, "personal_feed")
		}
		if articles == nil {
			articles = []*domain.Article{}
		}
		return c.JSON(http.StatusOK, articlesResponse{Articles: articles, Count: len(articles)})
	}
}
