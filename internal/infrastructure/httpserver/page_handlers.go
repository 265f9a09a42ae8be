package httpserver

import (
	"net/http"
	"time"

	"github.com/goutelas/content-api/internal/core/domain/content"
	"github.com/labstack/echo/v4"
)

// listPagesMenu serves the parent/child navigation structure. Failures
// degrade to an empty menu so navigation never breaks the site shell.
func (s *Server) listPagesMenu(c echo.Context) error {
	pages, err := s.content.Pages(c.Request().Context())
	if err != nil {
		if s.logger != nil {
			s.logger.WithError(err).Warn("failed to build pages menu")
		}
		return c.JSON(http.StatusOK, []content.MenuSection{})
	}
	return c.JSON(http.StatusOK, content.BuildMenu(pages))
}

func (s *Server) getPage(c echo.Context) error {
	slug := c.Param("slug")
	page, err := s.content.PageBySlug(c.Request().Context(), slug)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch page")
	}
	if page == nil {
		return echo.NewHTTPError(http.StatusNotFound, "page not found")
	}
	return c.JSON(http.StatusOK, page)
}

// listPageEvents serves the events attached to a page through their
// display-page field, decorated like the main event list.
func (s *Server) listPageEvents(c echo.Context) error {
	slug := c.Param("slug")
	events, err := s.content.EventsByPageSlug(c.Request().Context(), slug)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "failed to fetch page events")
	}

	now := time.Now()
	views := make([]eventView, 0, len(events))
	for _, e := range content.FilterEvents(events, content.FilterState{}) {
		views = append(views, newEventView(e, now))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"events": views,
		"total":  len(views),
	})
}
