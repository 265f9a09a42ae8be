package httpserver

import (
	"net/http"
	"time"

	"github.com/goutelas/content-api/internal/core/domain/content"
	"github.com/labstack/echo/v4"
)

// eventView decorates an event with its per-render derived fields.
type eventView struct {
	content.Event
	EventStatus     content.StatusInfo `json:"event_status"`
	CategoryVariant string             `json:"category_variant"`
}

func newEventView(e content.Event, now time.Time) eventView {
	var category string
	if names := e.Embedded.TermNames(content.TaxonomyCategory); len(names) > 0 {
		category = names[0]
	}
	return eventView{
		Event:           e,
		EventStatus:     content.StatusOf(&e, now),
		CategoryVariant: content.CategoryVariant(category),
	}
}

// facetView pairs the full option list of a facet with the subset still
// selectable under the other active filters. Options outside Available
// should be rendered disabled, not hidden.
type facetView struct {
	Options   []string `json:"options"`
	Available []string `json:"available"`
}

func filterStateFromQuery(c echo.Context) content.FilterState {
	return content.FilterState{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Season:   c.QueryParam("season"),
		Partner:  c.QueryParam("partner"),
	}
}

func (s *Server) listEvents(c echo.Context) error {
	events, err := s.content.Events(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "failed to fetch events")
	}

	filters := filterStateFromQuery(c)
	filtered := content.FilterEvents(events, filters)
	available := content.AvailableFacets(events, filters)

	now := time.Now()
	views := make([]eventView, 0, len(filtered))
	for _, e := range filtered {
		views = append(views, newEventView(e, now))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"events":  views,
		"total":   len(views),
		"filters": filters,
		"facets": map[string]facetView{
			"categories": {Options: content.EventCategories(events), Available: available.Categories},
			"seasons":    {Options: content.EventSeasons(events), Available: available.Seasons},
			"partners":   {Options: content.EventPartners(events), Available: available.Partners},
		},
	})
}

func (s *Server) getEvent(c echo.Context) error {
	slug := c.Param("slug")
	event, err := s.content.EventBySlug(c.Request().Context(), slug)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "failed to fetch event")
	}
	if event == nil {
		return echo.NewHTTPError(http.StatusNotFound, "event not found")
	}
	return c.JSON(http.StatusOK, newEventView(*event, time.Now()))
}

func (s *Server) listPosts(c echo.Context) error {
	posts, err := s.content.Posts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "failed to fetch posts")
	}
	search := c.QueryParam("search")
	category := c.QueryParam("category")
	filtered := content.FilterPosts(posts, search, category)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"posts":      filtered,
		"total":      len(filtered),
		"categories": content.PostCategories(posts),
	})
}

func (s *Server) listPartners(c echo.Context) error {
	partners, err := s.content.Partners(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "failed to fetch partners")
	}
	groups := content.GroupPartners(partners, c.QueryParam("search"))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"groups": groups,
		"total":  len(partners),
	})
}

func (s *Server) listTeamMembers(c echo.Context) error {
	members, err := s.content.TeamMembers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "failed to fetch team members")
	}
	return c.JSON(http.StatusOK, members)
}

func (s *Server) getSiteOptions(c echo.Context) error {
	opts, err := s.content.SiteOptions(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "failed to fetch site options")
	}
	return c.JSON(http.StatusOK, opts)
}
