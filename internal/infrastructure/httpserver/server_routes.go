package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api/v1")

	api.GET("/events", s.listEvents)
	api.GET("/events/:slug", s.getEvent)
	api.GET("/posts", s.listPosts)
	api.GET("/partners", s.listPartners)
	api.GET("/team", s.listTeamMembers)
	api.GET("/options", s.getSiteOptions)

	api.GET("/pages", s.listPagesMenu)
	api.GET("/pages/:slug", s.getPage)
	api.GET("/pages/:slug/events", s.listPageEvents)
}
