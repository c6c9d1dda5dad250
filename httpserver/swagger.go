package httpserver

import (
	_ "moviedb/docs"

	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterSwaggerRoutes serves the API docs UI outside production.
func (s *Server) RegisterSwaggerRoutes() {
	if s.Config.AppEnv == "production" {
		return
	}
	s.Router.GET("/swagger/*", echoSwagger.WrapHandler)
}
