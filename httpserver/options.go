package httpserver

import (
	"moviedb/movie"
	"moviedb/pkg/config"

	"go.uber.org/zap"
)

type Option func(s *Server) error

func WithConfig(cfg *config.Config) Option {
	return func(s *Server) error {
		if cfg != nil {
			s.Config = cfg
		}
		return nil
	}
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Server) error {
		if l != nil {
			s.Logger = l
		}
		return nil
	}
}

func WithMovieService(svc movie.Service) Option {
	return func(s *Server) error {
		s.MovieService = svc
		return nil
	}
}

func WithAllowOrigins(origins ...string) Option {
	return func(s *Server) error {
		s.AllowOrigins = origins
		return nil
	}
}
