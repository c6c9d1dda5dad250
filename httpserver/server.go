package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"moviedb/errs"
	"moviedb/movie"
	"moviedb/pkg/config"
	"moviedb/pkg/logger"
	"moviedb/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultRateLimit = 20
	fallbackMessage  = "Ups, something went wrong. Please try again later"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	Config *config.Config
	Logger *zap.SugaredLogger

	MovieService movie.Service
}

func New(options ...Option) (*Server, error) {
	s := Server{
		Router: echo.New(),
		Addr:   ":8080",
		Config: config.Empty,
		Logger: logger.NOOPLogger,
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	if s.Config.Port != 0 {
		s.Addr = fmt.Sprintf(":%d", s.Config.Port)
	}
	if s.AllowOrigins == nil {
		s.AllowOrigins = []string{"*"}
		if s.Config.AllowOrigins != "" {
			s.AllowOrigins = strings.Split(s.Config.AllowOrigins, ",")
		}
	}

	s.Router.HideBanner = true
	s.Router.Validator = NewValidator()
	s.Router.HTTPErrorHandler = s.handleHTTPError
	s.RegisterGlobalMiddlewares()

	s.RegisterHealthRoutes()
	s.RegisterSwaggerRoutes()
	s.RegisterMovieRoutes(s.Router.Group(moviesPath))

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	limit := s.Config.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}

	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.Router.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.Logger.Infow("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
				"request_id", v.RequestID,
			)
			return nil
		},
	}))
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	s.Router.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(limit))))

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// handleHTTPError maps application errors to the error envelope. Messages of
// client errors are returned verbatim, server errors get a generic message.
func (s *Server) handleHTTPError(err error, c echo.Context) {
	// Don't write response if already committed
	if c.Response().Committed {
		return
	}

	code, message := errorStatus(err)
	if code >= http.StatusInternalServerError {
		s.Logger.Errorw(err.Error(),
			"request_id", s.requestID(c),
			"method", c.Request().Method,
			"path", c.Path(),
		)
		sentry.WithContext(c).
			WithExtras(map[string]interface{}{"request_id": s.requestID(c)}).
			Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = writeError(c, code, message)
	}
	if err != nil {
		s.Logger.Errorw("write error response", "error", err)
	}
}

func errorStatus(err error) (int, string) {
	if he, ok := err.(*echo.HTTPError); ok {
		// bind failures raised by payload decoding keep their own message
		var appErr *errs.Error
		if errors.As(he.Internal, &appErr) {
			return errorStatus(appErr)
		}
		message := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok && m != "" {
			message = m
		}
		if he.Code >= http.StatusInternalServerError {
			message = fallbackMessage
		}
		return he.Code, message
	}

	switch errs.ErrorCode(err) {
	case errs.EINVALID:
		return http.StatusBadRequest, errs.ErrorMessage(err)
	case errs.ENOTFOUND:
		return http.StatusNotFound, errs.ErrorMessage(err)
	case errs.ECONFLICT:
		return http.StatusConflict, errs.ErrorMessage(err)
	case errs.EUNAUTHORIZED:
		return http.StatusUnauthorized, errs.ErrorMessage(err)
	case errs.ENOTIMPLEMENTED:
		return http.StatusNotImplemented, errs.ErrorMessage(err)
	}
	return http.StatusInternalServerError, fallbackMessage
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
