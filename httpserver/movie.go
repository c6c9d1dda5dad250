package httpserver

import (
	"net/http"

	"moviedb/errs"
	"moviedb/movie"

	"github.com/labstack/echo/v4"
)

const moviesPath = "/api/movies"

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.Use(s.requireMovieService)

	g.GET("", s.handleListMovies)
	g.GET("/new", s.handleNewestMovies)
	g.GET("/recommended", s.handleRecommendedMovies)
	g.GET("/:id", s.handleGetMovie)
	g.POST("", s.handleCreateMovie)
	g.PUT("/:id", s.handleUpdateMovie)
	g.PATCH("/:id", s.handleUpdateMovie)
	g.DELETE("/:id", s.handleDeleteMovie)
}

func (s *Server) requireMovieService(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.MovieService == nil {
			return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
		}
		return next(c)
	}
}

// handleListMovies godoc
// @Summary List Movies
// @Description Get all movies with their genre and resource url
// @Tags movies
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]MovieResponse}
// @Failure 500 {object} ErrorResponse
// @Router /api/movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	movies, err := s.MovieService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, moviesPath, newMovieListResponse(c, movies, true), len(movies))
}

// handleNewestMovies godoc
// @Summary Newest Movies
// @Description Get the five most recent releases
// @Tags movies
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]MovieResponse}
// @Failure 500 {object} ErrorResponse
// @Router /api/movies/new [get]
func (s *Server) handleNewestMovies(c echo.Context) error {
	movies, err := s.MovieService.Newest(c.Request().Context())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, moviesPath+"/new", newMovieListResponse(c, movies, false), len(movies))
}

// handleRecommendedMovies godoc
// @Summary Recommended Movies
// @Description Get movies rated 8 or more, best rated first
// @Tags movies
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]MovieResponse}
// @Failure 500 {object} ErrorResponse
// @Router /api/movies/recommended [get]
func (s *Server) handleRecommendedMovies(c echo.Context) error {
	movies, err := s.MovieService.Recommended(c.Request().Context())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, moviesPath+"/recommended", newMovieListResponse(c, movies, false), len(movies))
}

// handleGetMovie godoc
// @Summary Movie Detail
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} SuccessResponse{data=MovieResponse}
// @Failure 404 {object} ErrorResponse
// @Router /api/movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	id, err := movie.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	m, err := s.MovieService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, moviePath(m.ID), newMovieResponse(m))
}

// handleCreateMovie godoc
// @Summary Create Movie
// @Description Every field is required
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie Data"
// @Success 200 {object} SuccessResponse{data=MovieResponse}
// @Failure 400 {object} ErrorResponse
// @Router /api/movies [post]
func (s *Server) handleCreateMovie(c echo.Context) error {
	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in, err := req.ToInput()
	if err != nil {
		return err
	}

	m, err := s.MovieService.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, moviePath(m.ID), newMovieResponse(m))
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Overwrites the sent fields, empty or zero values keep the stored ones
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body MovieRequest true "Fields to change"
// @Success 200 {object} SuccessResponse{data=MovieResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/movies/{id} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	ch, err := req.ToChanges()
	if err != nil {
		return err
	}

	id, err := movie.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	m, err := s.MovieService.Update(c.Request().Context(), id, ch)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, moviePath(m.ID), newMovieResponse(m))
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Description Clears favorite references and deletes the movie. Data is the number of deleted rows.
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} SuccessResponse{data=int}
// @Failure 404 {object} ErrorResponse
// @Router /api/movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	id, err := movie.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	deleted, err := s.MovieService.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, moviePath(id), deleted)
}
