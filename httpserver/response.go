package httpserver

import (
	"strconv"

	"moviedb/movie"

	"github.com/labstack/echo/v4"
)

type Meta struct {
	Status int    `json:"status"`
	Total  *int   `json:"total,omitempty"`
	URL    string `json:"url"`
}

type SuccessResponse struct {
	OK   bool        `json:"ok"`
	Meta Meta        `json:"meta"`
	Data interface{} `json:"data"`
}

type ErrorResponse struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`
}

type GenreResponse struct {
	Name    string `json:"name"`
	Ranking int    `json:"ranking"`
}

type MovieResponse struct {
	ID              int64          `json:"id"`
	Title           string         `json:"title"`
	Rating          float64        `json:"rating"`
	Awards          string         `json:"awards"`
	ReleaseDate     string         `json:"release_date"`
	Length          int            `json:"length"`
	FavoriteMovieID *int64         `json:"favorite_movie_id"`
	Genre           *GenreResponse `json:"genre"`
	URL             string         `json:"url,omitempty"`
}

func newMovieResponse(m movie.Movie) MovieResponse {
	resp := MovieResponse{
		ID:              m.ID,
		Title:           m.Title,
		Rating:          m.Rating,
		Awards:          m.Awards,
		ReleaseDate:     m.ReleaseDate.Format(movie.DateLayout),
		Length:          m.Length,
		FavoriteMovieID: m.FavoriteMovieID,
	}
	if m.Genre != nil {
		resp.Genre = &GenreResponse{Name: m.Genre.Name, Ranking: m.Genre.Ranking}
	}
	return resp
}

func newMovieListResponse(c echo.Context, movies []movie.Movie, withURL bool) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = newMovieResponse(m)
		if withURL {
			out[i].URL = absoluteURL(c, moviePath(m.ID))
		}
	}
	return out
}

// absoluteURL joins the scheme and host the request came in with and path.
func absoluteURL(c echo.Context, path string) string {
	return c.Scheme() + "://" + c.Request().Host + path
}

func moviePath(id int64) string {
	return moviesPath + "/" + strconv.FormatInt(id, 10)
}

func writeSuccess(c echo.Context, status int, path string, data interface{}) error {
	return c.JSON(status, SuccessResponse{
		OK: true,
		Meta: Meta{
			Status: status,
			URL:    absoluteURL(c, path),
		},
		Data: data,
	})
}

func writeList(c echo.Context, status int, path string, data interface{}, total int) error {
	return c.JSON(status, SuccessResponse{
		OK: true,
		Meta: Meta{
			Status: status,
			Total:  &total,
			URL:    absoluteURL(c, path),
		},
		Data: data,
	})
}

func writeError(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorResponse{
		OK:  false,
		Msg: message,
	})
}
