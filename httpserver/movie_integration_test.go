package httpserver_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"moviedb/httpserver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeepingTrackOfMovies(t *testing.T) {
	db := MustCreateTestDatabase(t)
	MigrateTestDatabase(t, db, "../migrations")
	server := MustCreateServer(t, db)

	var dune httpserver.MovieResponse

	t.Run("create a movie", func(t *testing.T) {
		rec := serve(server, newJSONRequest(http.MethodPost, "/api/movies", duneBody))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decodeSuccess(t, rec)
		decodeData(t, resp.Data, &dune)
		assert.NotZero(t, dune.ID)
		assert.Equal(t, "Dune", dune.Title)
		assert.Equal(t, 9.0, dune.Rating)
		assert.Equal(t, "none", dune.Awards)
		assert.Equal(t, "2021-10-22", dune.ReleaseDate)
		assert.Equal(t, 155, dune.Length)
		assert.Equal(t, &httpserver.GenreResponse{Name: "Comedy", Ranking: 1}, dune.Genre)
		assert.Equal(t, fmt.Sprintf("http://example.com/api/movies/%d", dune.ID), resp.Meta.URL)
	})

	t.Run("reject a movie without genre", func(t *testing.T) {
		body := `{"title":"Dune","rating":9,"awards":"none","release_date":"2021-10-22","length":155}`
		rec := serve(server, newJSONRequest(http.MethodPost, "/api/movies", body))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("reject an unknown genre", func(t *testing.T) {
		body := `{"title":"Dune","rating":9,"awards":"none","release_date":"2021-10-22","length":155,"genre_id":999}`
		rec := serve(server, newJSONRequest(http.MethodPost, "/api/movies", body))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "genre does not exist", decodeError(t, rec).Msg)
	})

	t.Run("list the movie", func(t *testing.T) {
		rec := serve(server, httptest.NewRequest(http.MethodGet, "/api/movies", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeSuccess(t, rec)
		var data []httpserver.MovieResponse
		decodeData(t, resp.Data, &data)
		require.Len(t, data, 1)
		assert.Equal(t, 1, *resp.Meta.Total)
		assert.Equal(t, fmt.Sprintf("http://example.com/api/movies/%d", dune.ID), data[0].URL)
	})

	t.Run("show in recommended and newest", func(t *testing.T) {
		for _, path := range []string{"/api/movies/recommended", "/api/movies/new"} {
			rec := serve(server, httptest.NewRequest(http.MethodGet, path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, 1, *decodeSuccess(t, rec).Meta.Total, path)
		}
	})

	t.Run("update keeps the fields that were not sent", func(t *testing.T) {
		path := fmt.Sprintf("/api/movies/%d", dune.ID)
		rec := serve(server, newJSONRequest(http.MethodPut, path, `{"title":"  Dune: Part One ","rating":0,"awards":""}`))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var updated httpserver.MovieResponse
		decodeData(t, decodeSuccess(t, rec).Data, &updated)
		assert.Equal(t, "Dune: Part One", updated.Title)
		assert.Equal(t, 9.0, updated.Rating)
		assert.Equal(t, "none", updated.Awards)
		assert.Equal(t, "2021-10-22", updated.ReleaseDate)
		assert.Equal(t, 155, updated.Length)
	})

	t.Run("detail returns the updated movie", func(t *testing.T) {
		rec := serve(server, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/movies/%d", dune.ID), nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got httpserver.MovieResponse
		decodeData(t, decodeSuccess(t, rec).Data, &got)
		assert.Equal(t, dune.ID, got.ID)
		assert.Equal(t, "Dune: Part One", got.Title)
	})

	t.Run("delete the movie", func(t *testing.T) {
		path := fmt.Sprintf("/api/movies/%d", dune.ID)
		rec := serve(server, httptest.NewRequest(http.MethodDelete, path, nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `1`, string(decodeSuccess(t, rec).Data))

		rec = serve(server, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = serve(server, httptest.NewRequest(http.MethodDelete, path, nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `0`, string(decodeSuccess(t, rec).Data))
	})
}
