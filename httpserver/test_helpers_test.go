package httpserver_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"moviedb/httpserver"
	"moviedb/pkg/config"

	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.RateLimit = 1000
	return cfg
}

func mustCreateServer(t testing.TB, options ...httpserver.Option) *httpserver.Server {
	t.Helper()
	options = append([]httpserver.Option{httpserver.WithConfig(testConfig())}, options...)
	server, err := httpserver.New(options...)
	require.NoError(t, err)
	return server
}

type successEnvelope struct {
	OK   bool `json:"ok"`
	Meta struct {
		Status int    `json:"status"`
		Total  *int   `json:"total"`
		URL    string `json:"url"`
	} `json:"meta"`
	Data json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	OK   bool            `json:"ok"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func decodeSuccess(t testing.TB, rec *httptest.ResponseRecorder) successEnvelope {
	t.Helper()
	var resp successEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "response should be a success envelope")
	return resp
}

func decodeError(t testing.TB, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var resp errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "response should be an error envelope")
	return resp
}

func decodeData(t testing.TB, raw json.RawMessage, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, dest))
}
