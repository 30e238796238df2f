package http

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"roster-service/internal/app/catalog"
	"roster-service/internal/app/roster"
	"roster-service/internal/app/session"
	"roster-service/internal/http/handlers"
	"roster-service/internal/metrics"
	"roster-service/internal/pager"
	"roster-service/internal/providers"
	"roster-service/internal/store"
)

type emptyProvider struct{}

func (emptyProvider) FetchPlayers(ctx context.Context, cursor *int, perPage int) (providers.Page, error) {
	return providers.Page{}, nil
}

func newRouter() nethttp.Handler {
	st := store.New()
	p := pager.New(emptyProvider{}, st.Catalog, nil, metrics.NewRecorder(), 10)
	handler := handlers.NewHandler(
		session.NewService(st.Auth, nil),
		roster.NewService(st.Teams, st.Catalog, nil),
		catalog.NewService(st.Catalog, p),
		nil,
		nil,
	)
	return NewRouter(handler)
}

func TestRouterDispatch(t *testing.T) {
	router := newRouter()

	cases := []struct {
		method string
		path   string
		status int
	}{
		{nethttp.MethodGet, "/health", nethttp.StatusOK},
		{nethttp.MethodGet, "/ready", nethttp.StatusOK},
		{nethttp.MethodGet, "/session", nethttp.StatusOK},
		{nethttp.MethodGet, "/teams", nethttp.StatusOK},
		{nethttp.MethodGet, "/players", nethttp.StatusOK},
		{nethttp.MethodPost, "/players/next", nethttp.StatusAccepted},
		{nethttp.MethodPost, "/players/reset", nethttp.StatusNoContent},
		{nethttp.MethodGet, "/nope", nethttp.StatusNotFound},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != tc.status {
			t.Fatalf("%s %s: expected %d, got %d (%s)", tc.method, tc.path, tc.status, rec.Code, rec.Body.String())
		}
	}
}
