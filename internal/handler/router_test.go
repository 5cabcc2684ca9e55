package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/vaultpass-engine/internal/middleware"
)

type denyAll struct{}

func (denyAll) Allow(context.Context, string) bool { return false }

func TestRouter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := newFixture(t)
	srv := httptest.NewServer(NewRouter(f.gen, f.str, f.metrics, middleware.NewMemoryLimiter(ctx, 100, 100)))
	defer srv.Close()

	tests := []struct {
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodPost, "/api/v1/generate", "{}", http.StatusOK},
		{http.MethodGet, "/api/v1/policy", "", http.StatusOK},
		{http.MethodPost, "/api/v1/strength", `{"password":"x"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/rules", "", http.StatusOK},
		{http.MethodGet, "/api/v1/generate", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/vault", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)
			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_RateLimitScope(t *testing.T) {
	f := newFixture(t)
	h := NewRouter(f.gen, f.str, f.metrics, denyAll{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rules", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
