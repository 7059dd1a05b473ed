package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsMalformedRate(t *testing.T) {
	_, err := New("not-a-rate")
	require.Error(t, err)
}

func TestMiddlewareEnforcesLimit(t *testing.T) {
	lim, err := New("2-H")
	require.NoError(t, err)

	handler := Handler{Limiter: lim}.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/generate", nil))
		require.Equal(t, http.StatusOK, rr.Code, "request %d should pass", i+1)
		require.Equal(t, "2", rr.Header().Get("X-RateLimit-Limit"))
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/generate", nil))
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	require.Equal(t, "0", rr.Header().Get("X-RateLimit-Remaining"))
}

func TestMiddlewareKeysByClient(t *testing.T) {
	lim, err := New("1-H")
	require.NoError(t, err)

	handler := Handler{Limiter: lim}.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodPost, "/generate", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, first)
	require.Equal(t, http.StatusOK, rr.Code)

	blocked := httptest.NewRequest(http.MethodPost, "/generate", nil)
	blocked.RemoteAddr = "10.0.0.1:9999"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, blocked)
	require.Equal(t, http.StatusTooManyRequests, rr.Code)

	other := httptest.NewRequest(http.MethodPost, "/generate", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, other)
	require.Equal(t, http.StatusOK, rr.Code, "a different client gets its own allowance")
}

func TestMiddlewareWithoutLimiterPassesThrough(t *testing.T) {
	handler := Handler{}.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/generate", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Empty(t, rr.Header().Get("X-RateLimit-Limit"))
}
