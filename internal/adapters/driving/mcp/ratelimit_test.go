package mcp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serve(h http.Handler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}")))
	return rec
}

func TestLimitRequests_RejectsOverBurst(t *testing.T) {
	h := limitRequests(okHandler(), RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 2})

	assert.Equal(t, http.StatusOK, serve(h).Code)
	assert.Equal(t, http.StatusOK, serve(h).Code)

	rec := serve(h)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestLimitRequests_Disabled(t *testing.T) {
	h := limitRequests(okHandler(), RateLimitConfig{})

	for i := 0; i < 100; i++ {
		require.Equal(t, http.StatusOK, serve(h).Code)
	}
}

func TestLimitRequests_ZeroBurstAllowsOne(t *testing.T) {
	h := limitRequests(okHandler(), RateLimitConfig{RequestsPerSecond: 0.001})

	assert.Equal(t, http.StatusOK, serve(h).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(h).Code)
}

func TestServer_Handler_IsRateLimited(t *testing.T) {
	server, err := NewServer(&Ports{Chart: &mockChartService{}})
	require.NoError(t, err)
	assert.Equal(t, DefaultRateLimit, server.rateLimit)

	server.SetRateLimit(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1})
	h := server.Handler()

	assert.NotEqual(t, http.StatusTooManyRequests, serve(h).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(h).Code)
}
