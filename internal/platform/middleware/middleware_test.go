// Copyright (c) 2026 VanCommunity. All rights reserved.
// Author: Francesca993 (VanCommunity)

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francesca993/VanCommunity/internal/platform/apperr"
	"github.com/Francesca993/VanCommunity/internal/platform/ctxutil"
	"github.com/Francesca993/VanCommunity/internal/platform/middleware"
)

var okHandler = http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
})

var localOrigins = []string{"http://localhost:5173"}

/*
TestRequestID_GeneratesAndPropagates checks both the generated and the client-provided paths.
*/
func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "client-abc")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "client-abc", seen)
	assert.Equal(t, "client-abc", recorder.Header().Get("X-Request-ID"))
}

/*
TestRateLimiter_RejectsOverBurst allows exactly the burst, then answers 429 per IP.
*/
func TestRateLimiter_RejectsOverBurst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	limiter := middleware.NewRateLimiter(ctx, 0.001, 2)
	handler := limiter.Middleware()(okHandler)

	send := func(ip string) int {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Real-IP", ip)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))

	// Buckets are per client.
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

/*
TestPanicRecovery_Returns500 turns a handler panic into the internal error envelope.
*/
func TestPanicRecovery_Returns500(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), apperr.CodeInternal)
}

/*
TestCORS_AllowedOrigin reflects the origin and enables credentials.
*/
func TestCORS_AllowedOrigin(t *testing.T) {
	handler := middleware.CORS(localOrigins)(okHandler)

	request := httptest.NewRequest(http.MethodPost, "/api/groups/search", nil)
	request.Header.Set("Origin", "http://localhost:5173")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "http://localhost:5173", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", recorder.Header().Get("Access-Control-Allow-Credentials"))
}

/*
TestCORS_Preflight echoes the requested headers for allowed origins and rejects the rest.
*/
func TestCORS_Preflight(t *testing.T) {
	handler := middleware.CORS(localOrigins)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("preflight must not reach the handler")
	}))

	preflight := func(origin string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodOptions, "/api/groups", nil)
		request.Header.Set("Origin", origin)
		request.Header.Set("Access-Control-Request-Method", http.MethodPost)
		request.Header.Set("Access-Control-Request-Headers", "content-type, x-custom")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	allowed := preflight("http://localhost:5173")
	assert.Equal(t, http.StatusOK, allowed.Code)
	assert.Equal(t, "content-type, x-custom", allowed.Header().Get("Access-Control-Allow-Headers"))
	assert.Contains(t, allowed.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)

	denied := preflight("https://evil.example.com")
	assert.Equal(t, http.StatusBadRequest, denied.Code)
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestCORS_UnknownOriginGetsNoHeaders serves the request but leaves the browser to block it.
*/
func TestCORS_UnknownOriginGetsNoHeaders(t *testing.T) {
	handler := middleware.CORS(localOrigins)(okHandler)

	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	request.Header.Set("Origin", "https://evil.example.com")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

type observation struct {
	method string
	route  string
	status int
}

type fakeObserver struct{ observed []observation }

func (observer *fakeObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	observer.observed = append(observer.observed, observation{method, route, status})
}

/*
TestMetrics_UsesRoutePattern labels by the chi pattern instead of the raw path.
*/
func TestMetrics_UsesRoutePattern(t *testing.T) {
	observer := &fakeObserver{}

	router := chi.NewRouter()
	router.Use(middleware.Metrics(observer))
	router.Post("/api/groups/{id}/join", func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/groups/42/join", nil))

	require.Len(t, observer.observed, 1)
	assert.Equal(t, observation{http.MethodPost, "/api/groups/{id}/join", http.StatusNotFound}, observer.observed[0])
}

/*
TestRealIP prefers proxy headers over the socket address.
*/
func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.0.2.10:5555"
	assert.Equal(t, "192.0.2.10", middleware.RealIP(request))

	request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", middleware.RealIP(request))

	request.Header.Set("X-Real-IP", "198.51.100.3")
	assert.Equal(t, "198.51.100.3", middleware.RealIP(request))
}
