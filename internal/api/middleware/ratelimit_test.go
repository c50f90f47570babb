package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Faceoff/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	limiter := ratelimit.NewFixedWindow(limit, time.Minute)
	router.POST("/api/vote",
		IdentityMiddleware(),
		RateLimitMiddleware(limiter, KeyByCallerOrIP),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return router
}

func doVote(router *gin.Engine, anonID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/vote", nil)
	if anonID != "" {
		req.Header.Set("X-Anonymous-ID", anonID)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRateLimit_HeadersOnAllowedRequest(t *testing.T) {
	router := newLimitedRouter(5)

	rec := doVote(router, "anon-1")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-RateLimit-Limit") != "5" {
		t.Fatalf("limit header = %q, want 5", rec.Header().Get("X-RateLimit-Limit"))
	}
	if rec.Header().Get("X-RateLimit-Remaining") != "4" {
		t.Fatalf("remaining header = %q, want 4", rec.Header().Get("X-RateLimit-Remaining"))
	}
	if rec.Header().Get("X-RateLimit-Reset") == "" {
		t.Fatal("reset header must be set")
	}
}

func TestRateLimit_DeniesWith429(t *testing.T) {
	router := newLimitedRouter(2)

	doVote(router, "anon-1")
	doVote(router, "anon-1")
	rec := doVote(router, "anon-1")

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatal("Retry-After header must be set on denial")
	}
	if rec.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Fatalf("remaining header = %q, want 0", rec.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimit_SeparateCallersSeparateBudgets(t *testing.T) {
	router := newLimitedRouter(1)

	doVote(router, "anon-1")
	if doVote(router, "anon-1").Code != http.StatusTooManyRequests {
		t.Fatal("anon-1 should be exhausted")
	}
	if doVote(router, "anon-2").Code != http.StatusOK {
		t.Fatal("anon-2 has an independent budget")
	}
}
