package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

type countingLimiter struct {
	counts map[string]int
}

func (l *countingLimiter) Allow(_ context.Context, scope, key string, limit int, _ time.Duration) bool {
	if l.counts == nil {
		l.counts = make(map[string]int)
	}
	l.counts[scope+":"+key]++
	return l.counts[scope+":"+key] <= limit
}

func TestRateLimit_AllowsUnderLimit(t *testing.T) {
	e := echo.New()
	mw := RateLimit(&countingLimiter{}, "login", 2, time.Minute)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := handler(c); err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}
}

func TestRateLimit_BlocksOverLimit(t *testing.T) {
	e := echo.New()
	limiter := &countingLimiter{}
	mw := RateLimit(limiter, "login", 1, time.Minute)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	first := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(first, rec)); err != nil {
		t.Fatalf("first request: %v", err)
	}

	second := httptest.NewRequest(http.MethodPost, "/", nil)
	rec = httptest.NewRecorder()
	c := e.NewContext(second, rec)
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}
