package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"consulate-console/config"
	"consulate-console/internal/middleware"
	"consulate-console/pkg/log"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("burst beyond budget is 429", func(t *testing.T) {
		mw := middleware.New(log.NewNop(), config.AuthConfig{Disabled: true}, config.RateLimitConfig{PerMin: 30})

		r := gin.New()
		r.GET("/", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		var limited int
		for i := 0; i < 20; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			r.ServeHTTP(w, req)
			if w.Code == http.StatusTooManyRequests {
				limited++
			}
		}

		if limited == 0 {
			t.Error("expected some requests to be rate limited")
		}
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		mw := middleware.New(log.NewNop(), config.AuthConfig{Disabled: true}, config.RateLimitConfig{PerMin: 30})

		r := gin.New()
		r.GET("/", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		// Exhaust the first client's burst.
		for i := 0; i < 20; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			r.ServeHTTP(w, req)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("fresh client must not be limited, got %d", w.Code)
		}
	})
}
