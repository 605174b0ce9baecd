package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"consulate-console/config"
	"consulate-console/internal/middleware"
	"consulate-console/internal/model"
	"consulate-console/pkg/log"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newAuthRouter(authCfg config.AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), authCfg, config.RateLimitConfig{PerMin: 600})

	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		actor, _ := middleware.ActorFromContext(c)
		c.JSON(http.StatusOK, gin.H{"actor": actor.Email, "role": string(actor.Role)})
	})
	r.GET("/admin", mw.Auth(), mw.RequireRole(model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuth(t *testing.T) {
	t.Run("valid token passes and exposes the actor", func(t *testing.T) {
		r := newAuthRouter(config.AuthConfig{JWTSecret: testSecret})
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub":   "u-1",
			"email": "agent@consulat.example",
			"role":  "EDITOR",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing header is 401", func(t *testing.T) {
		r := newAuthRouter(config.AuthConfig{JWTSecret: testSecret})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong secret is 401", func(t *testing.T) {
		r := newAuthRouter(config.AuthConfig{JWTSecret: testSecret})
		token := signToken(t, "other-secret", jwt.MapClaims{"sub": "u-1"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired token is 401", func(t *testing.T) {
		r := newAuthRouter(config.AuthConfig{JWTSecret: testSecret})
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": "u-1",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("editor cannot reach admin route", func(t *testing.T) {
		r := newAuthRouter(config.AuthConfig{JWTSecret: testSecret})
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub":  "u-2",
			"role": "EDITOR",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})

	t.Run("disabled auth lets everything through", func(t *testing.T) {
		r := newAuthRouter(config.AuthConfig{Disabled: true})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})
}
