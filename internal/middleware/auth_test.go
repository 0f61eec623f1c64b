package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"marginalia/blog-service/config"
	"marginalia/blog-service/pkg/authsdk"
)

// TestJWTAuth 认证中间件与令牌签发共用一套解析逻辑
func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{Secret: "test-secret-key", ExpireTime: 1},
	}

	newRouter := func(captured *uint) *gin.Engine {
		r := gin.New()
		r.GET("/me", JWTAuth(), func(c *gin.Context) {
			*captured = CurrentUserID(c)
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		return r
	}

	t.Run("bearer header", func(t *testing.T) {
		token, err := authsdk.GenerateToken(7, "alice", "a@example.com", "user", "test-secret-key", time.Hour)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		var userID uint
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newRouter(&userID).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if userID != 7 {
			t.Errorf("expected user id 7 in context, got %d", userID)
		}
	})

	t.Run("cookie", func(t *testing.T) {
		token, err := authsdk.GenerateToken(9, "bob", "b@example.com", "user", "test-secret-key", time.Hour)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		var userID uint
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		newRouter(&userID).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if userID != 9 {
			t.Errorf("expected user id 9 in context, got %d", userID)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		var userID uint
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		newRouter(&userID).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := authsdk.GenerateToken(7, "alice", "a@example.com", "user", "another-secret", time.Hour)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		var userID uint
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newRouter(&userID).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

// TestAdminOnly 管理员守卫：校验失败时中断且不触碰后续 handler
func TestAdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		role           string
		roleSet        bool
		expectedStatus int
		expectHandler  bool
	}{
		{"admin passes", "admin", true, http.StatusOK, true},
		{"user rejected", "user", true, http.StatusForbidden, false},
		{"empty role rejected", "", true, http.StatusForbidden, false},
		{"missing role rejected", "", false, http.StatusForbidden, false},
		{"case sensitive", "Admin", true, http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerReached := false

			r := gin.New()
			r.GET("/admin", func(c *gin.Context) {
				if tt.roleSet {
					c.Set("user_role", tt.role)
				}
				c.Next()
			}, AdminOnly(), func(c *gin.Context) {
				handlerReached = true
				c.JSON(http.StatusOK, gin.H{"ok": true})
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			r.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if handlerReached != tt.expectHandler {
				t.Errorf("handler reached = %v, want %v", handlerReached, tt.expectHandler)
			}
		})
	}
}

// TestCurrentUserID 上下文缺省时返回 0
func TestCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unauthenticated returns zero", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		if id := CurrentUserID(c); id != 0 {
			t.Errorf("expected 0 for unauthenticated context, got %d", id)
		}
	})

	t.Run("authenticated returns id", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set("user_id", uint(42))
		if id := CurrentUserID(c); id != 42 {
			t.Errorf("expected 42, got %d", id)
		}
	})
}
