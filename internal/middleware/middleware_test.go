package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	authsdk "terminal-terrace/blog/packages/auth-sdk"
)

const testSecret = "middleware-secret"

func token(t *testing.T, user authsdk.UserContext, ttl time.Duration) string {
	t.Helper()
	tok, err := authsdk.GenerateToken(user, testSecret, ttl)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		user := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user_id": user.UserID, "role": user.Role})
	})
	r.GET("/", handlers...)
	return r
}

func TestJWTAuth(t *testing.T) {
	author := authsdk.UserContext{UserID: 5, Name: "author", Role: "author"}
	valid := token(t, author, time.Hour)
	expired := token(t, author, -time.Minute)

	tests := []struct {
		name         string
		header       string
		cookie       string
		expectStatus int
		expectBody   string
	}{
		{"缺少令牌", "", "", http.StatusUnauthorized, "未提供认证令牌"},
		{"Bearer 令牌", "Bearer " + valid, "", http.StatusOK, `"user_id":5`},
		{"Cookie 令牌", "", valid, http.StatusOK, `"user_id":5`},
		{"过期令牌", "Bearer " + expired, "", http.StatusUnauthorized, "认证令牌已过期"},
		{"伪造令牌", "Bearer abc.def.ghi", "", http.StatusUnauthorized, "无效的认证令牌"},
	}

	r := newEngine(JWTAuth(testSecret))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectBody)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	r := newEngine(JWTAuth(testSecret), RequireAdmin())

	tests := []struct {
		name         string
		role         string
		expectStatus int
	}{
		{"超级管理员", authsdk.RoleAdmin, http.StatusOK},
		{"普通作者", "author", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+token(t, authsdk.UserContext{UserID: 1, Role: tt.role}, time.Hour))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.expectStatus, w.Code)
		})
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(), Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
}
