package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/blog/internal/auth"
	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/model/user"
	"terminal-terrace/blog/internal/testutils"
	authsdk "terminal-terrace/blog/packages/auth-sdk"
	"terminal-terrace/blog/packages/response"
)

func setupAuthService(t *testing.T) (*auth.AuthService, *user.User) {
	t.Helper()
	db := testutils.SetupTestDB(t)
	u := testutils.CreateTestUser(db, testutils.WithEmail("writer@example.com"), testutils.AsAdmin())
	return auth.NewAuthService(auth.NewUserRepository(db), testutils.TestJWTSecret, 2*time.Hour), u
}

func requireCode(t *testing.T, err error, code response.ResponseCode) *response.BusinessError {
	t.Helper()
	var bizErr *response.BusinessError
	require.True(t, errors.As(err, &bizErr), "expected BusinessError, got %v", err)
	assert.Equal(t, code, bizErr.Code)
	return bizErr
}

func TestLogin(t *testing.T) {
	svc, u := setupAuthService(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, dto.LoginRequest{Email: "Writer@Example.com", Password: testutils.TestPassword})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, int64(7200), res.ExpiresIn)
	assert.Equal(t, u.ID, res.User.ID)

	claims, err := authsdk.ParseToken(res.AccessToken, testutils.TestJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.True(t, claims.IsAdmin())

	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"密码错误", dto.LoginRequest{Email: u.Email, Password: "wrong-password"}},
		{"邮箱不存在", dto.LoginRequest{Email: "nobody@example.com", Password: testutils.TestPassword}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.req)
			requireCode(t, err, response.Unauthorized)
		})
	}
}

func TestMe(t *testing.T) {
	svc, u := setupAuthService(t)

	me, err := svc.Me(context.Background(), testutils.UserContext(u))
	require.NoError(t, err)
	assert.Equal(t, u.Email, me.Email)

	_, err = svc.Me(context.Background(), &authsdk.UserContext{UserID: 9999})
	requireCode(t, err, response.Unauthorized)
}

func TestCreateUser(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "Alice", "alice@example.com", "s3cret-pass", "")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAuthor, created.Role)
	assert.NotEqual(t, "s3cret-pass", created.PasswordHash)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "alice@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	tests := []struct {
		name        string
		email       string
		password    string
		role        string
		expectField string
	}{
		{"邮箱重复", "ALICE@example.com", "long-enough", "", "email"},
		{"邮箱格式", "alice", "long-enough", "", "email"},
		{"密码过短", "bob@example.com", "short", "", "password"},
		{"未知角色", "bob@example.com", "long-enough", "root", "role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(ctx, "Bob", tt.email, tt.password, tt.role)
			bizErr := requireCode(t, err, response.InvalidParameter)
			assert.Contains(t, bizErr.FieldErrors(), tt.expectField)
		})
	}
}

func TestResetPassword(t *testing.T) {
	svc, u := setupAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.ResetPassword(ctx, u.Email, "brand-new-password"))
	_, err := svc.Login(ctx, dto.LoginRequest{Email: u.Email, Password: testutils.TestPassword})
	requireCode(t, err, response.Unauthorized)
	_, err = svc.Login(ctx, dto.LoginRequest{Email: u.Email, Password: "brand-new-password"})
	require.NoError(t, err)

	requireCode(t, svc.ResetPassword(ctx, "ghost@example.com", "brand-new-password"), response.NotFound)
	requireCode(t, svc.ResetPassword(ctx, u.Email, "short"), response.InvalidParameter)
}

func TestHandler_LoginAndMe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dto.SetupValidator()
	svc, u := setupAuthService(t)

	r := gin.New()
	auth.SetupAuthRoutes(r.Group("/api"), svc, testutils.TestJWTSecret)

	post := func(body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		_ = json.NewEncoder(&buf).Encode(body)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post(gin.H{"email": "not-an-email"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = post(gin.H{"email": u.Email, "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = post(gin.H{"email": u.Email, "password": testutils.TestPassword})
	require.Equal(t, http.StatusOK, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "access_token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	// cookie 与 Bearer 两种方式都能访问 me
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), u.Email)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+cookie.Value)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
