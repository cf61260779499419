package authsdk

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

const testSecret = "test-secret-key"

func TestGenerateAndParseToken(t *testing.T) {
	user := UserContext{UserID: 42, Name: "alice", Email: "alice@example.com", Role: RoleAdmin}

	token, err := GenerateToken(user, testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user, *parsed)
	assert.True(t, parsed.IsAdmin())
}

func TestParseToken_Errors(t *testing.T) {
	expired, err := GenerateToken(UserContext{UserID: 1}, testSecret, -time.Minute)
	require.NoError(t, err)
	foreign, err := GenerateToken(UserContext{UserID: 1}, "another-secret", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		expectErr error
	}{
		{"空令牌", "", ErrNoToken},
		{"格式错误", "not-a-jwt-token", ErrInvalidToken},
		{"签名密钥不同", foreign, ErrInvalidToken},
		{"已过期", expired, ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ParseToken(tt.token, testSecret)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.expectErr)
		})
	}
}

func TestGenerateToken_EmptySecret(t *testing.T) {
	_, err := GenerateToken(UserContext{UserID: 1}, "", time.Hour)
	assert.Error(t, err)
}

func TestUserContext_Roles(t *testing.T) {
	var anonymous *UserContext
	assert.False(t, anonymous.IsAuthenticated())
	assert.False(t, (&UserContext{}).IsAuthenticated())
	assert.False(t, (&UserContext{UserID: 3, Role: "author"}).IsAdmin())
	assert.True(t, (&UserContext{UserID: 3, Role: RoleAdmin}).IsAdmin())
}

func TestGetUserFromContext(t *testing.T) {
	token, err := GenerateToken(UserContext{UserID: 9, Name: "bob"}, testSecret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		md     metadata.MD
		wantID uint
	}{
		{"authorization bearer", metadata.Pairs("authorization", "Bearer "+token), 9},
		{"x-access-token", metadata.Pairs("x-access-token", token), 9},
		{"无 metadata", nil, 0},
		{"无效 token", metadata.Pairs("authorization", "Bearer broken"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.md != nil {
				ctx = metadata.NewIncomingContext(ctx, tt.md)
			}
			assert.Equal(t, tt.wantID, GetUserFromContext(ctx, testSecret).UserID)
		})
	}
}

func TestBearerToken(t *testing.T) {
	token, ok := BearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	_, ok = BearerToken("Basic xyz")
	assert.False(t, ok)
}
