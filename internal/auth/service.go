package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/model/user"
	authsdk "terminal-terrace/blog/packages/auth-sdk"
	"terminal-terrace/blog/packages/response"
)

// MinPasswordLength 创建用户时的最短密码
const MinPasswordLength = 8

var (
	dummyOnce sync.Once
	dummy     []byte
)

func dummyHash() []byte {
	dummyOnce.Do(func() {
		dummy, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)
	})
	return dummy
}

var errBadCredentials = response.NewBusinessError(
	response.WithErrorCode(response.Unauthorized),
	response.WithErrorMessage("邮箱或密码错误"),
)

type AuthService struct {
	repo   *UserRepository
	secret string
	ttl    time.Duration
}

func NewAuthService(repo *UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{repo: repo, secret: secret, ttl: ttl}
}

// Login 校验邮箱密码并签发访问令牌
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 邮箱不存在时同样做一次比较，响应耗时一致
			_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(req.Password))
			return nil, errBadCredentials
		}
		return nil, response.NewInternalError("查询用户失败", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errBadCredentials
	}

	token, err := authsdk.GenerateToken(userContext(u), s.secret, s.ttl)
	if err != nil {
		return nil, response.NewInternalError("签发令牌失败", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.ttl / time.Second),
		User:        ToResource(u),
	}, nil
}

// Me 当前登录用户，用户已被删除时视为未登录
func (s *AuthService) Me(ctx context.Context, current *authsdk.UserContext) (*dto.UserResource, error) {
	u, err := s.repo.GetByID(ctx, current.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("用户不存在"),
			)
		}
		return nil, response.NewInternalError("查询用户失败", err)
	}
	res := ToResource(u)
	return &res, nil
}

// CreateUser 创建用户，供命令行与种子数据使用
func (s *AuthService) CreateUser(ctx context.Context, name, email, password, role string) (*user.User, error) {
	fieldErrs := response.FieldErrors{}
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		fieldErrs.Add("name", "字段 'name' 是必填项")
	}
	if !strings.Contains(email, "@") {
		fieldErrs.Add("email", "字段 'email' 必须是合法的邮箱地址")
	}
	if len(password) < MinPasswordLength {
		fieldErrs.Add("password", fmt.Sprintf("字段 'password' 不能少于 %d", MinPasswordLength))
	}
	if role == "" {
		role = user.RoleAuthor
	}
	if role != user.RoleAdmin && role != user.RoleAuthor {
		fieldErrs.Add("role", "字段 'role' 必须是以下值之一: admin author")
	}
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, response.NewInternalError("校验用户失败", err)
	}
	if exists {
		fieldErrs.Add("email", fmt.Sprintf("email '%s' 已存在", email))
	}
	if err := fieldErrs.Err(); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, response.NewInternalError("密码加密失败", err)
	}
	u := &user.User{Name: name, Email: email, PasswordHash: hash, Role: role}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, response.NewInternalError("创建用户失败", err)
	}
	return u, nil
}

// ResetPassword 按邮箱重置密码
func (s *AuthService) ResetPassword(ctx context.Context, email, password string) error {
	if len(password) < MinPasswordLength {
		return response.NewValidationError(map[string][]string{
			"password": {fmt.Sprintf("字段 'password' 不能少于 %d", MinPasswordLength)},
		})
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("用户", email)
		}
		return response.NewInternalError("查询用户失败", err)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return response.NewInternalError("密码加密失败", err)
	}
	if err := s.repo.UpdatePassword(ctx, u.ID, hash); err != nil {
		return response.NewInternalError("重置密码失败", err)
	}
	return nil
}

// HashPassword bcrypt 加密
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func userContext(u *user.User) authsdk.UserContext {
	return authsdk.UserContext{UserID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// ToResource 用户对外表示，不含密码
func ToResource(u *user.User) dto.UserResource {
	return dto.UserResource{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
