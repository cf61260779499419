package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"terminal-terrace/blog/internal/model/article"
	"terminal-terrace/blog/internal/model/user"
	authsdk "terminal-terrace/blog/packages/auth-sdk"
)

// TestPassword 测试用户的明文密码
const TestPassword = "password123"

// TestJWTSecret 测试签发令牌使用的密钥
const TestJWTSecret = "test-jwt-secret"

var testPasswordHash []byte

func passwordHash() string {
	if testPasswordHash == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
		if err != nil {
			panic(fmt.Sprintf("Failed to hash test password: %v", err))
		}
		testPasswordHash = hash
	}
	return string(testPasswordHash)
}

func shortID() string {
	return uuid.New().String()[:8]
}

// CreateTestUser creates a test user with unique name/email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()

	testUser := &user.User{
		Name:         fmt.Sprintf("test_user_%s", uniqueID[:8]),
		Email:        fmt.Sprintf("test_%s@example.com", uniqueID),
		PasswordHash: passwordHash(),
		Role:         user.RoleAuthor,
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithName sets the display name
func WithName(name string) UserOption {
	return func(u *user.User) {
		u.Name = name
	}
}

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(u *user.User) {
		u.Email = email
	}
}

// WithRole sets the role
func WithRole(role string) UserOption {
	return func(u *user.User) {
		u.Role = role
	}
}

// AsAdmin makes the user a super admin
func AsAdmin() UserOption {
	return WithRole(user.RoleAdmin)
}

// UserContext 用户的认证上下文
func UserContext(u *user.User) *authsdk.UserContext {
	return &authsdk.UserContext{UserID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// BearerToken 为用户签发测试令牌
func BearerToken(u *user.User) string {
	token, err := authsdk.GenerateToken(*UserContext(u), TestJWTSecret, time.Hour)
	if err != nil {
		panic(fmt.Sprintf("Failed to sign test token: %v", err))
	}
	return "Bearer " + token
}

// CreateTestTag creates a tag with a unique name
func CreateTestTag(db *gorm.DB, opts ...TagOption) *article.Tag {
	id := shortID()
	tag := &article.Tag{
		Name: "tag " + id,
		Slug: "tag-" + id,
	}
	for _, opt := range opts {
		opt(tag)
	}
	if err := db.Create(tag).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test tag: %v", err))
	}
	return tag
}

// TagOption configures test tag
type TagOption func(*article.Tag)

// WithTagName sets name and slug
func WithTagName(name, slug string) TagOption {
	return func(t *article.Tag) {
		t.Name = name
		t.Slug = slug
	}
}

// CreateTestCategory creates a category with a unique name
func CreateTestCategory(db *gorm.DB, opts ...CategoryOption) *article.Category {
	id := shortID()
	category := &article.Category{
		Name:        "category " + id,
		Slug:        "category-" + id,
		Description: "Test category description",
	}
	for _, opt := range opts {
		opt(category)
	}
	if err := db.Create(category).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test category: %v", err))
	}
	return category
}

// CategoryOption configures test category
type CategoryOption func(*article.Category)

// WithCategoryName sets name and slug
func WithCategoryName(name, slug string) CategoryOption {
	return func(c *article.Category) {
		c.Name = name
		c.Slug = slug
	}
}

// CreateTestArticle creates a draft article owned by authorID
func CreateTestArticle(db *gorm.DB, authorID uint, opts ...ArticleOption) *article.Article {
	id := shortID()
	art := &article.Article{
		Title:       "Test article " + id,
		Slug:        "test-article-" + id,
		Description: "Test article description",
		Content:     "# Heading\n\nTest article content.",
		Status:      article.StatusDraft,
		AuthorID:    authorID,
	}
	for _, opt := range opts {
		opt(art)
	}

	tags := art.Tags
	art.Tags = nil
	if err := db.Omit("Author", "Category", "Tags").Create(art).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test article: %v", err))
	}
	for _, tag := range tags {
		link := &article.ArticleTag{ArticleID: art.ID, TagID: tag.ID}
		if err := db.Create(link).Error; err != nil {
			panic(fmt.Sprintf("Failed to attach tag: %v", err))
		}
	}
	art.Tags = tags

	return art
}

// ArticleOption configures test article
type ArticleOption func(*article.Article)

// WithTitle sets title and slug
func WithTitle(title, slug string) ArticleOption {
	return func(a *article.Article) {
		a.Title = title
		a.Slug = slug
	}
}

// WithContent sets the markdown body
func WithContent(content string) ArticleOption {
	return func(a *article.Article) {
		a.Content = content
	}
}

// Published marks the article as published
func Published() ArticleOption {
	return func(a *article.Article) {
		a.Status = article.StatusPublished
	}
}

// InCategory sets the category
func InCategory(c *article.Category) ArticleOption {
	return func(a *article.Article) {
		a.CategoryID = &c.ID
	}
}

// WithTags attaches tags
func WithTags(tags ...*article.Tag) ArticleOption {
	return func(a *article.Article) {
		for _, t := range tags {
			a.Tags = append(a.Tags, *t)
		}
	}
}

// CreatedAt sets created_at and updated_at
func CreatedAt(at time.Time) ArticleOption {
	return func(a *article.Article) {
		a.CreatedAt = at
		a.UpdatedAt = at
	}
}
