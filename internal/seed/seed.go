// Package seed 从 YAML 文件导入初始数据
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"terminal-terrace/blog/internal/auth"
	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/model/article"
	"terminal-terrace/blog/internal/model/user"
)

// File 种子文件结构
type File struct {
	Users      []User     `yaml:"users"`
	Categories []Category `yaml:"categories"`
	Tags       []Tag      `yaml:"tags"`
	Articles   []Article  `yaml:"articles"`
}

type User struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type Category struct {
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
}

type Tag struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
}

// Article 作者以邮箱引用，分类与标签以 slug 引用
type Article struct {
	Title       string     `yaml:"title"`
	Slug        string     `yaml:"slug"`
	Description string     `yaml:"description"`
	Content     string     `yaml:"content"`
	Status      string     `yaml:"status"`
	Author      string     `yaml:"author"`
	Category    string     `yaml:"category"`
	Tags        []string   `yaml:"tags"`
	CreatedAt   *time.Time `yaml:"created_at"`
}

// Result 导入统计，已存在的记录计入 Skipped
type Result struct {
	Users      int
	Categories int
	Tags       int
	Articles   int
	Skipped    int
}

func (r Result) String() string {
	return fmt.Sprintf("users=%d categories=%d tags=%d articles=%d skipped=%d",
		r.Users, r.Categories, r.Tags, r.Articles, r.Skipped)
}

// Load 读取并解析种子文件
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取种子文件失败: %w", err)
	}
	return Parse(data)
}

// Parse 解析 YAML 内容
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("解析种子文件失败: %w", err)
	}
	return &f, nil
}

// Apply 在一个事务中导入数据，按唯一键跳过已存在的记录，可重复执行
func Apply(ctx context.Context, db *gorm.DB, f *File) (*Result, error) {
	result := &Result{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := applyUsers(tx, f.Users, result); err != nil {
			return err
		}
		if err := applyCategories(tx, f.Categories, result); err != nil {
			return err
		}
		if err := applyTags(tx, f.Tags, result); err != nil {
			return err
		}
		return applyArticles(tx, f.Articles, result)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func applyUsers(tx *gorm.DB, users []User, result *Result) error {
	for _, u := range users {
		email := strings.ToLower(strings.TrimSpace(u.Email))
		if email == "" || u.Name == "" {
			return fmt.Errorf("用户缺少 name 或 email: %+v", u)
		}
		found, err := exists(tx, &user.User{}, "LOWER(email) = ?", email)
		if err != nil {
			return err
		}
		if found {
			result.Skipped++
			continue
		}
		if len(u.Password) < auth.MinPasswordLength {
			return fmt.Errorf("用户 %s 的密码少于 %d 位", email, auth.MinPasswordLength)
		}
		role := u.Role
		if role == "" {
			role = user.RoleAuthor
		}
		if role != user.RoleAdmin && role != user.RoleAuthor {
			return fmt.Errorf("用户 %s 的角色无效: %s", email, role)
		}
		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			return err
		}
		if err := tx.Create(&user.User{Name: u.Name, Email: email, PasswordHash: hash, Role: role}).Error; err != nil {
			return fmt.Errorf("创建用户 %s 失败: %w", email, err)
		}
		result.Users++
	}
	return nil
}

func applyCategories(tx *gorm.DB, categories []Category, result *Result) error {
	for _, c := range categories {
		s, err := resolveSlug(c.Name, c.Slug)
		if err != nil {
			return err
		}
		found, err := exists(tx, &article.Category{}, "slug = ? OR name = ?", s, c.Name)
		if err != nil {
			return err
		}
		if found {
			result.Skipped++
			continue
		}
		if err := tx.Create(&article.Category{Name: c.Name, Slug: s, Description: c.Description}).Error; err != nil {
			return fmt.Errorf("创建分类 %s 失败: %w", c.Name, err)
		}
		result.Categories++
	}
	return nil
}

func applyTags(tx *gorm.DB, tags []Tag, result *Result) error {
	for _, t := range tags {
		s, err := resolveSlug(t.Name, t.Slug)
		if err != nil {
			return err
		}
		found, err := exists(tx, &article.Tag{}, "slug = ? OR name = ?", s, t.Name)
		if err != nil {
			return err
		}
		if found {
			result.Skipped++
			continue
		}
		if err := tx.Create(&article.Tag{Name: t.Name, Slug: s}).Error; err != nil {
			return fmt.Errorf("创建标签 %s 失败: %w", t.Name, err)
		}
		result.Tags++
	}
	return nil
}

func applyArticles(tx *gorm.DB, articles []Article, result *Result) error {
	for _, a := range articles {
		if a.Title == "" || a.Content == "" {
			return fmt.Errorf("文章缺少 title 或 content: %q", a.Title)
		}
		s, err := resolveSlug(a.Title, a.Slug)
		if err != nil {
			return err
		}
		found, err := exists(tx, &article.Article{}, "slug = ? OR title = ?", s, a.Title)
		if err != nil {
			return err
		}
		if found {
			result.Skipped++
			continue
		}

		status := a.Status
		if status == "" {
			status = article.StatusDraft
		}
		if status != article.StatusDraft && status != article.StatusPublished {
			return fmt.Errorf("文章 %s 的状态无效: %s", a.Title, status)
		}

		var author user.User
		if err := tx.Where("LOWER(email) = ?", strings.ToLower(a.Author)).First(&author).Error; err != nil {
			return fmt.Errorf("文章 %s 的作者 %s 不存在: %w", a.Title, a.Author, err)
		}

		record := article.Article{
			Title:       a.Title,
			Slug:        s,
			Description: a.Description,
			Content:     a.Content,
			Status:      status,
			AuthorID:    author.ID,
		}
		if a.CreatedAt != nil {
			record.CreatedAt = *a.CreatedAt
			record.UpdatedAt = *a.CreatedAt
		}
		if a.Category != "" {
			var category article.Category
			if err := tx.Where("slug = ?", a.Category).First(&category).Error; err != nil {
				return fmt.Errorf("文章 %s 的分类 %s 不存在: %w", a.Title, a.Category, err)
			}
			record.CategoryID = &category.ID
		}

		var tags []article.Tag
		if len(a.Tags) > 0 {
			if err := tx.Where("slug IN ?", a.Tags).Find(&tags).Error; err != nil {
				return err
			}
			if len(tags) != len(dedupe(a.Tags)) {
				return fmt.Errorf("文章 %s 引用了不存在的标签: %v", a.Title, a.Tags)
			}
		}

		if err := tx.Omit("Author", "Category", "Tags").Create(&record).Error; err != nil {
			return fmt.Errorf("创建文章 %s 失败: %w", a.Title, err)
		}
		for _, t := range tags {
			if err := tx.Create(&article.ArticleTag{ArticleID: record.ID, TagID: t.ID}).Error; err != nil {
				return err
			}
		}
		result.Articles++
	}
	return nil
}

// resolveSlug 未填写时由名称生成
func resolveSlug(name, s string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.New("名称不能为空")
	}
	if s == "" {
		s = slug.Make(name)
	}
	if !dto.IsSlug(s) {
		return "", fmt.Errorf("%s 的 slug 无效: %q", name, s)
	}
	return s, nil
}

func exists(tx *gorm.DB, model any, query string, args ...any) (bool, error) {
	var count int64
	if err := tx.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
