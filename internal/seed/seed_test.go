package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/blog/internal/model/article"
	"terminal-terrace/blog/internal/model/user"
	"terminal-terrace/blog/internal/seed"
	"terminal-terrace/blog/internal/testutils"
)

const fixture = `
users:
  - name: Admin
    email: Admin@Example.com
    password: secret-password
    role: admin
categories:
  - name: Tech
  - name: Life
    slug: life
    description: 生活记录
tags:
  - name: Go
    slug: go
  - name: Database
articles:
  - title: Hello World
    content: "# Hello"
    status: published
    author: admin@example.com
    category: tech
    tags: [go, database]
  - title: Draft Notes
    content: draft
    author: admin@example.com
`

func TestApply(t *testing.T) {
	db := testutils.SetupTestDB(t)
	f, err := seed.Parse([]byte(fixture))
	require.NoError(t, err)

	result, err := seed.Apply(context.Background(), db, f)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Users: 1, Categories: 2, Tags: 2, Articles: 2}, *result)

	var admin user.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&admin).Error)
	assert.True(t, admin.IsAdmin())
	assert.NotEqual(t, "secret-password", admin.PasswordHash)

	var hello article.Article
	require.NoError(t, db.Preload("Tags").Preload("Category").Where("slug = ?", "hello-world").First(&hello).Error)
	assert.Equal(t, article.StatusPublished, hello.Status)
	assert.Equal(t, "tech", hello.Category.Slug)
	assert.Len(t, hello.Tags, 2)

	var draft article.Article
	require.NoError(t, db.Where("slug = ?", "draft-notes").First(&draft).Error)
	assert.Equal(t, article.StatusDraft, draft.Status)
	assert.Nil(t, draft.CategoryID)

	// 重复导入全部跳过
	again, err := seed.Apply(context.Background(), db, f)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Skipped: 7}, *again)
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"密码过短", "users:\n  - {name: a, email: a@example.com, password: short}\n"},
		{"角色无效", "users:\n  - {name: a, email: a@example.com, password: password123, role: owner}\n"},
		{"slug 无效", "tags:\n  - {name: Go, slug: Go_Lang}\n"},
		{"作者不存在", "articles:\n  - {title: T, content: c, author: nobody@example.com}\n"},
		{"标签不存在", "users:\n  - {name: a, email: a@example.com, password: password123}\narticles:\n  - {title: T, content: c, author: a@example.com, tags: [missing]}\n"},
		{"状态无效", "users:\n  - {name: a, email: a@example.com, password: password123}\narticles:\n  - {title: T, content: c, author: a@example.com, status: archived}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutils.SetupTestDB(t)
			f, err := seed.Parse([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = seed.Apply(context.Background(), db, f)
			assert.Error(t, err)

			// 事务回滚，不留下部分数据
			var users int64
			db.Model(&user.User{}).Count(&users)
			assert.Zero(t, users)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	f, err := seed.Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Articles, 2)
	assert.Equal(t, []string{"go", "database"}, f.Articles[0].Tags)

	_, err = seed.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = seed.Parse([]byte("users: [unclosed"))
	assert.Error(t, err)
}
