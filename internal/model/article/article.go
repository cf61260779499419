// Package article 文章、标签、分类相关模型
package article

import (
	"time"

	"terminal-terrace/blog/internal/model/user"
)

// 文章状态
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Article 文章表
type Article struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(255);uniqueIndex;not null" json:"title"`
	Slug        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	// Markdown 原文
	Content string `gorm:"type:text;not null" json:"content"`
	// 状态: draft(草稿), published(已发布)，只有已发布文章对外可见
	Status string `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`

	AuthorID uint      `gorm:"not null;index" json:"author_id"`
	Author   user.User `gorm:"foreignKey:AuthorID" json:"author"`
	// 分类被删除时置空（删除前已校验引用）
	CategoryID *uint     `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Tags       []Tag     `gorm:"many2many:article_tags" json:"tags"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsPublished 是否已发布
func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}
