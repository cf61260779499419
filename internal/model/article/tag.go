package article

import "time"

// Tag 标签表
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Slug      string    `gorm:"type:varchar(80);uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// 已发布文章数，查询时通过子查询填充
	ArticlesCount int64 `gorm:"->;-:migration" json:"articles_count"`
}

// ArticleTag 文章-标签关联表
type ArticleTag struct {
	ArticleID uint `gorm:"primaryKey;index" json:"article_id"`
	TagID     uint `gorm:"primaryKey;index" json:"tag_id"`
}

func (ArticleTag) TableName() string {
	return "article_tags"
}
