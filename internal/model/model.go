package model

import (
	"gorm.io/gorm"
	"terminal-terrace/blog/internal/model/article"
	"terminal-terrace/blog/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 文章与标签的关联表使用自定义模型
	if err := db.SetupJoinTable(&article.Article{}, "Tags", &article.ArticleTag{}); err != nil {
		return err
	}

	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		// 用户模型
		&user.User{},
		// 文章相关模型
		&article.Category{},
		&article.Tag{},
		&article.Article{},
		&article.ArticleTag{},
	)
	if err != nil {
		return err
	}
	return nil
}
