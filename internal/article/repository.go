package article

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "terminal-terrace/blog/internal/model/article"
	"terminal-terrace/blog/packages/database"
)

// ArticleRepository 文章仓储层
type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// ===== 列表查询 =====

// List 按规范化后的参数查询，返回当前页与总数
func (r *ArticleRepository) List(ctx context.Context, p ListParams) ([]model.Article, int64, error) {
	var total int64
	if err := r.filtered(ctx, p).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	articles := make([]model.Article, 0, p.PerPage)
	if total == 0 {
		return articles, 0, nil
	}

	err := r.withRelations(r.filtered(ctx, p)).
		Order(clause.OrderByColumn{
			Column: clause.Column{Table: "articles", Name: p.SortBy},
			Desc:   p.SortDirection == SortDirectionDesc,
		}).
		// 排序键相同时按 id 升序，保证分页稳定
		Order("articles.id ASC").
		Offset(p.Offset()).
		Limit(p.PerPage).
		Find(&articles).Error
	return articles, total, err
}

func (r *ArticleRepository) filtered(ctx context.Context, p ListParams) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Article{})

	if p.Status != "" && p.Status != StatusAll {
		q = q.Where("articles.status = ?", p.Status)
	}
	if p.AuthorID != 0 {
		q = q.Where("articles.author_id = ?", p.AuthorID)
	}
	if p.Search != "" {
		like := database.ContainsPattern(p.Search)
		q = q.Where(
			"(LOWER(articles.title) LIKE ? "+database.LikeEscape+
				" OR LOWER(articles.content) LIKE ? "+database.LikeEscape+
				" OR LOWER(articles.description) LIKE ? "+database.LikeEscape+")",
			like, like, like,
		)
	}
	if p.Category != "" {
		q = q.Where("articles.category_id IN (?)",
			r.db.Model(&model.Category{}).Select("id").Where("slug = ?", p.Category))
	}
	if len(p.Tags) > 0 {
		// 任意一个标签匹配即可
		q = q.Where("articles.id IN (?)",
			r.db.Table("article_tags").
				Select("article_tags.article_id").
				Joins("JOIN tags ON tags.id = article_tags.tag_id").
				Where("tags.slug IN ?", p.Tags))
	}
	return q
}

func (r *ArticleRepository) withRelations(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Author").
		Preload("Category").
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name ASC")
		})
}

// ===== Article 基础操作 =====

func (r *ArticleRepository) GetByID(ctx context.Context, id uint) (*model.Article, error) {
	var art model.Article
	err := r.withRelations(r.db.WithContext(ctx)).First(&art, id).Error
	return &art, err
}

func (r *ArticleRepository) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	var art model.Article
	err := r.withRelations(r.db.WithContext(ctx)).Where("slug = ?", slug).First(&art).Error
	return &art, err
}

// Create 创建文章并写入标签关联
func (r *ArticleRepository) Create(ctx context.Context, art *model.Article, tagIDs []uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(art).Error; err != nil {
		return err
	}
	return r.insertTags(db, art.ID, tagIDs)
}

// Update 更新字段，tagIDs 非 nil 时整体替换标签
func (r *ArticleRepository) Update(ctx context.Context, id uint, fields map[string]any, tagIDs *[]uint) error {
	db := r.db.WithContext(ctx)
	if len(fields) > 0 {
		if err := db.Model(&model.Article{ID: id}).Updates(fields).Error; err != nil {
			return err
		}
	}
	if tagIDs == nil {
		return nil
	}

	if err := db.Where("article_id = ?", id).Delete(&model.ArticleTag{}).Error; err != nil {
		return err
	}
	if err := r.insertTags(db, id, *tagIDs); err != nil {
		return err
	}
	// 仅替换标签时也刷新更新时间
	if len(fields) == 0 {
		return db.Model(&model.Article{ID: id}).Update("updated_at", time.Now()).Error
	}
	return nil
}

// Delete 删除文章及其标签关联
func (r *ArticleRepository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("article_id = ?", id).Delete(&model.ArticleTag{}).Error; err != nil {
		return err
	}
	return db.Delete(&model.Article{}, id).Error
}

func (r *ArticleRepository) insertTags(db *gorm.DB, articleID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]model.ArticleTag, 0, len(tagIDs))
	seen := make(map[uint]struct{}, len(tagIDs))
	for _, tagID := range tagIDs {
		if _, ok := seen[tagID]; ok {
			continue
		}
		seen[tagID] = struct{}{}
		rows = append(rows, model.ArticleTag{ArticleID: articleID, TagID: tagID})
	}
	return db.Create(&rows).Error
}

// ===== 唯一性与引用检查 =====

// ExistsBy 检查 column=value 是否已被其他文章占用
func (r *ArticleRepository) ExistsBy(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Article{}).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// CategoryExists 分类是否存在
func (r *ArticleRepository) CategoryExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// MissingTagIDs 返回不存在的标签 id
func (r *ArticleRepository) MissingTagIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []uint
	if err := r.db.WithContext(ctx).Model(&model.Tag{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	exists := make(map[uint]struct{}, len(found))
	for _, id := range found {
		exists[id] = struct{}{}
	}
	var missing []uint
	for _, id := range ids {
		if _, ok := exists[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
