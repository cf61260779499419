package tag

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "terminal-terrace/blog/internal/model/article"
	"terminal-terrace/blog/internal/taxonomy"
	"terminal-terrace/blog/packages/database"
)

// TagRepository 标签仓储层
type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// publishedCount 统计标签下已发布文章数的子查询
func (r *TagRepository) publishedCount() *gorm.DB {
	return r.db.Table("article_tags").
		Select("COUNT(*)").
		Joins("JOIN articles ON articles.id = article_tags.article_id").
		Where("article_tags.tag_id = tags.id AND articles.status = ?", model.StatusPublished)
}

func (r *TagRepository) withCount(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Tag{}).
		Select("tags.*, (?) AS articles_count", r.publishedCount())
}

func (r *TagRepository) List(ctx context.Context, p taxonomy.ListParams) ([]model.Tag, int64, error) {
	filter := func(q *gorm.DB) *gorm.DB {
		if p.Search == "" {
			return q
		}
		like := database.ContainsPattern(p.Search)
		return q.Where("(LOWER(tags.name) LIKE ? "+database.LikeEscape+" OR LOWER(tags.slug) LIKE ? "+database.LikeEscape+")", like, like)
	}

	var total int64
	if err := filter(r.db.WithContext(ctx).Model(&model.Tag{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tags := make([]model.Tag, 0, p.PerPage)
	if total == 0 {
		return tags, 0, nil
	}

	column := clause.Column{Table: "tags", Name: p.SortBy}
	if p.SortBy == taxonomy.SortArticlesCount {
		column = clause.Column{Name: "articles_count"}
	}
	err := filter(r.withCount(ctx)).
		Order(clause.OrderByColumn{Column: column, Desc: p.Desc()}).
		Order("tags.id ASC").
		Offset(p.Offset()).
		Limit(p.PerPage).
		Find(&tags).Error
	return tags, total, err
}

func (r *TagRepository) GetByID(ctx context.Context, id uint) (*model.Tag, error) {
	var t model.Tag
	err := r.withCount(ctx).Where("tags.id = ?", id).First(&t).Error
	return &t, err
}

func (r *TagRepository) GetBySlug(ctx context.Context, slug string) (*model.Tag, error) {
	var t model.Tag
	err := r.withCount(ctx).Where("tags.slug = ?", slug).First(&t).Error
	return &t, err
}

func (r *TagRepository) Create(ctx context.Context, t *model.Tag) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TagRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Tag{ID: id}).Updates(fields).Error
}

func (r *TagRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Tag{}, id).Error
}

// CountArticles 引用该标签的文章数（含草稿）
func (r *TagRepository) CountArticles(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ArticleTag{}).Where("tag_id = ?", id).Count(&count).Error
	return count, err
}

// ExistsBy 检查 column=value 是否已被其他标签占用
func (r *TagRepository) ExistsBy(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Tag{}).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
