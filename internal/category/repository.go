package category

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "terminal-terrace/blog/internal/model/article"
	"terminal-terrace/blog/internal/taxonomy"
	"terminal-terrace/blog/packages/database"
)

// CategoryRepository 分类仓储层
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// publishedCount 统计分类下已发布文章数的子查询
func (r *CategoryRepository) publishedCount() *gorm.DB {
	return r.db.Model(&model.Article{}).
		Select("COUNT(*)").
		Where("articles.category_id = categories.id AND articles.status = ?", model.StatusPublished)
}

func (r *CategoryRepository) withCount(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Category{}).
		Select("categories.*, (?) AS articles_count", r.publishedCount())
}

func (r *CategoryRepository) List(ctx context.Context, p taxonomy.ListParams) ([]model.Category, int64, error) {
	filter := func(q *gorm.DB) *gorm.DB {
		if p.Search == "" {
			return q
		}
		like := database.ContainsPattern(p.Search)
		return q.Where("(LOWER(categories.name) LIKE ? "+database.LikeEscape+" OR LOWER(categories.description) LIKE ? "+database.LikeEscape+")", like, like)
	}

	var total int64
	if err := filter(r.db.WithContext(ctx).Model(&model.Category{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	categories := make([]model.Category, 0, p.PerPage)
	if total == 0 {
		return categories, 0, nil
	}

	column := clause.Column{Table: "categories", Name: p.SortBy}
	if p.SortBy == taxonomy.SortArticlesCount {
		column = clause.Column{Name: "articles_count"}
	}
	err := filter(r.withCount(ctx)).
		Order(clause.OrderByColumn{Column: column, Desc: p.Desc()}).
		Order("categories.id ASC").
		Offset(p.Offset()).
		Limit(p.PerPage).
		Find(&categories).Error
	return categories, total, err
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*model.Category, error) {
	var c model.Category
	err := r.withCount(ctx).Where("categories.id = ?", id).First(&c).Error
	return &c, err
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var c model.Category
	err := r.withCount(ctx).Where("categories.slug = ?", slug).First(&c).Error
	return &c, err
}

func (r *CategoryRepository) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategoryRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Category{ID: id}).Updates(fields).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}

// CountArticles 引用该分类的文章数（含草稿）
func (r *CategoryRepository) CountArticles(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Article{}).Where("category_id = ?", id).Count(&count).Error
	return count, err
}

// ExistsBy 检查 column=value 是否已被其他分类占用
func (r *CategoryRepository) ExistsBy(ctx context.Context, column, value string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Category{}).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
