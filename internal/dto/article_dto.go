package dto

import "time"

// ArticleListQuery 公开文章列表查询参数
type ArticleListQuery struct {
	Search        string   `form:"search" binding:"omitempty,max=255"`
	Category      string   `form:"category" binding:"omitempty,max=120"`
	Tags          []string `form:"tags[]" binding:"omitempty,max=20,dive,max=80"`
	TagList       []string `form:"tags" binding:"omitempty,max=20,dive,max=80"` // 兼容 ?tags=a&tags=b
	SortBy        string   `form:"sort_by" binding:"omitempty,oneof=created_at title"`
	SortDirection string   `form:"sort_direction" binding:"omitempty,oneof=asc desc"`
	Page          int      `form:"page" binding:"omitempty,gte=1"`
	PerPage       int      `form:"per_page" binding:"omitempty,gte=1"`
}

// AllTags 合并两种写法的标签参数
func (q ArticleListQuery) AllTags() []string {
	return append(append([]string{}, q.Tags...), q.TagList...)
}

// AdminArticleListQuery 后台文章列表查询参数
type AdminArticleListQuery struct {
	Search        string   `form:"search" binding:"omitempty,max=255"`
	Status        string   `form:"status" binding:"omitempty,oneof=all draft published"`
	Category      string   `form:"category" binding:"omitempty,max=120"`
	Tags          []string `form:"tags[]" binding:"omitempty,max=20,dive,max=80"`
	TagList       []string `form:"tags" binding:"omitempty,max=20,dive,max=80"`
	SortBy        string   `form:"sort_by" binding:"omitempty,oneof=created_at updated_at title"`
	SortDirection string   `form:"sort_direction" binding:"omitempty,oneof=asc desc"`
	Page          int      `form:"page" binding:"omitempty,gte=1"`
	PerPage       int      `form:"per_page" binding:"omitempty,gte=1"`
}

func (q AdminArticleListQuery) AllTags() []string {
	return append(append([]string{}, q.Tags...), q.TagList...)
}

// CreateArticleRequest 创建文章请求，slug 留空时由标题生成
type CreateArticleRequest struct {
	Title       string `json:"title" binding:"required,notblank,max=255"`
	Slug        string `json:"slug" binding:"omitempty,max=255,slug"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Content     string `json:"content" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=draft published"`
	CategoryID  *uint  `json:"category_id" binding:"omitempty,gt=0"`
	TagIDs      []uint `json:"tag_ids" binding:"omitempty,max=20,dive,gt=0"`
}

// UpdateArticleRequest 更新文章请求，未传的字段保持不变
// category_id 传 0 表示移出分类；tag_ids 传入时整体替换标签
type UpdateArticleRequest struct {
	Title       *string `json:"title" binding:"omitempty,notblank,max=255"`
	Slug        *string `json:"slug" binding:"omitempty,max=255,slug"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Content     *string `json:"content" binding:"omitempty,min=1"`
	Status      *string `json:"status" binding:"omitempty,oneof=draft published"`
	CategoryID  *uint   `json:"category_id"`
	TagIDs      *[]uint `json:"tag_ids" binding:"omitempty,max=20,dive,gt=0"`
}

// AuthorResource 文章作者
type AuthorResource struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CategorySummary 文章中嵌入的分类
type CategorySummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// TagSummary 文章中嵌入的标签
type TagSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ArticleResource 文章对外表示
type ArticleResource struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	Content     string           `json:"content"`
	Status      string           `json:"status"`
	Author      AuthorResource   `json:"author"`
	Category    *CategorySummary `json:"category"`
	Tags        []TagSummary     `json:"tags"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
