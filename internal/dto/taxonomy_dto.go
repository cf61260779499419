package dto

import (
	"time"

	res "terminal-terrace/blog/packages/response"
)

// TaxonomyListQuery 标签/分类列表查询参数
type TaxonomyListQuery struct {
	Search        string `form:"search" binding:"omitempty,max=100"`
	SortBy        string `form:"sort_by" binding:"omitempty,oneof=name created_at articles_count"`
	SortDirection string `form:"sort_direction" binding:"omitempty,oneof=asc desc"`
	Page          int    `form:"page" binding:"omitempty,gte=1"`
	PerPage       int    `form:"per_page" binding:"omitempty,gte=1"`
}

// CreateTagRequest 创建标签请求
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,notblank,max=50"`
	Slug string `json:"slug" binding:"omitempty,max=80,slug"`
}

// UpdateTagRequest 更新标签请求
type UpdateTagRequest struct {
	Name *string `json:"name" binding:"omitempty,notblank,max=50"`
	Slug *string `json:"slug" binding:"omitempty,max=80,slug"`
}

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=100"`
	Slug        string `json:"slug" binding:"omitempty,max=120,slug"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

// UpdateCategoryRequest 更新分类请求
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank,max=100"`
	Slug        *string `json:"slug" binding:"omitempty,max=120,slug"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// TagResource 标签对外表示，articles_count 只统计已发布文章
type TagResource struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	ArticlesCount int64     `json:"articles_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CategoryResource 分类对外表示
type CategoryResource struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	ArticlesCount int64     `json:"articles_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Page 分页结果，缓存时整体序列化
type Page[T any] struct {
	Items      []T            `json:"items"`
	Pagination res.Pagination `json:"pagination"`
}
