package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"terminal-terrace/blog/internal/cache"
	"terminal-terrace/blog/internal/dto"
	model "terminal-terrace/blog/internal/model/article"
	"terminal-terrace/blog/internal/taxonomy"
	authsdk "terminal-terrace/blog/packages/auth-sdk"
	"terminal-terrace/blog/packages/response"
)

const resourceName = "分类"

type categoryPage = dto.Page[dto.CategoryResource]

type CategoryService struct {
	repo     *CategoryRepository
	registry *cache.Registry
	cache    *cache.ResourceCache
}

func NewCategoryService(repo *CategoryRepository, registry *cache.Registry) *CategoryService {
	rc, _ := registry.Resource(cache.Categories)
	return &CategoryService{repo: repo, registry: registry, cache: rc}
}

// List 分类列表，articles_count 只统计已发布文章
func (s *CategoryService) List(ctx context.Context, p taxonomy.ListParams) (*categoryPage, error) {
	p = p.Normalize()
	return cache.RememberList(ctx, s.cache, p, func() (*categoryPage, error) {
		categories, total, err := s.repo.List(ctx, p)
		if err != nil {
			return nil, response.NewInternalError("查询分类列表失败", err)
		}
		items := make([]dto.CategoryResource, 0, len(categories))
		for i := range categories {
			items = append(items, ToResource(&categories[i]))
		}
		return &categoryPage{Items: items, Pagination: response.NewPagination(p.Page, p.PerPage, total)}, nil
	})
}

// Get 分类详情
func (s *CategoryService) Get(ctx context.Context, id uint) (*dto.CategoryResource, error) {
	return cache.RememberDetail(ctx, s.cache, id, func() (*dto.CategoryResource, error) {
		c, err := s.load(ctx, id)
		if err != nil {
			return nil, err
		}
		res := ToResource(c)
		return &res, nil
	})
}

// GetBySlug 页面按 slug 访问
func (s *CategoryService) GetBySlug(ctx context.Context, categorySlug string) (*dto.CategoryResource, error) {
	c, err := s.repo.GetBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(resourceName, categorySlug)
		}
		return nil, response.NewInternalError("查询分类失败", err)
	}
	return s.Get(ctx, c.ID)
}

// Create 创建分类，仅超级管理员
func (s *CategoryService) Create(ctx context.Context, user *authsdk.UserContext, req dto.CreateCategoryRequest) (*dto.CategoryResource, error) {
	if err := requireAdmin(user); err != nil {
		return nil, err
	}

	c := &model.Category{
		Name:        strings.TrimSpace(req.Name),
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := dto.NotBlank("name", c.Name); err != nil {
		return nil, err
	}
	if c.Slug == "" {
		c.Slug = slug.Make(c.Name)
	}

	fieldErrs := response.FieldErrors{}
	if c.Slug == "" {
		fieldErrs.Add("slug", "无法由名称生成 slug，请手动指定")
	}
	if err := s.checkUnique(ctx, fieldErrs, "name", c.Name, 0); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, fieldErrs, "slug", c.Slug, 0); err != nil {
		return nil, err
	}
	if err := fieldErrs.Err(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, response.NewInternalError("创建分类失败", err)
	}
	s.registry.Invalidate(ctx, cache.Categories, c.ID)

	return s.reload(ctx, c.ID)
}

// Update 更新分类，仅超级管理员
func (s *CategoryService) Update(ctx context.Context, user *authsdk.UserContext, id uint, req dto.UpdateCategoryRequest) (*dto.CategoryResource, error) {
	if err := requireAdmin(user); err != nil {
		return nil, err
	}
	if _, err := s.load(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	fieldErrs := response.FieldErrors{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := dto.NotBlank("name", name); err != nil {
			return nil, err
		}
		if err := s.checkUnique(ctx, fieldErrs, "name", name, id); err != nil {
			return nil, err
		}
		fields["name"] = name
	}
	if req.Slug != nil {
		if err := s.checkUnique(ctx, fieldErrs, "slug", *req.Slug, id); err != nil {
			return nil, err
		}
		fields["slug"] = *req.Slug
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if err := fieldErrs.Err(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, response.NewInternalError("更新分类失败", err)
	}
	s.registry.Invalidate(ctx, cache.Categories, id)

	return s.reload(ctx, id)
}

// Delete 删除分类，仍被文章引用时返回 409
func (s *CategoryService) Delete(ctx context.Context, user *authsdk.UserContext, id uint) error {
	if err := requireAdmin(user); err != nil {
		return err
	}
	if _, err := s.load(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountArticles(ctx, id)
	if err != nil {
		return response.NewInternalError("统计分类引用失败", err)
	}
	if count > 0 {
		return response.NewResourceInUseError(resourceName, id, "文章", count)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return response.NewInternalError("删除分类失败", err)
	}
	s.registry.Invalidate(ctx, cache.Categories, id)
	return nil
}

func (s *CategoryService) load(ctx context.Context, id uint) (*model.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(resourceName, id)
		}
		return nil, response.NewInternalError("查询分类失败", err)
	}
	return c, nil
}

func (s *CategoryService) reload(ctx context.Context, id uint) (*dto.CategoryResource, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	res := ToResource(c)
	return &res, nil
}

func (s *CategoryService) checkUnique(ctx context.Context, fieldErrs response.FieldErrors, column, value string, excludeID uint) error {
	exists, err := s.repo.ExistsBy(ctx, column, value, excludeID)
	if err != nil {
		return response.NewInternalError("校验分类失败", err)
	}
	if exists {
		fieldErrs.Add(column, fmt.Sprintf("%s '%s' 已存在", column, value))
	}
	return nil
}

func requireAdmin(user *authsdk.UserContext) error {
	if !user.IsAdmin() {
		return response.NewForbiddenError("只有超级管理员可以管理分类")
	}
	return nil
}

// ToResource 将分类模型转换为对外表示
func ToResource(c *model.Category) dto.CategoryResource {
	return dto.CategoryResource{
		ID:            c.ID,
		Name:          c.Name,
		Slug:          c.Slug,
		Description:   c.Description,
		ArticlesCount: c.ArticlesCount,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
