package tag

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

const resourceName = "标签"

type tagPage = dto.Page[dto.TagResource]

type TagService struct {
	repo     *TagRepository
	registry *cache.Registry
	cache    *cache.ResourceCache
}

func NewTagService(repo *TagRepository, registry *cache.Registry) *TagService {
	rc, _ := registry.Resource(cache.Tags)
	return &TagService{repo: repo, registry: registry, cache: rc}
}

// List 标签列表，articles_count 只统计已发布文章
func (s *TagService) List(ctx context.Context, p taxonomy.ListParams) (*tagPage, error) {
	p = p.Normalize()
	return cache.RememberList(ctx, s.cache, p, func() (*tagPage, error) {
		tags, total, err := s.repo.List(ctx, p)
		if err != nil {
			return nil, response.NewInternalError("查询标签列表失败", err)
		}
		items := make([]dto.TagResource, 0, len(tags))
		for i := range tags {
			items = append(items, ToResource(&tags[i]))
		}
		return &tagPage{Items: items, Pagination: response.NewPagination(p.Page, p.PerPage, total)}, nil
	})
}

// Get 标签详情
func (s *TagService) Get(ctx context.Context, id uint) (*dto.TagResource, error) {
	return cache.RememberDetail(ctx, s.cache, id, func() (*dto.TagResource, error) {
		t, err := s.load(ctx, id)
		if err != nil {
			return nil, err
		}
		res := ToResource(t)
		return &res, nil
	})
}

// GetBySlug 页面按 slug 访问
func (s *TagService) GetBySlug(ctx context.Context, tagSlug string) (*dto.TagResource, error) {
	t, err := s.repo.GetBySlug(ctx, tagSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(resourceName, tagSlug)
		}
		return nil, response.NewInternalError("查询标签失败", err)
	}
	return s.Get(ctx, t.ID)
}

// Create 创建标签，仅超级管理员
func (s *TagService) Create(ctx context.Context, user *authsdk.UserContext, req dto.CreateTagRequest) (*dto.TagResource, error) {
	if err := requireAdmin(user); err != nil {
		return nil, err
	}

	t := &model.Tag{Name: strings.TrimSpace(req.Name), Slug: req.Slug}
	if err := dto.NotBlank("name", t.Name); err != nil {
		return nil, err
	}
	if t.Slug == "" {
		t.Slug = slug.Make(t.Name)
	}

	fieldErrs := response.FieldErrors{}
	if t.Slug == "" {
		fieldErrs.Add("slug", "无法由名称生成 slug，请手动指定")
	}
	if err := s.checkUnique(ctx, fieldErrs, "name", t.Name, 0); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, fieldErrs, "slug", t.Slug, 0); err != nil {
		return nil, err
	}
	if err := fieldErrs.Err(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, response.NewInternalError("创建标签失败", err)
	}
	s.registry.Invalidate(ctx, cache.Tags, t.ID)

	return s.reload(ctx, t.ID)
}

// Update 更新标签，仅超级管理员
func (s *TagService) Update(ctx context.Context, user *authsdk.UserContext, id uint, req dto.UpdateTagRequest) (*dto.TagResource, error) {
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
	if err := fieldErrs.Err(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, response.NewInternalError("更新标签失败", err)
	}
	s.registry.Invalidate(ctx, cache.Tags, id)

	return s.reload(ctx, id)
}

// Delete 删除标签，仍被文章引用时返回 409
func (s *TagService) Delete(ctx context.Context, user *authsdk.UserContext, id uint) error {
	if err := requireAdmin(user); err != nil {
		return err
	}
	if _, err := s.load(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountArticles(ctx, id)
	if err != nil {
		return response.NewInternalError("统计标签引用失败", err)
	}
	if count > 0 {
		return response.NewResourceInUseError(resourceName, id, "文章", count)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return response.NewInternalError("删除标签失败", err)
	}
	s.registry.Invalidate(ctx, cache.Tags, id)
	return nil
}

func (s *TagService) load(ctx context.Context, id uint) (*model.Tag, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(resourceName, id)
		}
		return nil, response.NewInternalError("查询标签失败", err)
	}
	return t, nil
}

func (s *TagService) reload(ctx context.Context, id uint) (*dto.TagResource, error) {
	t, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	res := ToResource(t)
	return &res, nil
}

func (s *TagService) checkUnique(ctx context.Context, fieldErrs response.FieldErrors, column, value string, excludeID uint) error {
	exists, err := s.repo.ExistsBy(ctx, column, value, excludeID)
	if err != nil {
		return response.NewInternalError("校验标签失败", err)
	}
	if exists {
		fieldErrs.Add(column, fmt.Sprintf("%s '%s' 已存在", column, value))
	}
	return nil
}

func requireAdmin(user *authsdk.UserContext) error {
	if !user.IsAdmin() {
		return response.NewForbiddenError("只有超级管理员可以管理标签")
	}
	return nil
}

// ToResource 将标签模型转换为对外表示
func ToResource(t *model.Tag) dto.TagResource {
	return dto.TagResource{
		ID:            t.ID,
		Name:          t.Name,
		Slug:          t.Slug,
		ArticlesCount: t.ArticlesCount,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
