package article

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
	authsdk "terminal-terrace/blog/packages/auth-sdk"
	"terminal-terrace/blog/packages/response"
)

const resourceName = "文章"

type ArticleService struct {
	repo  *ArticleRepository
	cache *ArticleCache
}

func NewArticleService(repo *ArticleRepository, registry *cache.Registry) *ArticleService {
	return &ArticleService{
		repo:  repo,
		cache: NewArticleCache(registry),
	}
}

// ===== 公开接口 =====

// ListPublished 公开文章列表，只包含已发布文章
func (s *ArticleService) ListPublished(ctx context.Context, p ListParams) (*dto.Page[dto.ArticleResource], error) {
	p = p.Normalize(ScopePublic)
	return s.cache.List(ctx, p, func() (*articlePage, error) {
		return s.list(ctx, p)
	})
}

// GetPublished 公开文章详情，草稿视为不存在
func (s *ArticleService) GetPublished(ctx context.Context, id uint) (*dto.ArticleResource, error) {
	return s.cache.Detail(ctx, id, func() (*dto.ArticleResource, error) {
		art, err := s.load(ctx, id)
		if err != nil {
			return nil, err
		}
		if !art.IsPublished() {
			return nil, response.NewNotFoundError(resourceName, id)
		}
		res := ToResource(art)
		return &res, nil
	})
}

// GetPublishedBySlug 页面按 slug 访问，详情走缓存
func (s *ArticleService) GetPublishedBySlug(ctx context.Context, articleSlug string) (*dto.ArticleResource, error) {
	art, err := s.repo.GetBySlug(ctx, articleSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(resourceName, articleSlug)
		}
		return nil, response.NewInternalError("查询文章失败", err)
	}
	if !art.IsPublished() {
		return nil, response.NewNotFoundError(resourceName, articleSlug)
	}
	return s.GetPublished(ctx, art.ID)
}

// ===== 后台接口（仅作者本人） =====

// ListForUser 当前用户的文章列表
func (s *ArticleService) ListForUser(ctx context.Context, user *authsdk.UserContext, p ListParams) (*dto.Page[dto.ArticleResource], error) {
	p.AuthorID = user.UserID
	p = p.Normalize(ScopeAdmin)
	return s.cache.AdminList(ctx, user.UserID, p, func() (*articlePage, error) {
		return s.list(ctx, p)
	})
}

// GetForUser 后台文章详情，非作者返回 403
func (s *ArticleService) GetForUser(ctx context.Context, user *authsdk.UserContext, id uint) (*dto.ArticleResource, error) {
	return s.cache.AdminDetail(ctx, user.UserID, id, func() (*dto.ArticleResource, error) {
		art, err := s.loadOwned(ctx, user, id)
		if err != nil {
			return nil, err
		}
		res := ToResource(art)
		return &res, nil
	})
}

// Create 创建文章，作者为当前用户
func (s *ArticleService) Create(ctx context.Context, user *authsdk.UserContext, req dto.CreateArticleRequest) (*dto.ArticleResource, error) {
	art := &model.Article{
		Title:       strings.TrimSpace(req.Title),
		Slug:        req.Slug,
		Description: req.Description,
		Content:     req.Content,
		Status:      req.Status,
		AuthorID:    user.UserID,
		CategoryID:  req.CategoryID,
	}
	if err := dto.NotBlank("title", art.Title); err != nil {
		return nil, err
	}
	if art.Status == "" {
		art.Status = model.StatusDraft
	}

	fieldErrs := response.FieldErrors{}
	if err := s.checkUnique(ctx, fieldErrs, "title", art.Title, 0); err != nil {
		return nil, err
	}
	if art.Slug == "" {
		generated, err := s.uniqueSlug(ctx, art.Title, 0)
		if err != nil {
			return nil, err
		}
		art.Slug = generated
	} else if err := s.checkUnique(ctx, fieldErrs, "slug", art.Slug, 0); err != nil {
		return nil, err
	}
	if err := s.checkRelations(ctx, fieldErrs, req.CategoryID, req.TagIDs); err != nil {
		return nil, err
	}
	if err := fieldErrs.Err(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, art, req.TagIDs); err != nil {
		return nil, writeError("创建文章失败", err)
	}
	s.cache.Invalidate(ctx, user.UserID, art.ID)

	return s.reload(ctx, art.ID)
}

// Update 部分更新文章，tag_ids 传入时整体替换
func (s *ArticleService) Update(ctx context.Context, user *authsdk.UserContext, id uint, req dto.UpdateArticleRequest) (*dto.ArticleResource, error) {
	if _, err := s.loadOwned(ctx, user, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	fieldErrs := response.FieldErrors{}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if err := dto.NotBlank("title", title); err != nil {
			return nil, err
		}
		if err := s.checkUnique(ctx, fieldErrs, "title", title, id); err != nil {
			return nil, err
		}
		fields["title"] = title
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
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	var categoryID *uint
	if req.CategoryID != nil {
		if *req.CategoryID == 0 {
			fields["category_id"] = nil
		} else {
			categoryID = req.CategoryID
			fields["category_id"] = *req.CategoryID
		}
	}
	var tagIDs []uint
	if req.TagIDs != nil {
		tagIDs = *req.TagIDs
	}
	if err := s.checkRelations(ctx, fieldErrs, categoryID, tagIDs); err != nil {
		return nil, err
	}
	if err := fieldErrs.Err(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, fields, req.TagIDs); err != nil {
		return nil, writeError("更新文章失败", err)
	}
	s.cache.Invalidate(ctx, user.UserID, id)

	return s.reload(ctx, id)
}

// Delete 删除文章
func (s *ArticleService) Delete(ctx context.Context, user *authsdk.UserContext, id uint) error {
	if _, err := s.loadOwned(ctx, user, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return response.NewInternalError("删除文章失败", err)
	}
	s.cache.Invalidate(ctx, user.UserID, id)
	return nil
}

// ===== 内部方法 =====

func (s *ArticleService) list(ctx context.Context, p ListParams) (*articlePage, error) {
	articles, total, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, response.NewInternalError("查询文章列表失败", err)
	}
	return &articlePage{
		Items:      ToResources(articles),
		Pagination: response.NewPagination(p.Page, p.PerPage, total),
	}, nil
}

func (s *ArticleService) load(ctx context.Context, id uint) (*model.Article, error) {
	art, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(resourceName, id)
		}
		return nil, response.NewInternalError("查询文章失败", err)
	}
	return art, nil
}

func (s *ArticleService) loadOwned(ctx context.Context, user *authsdk.UserContext, id uint) (*model.Article, error) {
	art, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if art.AuthorID != user.UserID {
		return nil, response.NewForbiddenError("只有作者本人可以操作该文章")
	}
	return art, nil
}

func (s *ArticleService) reload(ctx context.Context, id uint) (*dto.ArticleResource, error) {
	art, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	res := ToResource(art)
	return &res, nil
}

func (s *ArticleService) checkUnique(ctx context.Context, fieldErrs response.FieldErrors, column, value string, excludeID uint) error {
	exists, err := s.repo.ExistsBy(ctx, column, value, excludeID)
	if err != nil {
		return response.NewInternalError("校验文章失败", err)
	}
	if exists {
		fieldErrs.Add(column, fmt.Sprintf("%s '%s' 已存在", column, value))
	}
	return nil
}

func (s *ArticleService) checkRelations(ctx context.Context, fieldErrs response.FieldErrors, categoryID *uint, tagIDs []uint) error {
	if categoryID != nil {
		exists, err := s.repo.CategoryExists(ctx, *categoryID)
		if err != nil {
			return response.NewInternalError("校验分类失败", err)
		}
		if !exists {
			fieldErrs.Add("category_id", fmt.Sprintf("分类 (id=%d) 不存在", *categoryID))
		}
	}
	missing, err := s.repo.MissingTagIDs(ctx, tagIDs)
	if err != nil {
		return response.NewInternalError("校验标签失败", err)
	}
	for _, id := range missing {
		fieldErrs.Add("tag_ids", fmt.Sprintf("标签 (id=%d) 不存在", id))
	}
	return nil
}

// uniqueSlug 由标题生成 slug，冲突时追加序号
func (s *ArticleService) uniqueSlug(ctx context.Context, title string, excludeID uint) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "article"
	}
	candidate := base
	for i := 2; ; i++ {
		exists, err := s.repo.ExistsBy(ctx, "slug", candidate, excludeID)
		if err != nil {
			return "", response.NewInternalError("生成 slug 失败", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// writeError 并发写入导致的唯一约束冲突按校验错误返回
func writeError(msg string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return response.NewValidationError(map[string][]string{
			"slug": {"标题或 slug 已存在"},
		})
	}
	return response.NewInternalError(msg, err)
}
