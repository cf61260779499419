package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"terminal-terrace/blog/internal/article"
	"terminal-terrace/blog/internal/category"
	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/tag"
	"terminal-terrace/blog/internal/taxonomy"
	authsdk "terminal-terrace/blog/packages/auth-sdk"
	"terminal-terrace/blog/packages/response"
	pb "terminal-terrace/blog/protobuf/proto/blog_service"
)

// BlogServiceImpl implements the BlogService gRPC interface
type BlogServiceImpl struct {
	pb.UnimplementedBlogServiceServer

	articles   *article.ArticleService
	tags       *tag.TagService
	categories *category.CategoryService
	secret     string
}

// NewBlogServiceImpl creates a new BlogService implementation
func NewBlogServiceImpl(articles *article.ArticleService, tags *tag.TagService, categories *category.CategoryService, secret string) *BlogServiceImpl {
	return &BlogServiceImpl{articles: articles, tags: tags, categories: categories, secret: secret}
}

// ListArticles 已发布文章列表
func (s *BlogServiceImpl) ListArticles(ctx context.Context, req *pb.ListArticlesRequest) (*pb.ArticleList, error) {
	q := dto.ArticleListQuery{
		Search:        req.GetSearch(),
		Category:      req.GetCategory(),
		Tags:          req.GetTags(),
		SortBy:        req.GetSortBy(),
		SortDirection: req.GetSortDirection(),
		Page:          int(req.GetPage()),
		PerPage:       int(req.GetPerPage()),
	}
	if err := dto.Validate(&q); err != nil {
		return nil, toStatus(err)
	}
	page, err := s.articles.ListPublished(ctx, article.ListParams{
		Search:        q.Search,
		Category:      q.Category,
		Tags:          q.AllTags(),
		SortBy:        q.SortBy,
		SortDirection: q.SortDirection,
		Page:          q.Page,
		PerPage:       q.PerPage,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return toArticleList(page), nil
}

// GetArticle 按 id 或 slug 获取已发布文章，id 优先
func (s *BlogServiceImpl) GetArticle(ctx context.Context, req *pb.GetArticleRequest) (*pb.Article, error) {
	var (
		art *dto.ArticleResource
		err error
	)
	switch {
	case req.GetId() != 0:
		art, err = s.articles.GetPublished(ctx, uint(req.GetId()))
	case req.GetSlug() != "":
		art, err = s.articles.GetPublishedBySlug(ctx, req.GetSlug())
	default:
		return nil, status.Error(codes.InvalidArgument, "需要 id 或 slug")
	}
	if err != nil {
		return nil, toStatus(err)
	}
	return toArticle(art), nil
}

// ListTags 标签列表
func (s *BlogServiceImpl) ListTags(ctx context.Context, req *pb.ListTaxonomyRequest) (*pb.TagList, error) {
	p, err := taxonomyParams(req)
	if err != nil {
		return nil, toStatus(err)
	}
	page, err := s.tags.List(ctx, p)
	if err != nil {
		return nil, toStatus(err)
	}

	out := &pb.TagList{
		Items:      make([]*pb.Tag, 0, len(page.Items)),
		Pagination: toPagination(page.Pagination),
	}
	for _, t := range page.Items {
		out.Items = append(out.Items, &pb.Tag{
			Id:            uint32(t.ID),
			Name:          t.Name,
			Slug:          t.Slug,
			ArticlesCount: t.ArticlesCount,
			CreatedAt:     toTimestamp(t.CreatedAt),
			UpdatedAt:     toTimestamp(t.UpdatedAt),
		})
	}
	return out, nil
}

// ListCategories 分类列表
func (s *BlogServiceImpl) ListCategories(ctx context.Context, req *pb.ListTaxonomyRequest) (*pb.CategoryList, error) {
	p, err := taxonomyParams(req)
	if err != nil {
		return nil, toStatus(err)
	}
	page, err := s.categories.List(ctx, p)
	if err != nil {
		return nil, toStatus(err)
	}

	out := &pb.CategoryList{
		Items:      make([]*pb.Category, 0, len(page.Items)),
		Pagination: toPagination(page.Pagination),
	}
	for _, c := range page.Items {
		out.Items = append(out.Items, &pb.Category{
			Id:            uint32(c.ID),
			Name:          c.Name,
			Slug:          c.Slug,
			Description:   c.Description,
			ArticlesCount: c.ArticlesCount,
			CreatedAt:     toTimestamp(c.CreatedAt),
			UpdatedAt:     toTimestamp(c.UpdatedAt),
		})
	}
	return out, nil
}

// ListMyArticles 当前用户的文章，需要 metadata 中携带令牌
func (s *BlogServiceImpl) ListMyArticles(ctx context.Context, req *pb.ListArticlesRequest) (*pb.ArticleList, error) {
	user := authsdk.GetUserFromContext(ctx, s.secret)
	if !user.IsAuthenticated() {
		return nil, status.Error(codes.Unauthenticated, "未提供有效的认证令牌")
	}

	q := dto.AdminArticleListQuery{
		Search:        req.GetSearch(),
		Status:        req.GetStatus(),
		Category:      req.GetCategory(),
		Tags:          req.GetTags(),
		SortBy:        req.GetSortBy(),
		SortDirection: req.GetSortDirection(),
		Page:          int(req.GetPage()),
		PerPage:       int(req.GetPerPage()),
	}
	if err := dto.Validate(&q); err != nil {
		return nil, toStatus(err)
	}
	page, err := s.articles.ListForUser(ctx, user, article.ListParams{
		Search:        q.Search,
		Status:        q.Status,
		Category:      q.Category,
		Tags:          q.AllTags(),
		SortBy:        q.SortBy,
		SortDirection: q.SortDirection,
		Page:          q.Page,
		PerPage:       q.PerPage,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return toArticleList(page), nil
}

func taxonomyParams(req *pb.ListTaxonomyRequest) (taxonomy.ListParams, error) {
	q := dto.TaxonomyListQuery{
		Search:        req.GetSearch(),
		SortBy:        req.GetSortBy(),
		SortDirection: req.GetSortDirection(),
		Page:          int(req.GetPage()),
		PerPage:       int(req.GetPerPage()),
	}
	if err := dto.Validate(&q); err != nil {
		return taxonomy.ListParams{}, err
	}
	return taxonomy.ListParams{
		Search:        q.Search,
		SortBy:        q.SortBy,
		SortDirection: q.SortDirection,
		Page:          q.Page,
		PerPage:       q.PerPage,
	}, nil
}

// ===== 消息转换 =====

func toArticleList(page *dto.Page[dto.ArticleResource]) *pb.ArticleList {
	out := &pb.ArticleList{
		Items:      make([]*pb.Article, 0, len(page.Items)),
		Pagination: toPagination(page.Pagination),
	}
	for i := range page.Items {
		out.Items = append(out.Items, toArticle(&page.Items[i]))
	}
	return out
}

func toArticle(a *dto.ArticleResource) *pb.Article {
	out := &pb.Article{
		Id:          uint32(a.ID),
		Title:       a.Title,
		Slug:        a.Slug,
		Description: a.Description,
		Content:     a.Content,
		Status:      a.Status,
		Author:      &pb.Author{Id: uint32(a.Author.ID), Name: a.Author.Name},
		Tags:        make([]*pb.TermSummary, 0, len(a.Tags)),
		CreatedAt:   toTimestamp(a.CreatedAt),
		UpdatedAt:   toTimestamp(a.UpdatedAt),
	}
	if a.Category != nil {
		out.Category = &pb.TermSummary{Id: uint32(a.Category.ID), Name: a.Category.Name, Slug: a.Category.Slug}
	}
	for _, t := range a.Tags {
		out.Tags = append(out.Tags, &pb.TermSummary{Id: uint32(t.ID), Name: t.Name, Slug: t.Slug})
	}
	return out
}

func toPagination(p response.Pagination) *pb.Pagination {
	return &pb.Pagination{
		CurrentPage: int32(p.CurrentPage),
		TotalPages:  int32(p.TotalPages),
		TotalItems:  p.TotalItems,
		PerPage:     int32(p.PerPage),
	}
}

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}
