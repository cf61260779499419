package grpc_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"gorm.io/gorm"

	"terminal-terrace/blog/internal/article"
	"terminal-terrace/blog/internal/category"
	blogrpc "terminal-terrace/blog/internal/grpc"
	"terminal-terrace/blog/internal/tag"
	"terminal-terrace/blog/internal/testutils"
	pb "terminal-terrace/blog/protobuf/proto/blog_service"
)

func setupClient(t *testing.T) (pb.BlogServiceClient, *gorm.DB) {
	t.Helper()
	db := testutils.SetupTestDB(t)
	registry := testutils.SetupTestRegistry(t)

	impl := blogrpc.NewBlogServiceImpl(
		article.NewArticleService(article.NewArticleRepository(db), registry),
		tag.NewTagService(tag.NewTagRepository(db), registry),
		category.NewCategoryService(category.NewCategoryRepository(db), registry),
		testutils.TestJWTSecret,
	)

	lis := bufconn.Listen(1024 * 1024)
	server := blogrpc.NewServerWithListener(lis, impl)
	go func() { _ = server.Start() }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewBlogServiceClient(conn), db
}

func TestListArticles(t *testing.T) {
	client, db := setupClient(t)
	author := testutils.CreateTestUser(db)
	golang := testutils.CreateTestTag(db, testutils.WithTagName("Go", "go"))
	testutils.CreateTestArticle(db, author.ID, testutils.Published(), testutils.WithTitle("Go 并发", "go-concurrency"), testutils.WithTags(golang))
	testutils.CreateTestArticle(db, author.ID, testutils.Published(), testutils.WithTitle("生活随笔", "life-notes"))
	testutils.CreateTestArticle(db, author.ID, testutils.WithTitle("草稿", "draft-only"))

	tests := []struct {
		name      string
		req       *pb.ListArticlesRequest
		wantSlugs []string
	}{
		{"全部已发布", &pb.ListArticlesRequest{SortBy: "title"}, []string{"go-concurrency", "life-notes"}},
		{"按标签过滤", &pb.ListArticlesRequest{Tags: []string{"go"}}, []string{"go-concurrency"}},
		{"按关键字搜索", &pb.ListArticlesRequest{Search: "随笔"}, []string{"life-notes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.ListArticles(context.Background(), tt.req)
			require.NoError(t, err)

			var slugs []string
			for _, a := range resp.GetItems() {
				slugs = append(slugs, a.GetSlug())
			}
			assert.ElementsMatch(t, tt.wantSlugs, slugs)
			assert.Equal(t, int64(len(tt.wantSlugs)), resp.GetPagination().GetTotalItems())
		})
	}

	resp, err := client.ListArticles(context.Background(), &pb.ListArticlesRequest{Tags: []string{"go"}})
	require.NoError(t, err)
	require.Len(t, resp.GetItems(), 1)
	got := resp.GetItems()[0]
	assert.Equal(t, uint32(author.ID), got.GetAuthor().GetId())
	require.Len(t, got.GetTags(), 1)
	assert.Equal(t, "go", got.GetTags()[0].GetSlug())
	assert.Nil(t, got.GetCategory())
	assert.False(t, got.GetCreatedAt().AsTime().IsZero())
}

func TestListArticles_InvalidArguments(t *testing.T) {
	client, _ := setupClient(t)

	tests := []struct {
		name string
		req  *pb.ListArticlesRequest
	}{
		{"未知排序字段", &pb.ListArticlesRequest{SortBy: "views"}},
		{"排序方向错误", &pb.ListArticlesRequest{SortDirection: "up"}},
		{"页码为负", &pb.ListArticlesRequest{Page: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.ListArticles(context.Background(), tt.req)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestGetArticle(t *testing.T) {
	client, db := setupClient(t)
	author := testutils.CreateTestUser(db)
	tech := testutils.CreateTestCategory(db, testutils.WithCategoryName("Tech", "tech"))
	published := testutils.CreateTestArticle(db, author.ID, testutils.Published(), testutils.WithTitle("Hello", "hello"), testutils.InCategory(tech))
	draft := testutils.CreateTestArticle(db, author.ID)

	tests := []struct {
		name     string
		req      *pb.GetArticleRequest
		wantCode codes.Code
	}{
		{"按 id", &pb.GetArticleRequest{Id: uint32(published.ID)}, codes.OK},
		{"按 slug", &pb.GetArticleRequest{Slug: "hello"}, codes.OK},
		{"id 优先于 slug", &pb.GetArticleRequest{Id: uint32(published.ID), Slug: "missing"}, codes.OK},
		{"草稿不可见", &pb.GetArticleRequest{Id: uint32(draft.ID)}, codes.NotFound},
		{"slug 不存在", &pb.GetArticleRequest{Slug: "missing"}, codes.NotFound},
		{"缺少参数", &pb.GetArticleRequest{}, codes.InvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.GetArticle(context.Background(), tt.req)
			require.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode == codes.OK {
				assert.Equal(t, "hello", resp.GetSlug())
				assert.Equal(t, "tech", resp.GetCategory().GetSlug())
			}
		})
	}
}

func TestListTaxonomies(t *testing.T) {
	client, db := setupClient(t)
	testutils.CreateTestTag(db, testutils.WithTagName("Go", "go"))
	testutils.CreateTestTag(db, testutils.WithTagName("Rust", "rust"))
	testutils.CreateTestCategory(db, testutils.WithCategoryName("Tech", "tech"))

	tags, err := client.ListTags(context.Background(), &pb.ListTaxonomyRequest{SortBy: "name"})
	require.NoError(t, err)
	require.Len(t, tags.GetItems(), 2)
	assert.Equal(t, "go", tags.GetItems()[0].GetSlug())
	assert.Equal(t, int64(2), tags.GetPagination().GetTotalItems())

	categories, err := client.ListCategories(context.Background(), &pb.ListTaxonomyRequest{Search: "tech"})
	require.NoError(t, err)
	require.Len(t, categories.GetItems(), 1)
	assert.Equal(t, "tech", categories.GetItems()[0].GetSlug())

	_, err = client.ListTags(context.Background(), &pb.ListTaxonomyRequest{SortBy: "slug"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListMyArticles(t *testing.T) {
	client, db := setupClient(t)
	author := testutils.CreateTestUser(db)
	other := testutils.CreateTestUser(db)
	testutils.CreateTestArticle(db, author.ID)
	testutils.CreateTestArticle(db, author.ID, testutils.Published())
	testutils.CreateTestArticle(db, other.ID, testutils.Published())

	_, err := client.ListMyArticles(context.Background(), &pb.ListArticlesRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", testutils.BearerToken(author))
	resp, err := client.ListMyArticles(ctx, &pb.ListArticlesRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.GetItems(), 2)

	resp, err = client.ListMyArticles(ctx, &pb.ListArticlesRequest{Status: "draft"})
	require.NoError(t, err)
	assert.Len(t, resp.GetItems(), 1)
}
