package article

import (
	"terminal-terrace/blog/internal/dto"
	model "terminal-terrace/blog/internal/model/article"
)

// ToResource 将文章模型转换为对外表示
func ToResource(a *model.Article) dto.ArticleResource {
	res := dto.ArticleResource{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Description: a.Description,
		Content:     a.Content,
		Status:      a.Status,
		Author: dto.AuthorResource{
			ID:   a.AuthorID,
			Name: a.Author.Name,
		},
		Tags:      make([]dto.TagSummary, 0, len(a.Tags)),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.Category != nil {
		res.Category = &dto.CategorySummary{
			ID:   a.Category.ID,
			Name: a.Category.Name,
			Slug: a.Category.Slug,
		}
	}
	for _, t := range a.Tags {
		res.Tags = append(res.Tags, dto.TagSummary{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}
	return res
}

// ToResources 批量转换
func ToResources(articles []model.Article) []dto.ArticleResource {
	out := make([]dto.ArticleResource, 0, len(articles))
	for i := range articles {
		out = append(out, ToResource(&articles[i]))
	}
	return out
}
