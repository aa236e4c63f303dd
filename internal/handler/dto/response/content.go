package response

import (
	"time"

	"delacream-park/internal/domain/content"
)

type PageResponse struct {
	ID           int       `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Content      any       `json:"content"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	LastModified time.Time `json:"lastModified"`
}

func FromPage(p *content.Page) *PageResponse {
	return &PageResponse{
		ID:           p.ID,
		Slug:         p.Slug,
		Title:        p.Title,
		Content:      p.Body,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		LastModified: p.LastModified,
	}
}

func FromPageList(items []*content.Page) []*PageResponse {
	res := make([]*PageResponse, len(items))
	for i, p := range items {
		res[i] = FromPage(p)
	}
	return res
}
