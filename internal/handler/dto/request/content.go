package request

import (
	"errors"

	"delacream-park/internal/domain/content"
	"delacream-park/internal/usecase"
)

var errEmptyContent = errors.New("content cannot be empty")

type CreateContentRequest struct {
	Slug    string `json:"slug" binding:"required,max=200"`
	Title   string `json:"title" binding:"required,max=200"`
	Content any    `json:"content" binding:"required"`
	Status  string `json:"status" binding:"omitempty,oneof=draft published"`
}

func (r *CreateContentRequest) StatusOrDefault() content.Status {
	if r.Status == "" {
		return content.StatusDraft
	}
	return content.Status(r.Status)
}

type UpdateContentRequest struct {
	Title   *string `json:"title" binding:"omitnil,min=1,max=200"`
	Content any     `json:"content"`
	Status  *string `json:"status" binding:"omitnil,oneof=draft published"`
}

// ToPatch maps provided fields only; an explicit empty content value is
// rejected rather than merged.
func (r *UpdateContentRequest) ToPatch() (usecase.ContentPatch, error) {
	var p usecase.ContentPatch

	p.Title = r.Title
	if r.Content != nil {
		if s, ok := r.Content.(string); ok && s == "" {
			return p, errEmptyContent
		}
		body := r.Content
		p.Body = &body
	}
	if r.Status != nil {
		status, err := content.NewStatus(*r.Status)
		if err != nil {
			return p, err
		}
		p.Status = &status
	}

	return p, nil
}

type PublishContentRequest struct {
	Status string `json:"status" binding:"required,oneof=draft published"`
}

type ContentListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=draft published"`
	Slug   string `form:"slug"`
}
