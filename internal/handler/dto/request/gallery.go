package request

import (
	"delacream-park/internal/domain/gallery"
	"delacream-park/internal/usecase"
)

// GalleryUploadForm carries the non-file multipart fields; the files arrive
// under the `images` field and are read from the multipart form directly.
type GalleryUploadForm struct {
	Category    string `form:"category" binding:"required,oneof=business-park restaurant hotel events"`
	Title       string `form:"title" binding:"omitempty,min=1,max=100"`
	Description string `form:"description" binding:"omitempty,max=500"`
}

type UpdateGalleryRequest struct {
	Title       *string `json:"title" binding:"omitnil,min=1,max=100"`
	Description *string `json:"description" binding:"omitnil,max=500"`
	Category    *string `json:"category" binding:"omitnil,oneof=business-park restaurant hotel events"`
}

func (r *UpdateGalleryRequest) ToPatch() (usecase.GalleryPatch, error) {
	p := usecase.GalleryPatch{
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Category != nil {
		category, err := gallery.NewCategory(*r.Category)
		if err != nil {
			return p, err
		}
		p.Category = &category
	}
	return p, nil
}

type GalleryListQuery struct {
	Category string `form:"category" binding:"omitempty,oneof=business-park restaurant hotel events all"`
}
