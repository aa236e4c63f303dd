package response

import (
	"time"

	"delacream-park/internal/domain/gallery"
)

type ImageResponse struct {
	ID           int       `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Category     string    `json:"category"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	UploadDate   time.Time `json:"uploadDate"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
}

func FromImage(img *gallery.Image) *ImageResponse {
	return &ImageResponse{
		ID:           img.ID,
		Filename:     img.Filename,
		OriginalName: img.OriginalName,
		Category:     string(img.Category),
		Title:        img.Title,
		Description:  img.Description,
		UploadDate:   img.UploadDate,
		URL:          img.URL,
		Size:         img.Size,
	}
}

func FromImageList(items []*gallery.Image) []*ImageResponse {
	res := make([]*ImageResponse, len(items))
	for i, img := range items {
		res[i] = FromImage(img)
	}
	return res
}
