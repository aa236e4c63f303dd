package memstore

import (
	"sync"
	"time"

	"delacream-park/internal/domain/gallery"
	"delacream-park/internal/pkg/errs"
	"delacream-park/internal/usecase"
)

type GalleryStore struct {
	mu     sync.RWMutex
	nextID int
	items  []*gallery.Image
}

func NewGalleryStore(seed ...*gallery.Image) *GalleryStore {
	s := &GalleryStore{nextID: 1}
	for _, img := range seed {
		cp := *img
		cp.ID = s.nextID
		s.nextID++
		s.items = append(s.items, &cp)
	}
	return s
}

// DefaultImages is the showcase set the gallery ships with. The files
// themselves are deployed with the frontend assets.
func DefaultImages(now time.Time) []*gallery.Image {
	return []*gallery.Image{
		{
			Filename:     "office-space-1.jpg",
			OriginalName: "Modern Office Space",
			Category:     gallery.CategoryBusinessPark,
			Title:        "Modern Office Space",
			Description:  "Contemporary office with natural lighting",
			UploadDate:   now,
			URL:          "/uploads/gallery/office-space-1.jpg",
		},
		{
			Filename:     "restaurant-interior.jpg",
			OriginalName: "Restaurant Interior",
			Category:     gallery.CategoryRestaurant,
			Title:        "Elegant Dining Room",
			Description:  "Fine dining atmosphere with sophisticated ambiance",
			UploadDate:   now,
			URL:          "/uploads/gallery/restaurant-interior.jpg",
		},
	}
}

func (s *GalleryStore) Create(img *gallery.Image) *gallery.Image {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *img
	stored.ID = s.nextID
	s.nextID++
	s.items = append(s.items, &stored)

	out := stored
	return &out
}

func (s *GalleryStore) List(category string) []*gallery.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*gallery.Image, 0, len(s.items))
	for _, img := range s.items {
		if category != "" && category != "all" && img.Category.String() != category {
			continue
		}
		cp := *img
		out = append(out, &cp)
	}
	return out
}

func (s *GalleryStore) Update(id int, patch usecase.GalleryPatch) (*gallery.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, img := range s.items {
		if img.ID != id {
			continue
		}
		if patch.Title != nil {
			img.Title = *patch.Title
		}
		if patch.Description != nil {
			img.Description = *patch.Description
		}
		if patch.Category != nil {
			img.Category = *patch.Category
		}

		cp := *img
		return &cp, nil
	}
	return nil, errs.ErrImageNotFound
}

func (s *GalleryStore) Delete(id int) (*gallery.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, img := range s.items {
		if img.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			cp := *img
			return &cp, nil
		}
	}
	return nil, errs.ErrImageNotFound
}
