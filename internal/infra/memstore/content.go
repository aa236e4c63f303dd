package memstore

import (
	"sync"
	"time"

	"delacream-park/internal/domain/content"
	"delacream-park/internal/pkg/errs"
	"delacream-park/internal/usecase"
)

type ContentStore struct {
	mu     sync.RWMutex
	nextID int
	items  []*content.Page
}

// NewContentStore seeds the store with the given pages, assigning ids in
// order. Pass DefaultPages for the production seed or nothing for tests.
func NewContentStore(seed ...*content.Page) *ContentStore {
	s := &ContentStore{nextID: 1}
	for _, p := range seed {
		cp := *p
		cp.ID = s.nextID
		s.nextID++
		s.items = append(s.items, &cp)
	}
	return s
}

// DefaultPages is the marketing content the site ships with.
func DefaultPages(now time.Time) []*content.Page {
	return []*content.Page{
		{
			Slug:  "homepage-hero",
			Title: "Homepage Hero Section",
			Body: map[string]any{
				"heading":     "De La Cream Business Park",
				"subheading":  "Where business excellence meets luxury hospitality",
				"description": "Experience premium office spaces, fine dining, and world-class accommodation all in one location.",
				"ctaText":     "Explore Business Park",
			},
			Status:       content.StatusPublished,
			CreatedAt:    now,
			LastModified: now,
		},
		{
			Slug:  "business-park-overview",
			Title: "Business Park Overview",
			Body: map[string]any{
				"heading":     "Your Business Deserves the Best",
				"description": "De La Cream Business Park offers a prestigious address in the heart of Nairobi's business district.",
				"features": []string{
					"Prime location in Nairobi CBD",
					"50+ office spaces available",
					"Flexible lease terms",
				},
			},
			Status:       content.StatusPublished,
			CreatedAt:    now,
			LastModified: now,
		},
		{
			Slug:  "contact-info",
			Title: "Contact Information",
			Body: map[string]any{
				"phone":   "+254 720 206 142",
				"email":   "info@delacream.co.ke",
				"address": "De La Cream Business Park, Nairobi, Kenya",
				"socialMedia": map[string]string{
					"facebook":  "https://facebook.com/delacream",
					"instagram": "https://instagram.com/delacream",
					"twitter":   "https://twitter.com/delacream",
					"linkedin":  "https://linkedin.com/company/delacream",
				},
			},
			Status:       content.StatusPublished,
			CreatedAt:    now,
			LastModified: now,
		},
	}
}

func (s *ContentStore) Create(p *content.Page) *content.Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *p
	stored.ID = s.nextID
	s.nextID++
	s.items = append(s.items, &stored)

	out := stored
	return &out
}

func (s *ContentStore) List(f usecase.ContentFilter) []*content.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*content.Page, 0, len(s.items))
	for _, p := range s.items {
		if f.Status != "" && p.Status.String() != f.Status {
			continue
		}
		if f.Slug != "" && p.Slug != f.Slug {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out
}

func (s *ContentStore) FindBySlug(slug string) (*content.Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.items {
		if p.Slug == slug {
			cp := *p
			return &cp, true
		}
	}
	return nil, false
}

func (s *ContentStore) Update(id int, patch usecase.ContentPatch, now time.Time) (*content.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.items {
		if p.ID != id {
			continue
		}
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Body != nil {
			p.Body = *patch.Body
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		p.LastModified = now

		cp := *p
		return &cp, nil
	}
	return nil, errs.ErrContentNotFound
}

func (s *ContentStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.items {
		if p.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return errs.ErrContentNotFound
}
