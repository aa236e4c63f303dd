package memstore

import (
	"sync"
	"time"

	"delacream-park/internal/domain/newsletter"
	"delacream-park/internal/pkg/errs"
	"delacream-park/internal/usecase"
)

type SubscriberStore struct {
	mu     sync.RWMutex
	nextID int
	items  []*newsletter.Subscriber
}

func NewSubscriberStore() *SubscriberStore {
	return &SubscriberStore{nextID: 1}
}

func (s *SubscriberStore) Create(sub *newsletter.Subscriber) *newsletter.Subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *sub
	stored.ID = s.nextID
	s.nextID++
	s.items = append(s.items, &stored)

	out := stored
	return &out
}

func (s *SubscriberStore) FindByEmail(email string) (*newsletter.Subscriber, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sub := range s.items {
		if sub.Email == email {
			out := *sub
			return &out, true
		}
	}
	return nil, false
}

func (s *SubscriberStore) List(f usecase.SubscriberFilter, offset, limit int) ([]*newsletter.Subscriber, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]*newsletter.Subscriber, 0, len(s.items))
	for _, sub := range s.items {
		if f.Status != "all" && f.Status != "" && sub.Status.String() != f.Status {
			continue
		}
		filtered = append(filtered, sub)
	}

	page := pageSlice(filtered, offset, limit)
	out := make([]*newsletter.Subscriber, len(page))
	for i, sub := range page {
		cp := *sub
		out[i] = &cp
	}
	return out, len(filtered)
}

func (s *SubscriberStore) Unsubscribe(email string, now time.Time) (*newsletter.Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.items {
		if sub.Email == email {
			sub.Unsubscribe(now)
			out := *sub
			return &out, nil
		}
	}
	return nil, errs.ErrSubscriberNotFound
}

func (s *SubscriberStore) ActiveEmails() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	emails := make([]string, 0, len(s.items))
	for _, sub := range s.items {
		if sub.Status == newsletter.StatusActive {
			emails = append(emails, sub.Email)
		}
	}
	return emails
}
