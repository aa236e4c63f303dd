// Package memstore provides the process-lifetime, mutex-guarded resource
// stores backing the API. Nothing here survives a restart; the only durable
// artifact of the whole system is the gallery upload directory.
package memstore

import (
	"sync"
	"time"

	"delacream-park/internal/domain/booking"
	"delacream-park/internal/pkg/errs"
	"delacream-park/internal/usecase"
)

type BookingStore struct {
	mu     sync.RWMutex
	nextID int
	items  []*booking.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{nextID: 1}
}

func (s *BookingStore) Create(b *booking.Booking) *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *b
	stored.ID = s.nextID
	s.nextID++
	s.items = append(s.items, &stored)

	out := stored
	return &out
}

func (s *BookingStore) List(f usecase.BookingFilter, offset, limit int) ([]*booking.Booking, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]*booking.Booking, 0, len(s.items))
	for _, b := range s.items {
		if f.Type != "" && b.Type.String() != f.Type {
			continue
		}
		if f.Status != "" && b.Status.String() != f.Status {
			continue
		}
		filtered = append(filtered, b)
	}

	return copyBookings(pageSlice(filtered, offset, limit)), len(filtered)
}

func (s *BookingStore) UpdateStatus(id int, status booking.Status, now time.Time) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.items {
		if b.ID == id {
			b.Status = status
			b.UpdatedAt = &now
			out := *b
			return &out, nil
		}
	}
	return nil, errs.ErrBookingNotFound
}

func (s *BookingStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.items {
		if b.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return errs.ErrBookingNotFound
}

func copyBookings(in []*booking.Booking) []*booking.Booking {
	out := make([]*booking.Booking, len(in))
	for i, b := range in {
		cp := *b
		out[i] = &cp
	}
	return out
}

// pageSlice bounds-checks an offset/limit window over items.
func pageSlice[T any](items []T, offset, limit int) []T {
	if offset >= len(items) || offset < 0 {
		return nil
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
