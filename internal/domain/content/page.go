package content

import (
	"errors"
	"time"
)

var ErrInvalidStatus = errors.New("invalid content status")

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusDraft || s == StatusPublished
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Page is a CMS-managed fragment looked up by slug. Body is an opaque
// structured value; the API stores and returns it without interpreting it.
type Page struct {
	ID           int
	Slug         string
	Title        string
	Body         any
	Status       Status
	CreatedAt    time.Time
	LastModified time.Time
}

func NewPage(slug, title string, body any, status Status, now time.Time) *Page {
	return &Page{
		Slug:         slug,
		Title:        title,
		Body:         body,
		Status:       status,
		CreatedAt:    now,
		LastModified: now,
	}
}
