package usecase

import (
	"context"
	"time"

	"delacream-park/internal/domain/content"
	"delacream-park/internal/pkg/clock"
	"delacream-park/internal/pkg/errs"
	"delacream-park/internal/pkg/patch"
)

type ContentFilter struct {
	Status string
	Slug   string
}

// ContentPatch carries the fields an update may overwrite. Nil means "leave
// as is"; validation upstream guarantees provided values are non-empty.
type ContentPatch struct {
	Title  *string
	Body   *any
	Status *content.Status
}

type ContentRepository interface {
	Create(p *content.Page) *content.Page
	List(f ContentFilter) []*content.Page
	FindBySlug(slug string) (*content.Page, bool)
	Update(id int, patch ContentPatch, now time.Time) (*content.Page, error)
	Delete(id int) error
}

type ContentUseCase interface {
	Create(ctx context.Context, slug, title string, body any, status content.Status) (*content.Page, error)
	List(ctx context.Context, f ContentFilter) []*content.Page
	GetBySlug(ctx context.Context, slug string) (*content.Page, error)
	Update(ctx context.Context, id int, patch ContentPatch) (*content.Page, error)
	SetStatus(ctx context.Context, id int, status content.Status) (*content.Page, error)
	Delete(ctx context.Context, id int) error
}

type contentUseCaseImpl struct {
	repo  ContentRepository
	clock clock.Clock
}

func NewContentUseCase(repo ContentRepository, clock clock.Clock) ContentUseCase {
	return &contentUseCaseImpl{repo: repo, clock: clock}
}

func (u *contentUseCaseImpl) Create(_ context.Context, slug, title string, body any, status content.Status) (*content.Page, error) {
	if _, exists := u.repo.FindBySlug(slug); exists {
		return nil, errs.ErrDuplicateSlug
	}
	return u.repo.Create(content.NewPage(slug, title, body, status, u.clock.Now())), nil
}

func (u *contentUseCaseImpl) List(_ context.Context, f ContentFilter) []*content.Page {
	return u.repo.List(f)
}

func (u *contentUseCaseImpl) GetBySlug(_ context.Context, slug string) (*content.Page, error) {
	page, ok := u.repo.FindBySlug(slug)
	if !ok {
		return nil, errs.ErrContentNotFound
	}
	return page, nil
}

func (u *contentUseCaseImpl) Update(_ context.Context, id int, p ContentPatch) (*content.Page, error) {
	return u.repo.Update(id, p, u.clock.Now())
}

func (u *contentUseCaseImpl) SetStatus(_ context.Context, id int, status content.Status) (*content.Page, error) {
	return u.repo.Update(id, ContentPatch{Status: patch.Ptr(status)}, u.clock.Now())
}

func (u *contentUseCaseImpl) Delete(_ context.Context, id int) error {
	return u.repo.Delete(id)
}
