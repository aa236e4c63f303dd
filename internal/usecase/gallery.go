package usecase

import (
	"context"
	"io"
	"log/slog"

	"delacream-park/internal/domain/gallery"
	"delacream-park/internal/pkg/clock"
	"delacream-park/internal/pkg/config"
	"delacream-park/internal/pkg/errs"
)

// allowedImageTypes is the fixed MIME allow-list for gallery uploads.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
}

type GalleryPatch struct {
	Title       *string
	Description *string
	Category    *gallery.Category
}

type GalleryRepository interface {
	Create(img *gallery.Image) *gallery.Image
	List(category string) []*gallery.Image
	Update(id int, p GalleryPatch) (*gallery.Image, error)
	// Delete returns the removed record so the backing file can be cleaned up.
	Delete(id int) (*gallery.Image, error)
}

// FileStore persists upload payloads and owns filename generation.
type FileStore interface {
	Save(originalName string, r io.Reader) (filename string, err error)
	Remove(filename string) error
	URL(filename string) string
}

// UploadFile is one file of a multipart batch, decoupled from the HTTP layer.
type UploadFile struct {
	OriginalName string
	ContentType  string
	Size         int64
	Open         func() (io.ReadCloser, error)
}

type UploadInput struct {
	Category    gallery.Category
	Title       string
	Description string
	Files       []UploadFile
}

type GalleryUseCase interface {
	List(ctx context.Context, category string) []*gallery.Image
	Upload(ctx context.Context, in UploadInput) ([]*gallery.Image, error)
	Update(ctx context.Context, id int, p GalleryPatch) (*gallery.Image, error)
	Delete(ctx context.Context, id int) error
}

type galleryUseCaseImpl struct {
	repo  GalleryRepository
	files FileStore
	cfg   config.UploadConfig
	clock clock.Clock
}

func NewGalleryUseCase(repo GalleryRepository, files FileStore, cfg config.UploadConfig, clock clock.Clock) GalleryUseCase {
	return &galleryUseCaseImpl{
		repo:  repo,
		files: files,
		cfg:   cfg,
		clock: clock,
	}
}

func (u *galleryUseCaseImpl) List(_ context.Context, category string) []*gallery.Image {
	return u.repo.List(category)
}

// Upload validates the whole batch before anything touches disk or the
// store: one bad file rejects every file.
func (u *galleryUseCaseImpl) Upload(_ context.Context, in UploadInput) ([]*gallery.Image, error) {
	if len(in.Files) == 0 {
		return nil, errs.ErrNoFilesUploaded
	}
	if len(in.Files) > u.cfg.MaxFileCount {
		return nil, errs.ErrTooManyFiles
	}
	for _, f := range in.Files {
		if _, ok := allowedImageTypes[f.ContentType]; !ok {
			return nil, errs.ErrInvalidFileType
		}
		if f.Size > u.cfg.MaxFileSize {
			return nil, errs.ErrFileTooLarge
		}
	}

	saved := make([]*gallery.Image, 0, len(in.Files))
	for _, f := range in.Files {
		filename, err := u.saveFile(f)
		if err != nil {
			u.discard(saved)
			return nil, errs.Wrap(err, "failed to persist upload")
		}

		title := in.Title
		if title == "" {
			title = f.OriginalName
		}
		saved = append(saved, &gallery.Image{
			Filename:     filename,
			OriginalName: f.OriginalName,
			Category:     in.Category,
			Title:        title,
			Description:  in.Description,
			UploadDate:   u.clock.Now(),
			URL:          u.files.URL(filename),
			Size:         f.Size,
		})
	}

	images := make([]*gallery.Image, 0, len(saved))
	for _, img := range saved {
		images = append(images, u.repo.Create(img))
	}
	return images, nil
}

func (u *galleryUseCaseImpl) saveFile(f UploadFile) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	return u.files.Save(f.OriginalName, rc)
}

func (u *galleryUseCaseImpl) discard(saved []*gallery.Image) {
	for _, img := range saved {
		if err := u.files.Remove(img.Filename); err != nil {
			slog.Warn("failed to remove orphaned upload", "filename", img.Filename, "error", err)
		}
	}
}

func (u *galleryUseCaseImpl) Update(_ context.Context, id int, p GalleryPatch) (*gallery.Image, error) {
	return u.repo.Update(id, p)
}

func (u *galleryUseCaseImpl) Delete(_ context.Context, id int) error {
	img, err := u.repo.Delete(id)
	if err != nil {
		return err
	}

	// The record is already gone; a missing file is not an error.
	if err := u.files.Remove(img.Filename); err != nil {
		slog.Warn("failed to remove gallery file", "filename", img.Filename, "error", err)
	}
	return nil
}
