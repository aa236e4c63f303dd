//go:build unit

package usecase_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"delacream-park/internal/domain/gallery"
	"delacream-park/internal/infra/memstore"
	"delacream-park/internal/pkg/clock"
	"delacream-park/internal/pkg/config"
	"delacream-park/internal/pkg/errs"
	"delacream-park/internal/usecase"
)

// fakeFileStore keeps payloads in a map so tests can observe exactly which
// files were written and removed.
type fakeFileStore struct {
	files   map[string]string
	nextID  int
	saveErr error
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: map[string]string{}}
}

func (f *fakeFileStore) Save(originalName string, r io.Reader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.nextID++
	name := fmt.Sprintf("images-%d-%s", f.nextID, originalName)
	f.files[name] = string(data)
	return name, nil
}

func (f *fakeFileStore) Remove(filename string) error {
	delete(f.files, filename)
	return nil
}

func (f *fakeFileStore) URL(filename string) string {
	return "/uploads/gallery/" + filename
}

type GalleryUseCaseTestSuite struct {
	suite.Suite
	store *memstore.GalleryStore
	files *fakeFileStore
	clock *clock.MockClock
	uc    usecase.GalleryUseCase
}

func (s *GalleryUseCaseTestSuite) SetupTest() {
	s.store = memstore.NewGalleryStore()
	s.files = newFakeFileStore()
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	s.uc = usecase.NewGalleryUseCase(s.store, s.files, config.NewTestConfig().Upload, s.clock)
}

func (s *GalleryUseCaseTestSuite) SetupSubTest() {
	s.SetupTest()
}

func TestGalleryUseCaseSuite(t *testing.T) {
	suite.Run(t, new(GalleryUseCaseTestSuite))
}

func uploadFile(name, contentType string, size int64) usecase.UploadFile {
	return usecase.UploadFile{
		OriginalName: name,
		ContentType:  contentType,
		Size:         size,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("payload")), nil
		},
	}
}

func (s *GalleryUseCaseTestSuite) TestUpload() {
	s.Run("saves files and records metadata", func() {
		in := usecase.UploadInput{
			Category:    gallery.CategoryRestaurant,
			Title:       "Dining area",
			Description: "Main hall",
			Files: []usecase.UploadFile{
				uploadFile("hall.jpg", "image/jpeg", 1024),
				uploadFile("bar.png", "image/png", 2048),
			},
		}

		images, err := s.uc.Upload(context.Background(), in)
		s.Require().NoError(err)
		s.Require().Len(images, 2)

		s.Equal("Dining area", images[0].Title)
		s.Equal("hall.jpg", images[0].OriginalName)
		s.Equal(gallery.CategoryRestaurant, images[0].Category)
		s.Equal(s.clock.Now(), images[0].UploadDate)
		s.Equal("/uploads/gallery/"+images[0].Filename, images[0].URL)
		s.Len(s.files.files, 2)
	})

	s.Run("title falls back to the original filename", func() {
		in := usecase.UploadInput{
			Category: gallery.CategoryEvents,
			Files:    []usecase.UploadFile{uploadFile("launch.webp", "image/webp", 512)},
		}

		images, err := s.uc.Upload(context.Background(), in)
		s.Require().NoError(err)
		s.Equal("launch.webp", images[0].Title)
	})

	s.Run("empty batch", func() {
		_, err := s.uc.Upload(context.Background(), usecase.UploadInput{Category: gallery.CategoryHotel})
		s.ErrorIs(err, errs.ErrNoFilesUploaded)
	})

	s.Run("one disallowed type rejects the whole batch", func() {
		in := usecase.UploadInput{
			Category: gallery.CategoryHotel,
			Files: []usecase.UploadFile{
				uploadFile("room.jpg", "image/jpeg", 1024),
				uploadFile("rates.pdf", "application/pdf", 1024),
			},
		}

		_, err := s.uc.Upload(context.Background(), in)
		s.ErrorIs(err, errs.ErrInvalidFileType)

		s.Empty(s.files.files)
		s.Empty(s.store.List(""))
	})

	s.Run("oversized file rejects the whole batch", func() {
		in := usecase.UploadInput{
			Category: gallery.CategoryHotel,
			Files: []usecase.UploadFile{
				uploadFile("room.jpg", "image/jpeg", 6*1024*1024),
			},
		}

		_, err := s.uc.Upload(context.Background(), in)
		s.ErrorIs(err, errs.ErrFileTooLarge)
		s.Empty(s.files.files)
	})

	s.Run("too many files", func() {
		in := usecase.UploadInput{Category: gallery.CategoryHotel}
		for i := range 11 {
			in.Files = append(in.Files, uploadFile(fmt.Sprintf("img-%d.jpg", i), "image/jpeg", 100))
		}

		_, err := s.uc.Upload(context.Background(), in)
		s.ErrorIs(err, errs.ErrTooManyFiles)
		s.Empty(s.files.files)
	})

	s.Run("a mid-batch save failure discards already saved files", func() {
		in := usecase.UploadInput{
			Category: gallery.CategoryHotel,
			Files: []usecase.UploadFile{
				uploadFile("a.jpg", "image/jpeg", 100),
				{
					OriginalName: "b.jpg",
					ContentType:  "image/jpeg",
					Size:         100,
					Open: func() (io.ReadCloser, error) {
						s.files.saveErr = errs.New("disk full")
						return io.NopCloser(strings.NewReader("payload")), nil
					},
				},
			},
		}

		_, err := s.uc.Upload(context.Background(), in)
		s.Error(err)
		s.Empty(s.files.files)
		s.Empty(s.store.List(""))
	})
}

func (s *GalleryUseCaseTestSuite) TestUpdate() {
	images, err := s.uc.Upload(context.Background(), usecase.UploadInput{
		Category: gallery.CategoryBusinessPark,
		Files:    []usecase.UploadFile{uploadFile("tower.jpg", "image/jpeg", 100)},
	})
	s.Require().NoError(err)

	title := "The tower"
	updated, err := s.uc.Update(context.Background(), images[0].ID, usecase.GalleryPatch{Title: &title})
	s.Require().NoError(err)
	s.Equal("The tower", updated.Title)
	s.Equal("tower.jpg", updated.OriginalName)

	_, err = s.uc.Update(context.Background(), 999, usecase.GalleryPatch{Title: &title})
	s.ErrorIs(err, errs.ErrImageNotFound)
}

func (s *GalleryUseCaseTestSuite) TestDelete() {
	images, err := s.uc.Upload(context.Background(), usecase.UploadInput{
		Category: gallery.CategoryBusinessPark,
		Files:    []usecase.UploadFile{uploadFile("tower.jpg", "image/jpeg", 100)},
	})
	s.Require().NoError(err)

	s.Require().NoError(s.uc.Delete(context.Background(), images[0].ID))
	s.Empty(s.store.List(""))
	s.Empty(s.files.files)

	s.ErrorIs(s.uc.Delete(context.Background(), images[0].ID), errs.ErrImageNotFound)
}
