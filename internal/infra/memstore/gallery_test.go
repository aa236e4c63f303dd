//go:build unit

package memstore_test

import (
	"testing"
	"time"

	"delacream-park/internal/domain/gallery"
	"delacream-park/internal/infra/memstore"
	"delacream-park/internal/pkg/errs"
	"delacream-park/internal/pkg/patch"
	"delacream-park/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryStore_DefaultImagesSeeded(t *testing.T) {
	now := time.Now()
	store := memstore.NewGalleryStore(memstore.DefaultImages(now)...)

	images := store.List("")
	require.Len(t, images, 2)
	assert.Equal(t, 1, images[0].ID)
	assert.Equal(t, gallery.CategoryBusinessPark, images[0].Category)
}

func TestGalleryStore_ListByCategory(t *testing.T) {
	store := memstore.NewGalleryStore()
	store.Create(&gallery.Image{Filename: "a.jpg", Category: gallery.CategoryHotel})
	store.Create(&gallery.Image{Filename: "b.jpg", Category: gallery.CategoryRestaurant})
	store.Create(&gallery.Image{Filename: "c.jpg", Category: gallery.CategoryHotel})

	assert.Len(t, store.List("hotel"), 2)
	assert.Len(t, store.List("events"), 0)
	assert.Len(t, store.List("all"), 3)
	assert.Len(t, store.List(""), 3)
}

func TestGalleryStore_CreateCopiesInput(t *testing.T) {
	store := memstore.NewGalleryStore()

	in := &gallery.Image{Filename: "a.jpg", Title: "Original", Category: gallery.CategoryEvents}
	created := store.Create(in)
	require.Equal(t, 1, created.ID)

	// Mutating either the input or the returned copy must not leak
	// into the stored record.
	in.Title = "changed input"
	created.Title = "changed output"

	stored := store.List("")
	require.Len(t, stored, 1)
	assert.Equal(t, "Original", stored[0].Title)
}

func TestGalleryStore_UpdatePartialMerge(t *testing.T) {
	store := memstore.NewGalleryStore()
	img := store.Create(&gallery.Image{
		Filename:    "pool.jpg",
		Title:       "Pool",
		Description: "Rooftop pool",
		Category:    gallery.CategoryHotel,
	})

	updated, err := store.Update(img.ID, usecase.GalleryPatch{Title: patch.Ptr("Rooftop Pool")})
	require.NoError(t, err)

	assert.Equal(t, "Rooftop Pool", updated.Title)
	assert.Equal(t, "Rooftop pool", updated.Description)
	assert.Equal(t, gallery.CategoryHotel, updated.Category)
}

func TestGalleryStore_UpdateUnknownID(t *testing.T) {
	store := memstore.NewGalleryStore()

	_, err := store.Update(42, usecase.GalleryPatch{Title: patch.Ptr("x")})
	assert.ErrorIs(t, err, errs.ErrImageNotFound)
}

func TestGalleryStore_Delete(t *testing.T) {
	store := memstore.NewGalleryStore()
	img := store.Create(&gallery.Image{Filename: "a.jpg", Category: gallery.CategoryEvents})

	deleted, err := store.Delete(img.ID)
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", deleted.Filename)
	assert.Empty(t, store.List(""))

	_, err = store.Delete(img.ID)
	assert.ErrorIs(t, err, errs.ErrImageNotFound)
}
