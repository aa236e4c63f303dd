package components

import (
	"time"

	"delacream-park/internal/infra/memstore"
	"delacream-park/internal/infra/storage"
	"delacream-park/internal/pkg/config"
	"delacream-park/internal/usecase"

	"go.uber.org/fx"
)

// StoreModule wires the in-memory stores and the upload file store. Content
// and gallery start seeded so the public site has data on first boot.
var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			memstore.NewBookingStore,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			memstore.NewSubscriberStore,
			fx.As(new(usecase.SubscriberRepository)),
		),
		fx.Annotate(
			func() *memstore.ContentStore {
				return memstore.NewContentStore(memstore.DefaultPages(time.Now())...)
			},
			fx.As(new(usecase.ContentRepository)),
		),
		fx.Annotate(
			func() *memstore.GalleryStore {
				return memstore.NewGalleryStore(memstore.DefaultImages(time.Now())...)
			},
			fx.As(new(usecase.GalleryRepository)),
		),
		fx.Annotate(
			func(cfg config.Config) *storage.DiskStore {
				return storage.NewDiskStore(cfg.Upload)
			},
			fx.As(new(usecase.FileStore)),
		),
	),
)
