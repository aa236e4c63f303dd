package components

import (
	"delacream-park/internal/handler"
	"delacream-park/internal/handler/api"
	"delacream-park/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewContactHandler,
		api.NewNewsletterHandler,
		api.NewContentHandler,
		api.NewGalleryHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, booking *api.BookingHandler, contact *api.ContactHandler,
			newsletter *api.NewsletterHandler, content *api.ContentHandler, gallery *api.GalleryHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:       auth,
				Booking:    booking,
				Contact:    contact,
				Newsletter: newsletter,
				Content:    content,
				Gallery:    gallery,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
