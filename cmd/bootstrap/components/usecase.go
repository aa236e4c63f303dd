package components

import (
	"delacream-park/internal/domain/booking"
	"delacream-park/internal/pkg/clock"
	"delacream-park/internal/pkg/config"
	"delacream-park/internal/pkg/jwt"
	"delacream-park/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			booking.NewRateCardCalculator,
			fx.As(new(booking.PriceCalculator)),
		),
		usecase.NewTokenValidator,
		func(cfg config.Config, jwtService *jwt.Service) (usecase.AuthUseCase, error) {
			return usecase.NewAuthUseCase(cfg.Admin, jwtService)
		},
		usecase.NewBookingUseCase,
		usecase.NewContactUseCase,
		usecase.NewNewsletterUseCase,
		usecase.NewContentUseCase,
		func(repo usecase.GalleryRepository, files usecase.FileStore, cfg config.Config, clk clock.Clock) usecase.GalleryUseCase {
			return usecase.NewGalleryUseCase(repo, files, cfg.Upload, clk)
		},
	),
)
