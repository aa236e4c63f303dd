//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"delacream-park/internal/domain/booking"
	"delacream-park/internal/handler"
	"delacream-park/internal/handler/api"
	"delacream-park/internal/handler/middleware"
	mailmock "delacream-park/internal/infra/mail/mock"
	"delacream-park/internal/infra/memstore"
	"delacream-park/internal/infra/notify"
	"delacream-park/internal/pkg/clock"
	"delacream-park/internal/pkg/config"
	"delacream-park/internal/pkg/jwt"
	"delacream-park/internal/usecase"
)

// testApp wires the real router against in-memory stores, a mock mailer and
// a fixed clock.
type testApp struct {
	engine      *gin.Engine
	mailer      *mailmock.MockMailer
	clock       *clock.MockClock
	bookings    *memstore.BookingStore
	subscribers *memstore.SubscriberStore
	pages       *memstore.ContentStore
	images      *memstore.GalleryStore
	files       *fakeFileStore
	token       string
}

func newTestApp(t *testing.T, ctrl *gomock.Controller) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	app := &testApp{
		mailer:      mailmock.NewMockMailer(ctrl),
		clock:       clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)),
		bookings:    memstore.NewBookingStore(),
		subscribers: memstore.NewSubscriberStore(),
		pages:       memstore.NewContentStore(memstore.DefaultPages(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))...),
		images:      memstore.NewGalleryStore(memstore.DefaultImages(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))...),
		files:       newFakeFileStore(),
	}

	jwtService := jwt.NewService(cfg.JWT.Secret, time.Hour)
	notifier := notify.New(app.mailer, cfg.SMTP)

	authUC, err := usecase.NewAuthUseCase(cfg.Admin, jwtService)
	require.NoError(t, err)

	handlers := handler.Handlers{
		Auth: api.NewAuthHandler(authUC),
		Booking: api.NewBookingHandler(usecase.NewBookingUseCase(
			app.bookings, notifier, booking.NewRateCardCalculator(), app.clock)),
		Contact:    api.NewContactHandler(usecase.NewContactUseCase(notifier)),
		Newsletter: api.NewNewsletterHandler(usecase.NewNewsletterUseCase(app.subscribers, notifier, app.clock)),
		Content:    api.NewContentHandler(usecase.NewContentUseCase(app.pages, app.clock)),
		Gallery: api.NewGalleryHandler(usecase.NewGalleryUseCase(
			app.images, app.files, cfg.Upload, app.clock)),
	}

	app.engine = gin.New()
	handler.NewRouter(app.engine, cfg, handlers, middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService)))

	app.token, err = jwtService.GenerateToken(1, cfg.Admin.Username)
	require.NoError(t, err)

	return app
}

func (a *testApp) request(t *testing.T, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) do(t *testing.T, req *http.Request, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	if authed {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
