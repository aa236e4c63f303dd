package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"delacream-park/internal/handler/api"
	"delacream-park/internal/handler/middleware"
	"delacream-park/internal/metrics"
	"delacream-park/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Booking    *api.BookingHandler
	Contact    *api.ContactHandler
	Newsletter *api.NewsletterHandler
	Content    *api.ContentHandler
	Gallery    *api.GalleryHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(metrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", metrics.Handler())

	// Uploaded gallery files are served from disk under the public URL
	// prefix recorded on each image.
	engine.Static("/uploads/gallery", cfg.Upload.Dir)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodPost, Path: "/verify", Handler: h.Auth.Verify, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/restaurant", Handler: h.Booking.CreateRestaurant},
				{Method: http.MethodPost, Path: "/hotel", Handler: h.Booking.CreateHotel},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Booking.UpdateStatus, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Delete, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		contact := apiGroup.Group("/contact")
		{
			addRoutes(contact, []route{
				{Method: http.MethodPost, Path: "/send", Handler: h.Contact.Send},
				{Method: http.MethodGet, Path: "/info", Handler: h.Contact.Info},
			})
		}

		newsletter := apiGroup.Group("/newsletter")
		{
			addRoutes(newsletter, []route{
				{Method: http.MethodPost, Path: "/subscribe", Handler: h.Newsletter.Subscribe},
				{Method: http.MethodPost, Path: "/unsubscribe", Handler: h.Newsletter.Unsubscribe},
				{Method: http.MethodGet, Path: "/subscribers", Handler: h.Newsletter.ListSubscribers, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/send", Handler: h.Newsletter.Send, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		content := apiGroup.Group("/content")
		{
			addRoutes(content, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Content.List},
				{Method: http.MethodGet, Path: "/:slug", Handler: h.Content.GetBySlug},
				{Method: http.MethodPost, Path: "", Handler: h.Content.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Content.Update, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPut, Path: "/:id/publish", Handler: h.Content.Publish, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Content.Delete, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		gallery := apiGroup.Group("/gallery")
		{
			addRoutes(gallery, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Gallery.List},
				{Method: http.MethodPost, Path: "/upload", Handler: h.Gallery.Upload, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Gallery.Update, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Gallery.Delete, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
