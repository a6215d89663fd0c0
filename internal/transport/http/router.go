package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/https-dhanesh/itesa-website/internal/metrics"
	"github.com/https-dhanesh/itesa-website/internal/transport/http/handler"
	customMiddleware "github.com/https-dhanesh/itesa-website/internal/transport/http/middleware"
)

// RouterConfig содержит конфигурацию для роутера
type RouterConfig struct {
	EventHandler      *handler.EventHandler
	TeamHandler       *handler.TeamHandler
	ContactHandler    *handler.ContactHandler
	NewsletterHandler *handler.NewsletterHandler
	StatisticsHandler *handler.StatisticsHandler
	AuthHandler       *handler.AuthHandler
	SessionHandler    *handler.SessionHandler
	SiteHandler       *handler.SiteHandler
	HealthHandler     *handler.HealthHandler

	TokenVerifier  customMiddleware.TokenVerifier
	Metrics        *metrics.Metrics
	Logger         *zap.Logger
	AllowedOrigins []string
}

// NewRouter создает и настраивает роутер
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.RequestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}

	// Operational
	r.Get("/health", cfg.HealthHandler.Check)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	// Public
	r.Get("/site", cfg.SiteHandler.Get)
	r.Get("/events", cfg.EventHandler.ListEvents)
	r.Get("/events/calendar.ics", cfg.EventHandler.Calendar)
	r.Get("/team", cfg.TeamHandler.GetHierarchy)
	r.Post("/contact", cfg.ContactHandler.Submit)
	r.Post("/subscribers", cfg.NewsletterHandler.Subscribe)

	// Visitor sessions
	r.Route("/session", func(r chi.Router) {
		r.Post("/", cfg.SessionHandler.Start)
		r.Get("/{id}", cfg.SessionHandler.Get)
		r.Post("/{id}/hero-played", cfg.SessionHandler.MarkHeroPlayed)
		r.Delete("/{id}", cfg.SessionHandler.End)
	})

	// Admin
	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", cfg.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(customMiddleware.AdminAuth(cfg.TokenVerifier))

			r.Get("/dashboard", cfg.StatisticsHandler.GetDashboard)

			r.Get("/events", cfg.EventHandler.AdminListEvents)
			r.Post("/events", cfg.EventHandler.CreateEvent)
			r.Get("/events/{id}", cfg.EventHandler.AdminGetEvent)
			r.Put("/events/{id}", cfg.EventHandler.UpdateEvent)
			r.Delete("/events/{id}", cfg.EventHandler.DeleteEvent)

			r.Get("/team", cfg.TeamHandler.ListMembers)
			r.Post("/team", cfg.TeamHandler.CreateMember)
			r.Get("/team/{id}", cfg.TeamHandler.GetMember)
			r.Put("/team/{id}", cfg.TeamHandler.UpdateMember)
			r.Delete("/team/{id}", cfg.TeamHandler.DeleteMember)

			r.Get("/contact-submissions", cfg.ContactHandler.ListSubmissions)

			r.Get("/subscribers", cfg.NewsletterHandler.ListSubscribers)
			r.Post("/newsletter", cfg.NewsletterHandler.SendNewsletter)
			r.Get("/newsletters", cfg.NewsletterHandler.ListNewsletters)
		})
	})

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	})

	return c.Handler(r)
}
