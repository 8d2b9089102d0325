package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andeangas/gasline-backend/api/controllers"
	"github.com/andeangas/gasline-backend/api/middleware"
	"github.com/andeangas/gasline-backend/internal/auth"
	"github.com/andeangas/gasline-backend/internal/catalog"
	"github.com/andeangas/gasline-backend/internal/dashboard"
	"github.com/andeangas/gasline-backend/internal/notifications"
	"github.com/andeangas/gasline-backend/internal/orders"
	"github.com/andeangas/gasline-backend/internal/profile"
	"github.com/andeangas/gasline-backend/pkg/auth/session"
	"github.com/andeangas/gasline-backend/pkg/config"
	"github.com/andeangas/gasline-backend/pkg/db"
	"github.com/andeangas/gasline-backend/pkg/enums"
	"github.com/andeangas/gasline-backend/pkg/logger"
	"github.com/andeangas/gasline-backend/pkg/metrics"
	"github.com/andeangas/gasline-backend/pkg/redis"
)

// Services bundles the wired application services the router mounts.
type Services struct {
	Auth          auth.Service
	Register      auth.RegisterService
	Profile       profile.Service
	Catalog       catalog.Service
	Orders        orders.Service
	Dashboard     dashboard.Service
	Notifications notifications.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessionChecker session.AccessSessionChecker,
	svcs Services,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(),
		middleware.Logging(logg),
	)
	if httpMetrics != nil {
		r.Use(httpMetrics.Middleware)
	}

	// Route-level middlewares run after chi resolves the full pattern,
	// which the idempotency rules match on.
	idem := passthrough
	loginLimit := passthrough
	registerLimit := passthrough
	if redisClient != nil {
		idem = middleware.Idempotency(redisClient, logg)
		loginLimit = middleware.AuthRateLimit(middleware.NewAuthRateLimitPolicy(
			"login",
			cfg.AuthRateLimit.LoginWindow,
			cfg.AuthRateLimit.LoginIPLimit,
			cfg.AuthRateLimit.LoginEmailLimit,
		), redisClient, logg)
		registerLimit = middleware.AuthRateLimit(middleware.NewAuthRateLimitPolicy(
			"register",
			cfg.AuthRateLimit.RegisterWindow,
			cfg.AuthRateLimit.RegisterIPLimit,
			cfg.AuthRateLimit.RegisterEmailLimit,
		), redisClient, logg)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(loginLimit).Post("/login", controllers.AuthLogin(svcs.Auth, logg))
		r.With(registerLimit, idem).Post("/register", controllers.AuthRegister(svcs.Register, svcs.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(svcs.Auth, logg))
		r.Post("/logout", controllers.AuthLogout(svcs.Auth, cfg.JWT, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))

		r.Get("/profile", controllers.ProfileGet(svcs.Profile, logg))
		r.With(idem).Put("/profile/addresses", controllers.ProfileUpdateAddresses(svcs.Profile, logg))

		r.Get("/catalog", controllers.CatalogList(svcs.Catalog, logg))

		r.With(idem).Post("/orders", controllers.OrderSubmit(svcs.Orders, logg))
		r.Get("/orders", controllers.OrderList(svcs.Orders, logg))
		r.Get("/orders/{orderId}", controllers.OrderDetail(svcs.Orders, logg))

		r.Get("/dashboard", controllers.DashboardOverview(svcs.Dashboard, logg))

		r.Get("/notifications", controllers.ListNotifications(svcs.Notifications, logg))
		r.With(idem).Post("/notifications/{notificationId}/read", controllers.MarkNotificationRead(svcs.Notifications, logg))
		r.With(idem).Post("/notifications/read-all", controllers.MarkAllNotificationsRead(svcs.Notifications, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))
		r.Use(middleware.RequireRole(enums.UserRoleAdmin, logg))

		r.With(idem).Post("/products", controllers.AdminProductCreate(svcs.Catalog, logg))
		r.Patch("/products/{productId}", controllers.AdminProductUpdate(svcs.Catalog, logg))
		r.Delete("/products/{productId}", controllers.AdminProductDelete(svcs.Catalog, logg))

		r.With(idem).Post("/orders/{orderId}/status", controllers.AdminOrderTransition(svcs.Orders, svcs.Notifications, logg))

		r.Get("/clients", controllers.AdminClientList(svcs.Dashboard, logg))
		r.Get("/clients/{clientId}", controllers.AdminClientReport(svcs.Dashboard, logg))
	})

	return r
}

func passthrough(next http.Handler) http.Handler { return next }
