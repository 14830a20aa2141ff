package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nordmart/storefront-backend/api/controllers"
	"github.com/nordmart/storefront-backend/api/middleware"
	catalogsvc "github.com/nordmart/storefront-backend/internal/catalog"
	identitysvc "github.com/nordmart/storefront-backend/internal/identity"
	marketingsvc "github.com/nordmart/storefront-backend/internal/marketing"
	ordersvc "github.com/nordmart/storefront-backend/internal/orders"
	productsvc "github.com/nordmart/storefront-backend/internal/products"
	reviewsvc "github.com/nordmart/storefront-backend/internal/reviews"
	"github.com/nordmart/storefront-backend/pkg/config"
	"github.com/nordmart/storefront-backend/pkg/logger"
	"github.com/nordmart/storefront-backend/pkg/metrics"
	"github.com/nordmart/storefront-backend/pkg/redis"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          controllers.Pinger
	Redis       *redis.Client
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics

	Catalog   catalogsvc.Service
	Products  productsvc.Service
	Identity  identitysvc.Service
	Reviews   reviewsvc.Service
	Marketing marketingsvc.Service
	Orders    ordersvc.Service
}

// NewRouter wires the storefront API.
func NewRouter(deps Deps) http.Handler {
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	writeLimit := passThrough
	if deps.Redis != nil && deps.Config != nil {
		policy := middleware.NewWriteRateLimitPolicy(
			"storefront_write",
			deps.Config.WriteLimit.Window,
			deps.Config.WriteLimit.IPLimit,
			deps.Config.WriteLimit.DeviceLimit,
		)
		writeLimit = middleware.WriteRateLimit(policy, deps.Redis, logg)
	}

	r.Get("/healthz", controllers.HealthReady(deps.DB, redisPinger(deps.Redis)))
	r.Get("/healthz/live", controllers.HealthLive())
	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.With(writeLimit).Post("/identify", controllers.IdentifyUser(deps.Identity, logg))
			r.Get("/confirm/{token}", controllers.ConfirmUser(deps.Identity, logg))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.ListCategories(deps.Catalog, logg))
			r.Get("/tree", controllers.CategoryTree(deps.Catalog, logg))
			r.Get("/{id}/subcategories", controllers.Subcategories(deps.Catalog, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(deps.Products, logg))
			r.Get("/{id}", controllers.ProductDetail(deps.Products, logg))
			r.Get("/{id}/related", controllers.RelatedProducts(deps.Products, logg))
			r.Get("/{id}/reviews", controllers.ListProductReviews(deps.Reviews, logg))
			r.With(writeLimit).Post("/{id}/reviews", controllers.CreateProductReview(deps.Reviews, logg))
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/top", controllers.TopReviews(deps.Reviews, logg))
			r.With(writeLimit).Post("/{id}/like", controllers.LikeReview(deps.Reviews, logg))
		})

		r.Get("/promotions", controllers.Promotions(deps.Marketing, logg))
		r.Get("/hero-products", controllers.HeroProducts(deps.Marketing, logg))

		r.With(writeLimit).Post("/orders", controllers.CreateOrder(deps.Orders, logg))
	})

	return r
}

func passThrough(next http.Handler) http.Handler {
	return next
}

// redisPinger keeps the nil check on the concrete type so a disabled cache
// stays out of the readiness report.
func redisPinger(client *redis.Client) controllers.Pinger {
	if client == nil {
		return nil
	}
	return client
}
