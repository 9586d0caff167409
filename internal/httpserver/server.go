package httpserver

import (
	"net/http"
	"time"

	"github.com/devkeeb/gearlog/internal/auth"
	invH "github.com/devkeeb/gearlog/internal/inventory/handler"
	memH "github.com/devkeeb/gearlog/internal/member/handler"
	prodH "github.com/devkeeb/gearlog/internal/product/handler"
	revH "github.com/devkeeb/gearlog/internal/review/handler"
	"github.com/devkeeb/gearlog/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handlers struct {
	Product   *prodH.ProductHandler
	Review    *revH.ReviewHandler
	Inventory *invH.InventoryHandler
	Member    *memH.MemberHandler
}

// NewRouter assembles the middleware chain and the API routes. Auth is
// applied per route group; public listing endpoints stay outside it.
func NewRouter(h Handlers, tokens *auth.TokenManager, log logger.ZapLogger, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Location"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/login", h.Member.Login)

		r.Get("/products", h.Product.ListProducts)
		r.Get("/products/{productID}", h.Product.GetProduct)
		r.Get("/products/{productID}/reviews", h.Review.ListByProduct)
		r.Get("/reviews", h.Review.ListAll)

		r.Get("/members/{memberID}/inventoryProducts", h.Inventory.ListByMember)

		r.Group(func(r chi.Router) {
			r.Use(Authenticator(tokens))

			r.Post("/products/{productID}/reviews", h.Review.SubmitReview)

			r.Get("/members/me", h.Member.Me)
			r.Patch("/members/me", h.Member.UpdateProfile)

			r.Get("/members/inventoryProducts", h.Inventory.ListMine)
			r.Patch("/members/inventoryProducts", h.Inventory.SetRepresentative)
		})
	})

	return r
}
