package http

import (
	"github.com/eastlane-store/go-backend/internal/usecase"
	"github.com/eastlane-store/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Router struct {
	router     *chi.Mux
	adminToken string
	logger     logger.Logger
}

func NewRouter(router *chi.Mux, adminToken string, logger logger.Logger) *Router {
	return &Router{router: router, adminToken: adminToken, logger: logger}
}

// Init вешает публичные маршруты витрины и админку под токеном.
func (r *Router) Init(
	catalogUC usecase.CatalogUC,
	checkoutUC usecase.CheckoutUC,
	ordersUC usecase.OrdersUC,
	productsUC usecase.ProductsAdminUC,
	dictUC usecase.DictionaryUC,
	contentUC usecase.ContentUC,
) {
	catalogHandler := NewCatalogHandler(catalogUC, contentUC, r.logger)
	checkoutHandler := NewCheckoutHandler(checkoutUC, r.logger)
	orderHandler := NewAdminOrderHandler(ordersUC, r.logger)
	productHandler := NewAdminProductHandler(productsUC, r.logger)
	dictHandler := NewDictionaryHandler(dictUC, r.logger)
	contentHandler := NewContentHandler(contentUC, r.logger)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Route("/catalog", func(c chi.Router) {
			c.Get("/", catalogHandler.listCatalog)
			c.Get("/facets", catalogHandler.getFacets)
			c.Get("/{id}", catalogHandler.getProduct)
		})

		v1.Get("/content", catalogHandler.getContent)
		v1.Post("/checkout", checkoutHandler.placeOrder)

		v1.Route("/admin", func(admin chi.Router) {
			admin.Use(adminAuth(r.adminToken))

			admin.Route("/products", func(pr chi.Router) {
				pr.Post("/", productHandler.createProduct)
				pr.Put("/{id}", productHandler.updateProduct)
				pr.Delete("/{id}", productHandler.archiveProduct)
			})

			admin.Route("/orders", func(o chi.Router) {
				o.Get("/", orderHandler.listOrders)
				o.Get("/{id}", orderHandler.getOrder)
				o.Patch("/{id}/status", orderHandler.changeStatus)
			})

			admin.Route("/brands", func(b chi.Router) {
				b.Post("/", dictHandler.createBrand)
				b.Delete("/{id}", dictHandler.deleteBrand)
			})

			admin.Route("/categories", func(c chi.Router) {
				c.Post("/", dictHandler.createCategory)
				c.Delete("/{id}", dictHandler.deleteCategory)
			})

			admin.Route("/sizes", func(s chi.Router) {
				s.Post("/", dictHandler.createSize)
				s.Delete("/{id}", dictHandler.deleteSize)
			})

			admin.Route("/colors", func(c chi.Router) {
				c.Post("/", dictHandler.createColor)
				c.Delete("/{id}", dictHandler.deleteColor)
			})

			admin.Route("/content", func(c chi.Router) {
				c.Put("/hero", contentHandler.updateHero)
				c.Put("/tariffs", contentHandler.updateTariffs)
				c.Put("/rate", contentHandler.updateRate)
			})
		})
	})
}
