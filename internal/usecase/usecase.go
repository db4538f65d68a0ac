package usecase

import (
	"context"

	"github.com/eastlane-store/go-backend/internal/domain"
)

type CatalogUC interface {
	Query(ctx context.Context, q *CatalogQuery) (*CatalogRes, error)
	GetProductCard(ctx context.Context, id int64) (*ProductCard, error)
	GetFacets(ctx context.Context) (*FacetsRes, error)
}

type CheckoutUC interface {
	PlaceOrder(ctx context.Context, req *CheckoutReq) (*CheckoutRes, error)
}

type OrdersUC interface {
	List(ctx context.Context, req *OrderListReq) ([]domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	ChangeStatus(ctx context.Context, id int64, status string) error
}

type ProductsAdminUC interface {
	AddProduct(ctx context.Context, req *SaveProductReq) (int64, error)
	UpdateProduct(ctx context.Context, id int64, req *SaveProductReq) error
	ArchiveProduct(ctx context.Context, id int64) error
}

type DictionaryUC interface {
	CreateBrand(ctx context.Context, name, slug string) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, id int64) error
	CreateCategory(ctx context.Context, name, slug string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	CreateSize(ctx context.Context, value string) (*domain.SizeOption, error)
	DeleteSize(ctx context.Context, id int64) error
	CreateColor(ctx context.Context, value, label string) (*domain.ColorOption, error)
	DeleteColor(ctx context.Context, id int64) error
}

type ContentUC interface {
	GetContent(ctx context.Context) (*ContentRes, error)
	UpdateHero(ctx context.Context, hero *domain.HeroBlock) error
	UpdateTariffs(ctx context.Context, tariffs []domain.DeliveryTariff) error
	UpdateRate(ctx context.Context, cnyPerRub string) error
}
