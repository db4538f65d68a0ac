package usecase

import (
	"context"

	"github.com/eastlane-store/go-backend/internal/domain"
)

// Transactor выполняет функцию в рамках одной транзакции БД.
// Репозитории внутри fn берут транзакцию из контекста (pkg/tr).
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ProductRepository interface {
	Query(ctx context.Context, q *CatalogQuery) ([]ProductCard, int64, error)
	GetCard(ctx context.Context, id int64) (*ProductCard, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	SetImageKeys(ctx context.Context, id int64, keys []string) error
	Archive(ctx context.Context, id int64) error
}

type OrderRepository interface {
	InsertOrder(ctx context.Context, order *domain.Order) (int64, error)
	InsertOrderItems(ctx context.Context, orderID int64, items []domain.OrderItem) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, req *OrderListReq) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

type DictionaryRepository interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	CreateBrand(ctx context.Context, brand *domain.Brand) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListSizes(ctx context.Context) ([]domain.SizeOption, error)
	CreateSize(ctx context.Context, value string) (*domain.SizeOption, error)
	DeleteSize(ctx context.Context, id int64) error

	ListColors(ctx context.Context) ([]domain.ColorOption, error)
	CreateColor(ctx context.Context, value, label string) (*domain.ColorOption, error)
	DeleteColor(ctx context.Context, id int64) error
}

type ContentRepository interface {
	GetHero(ctx context.Context) (*domain.HeroBlock, error)
	SetHero(ctx context.Context, hero *domain.HeroBlock) error
	GetTariffs(ctx context.Context) ([]domain.DeliveryTariff, error)
	SetTariffs(ctx context.Context, tariffs []domain.DeliveryTariff) error
	GetRate(ctx context.Context) (*domain.ExchangeRate, error)
	SetRate(ctx context.Context, rate *domain.ExchangeRate) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProduct(ctx context.Context, id int64) (*ProductCard, error)
	SetProduct(ctx context.Context, card *ProductCard) error
	DeleteProducts(ctx context.Context, ids []int64) error
}
