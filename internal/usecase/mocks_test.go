package usecase

import (
	"context"

	"github.com/eastlane-store/go-backend/internal/domain"
)

// noopLogger гасит логи в тестах.
type noopLogger struct{}

func (noopLogger) Debugf(string, ...any)        {}
func (noopLogger) Infof(string, ...any)         {}
func (noopLogger) Warnf(string, ...any)         {}
func (noopLogger) Errorf(error, string, ...any) {}

// fakeTransactor выполняет fn без настоящей транзакции.
type fakeTransactor struct {
	err error
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type mockProductRepo struct {
	products []domain.Product
	card     *ProductCard
	err      error

	createdID  int64
	imageKeys  []string
	setKeysErr error
}

func (m *mockProductRepo) Query(context.Context, *CatalogQuery) ([]ProductCard, int64, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	if m.card == nil {
		return nil, 0, nil
	}
	return []ProductCard{*m.card}, 1, nil
}

func (m *mockProductRepo) GetCard(context.Context, int64) (*ProductCard, error) {
	return m.card, m.err
}

func (m *mockProductRepo) GetByIDs(context.Context, []int64) ([]domain.Product, error) {
	return m.products, m.err
}

func (m *mockProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	created := *p
	created.ID = m.createdID
	return &created, nil
}

func (m *mockProductRepo) Update(context.Context, *domain.Product) error { return m.err }

func (m *mockProductRepo) SetImageKeys(_ context.Context, _ int64, keys []string) error {
	if m.setKeysErr != nil {
		return m.setKeysErr
	}
	m.imageKeys = keys
	return m.err
}

func (m *mockProductRepo) Archive(context.Context, int64) error { return m.err }

type mockOrderRepo struct {
	order *domain.Order

	insertedOrder *domain.Order
	insertedItems []domain.OrderItem
	updatedStatus domain.OrderStatus

	insertErr error
	itemsErr  error
	getErr    error
	updateErr error
}

func (m *mockOrderRepo) InsertOrder(_ context.Context, o *domain.Order) (int64, error) {
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	m.insertedOrder = o
	return 42, nil
}

func (m *mockOrderRepo) InsertOrderItems(_ context.Context, _ int64, items []domain.OrderItem) error {
	if m.itemsErr != nil {
		return m.itemsErr
	}
	m.insertedItems = items
	return nil
}

func (m *mockOrderRepo) GetByID(context.Context, int64) (*domain.Order, error) {
	return m.order, m.getErr
}

func (m *mockOrderRepo) List(context.Context, *OrderListReq) ([]domain.Order, error) {
	if m.order == nil {
		return nil, m.getErr
	}
	return []domain.Order{*m.order}, m.getErr
}

func (m *mockOrderRepo) UpdateStatus(_ context.Context, _ int64, status domain.OrderStatus) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedStatus = status
	return nil
}

type mockOutboxRepo struct {
	created []*OutboxEvent
	err     error
}

func (m *mockOutboxRepo) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, event)
	return event, nil
}

func (m *mockOutboxRepo) GetAndMarkAsProcessing(context.Context, int) ([]*OutboxEvent, error) {
	return m.created, m.err
}

func (m *mockOutboxRepo) MarkAsProcessed(context.Context, int64) error { return m.err }

type mockContentRepo struct {
	rate    *domain.ExchangeRate
	hero    *domain.HeroBlock
	tariffs []domain.DeliveryTariff
	err     error

	savedRate *domain.ExchangeRate
}

func (m *mockContentRepo) GetHero(context.Context) (*domain.HeroBlock, error) {
	return m.hero, m.err
}

func (m *mockContentRepo) SetHero(context.Context, *domain.HeroBlock) error { return m.err }

func (m *mockContentRepo) GetTariffs(context.Context) ([]domain.DeliveryTariff, error) {
	return m.tariffs, m.err
}

func (m *mockContentRepo) SetTariffs(context.Context, []domain.DeliveryTariff) error { return m.err }

func (m *mockContentRepo) GetRate(context.Context) (*domain.ExchangeRate, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.rate == nil {
		return &domain.ExchangeRate{}, nil
	}
	return m.rate, nil
}

func (m *mockContentRepo) SetRate(_ context.Context, rate *domain.ExchangeRate) error {
	m.savedRate = rate
	return m.err
}

type mockDictionaryRepo struct {
	brands     []domain.Brand
	categories []domain.Category
	sizes      []domain.SizeOption
	colors     []domain.ColorOption
	err        error
}

func (m *mockDictionaryRepo) ListBrands(context.Context) ([]domain.Brand, error) {
	return m.brands, m.err
}

func (m *mockDictionaryRepo) CreateBrand(_ context.Context, brand *domain.Brand) (*domain.Brand, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.brands = append(m.brands, *brand)
	return brand, nil
}

func (m *mockDictionaryRepo) DeleteBrand(context.Context, int64) error { return m.err }

func (m *mockDictionaryRepo) ListCategories(context.Context) ([]domain.Category, error) {
	return m.categories, m.err
}

func (m *mockDictionaryRepo) CreateCategory(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.categories = append(m.categories, *category)
	return category, nil
}

func (m *mockDictionaryRepo) DeleteCategory(context.Context, int64) error { return m.err }

func (m *mockDictionaryRepo) ListSizes(context.Context) ([]domain.SizeOption, error) {
	return m.sizes, m.err
}

func (m *mockDictionaryRepo) CreateSize(_ context.Context, value string) (*domain.SizeOption, error) {
	if m.err != nil {
		return nil, m.err
	}
	opt := domain.SizeOption{ID: int64(len(m.sizes) + 1), Value: value}
	m.sizes = append(m.sizes, opt)
	return &opt, nil
}

func (m *mockDictionaryRepo) DeleteSize(context.Context, int64) error { return m.err }

func (m *mockDictionaryRepo) ListColors(context.Context) ([]domain.ColorOption, error) {
	return m.colors, m.err
}

func (m *mockDictionaryRepo) CreateColor(_ context.Context, value, label string) (*domain.ColorOption, error) {
	if m.err != nil {
		return nil, m.err
	}
	opt := domain.ColorOption{ID: int64(len(m.colors) + 1), Value: value, Label: label}
	m.colors = append(m.colors, opt)
	return &opt, nil
}

func (m *mockDictionaryRepo) DeleteColor(context.Context, int64) error { return m.err }

type mockImagesInfra struct {
	keys []string
	err  error

	uploaded  int
	cleanedUp []string
}

func (m *mockImagesInfra) UploadImages(_ context.Context, req *UploadImagesReq) (*UploadImagesRes, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.uploaded += len(req.Images)
	return NewUploadImagesRes(m.keys), nil
}

func (m *mockImagesInfra) CleanupImages(keys []string) {
	m.cleanedUp = append(m.cleanedUp, keys...)
}

type mockCacheRepo struct {
	card    *ProductCard
	deleted []int64
	err     error
}

func (m *mockCacheRepo) GetProduct(context.Context, int64) (*ProductCard, error) {
	return m.card, m.err
}

func (m *mockCacheRepo) SetProduct(context.Context, *ProductCard) error { return m.err }

func (m *mockCacheRepo) DeleteProducts(_ context.Context, ids []int64) error {
	m.deleted = append(m.deleted, ids...)
	return m.err
}
