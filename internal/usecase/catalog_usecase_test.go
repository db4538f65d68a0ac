package usecase

import (
	"context"
	"testing"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCard() *ProductCard {
	return &ProductCard{
		ID:       1,
		Name:     "Куртка",
		Slug:     "kurtka",
		Price:    dec("3500"),
		Currency: domain.CurrencyRUB,
	}
}

func TestGetProductCard_CacheHitSkipsDatabase(t *testing.T) {
	products := &mockProductRepo{err: assert.AnError} // БД недоступна
	cache := &mockCacheRepo{card: sampleCard()}
	uc := NewCatalogUC(products, &mockDictionaryRepo{}, &mockContentRepo{}, cache, noopLogger{})

	card, err := uc.GetProductCard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Куртка", card.Name)
	assert.NotEmpty(t, card.DisplayPrice)
}

func TestGetProductCard_CacheMissFallsBackToDatabase(t *testing.T) {
	products := &mockProductRepo{card: sampleCard()}
	cache := &mockCacheRepo{err: assert.AnError}
	uc := NewCatalogUC(products, &mockDictionaryRepo{}, &mockContentRepo{}, cache, noopLogger{})

	card, err := uc.GetProductCard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), card.ID)
}

func TestQuery_FillsDisplayPrice(t *testing.T) {
	products := &mockProductRepo{card: sampleCard()}
	uc := NewCatalogUC(
		products,
		&mockDictionaryRepo{},
		&mockContentRepo{rate: &domain.ExchangeRate{CnyPerRub: dec("0.08")}},
		&mockCacheRepo{},
		noopLogger{},
	)

	res, err := uc.Query(context.Background(), &CatalogQuery{Limit: 20})
	require.NoError(t, err)
	require.Len(t, res.Products, 1)
	assert.Equal(t, int64(1), res.Total)
	// Рублёвая цена показывается с юаневым эквивалентом по курсу
	assert.Contains(t, res.Products[0].DisplayPrice, "₽")
	assert.Contains(t, res.Products[0].DisplayPrice, "¥")
}

func TestQuery_RateUnavailableShowsNativeOnly(t *testing.T) {
	products := &mockProductRepo{card: sampleCard()}
	uc := NewCatalogUC(
		products,
		&mockDictionaryRepo{},
		&mockContentRepo{err: assert.AnError},
		&mockCacheRepo{},
		noopLogger{},
	)

	res, err := uc.Query(context.Background(), &CatalogQuery{Limit: 20})
	require.NoError(t, err)
	assert.Contains(t, res.Products[0].DisplayPrice, "₽")
	assert.NotContains(t, res.Products[0].DisplayPrice, "¥")
}

func TestGetFacets_ReturnsAllSeasons(t *testing.T) {
	dict := &mockDictionaryRepo{
		brands: []domain.Brand{{ID: 1, Name: "Eastlane", Slug: "eastlane"}},
		sizes:  []domain.SizeOption{{ID: 1, Value: "42"}},
	}
	uc := NewCatalogUC(&mockProductRepo{}, dict, &mockContentRepo{}, &mockCacheRepo{}, noopLogger{})

	res, err := uc.GetFacets(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Brands, 1)
	assert.ElementsMatch(t, []domain.Season{
		domain.SeasonWinter, domain.SeasonSpring,
		domain.SeasonSummer, domain.SeasonAutumn,
	}, res.Seasons)
}
