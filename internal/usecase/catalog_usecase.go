package usecase

import (
	"context"
	"time"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/internal/pricing"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/eastlane-store/go-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// CatalogUseCase отвечает за витрину: выборка каталога по фильтру,
// карточка товара с кэшем и справочники фасетов.
type CatalogUseCase struct {
	productRepo ProductRepository
	dictRepo    DictionaryRepository
	contentRepo ContentRepository
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	dictRepo DictionaryRepository,
	contentRepo ContentRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		dictRepo:    dictRepo,
		contentRepo: contentRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// Query возвращает страницу каталога по каноническому фильтру.
func (c *CatalogUseCase) Query(ctx context.Context, q *CatalogQuery) (*CatalogRes, error) {
	const op = "CatalogUseCase.Query"

	cards, total, err := c.productRepo.Query(ctx, q)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	rate := c.currentRate(ctx)
	for i := range cards {
		cards[i].DisplayPrice = pricing.FormatDual(cards[i].Price, cards[i].Currency, rate)
	}

	return &CatalogRes{Products: cards, Total: total}, nil
}

// GetProductCard возвращает карточку товара, используя кэш поверх БД.
func (c *CatalogUseCase) GetProductCard(ctx context.Context, id int64) (*ProductCard, error) {
	const op = "CatalogUseCase.GetProductCard"

	card, err := c.cacheRepo.GetProduct(ctx, id)
	if err != nil {
		c.logger.Warnf("product cache lookup failed: %v", e.Wrap(op, err))
	}

	if card == nil {
		card, err = c.productRepo.GetCard(ctx, id)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое наполнение кэша
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := c.cacheRepo.SetProduct(bgCtx, card); err != nil {
				c.logger.Warnf("failed to cache product in background: %v", e.Wrap(op, err))
			}
		}()
	}

	card.DisplayPrice = pricing.FormatDual(card.Price, card.Currency, c.currentRate(ctx))
	return card, nil
}

// GetFacets возвращает справочники для панели фильтров.
func (c *CatalogUseCase) GetFacets(ctx context.Context) (*FacetsRes, error) {
	const op = "CatalogUseCase.GetFacets"

	brands, err := c.dictRepo.ListBrands(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	categories, err := c.dictRepo.ListCategories(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	sizes, err := c.dictRepo.ListSizes(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	colors, err := c.dictRepo.ListColors(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &FacetsRes{
		Brands:     brands,
		Categories: categories,
		Sizes:      sizes,
		Colors:     colors,
		Seasons: []domain.Season{
			domain.SeasonWinter, domain.SeasonSpring,
			domain.SeasonSummer, domain.SeasonAutumn,
		},
	}, nil
}

func (c *CatalogUseCase) currentRate(ctx context.Context) decimal.Decimal {
	rate, err := c.contentRepo.GetRate(ctx)
	if err != nil {
		c.logger.Warnf("exchange rate unavailable for display: %v", err)
		return decimal.Decimal{}
	}

	return rate.CnyPerRub
}
