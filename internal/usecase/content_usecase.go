package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// ContentUseCase — редактируемый контент витрины: hero-блок,
// тарифы доставки и курс валют.
type ContentUseCase struct {
	contentRepo ContentRepository
}

func NewContentUC(contentRepo ContentRepository) *ContentUseCase {
	return &ContentUseCase{contentRepo: contentRepo}
}

func (c *ContentUseCase) GetContent(ctx context.Context) (*ContentRes, error) {
	const op = "ContentUseCase.GetContent"

	hero, err := c.contentRepo.GetHero(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	tariffs, err := c.contentRepo.GetTariffs(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	rate, err := c.contentRepo.GetRate(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ContentRes{
		Hero:    *hero,
		Tariffs: tariffs,
		Rate:    *rate,
	}, nil
}

func (c *ContentUseCase) UpdateHero(ctx context.Context, hero *domain.HeroBlock) error {
	const op = "ContentUseCase.UpdateHero"

	if strings.TrimSpace(hero.Title) == "" {
		return e.ErrMissingFields
	}

	if err := c.contentRepo.SetHero(ctx, hero); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *ContentUseCase) UpdateTariffs(ctx context.Context, tariffs []domain.DeliveryTariff) error {
	const op = "ContentUseCase.UpdateTariffs"

	for _, t := range tariffs {
		if strings.TrimSpace(t.Name) == "" {
			return e.ErrMissingFields
		}
		if t.PriceRub.IsNegative() {
			return e.ErrPriceMustBePositive
		}
	}

	if err := c.contentRepo.SetTariffs(ctx, tariffs); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// UpdateRate меняет курс cnyPerRub. Неположительный курс отклоняется:
// нулевое значение сломало бы рублёвые эквиваленты по всей витрине.
func (c *ContentUseCase) UpdateRate(ctx context.Context, cnyPerRub string) error {
	const op = "ContentUseCase.UpdateRate"

	rate, err := decimal.NewFromString(strings.TrimSpace(cnyPerRub))
	if err != nil {
		return e.ErrRateMustBePositive
	}

	if !rate.IsPositive() {
		return e.ErrRateMustBePositive
	}

	if err := c.contentRepo.SetRate(ctx, &domain.ExchangeRate{
		CnyPerRub: rate,
		UpdatedAt: time.Now().UTC(),
	}); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
