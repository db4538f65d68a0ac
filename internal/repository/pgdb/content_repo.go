package pgdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// Ключи записей в content_blocks.
const (
	contentKeyHero    = "hero"
	contentKeyTariffs = "delivery_tariffs"
	contentKeyRate    = "exchange_rate"
)

// ContentRepo хранит редактируемый контент витрины в таблице
// content_blocks: по одной JSONB-записи на блок.
type ContentRepo struct {
	pool *pgxpool.Pool
}

func NewContentRepo(pool *pgxpool.Pool) *ContentRepo {
	return &ContentRepo{pool: pool}
}

func (c *ContentRepo) GetHero(ctx context.Context) (*domain.HeroBlock, error) {
	var hero domain.HeroBlock
	if err := c.get(ctx, contentKeyHero, &hero); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &hero, nil
}

func (c *ContentRepo) SetHero(ctx context.Context, hero *domain.HeroBlock) error {
	if err := c.set(ctx, contentKeyHero, hero); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *ContentRepo) GetTariffs(ctx context.Context) ([]domain.DeliveryTariff, error) {
	var tariffs []domain.DeliveryTariff
	if err := c.get(ctx, contentKeyTariffs, &tariffs); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return tariffs, nil
}

func (c *ContentRepo) SetTariffs(ctx context.Context, tariffs []domain.DeliveryTariff) error {
	if err := c.set(ctx, contentKeyTariffs, tariffs); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *ContentRepo) GetRate(ctx context.Context) (*domain.ExchangeRate, error) {
	var rate domain.ExchangeRate
	if err := c.get(ctx, contentKeyRate, &rate); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &rate, nil
}

func (c *ContentRepo) SetRate(ctx context.Context, rate *domain.ExchangeRate) error {
	if err := c.set(ctx, contentKeyRate, rate); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *ContentRepo) get(ctx context.Context, key string, dst any) error {
	var raw []byte
	err := c.pool.QueryRow(ctx, `SELECT value FROM content_blocks WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("content block %q: %w", key, e.ErrNotFound)
		}

		return err
	}

	return json.Unmarshal(raw, dst)
}

func (c *ContentRepo) set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO content_blocks (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	_, err = c.pool.Exec(ctx, query, key, raw)
	return err
}
