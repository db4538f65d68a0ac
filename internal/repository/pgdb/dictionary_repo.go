package pgdb

import (
	"context"
	"fmt"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/internal/repository/pgdb/converter"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// DictionaryRepo хранит справочники каталога: бренды, категории,
// размеры и цвета.
type DictionaryRepo struct {
	pool *pgxpool.Pool
}

func NewDictionaryRepo(pool *pgxpool.Pool) *DictionaryRepo {
	return &DictionaryRepo{pool: pool}
}

func (d *DictionaryRepo) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	query := `SELECT id, name, slug, created_at, updated_at FROM brands ORDER BY name`

	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	brands := make([]domain.Brand, 0)
	for rows.Next() {
		var model converter.BrandModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Slug, &model.CreatedAt, &model.UpdatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		brands = append(brands, domain.Brand{
			ID: model.ID, Name: model.Name, Slug: model.Slug,
			CreatedAt: model.CreatedAt, UpdatedAt: model.UpdatedAt,
		})
	}

	return brands, rows.Err()
}

// CreateBrand идемпотентно создаёт бренд по slug.
func (d *DictionaryRepo) CreateBrand(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	query := `
		INSERT INTO brands (name, slug) VALUES ($1, $2)
		ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()
		RETURNING id, name, slug, created_at, updated_at;
	`

	var model converter.BrandModel
	if err := d.pool.QueryRow(ctx, query, brand.Name, brand.Slug).
		Scan(&model.ID, &model.Name, &model.Slug, &model.CreatedAt, &model.UpdatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &domain.Brand{
		ID: model.ID, Name: model.Name, Slug: model.Slug,
		CreatedAt: model.CreatedAt, UpdatedAt: model.UpdatedAt,
	}, nil
}

func (d *DictionaryRepo) DeleteBrand(ctx context.Context, id int64) error {
	return d.deleteByID(ctx, "brands", id)
}

func (d *DictionaryRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, name, slug, created_at, updated_at FROM categories ORDER BY name`

	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Slug, &model.CreatedAt, &model.UpdatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		categories = append(categories, domain.Category{
			ID: model.ID, Name: model.Name, Slug: model.Slug,
			CreatedAt: model.CreatedAt, UpdatedAt: model.UpdatedAt,
		})
	}

	return categories, rows.Err()
}

// CreateCategory идемпотентно создаёт категорию по slug.
func (d *DictionaryRepo) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (name, slug) VALUES ($1, $2)
		ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()
		RETURNING id, name, slug, created_at, updated_at;
	`

	var model converter.CategoryModel
	if err := d.pool.QueryRow(ctx, query, category.Name, category.Slug).
		Scan(&model.ID, &model.Name, &model.Slug, &model.CreatedAt, &model.UpdatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &domain.Category{
		ID: model.ID, Name: model.Name, Slug: model.Slug,
		CreatedAt: model.CreatedAt, UpdatedAt: model.UpdatedAt,
	}, nil
}

func (d *DictionaryRepo) DeleteCategory(ctx context.Context, id int64) error {
	return d.deleteByID(ctx, "categories", id)
}

func (d *DictionaryRepo) ListSizes(ctx context.Context) ([]domain.SizeOption, error) {
	query := `SELECT id, value FROM size_options ORDER BY value`

	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	sizes := make([]domain.SizeOption, 0)
	for rows.Next() {
		var opt domain.SizeOption
		if err := rows.Scan(&opt.ID, &opt.Value); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		sizes = append(sizes, opt)
	}

	return sizes, rows.Err()
}

func (d *DictionaryRepo) CreateSize(ctx context.Context, value string) (*domain.SizeOption, error) {
	query := `
		INSERT INTO size_options (value) VALUES ($1)
		ON CONFLICT (value) DO UPDATE SET value = EXCLUDED.value
		RETURNING id, value;
	`

	var opt domain.SizeOption
	if err := d.pool.QueryRow(ctx, query, value).Scan(&opt.ID, &opt.Value); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &opt, nil
}

func (d *DictionaryRepo) DeleteSize(ctx context.Context, id int64) error {
	return d.deleteByID(ctx, "size_options", id)
}

func (d *DictionaryRepo) ListColors(ctx context.Context) ([]domain.ColorOption, error) {
	query := `SELECT id, value, label FROM color_options ORDER BY value`

	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	colors := make([]domain.ColorOption, 0)
	for rows.Next() {
		var opt domain.ColorOption
		if err := rows.Scan(&opt.ID, &opt.Value, &opt.Label); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		colors = append(colors, opt)
	}

	return colors, rows.Err()
}

func (d *DictionaryRepo) CreateColor(ctx context.Context, value, label string) (*domain.ColorOption, error) {
	query := `
		INSERT INTO color_options (value, label) VALUES ($1, $2)
		ON CONFLICT (value) DO UPDATE SET label = EXCLUDED.label
		RETURNING id, value, label;
	`

	var opt domain.ColorOption
	if err := d.pool.QueryRow(ctx, query, value, label).Scan(&opt.ID, &opt.Value, &opt.Label); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &opt, nil
}

func (d *DictionaryRepo) DeleteColor(ctx context.Context, id int64) error {
	return d.deleteByID(ctx, "color_options", id)
}

func (d *DictionaryRepo) deleteByID(ctx context.Context, table string, id int64) error {
	result, err := d.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}
