package pgdb

import (
	"context"
	"fmt"
	"strings"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/internal/repository/pgdb/converter"
	"github.com/eastlane-store/go-backend/internal/usecase"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/eastlane-store/go-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const cardColumns = `
	pr.id, pr.name, pr.slug, pr.description,
	br.name AS brand_name, cat.name AS category_name,
	pr.price, pr.currency, pr.sizes, pr.colors, pr.season, pr.image_keys
`

// Query возвращает страницу карточек по каноническому фильтру
// и общее число подходящих товаров.
func (p *ProductRepo) Query(ctx context.Context, q *usecase.CatalogQuery) ([]usecase.ProductCard, int64, error) {
	where, args := buildCatalogWhere(q)

	countQuery := `
		SELECT count(*)
		FROM products pr
		JOIN brands br ON pr.brand_id = br.id
		JOIN categories cat ON pr.category_id = cat.id
	` + where

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products pr
		JOIN brands br ON pr.brand_id = br.id
		JOIN categories cat ON pr.category_id = cat.id
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, cardColumns, where, orderClause(q.Sort), len(args)+1, len(args)+2)

	args = append(args, q.Limit, q.Offset)

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	cards := make([]usecase.ProductCard, 0)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		cards = append(cards, *card)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return cards, total, nil
}

// GetCard возвращает карточку товара вместе с названиями бренда и категории.
func (p *ProductRepo) GetCard(ctx context.Context, id int64) (*usecase.ProductCard, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products pr
		JOIN brands br ON pr.brand_id = br.id
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.id = $1 AND NOT pr.is_archived
	`, cardColumns)

	rows, err := p.pool.Query(ctx, query, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	card, err := scanCard(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return card, nil
}

// GetByIDs возвращает неархивные товары по идентификаторам.
// Используется при оформлении заказа, поэтому идёт напрямую в БД, минуя кэш.
func (p *ProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	query := `
		SELECT id, name, slug, description, brand_id, category_id,
			price, currency, sizes, colors, season, image_keys,
			created_at, updated_at, is_archived
		FROM products
		WHERE id = ANY($1) AND NOT is_archived
	`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0, len(ids))
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Slug, &model.Description,
			&model.BrandID, &model.CategoryID,
			&model.Price, &model.Currency, &model.Sizes, &model.Colors,
			&model.Season, &model.ImageKeys,
			&model.CreatedAt, &model.UpdatedAt, &model.IsArchived,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *p.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// Create вставляет новый товар. Вызывается внутри транзакции.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)
	query := `
		INSERT INTO products (
			name, slug, description, brand_id, category_id,
			price, currency, sizes, colors, season
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.Name, model.Slug, model.Description,
		model.BrandID, model.CategoryID,
		model.Price, model.Currency,
		model.Sizes, model.Colors, model.Season,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: product with slug %s already exists", whereami.WhereAmI(), product.Slug)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Update перезаписывает поля товара. Ключи изображений не трогает.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)
	query := `
		UPDATE products SET
			name = $2, slug = $3, description = $4,
			brand_id = $5, category_id = $6,
			price = $7, currency = $8,
			sizes = $9, colors = $10, season = $11,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query,
		model.ID,
		model.Name, model.Slug, model.Description,
		model.BrandID, model.CategoryID,
		model.Price, model.Currency,
		model.Sizes, model.Colors, model.Season,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// SetImageKeys добавляет ключи изображений к уже существующим.
func (p *ProductRepo) SetImageKeys(ctx context.Context, id int64, keys []string) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET image_keys = image_keys || $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query, id, keys)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// Archive скрывает товар с витрины. Запись остаётся:
// на неё ссылаются строки исторических заказов.
func (p *ProductRepo) Archive(ctx context.Context, id int64) error {
	query := `
		UPDATE products
		SET is_archived = TRUE, updated_at = NOW()
		WHERE id = $1
	`

	result, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// buildCatalogWhere собирает условие WHERE и аргументы под фильтр каталога.
func buildCatalogWhere(q *usecase.CatalogQuery) (string, []any) {
	conds := []string{"NOT pr.is_archived"}
	args := make([]any, 0)

	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.Text != "" {
		ph := next("%" + q.Text + "%")
		conds = append(conds, fmt.Sprintf("(pr.name ILIKE %s OR pr.description ILIKE %s)", ph, ph))
	}

	if len(q.Brands) > 0 {
		conds = append(conds, fmt.Sprintf("br.slug = ANY(%s)", next(q.Brands)))
	}

	if len(q.Categories) > 0 {
		conds = append(conds, fmt.Sprintf("cat.slug = ANY(%s)", next(q.Categories)))
	}

	// Для массивов достаточно пересечения: товар подходит,
	// если у него есть хотя бы один из запрошенных размеров/цветов
	if len(q.Sizes) > 0 {
		conds = append(conds, fmt.Sprintf("pr.sizes && %s", next(q.Sizes)))
	}

	if len(q.Colors) > 0 {
		conds = append(conds, fmt.Sprintf("pr.colors && %s", next(q.Colors)))
	}

	if len(q.Seasons) > 0 {
		seasons := make([]string, 0, len(q.Seasons))
		for _, s := range q.Seasons {
			seasons = append(seasons, string(s))
		}
		conds = append(conds, fmt.Sprintf("pr.season = ANY(%s)", next(seasons)))
	}

	// Ценовые границы применяются к нативной цене товара без конвертации
	if q.PriceMin != nil {
		conds = append(conds, fmt.Sprintf("pr.price >= %s", next(*q.PriceMin)))
	}

	if q.PriceMax != nil {
		conds = append(conds, fmt.Sprintf("pr.price <= %s", next(*q.PriceMax)))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

func orderClause(sort domain.SortMode) string {
	switch sort {
	case domain.SortPriceAsc:
		return "pr.price ASC, pr.id ASC"
	case domain.SortPriceDesc:
		return "pr.price DESC, pr.id ASC"
	default:
		return "pr.created_at DESC, pr.id DESC"
	}
}

func scanCard(rows pgx.Rows) (*usecase.ProductCard, error) {
	var card usecase.ProductCard
	var currency, season string

	if err := rows.Scan(
		&card.ID, &card.Name, &card.Slug, &card.Description,
		&card.BrandName, &card.CategoryName,
		&card.Price, &currency, &card.Sizes, &card.Colors,
		&season, &card.ImageKeys,
	); err != nil {
		return nil, err
	}

	card.Currency = domain.Currency(currency)
	card.Season = domain.Season(season)
	return &card, nil
}
