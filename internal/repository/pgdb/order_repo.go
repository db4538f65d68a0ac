package pgdb

import (
	"context"
	"errors"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/internal/repository/pgdb/converter"
	"github.com/eastlane-store/go-backend/internal/usecase"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/eastlane-store/go-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

// InsertOrder сохраняет шапку заказа. Вызывается внутри транзакции оформления.
func (o *OrderRepo) InsertOrder(ctx context.Context, order *domain.Order) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	model := o.conv.ToModel(order)
	query := `
		INSERT INTO orders (
			status, total_amount, total_currency, total_amount_rub_approx,
			customer_name, contact_channel, contact_value, comment
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`

	var id int64
	if err := tx.QueryRow(ctx, query,
		model.Status,
		model.TotalAmount, model.TotalCurrency, model.TotalAmountRubApprox,
		model.CustomerName, model.ContactChannel, model.ContactValue, model.Comment,
	).Scan(&id); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return id, nil
}

// InsertOrderItems сохраняет строки заказа одним батчем.
func (o *OrderRepo) InsertOrderItems(ctx context.Context, orderID int64, items []domain.OrderItem) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO order_items (
			order_id, product_id, product_name, size,
			price_snapshot, currency, quantity, line_total, line_total_rub_approx
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	batch := &pgx.Batch{}
	for i := range items {
		model := o.conv.ItemToModel(&items[i])
		batch.Queue(query,
			orderID, model.ProductID, model.ProductName, model.Size,
			model.PriceSnapshot, model.Currency, model.Quantity,
			model.LineTotal, model.LineTotalRubApprox,
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

const orderColumns = `
	id, status, total_amount, total_currency, total_amount_rub_approx,
	customer_name, contact_channel, contact_value, comment, created_at, updated_at
`

// GetByID возвращает заказ вместе со строками.
func (o *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	model, err := scanOrder(o.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	order := o.conv.ToEntity(model)

	items, err := o.loadItems(ctx, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	order.Items = items

	return order, nil
}

// List возвращает страницу заказов, отфильтрованную по статусу.
// Строки заказов не загружаются: список нужен только для обзора в админке.
func (o *OrderRepo) List(ctx context.Context, req *usecase.OrderListReq) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE $1::text IS NULL OR status = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	var status *string
	if req.Status != nil {
		s := string(*req.Status)
		status = &s
	}

	rows, err := o.pool.Query(ctx, query, status, req.Limit, req.Offset)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		model, err := scanOrder(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		orders = append(orders, *o.conv.ToEntity(model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return orders, nil
}

// UpdateStatus переводит заказ в новый статус. Вызывается внутри транзакции
// вместе с записью события в outbox.
func (o *OrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query, id, string(status))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
	}

	return nil
}

func (o *OrderRepo) loadItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_name, size,
			price_snapshot, currency, quantity, line_total, line_total_rub_approx
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := o.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var model converter.OrderItemModel
		if err := rows.Scan(
			&model.ID, &model.OrderID, &model.ProductID, &model.ProductName, &model.Size,
			&model.PriceSnapshot, &model.Currency, &model.Quantity,
			&model.LineTotal, &model.LineTotalRubApprox,
		); err != nil {
			return nil, err
		}

		items = append(items, *o.conv.ItemToEntity(&model))
	}

	return items, rows.Err()
}

func scanOrder(row pgx.Row) (*converter.OrderModel, error) {
	var model converter.OrderModel
	if err := row.Scan(
		&model.ID, &model.Status,
		&model.TotalAmount, &model.TotalCurrency, &model.TotalAmountRubApprox,
		&model.CustomerName, &model.ContactChannel, &model.ContactValue, &model.Comment,
		&model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &model, nil
}
