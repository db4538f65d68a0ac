package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64           `db:"id"`
	Name        string          `db:"name"`
	Slug        string          `db:"slug"`
	Description string          `db:"description"`
	BrandID     int64           `db:"brand_id"`
	CategoryID  int64           `db:"category_id"`
	Price       decimal.Decimal `db:"price"`
	Currency    string          `db:"currency"`
	Sizes       []string        `db:"sizes"`
	Colors      []string        `db:"colors"`
	Season      string          `db:"season"`
	ImageKeys   []string        `db:"image_keys"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   *time.Time      `db:"updated_at"`
	IsArchived  bool            `db:"is_archived"`
}

// BrandModel представляет запись таблицы brands в PostgreSQL.
type BrandModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Slug      string     `db:"slug"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Slug      string     `db:"slug"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID                   int64           `db:"id"`
	Status               string          `db:"status"`
	TotalAmount          decimal.Decimal `db:"total_amount"`
	TotalCurrency        string          `db:"total_currency"`
	TotalAmountRubApprox decimal.Decimal `db:"total_amount_rub_approx"`
	CustomerName         string          `db:"customer_name"`
	ContactChannel       string          `db:"contact_channel"`
	ContactValue         string          `db:"contact_value"`
	Comment              string          `db:"comment"`
	CreatedAt            time.Time       `db:"created_at"`
	UpdatedAt            *time.Time      `db:"updated_at"`
}

// OrderItemModel представляет запись таблицы order_items в PostgreSQL.
type OrderItemModel struct {
	ID                 int64           `db:"id"`
	OrderID            int64           `db:"order_id"`
	ProductID          int64           `db:"product_id"`
	ProductName        string          `db:"product_name"`
	Size               string          `db:"size"`
	PriceSnapshot      decimal.Decimal `db:"price_snapshot"`
	Currency           string          `db:"currency"`
	Quantity           int             `db:"quantity"`
	LineTotal          decimal.Decimal `db:"line_total"`
	LineTotalRubApprox decimal.Decimal `db:"line_total_rub_approx"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     int64      `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
