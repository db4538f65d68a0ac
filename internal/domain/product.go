package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product описывает товар каталога
type Product struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	BrandID     int64
	CategoryID  int64
	Price       decimal.Decimal
	Currency    Currency
	Sizes       []string
	Colors      []string
	Season      Season
	ImageKeys   []string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	IsArchived  bool
}

func NewProduct(name, slug, description string, brandID, categoryID int64,
	price decimal.Decimal, currency Currency, sizes, colors []string, season Season) *Product {
	return &Product{
		Name:        name,
		Slug:        slug,
		Description: description,
		BrandID:     brandID,
		CategoryID:  categoryID,
		Price:       price,
		Currency:    currency,
		Sizes:       sizes,
		Colors:      colors,
		Season:      season,
	}
}
