package converter

import "github.com/shopspring/decimal"

// ProductCardRedisModel — JSON-представление карточки товара в Redis.
// Отображаемая цена не кэшируется: она зависит от текущего курса.
type ProductCardRedisModel struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
	BrandName    string          `json:"brand_name"`
	CategoryName string          `json:"category_name"`
	Price        decimal.Decimal `json:"price"`
	Currency     string          `json:"currency"`
	Sizes        []string        `json:"sizes"`
	Colors       []string        `json:"colors"`
	Season       string          `json:"season"`
	ImageKeys    []string        `json:"image_keys"`
}
