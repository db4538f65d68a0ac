package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HeroBlock — редактируемый маркетинговый блок главной страницы.
type HeroBlock struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// DeliveryTariff — один тариф доставки (название + цена в рублях).
type DeliveryTariff struct {
	Name     string          `json:"name"`
	PriceRub decimal.Decimal `json:"price_rub"`
}

// ExchangeRate — текущий курс: сколько юаней соответствует одному рублю.
type ExchangeRate struct {
	CnyPerRub decimal.Decimal `json:"cny_per_rub"`
	UpdatedAt time.Time       `json:"updated_at"`
}
