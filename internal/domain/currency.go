package domain

// Currency — валюта цены товара или суммы заказа.
type Currency string

const (
	CurrencyRUB Currency = "RUB"
	CurrencyCNY Currency = "CNY"
)

func (c Currency) IsValid() bool {
	return c == CurrencyRUB || c == CurrencyCNY
}

// Glyph возвращает символ валюты для отображения.
func (c Currency) Glyph() string {
	switch c {
	case CurrencyCNY:
		return "¥"
	default:
		return "₽"
	}
}
