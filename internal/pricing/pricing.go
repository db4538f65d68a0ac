// Package pricing содержит чистые функции пересчёта цен между рублями и юанями.
// Курс передаётся явно: сколько юаней соответствует одному рублю (cnyPerRub).
package pricing

import (
	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// moneyScale — количество знаков после запятой в денежных суммах.
const moneyScale = 2

// ConvertCNYToRUB переводит сумму в юанях в приблизительные рубли.
// ok == false означает «курс недоступен»; вызывающий не должен
// трактовать это как ноль.
func ConvertCNYToRUB(cny, cnyPerRub decimal.Decimal) (decimal.Decimal, bool) {
	if !cnyPerRub.IsPositive() {
		return decimal.Decimal{}, false
	}
	return cny.DivRound(cnyPerRub, moneyScale), true
}

// ConvertRUBToCNY переводит сумму в рублях в приблизительные юани.
func ConvertRUBToCNY(rub, cnyPerRub decimal.Decimal) (decimal.Decimal, bool) {
	if !cnyPerRub.IsPositive() {
		return decimal.Decimal{}, false
	}
	return rub.Mul(cnyPerRub).Round(moneyScale), true
}

// ConvertTo переводит сумму из валюты from в валюту to.
// Совпадающие валюты возвращаются как есть без пересчёта.
func ConvertTo(amount decimal.Decimal, from, to domain.Currency, cnyPerRub decimal.Decimal) (decimal.Decimal, bool) {
	if from == to {
		return amount, true
	}

	if from == domain.CurrencyCNY && to == domain.CurrencyRUB {
		return ConvertCNYToRUB(amount, cnyPerRub)
	}
	if from == domain.CurrencyRUB && to == domain.CurrencyCNY {
		return ConvertRUBToCNY(amount, cnyPerRub)
	}

	return decimal.Decimal{}, false
}
