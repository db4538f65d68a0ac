package pricing

import (
	"fmt"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ruPrinter = message.NewPrinter(language.Russian)

// FormatAmount форматирует сумму с двумя знаками после запятой,
// локальными разделителями тысяч и символом валюты: "7 000,00 ₽".
func FormatAmount(amount decimal.Decimal, cur domain.Currency) string {
	return ruPrinter.Sprintf("%.2f", amount.InexactFloat64()) + " " + cur.Glyph()
}

// FormatDual возвращает цену в родной валюте товара и приблизительный
// эквивалент в другой валюте в скобках: "560,00 ¥ (~7 000,00 ₽)".
// Если курс недоступен, выводится только родная валюта.
func FormatDual(amount decimal.Decimal, cur domain.Currency, cnyPerRub decimal.Decimal) string {
	native := FormatAmount(amount, cur)

	other := domain.CurrencyRUB
	if cur == domain.CurrencyRUB {
		other = domain.CurrencyCNY
	}

	converted, ok := ConvertTo(amount, cur, other, cnyPerRub)
	if !ok {
		return native
	}

	return fmt.Sprintf("%s (~%s)", native, FormatAmount(converted, other))
}
