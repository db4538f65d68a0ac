package pricing

import (
	"strings"
	"testing"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

// stripSpaces убирает обычные и неразрывные пробелы, чтобы не завязывать
// тесты на конкретный разделитель тысяч из CLDR.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', ' ':
			return -1
		default:
			return r
		}
	}, s)
}

func TestFormatAmount(t *testing.T) {
	got := FormatAmount(dec("7000"), domain.CurrencyRUB)
	assert.Equal(t, "7000,00₽", stripSpaces(got))

	got = FormatAmount(dec("1234.5"), domain.CurrencyCNY)
	assert.Equal(t, "1234,50¥", stripSpaces(got))
}

func TestFormatDual(t *testing.T) {
	got := FormatDual(dec("560"), domain.CurrencyCNY, dec("0.08"))
	assert.Equal(t, "560,00¥(~7000,00₽)", stripSpaces(got))

	got = FormatDual(dec("7000"), domain.CurrencyRUB, dec("0.08"))
	assert.Equal(t, "7000,00₽(~560,00¥)", stripSpaces(got))
}

func TestFormatDual_RateUnavailable(t *testing.T) {
	got := FormatDual(dec("560"), domain.CurrencyCNY, dec("0"))
	assert.Equal(t, "560,00¥", stripSpaces(got))
	assert.NotContains(t, got, "~")
}
