package http

import (
	"net/url"
	"testing"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalogFilter_Defaults(t *testing.T) {
	q := ParseCatalogFilter(url.Values{})

	assert.Empty(t, q.Text)
	assert.Empty(t, q.Categories)
	assert.Empty(t, q.Seasons)
	assert.Nil(t, q.PriceMin)
	assert.Nil(t, q.PriceMax)
	assert.Equal(t, domain.SortNewest, q.Sort)
	assert.Equal(t, defaultLimit, q.Limit)
	assert.Zero(t, q.Offset)
}

func TestParseCatalogFilter_SeasonNormalization(t *testing.T) {
	q := ParseCatalogFilter(url.Values{
		"season": {"", " ", "SUMMER", "unknown", "winter"},
	})

	assert.Equal(t, []domain.Season{domain.SeasonSummer, domain.SeasonWinter}, q.Seasons)
}

func TestParseCatalogFilter_DropsAllSentinelAndEmpties(t *testing.T) {
	q := ParseCatalogFilter(url.Values{
		"category": {"all", "", "outerwear", "outerwear", "shoes"},
		"brand":    {"", "eastlane"},
	})

	assert.Equal(t, []string{"outerwear", "shoes"}, q.Categories)
	assert.Equal(t, []string{"eastlane"}, q.Brands)
}

func TestParseCatalogFilter_Prices(t *testing.T) {
	q := ParseCatalogFilter(url.Values{
		"price_min": {"1000"},
		"price_max": {"abc"},
	})

	require.NotNil(t, q.PriceMin)
	assert.True(t, q.PriceMin.Equal(decimal.NewFromInt(1000)))
	assert.Nil(t, q.PriceMax)

	q = ParseCatalogFilter(url.Values{"price_min": {"-5"}})
	assert.Nil(t, q.PriceMin)
}

func TestParseCatalogFilter_SortFallsBackToNewest(t *testing.T) {
	for raw, want := range map[string]domain.SortMode{
		"price-asc":  domain.SortPriceAsc,
		"price-desc": domain.SortPriceDesc,
		"newest":     domain.SortNewest,
		"cheapest":   domain.SortNewest,
		"":           domain.SortNewest,
	} {
		q := ParseCatalogFilter(url.Values{"sort": {raw}})
		assert.Equal(t, want, q.Sort, raw)
	}
}

func TestParseCatalogFilter_LimitClamped(t *testing.T) {
	q := ParseCatalogFilter(url.Values{"limit": {"500"}, "offset": {"40"}})
	assert.Equal(t, maxLimit, q.Limit)
	assert.Equal(t, 40, q.Offset)
}

func TestSerializeCatalogFilter_OmitsDefaults(t *testing.T) {
	q := ParseCatalogFilter(url.Values{})
	values := SerializeCatalogFilter(q)
	assert.Empty(t, values)
}

func TestSerializeCatalogFilter_RepeatsMultiValuedKeys(t *testing.T) {
	min := decimal.NewFromInt(1000)
	values := SerializeCatalogFilter(ParseCatalogFilter(url.Values{
		"q":         {"куртка"},
		"category":  {"outerwear", "shoes"},
		"season":    {"winter", "summer"},
		"price_min": {min.String()},
		"sort":      {"price-asc"},
	}))

	assert.Equal(t, []string{"outerwear", "shoes"}, values["category"])
	assert.Equal(t, []string{"winter", "summer"}, values["season"])
	assert.Equal(t, "куртка", values.Get("q"))
	assert.Equal(t, "1000", values.Get("price_min"))
	assert.Equal(t, "price-asc", values.Get("sort"))
}

// Повторный разбор сериализованного фильтра даёт тот же фильтр.
func TestCatalogFilter_RoundTrip(t *testing.T) {
	original := ParseCatalogFilter(url.Values{
		"q":         {"пуховик"},
		"category":  {"outerwear"},
		"brand":     {"eastlane"},
		"size":      {"42", "44"},
		"color":     {"black"},
		"season":    {"WINTER", "autumn"},
		"price_min": {"500"},
		"price_max": {"15000.50"},
		"sort":      {"price-desc"},
		"limit":     {"50"},
		"offset":    {"100"},
	})

	reparsed := ParseCatalogFilter(SerializeCatalogFilter(original))

	// Границы цен сравниваем численно: String() опускает хвостовые нули
	// ("15000.50" -> "15000.5"), и decimal с другим масштабом — то же число
	require.NotNil(t, reparsed.PriceMin)
	require.NotNil(t, reparsed.PriceMax)
	assert.True(t, reparsed.PriceMin.Equal(*original.PriceMin), "got %s", reparsed.PriceMin)
	assert.True(t, reparsed.PriceMax.Equal(*original.PriceMax), "got %s", reparsed.PriceMax)

	original.PriceMin, original.PriceMax = nil, nil
	reparsed.PriceMin, reparsed.PriceMax = nil, nil
	assert.Equal(t, original, reparsed)

	// Сортировка по умолчанию опускается и корректно восстанавливается
	original.Sort = domain.SortNewest
	values := SerializeCatalogFilter(original)
	assert.Empty(t, values.Get("sort"))
	assert.Equal(t, domain.SortNewest, ParseCatalogFilter(values).Sort)
}
