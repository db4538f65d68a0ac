package http

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// Имена query-параметров фильтра каталога.
const (
	paramText     = "q"
	paramCategory = "category"
	paramBrand    = "brand"
	paramSize     = "size"
	paramColor    = "color"
	paramSeason   = "season"
	paramPriceMin = "price_min"
	paramPriceMax = "price_max"
	paramSort     = "sort"
	paramLimit    = "limit"
	paramOffset   = "offset"

	// Сентинел "все категории" из селекта на витрине; фильтра не задаёт
	categoryAll = "all"

	defaultLimit = 20
	maxLimit     = 100
)

// ParseCatalogFilter нормализует сырую query-строку в канонический фильтр.
// Невалидные значения молча отбрасываются, ошибок парсер не возвращает:
// битый фильтр — это просто менее строгий фильтр.
func ParseCatalogFilter(values url.Values) *usecase.CatalogQuery {
	q := &usecase.CatalogQuery{
		Text:       strings.TrimSpace(values.Get(paramText)),
		Categories: cleanStrings(values[paramCategory], categoryAll),
		Brands:     cleanStrings(values[paramBrand], ""),
		Sizes:      cleanStrings(values[paramSize], ""),
		Colors:     cleanStrings(values[paramColor], ""),
		Seasons:    parseSeasons(values[paramSeason]),
		PriceMin:   parsePriceBound(values.Get(paramPriceMin)),
		PriceMax:   parsePriceBound(values.Get(paramPriceMax)),
		Sort:       parseSort(values.Get(paramSort)),
		Limit:      defaultLimit,
	}

	if limit, err := strconv.Atoi(values.Get(paramLimit)); err == nil && limit > 0 {
		if limit > maxLimit {
			limit = maxLimit
		}
		q.Limit = limit
	}

	if offset, err := strconv.Atoi(values.Get(paramOffset)); err == nil && offset > 0 {
		q.Offset = offset
	}

	return q
}

// SerializeCatalogFilter — структурная инверсия ParseCatalogFilter.
// Многозначные ключи повторяются, сортировка по умолчанию и пустые
// значения опускаются целиком.
func SerializeCatalogFilter(q *usecase.CatalogQuery) url.Values {
	values := url.Values{}

	if q.Text != "" {
		values.Set(paramText, q.Text)
	}

	for _, c := range q.Categories {
		values.Add(paramCategory, c)
	}
	for _, b := range q.Brands {
		values.Add(paramBrand, b)
	}
	for _, s := range q.Sizes {
		values.Add(paramSize, s)
	}
	for _, c := range q.Colors {
		values.Add(paramColor, c)
	}
	for _, s := range q.Seasons {
		values.Add(paramSeason, string(s))
	}

	if q.PriceMin != nil {
		values.Set(paramPriceMin, q.PriceMin.String())
	}
	if q.PriceMax != nil {
		values.Set(paramPriceMax, q.PriceMax.String())
	}

	if q.Sort != "" && q.Sort != domain.SortNewest {
		values.Set(paramSort, string(q.Sort))
	}

	if q.Limit > 0 && q.Limit != defaultLimit {
		values.Set(paramLimit, strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		values.Set(paramOffset, strconv.Itoa(q.Offset))
	}

	return values
}

// cleanStrings отбрасывает пустые строки и сентинел, схлопывая дубликаты.
func cleanStrings(raw []string, sentinel string) []string {
	result := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" || (sentinel != "" && v == sentinel) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}

// parseSeasons нормализует ключи сезонов: регистр приводится к нижнему,
// неизвестные значения и дубликаты отбрасываются.
func parseSeasons(raw []string) []domain.Season {
	result := make([]domain.Season, 0, len(raw))
	seen := make(map[domain.Season]struct{}, len(raw))

	for _, v := range raw {
		season, ok := domain.ParseSeason(v)
		if !ok {
			continue
		}
		if _, dup := seen[season]; dup {
			continue
		}
		seen[season] = struct{}{}
		result = append(result, season)
	}

	return result
}

// parsePriceBound возвращает nil для отсутствующих и нечисловых границ.
// Отрицательная граница бессмысленна для цены и отбрасывается так же.
func parsePriceBound(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil
	}

	return &d
}

func parseSort(raw string) domain.SortMode {
	mode := domain.SortMode(strings.TrimSpace(raw))
	if !mode.IsValid() {
		return domain.SortNewest
	}

	return mode
}
