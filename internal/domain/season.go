package domain

import "strings"

// Season — сезонность товара, используется как фасет каталога.
type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
)

func (s Season) IsValid() bool {
	switch s {
	case SeasonWinter, SeasonSpring, SeasonSummer, SeasonAutumn:
		return true
	default:
		return false
	}
}

// ParseSeason нормализует сырой ключ сезона. Неизвестные значения отбрасываются.
func ParseSeason(raw string) (Season, bool) {
	s := Season(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

// SortMode — режим сортировки каталога.
type SortMode string

const (
	SortNewest    SortMode = "newest"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
)

func (m SortMode) IsValid() bool {
	switch m {
	case SortNewest, SortPriceAsc, SortPriceDesc:
		return true
	default:
		return false
	}
}
