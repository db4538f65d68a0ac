package domain

import "time"

// Brand описывает бренд товара
type Brand struct {
	ID        int64
	Name      string
	Slug      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewBrand(name, slug string) *Brand {
	return &Brand{
		Name: name,
		Slug: slug,
	}
}
