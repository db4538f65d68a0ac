package usecase

import (
	"context"
	"strings"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/pkg/e"
)

// DictionaryUseCase — CRUD справочников: бренды, категории, размеры, цвета.
type DictionaryUseCase struct {
	dictRepo DictionaryRepository
}

func NewDictionaryUC(dictRepo DictionaryRepository) *DictionaryUseCase {
	return &DictionaryUseCase{dictRepo: dictRepo}
}

func (d *DictionaryUseCase) CreateBrand(ctx context.Context, name, slug string) (*domain.Brand, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(slug) == "" {
		return nil, e.ErrMissingFields
	}

	return d.dictRepo.CreateBrand(ctx, domain.NewBrand(strings.TrimSpace(name), strings.TrimSpace(slug)))
}

func (d *DictionaryUseCase) DeleteBrand(ctx context.Context, id int64) error {
	return d.dictRepo.DeleteBrand(ctx, id)
}

func (d *DictionaryUseCase) CreateCategory(ctx context.Context, name, slug string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(slug) == "" {
		return nil, e.ErrMissingFields
	}

	return d.dictRepo.CreateCategory(ctx, domain.NewCategory(strings.TrimSpace(name), strings.TrimSpace(slug)))
}

func (d *DictionaryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	return d.dictRepo.DeleteCategory(ctx, id)
}

func (d *DictionaryUseCase) CreateSize(ctx context.Context, value string) (*domain.SizeOption, error) {
	if strings.TrimSpace(value) == "" {
		return nil, e.ErrMissingFields
	}

	return d.dictRepo.CreateSize(ctx, strings.TrimSpace(value))
}

func (d *DictionaryUseCase) DeleteSize(ctx context.Context, id int64) error {
	return d.dictRepo.DeleteSize(ctx, id)
}

func (d *DictionaryUseCase) CreateColor(ctx context.Context, value, label string) (*domain.ColorOption, error) {
	if strings.TrimSpace(value) == "" {
		return nil, e.ErrMissingFields
	}

	return d.dictRepo.CreateColor(ctx, strings.TrimSpace(value), strings.TrimSpace(label))
}

func (d *DictionaryUseCase) DeleteColor(ctx context.Context, id int64) error {
	return d.dictRepo.DeleteColor(ctx, id)
}
