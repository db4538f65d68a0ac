package converter

import (
	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/internal/usecase"
)

// ProductCardConverter преобразует карточку товара между usecase и Redis-моделью.
type ProductCardConverter interface {
	ToRedisModel(entity *usecase.ProductCard) *ProductCardRedisModel
	ToUseCase(model *ProductCardRedisModel) *usecase.ProductCard
}

func NewProductCardConverter() ProductCardConverter { return &productCardConverter{} }

type productCardConverter struct{}

func (productCardConverter) ToRedisModel(entity *usecase.ProductCard) *ProductCardRedisModel {
	return &ProductCardRedisModel{
		ID:           entity.ID,
		Name:         entity.Name,
		Slug:         entity.Slug,
		Description:  entity.Description,
		BrandName:    entity.BrandName,
		CategoryName: entity.CategoryName,
		Price:        entity.Price,
		Currency:     string(entity.Currency),
		Sizes:        entity.Sizes,
		Colors:       entity.Colors,
		Season:       string(entity.Season),
		ImageKeys:    entity.ImageKeys,
	}
}

func (productCardConverter) ToUseCase(model *ProductCardRedisModel) *usecase.ProductCard {
	return &usecase.ProductCard{
		ID:           model.ID,
		Name:         model.Name,
		Slug:         model.Slug,
		Description:  model.Description,
		BrandName:    model.BrandName,
		CategoryName: model.CategoryName,
		Price:        model.Price,
		Currency:     domain.Currency(model.Currency),
		Sizes:        model.Sizes,
		Colors:       model.Colors,
		Season:       domain.Season(model.Season),
		ImageKeys:    model.ImageKeys,
	}
}
