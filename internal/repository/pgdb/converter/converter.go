package converter

import (
	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// OrderConverter преобразует сущности Order между domain и моделью PostgreSQL.
type OrderConverter interface {
	ToModel(entity *domain.Order) *OrderModel
	ToEntity(model *OrderModel) *domain.Order
	ItemToModel(entity *domain.OrderItem) *OrderItemModel
	ItemToEntity(model *OrderItemModel) *domain.OrderItem
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func NewProductConverter() ProductConverter         { return &productConverter{} }
func NewOrderConverter() OrderConverter             { return &orderConverter{} }
func NewOutboxEventConverter() OutboxEventConverter { return &outboxEventConverter{} }

type productConverter struct{}

func (productConverter) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Slug:        entity.Slug,
		Description: entity.Description,
		BrandID:     entity.BrandID,
		CategoryID:  entity.CategoryID,
		Price:       entity.Price,
		Currency:    string(entity.Currency),
		Sizes:       entity.Sizes,
		Colors:      entity.Colors,
		Season:      string(entity.Season),
		ImageKeys:   entity.ImageKeys,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
		IsArchived:  entity.IsArchived,
	}
}

func (productConverter) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Slug:        model.Slug,
		Description: model.Description,
		BrandID:     model.BrandID,
		CategoryID:  model.CategoryID,
		Price:       model.Price,
		Currency:    domain.Currency(model.Currency),
		Sizes:       model.Sizes,
		Colors:      model.Colors,
		Season:      domain.Season(model.Season),
		ImageKeys:   model.ImageKeys,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		IsArchived:  model.IsArchived,
	}
}

type orderConverter struct{}

func (orderConverter) ToModel(entity *domain.Order) *OrderModel {
	return &OrderModel{
		ID:                   entity.ID,
		Status:               string(entity.Status),
		TotalAmount:          entity.TotalAmount,
		TotalCurrency:        string(entity.TotalCurrency),
		TotalAmountRubApprox: entity.TotalAmountRubApprox,
		CustomerName:         entity.CustomerName,
		ContactChannel:       string(entity.ContactChannel),
		ContactValue:         entity.ContactValue,
		Comment:              entity.Comment,
		CreatedAt:            entity.CreatedAt,
		UpdatedAt:            entity.UpdatedAt,
	}
}

func (orderConverter) ToEntity(model *OrderModel) *domain.Order {
	return &domain.Order{
		ID:                   model.ID,
		Status:               domain.OrderStatus(model.Status),
		TotalAmount:          model.TotalAmount,
		TotalCurrency:        domain.Currency(model.TotalCurrency),
		TotalAmountRubApprox: model.TotalAmountRubApprox,
		CustomerName:         model.CustomerName,
		ContactChannel:       domain.ContactChannel(model.ContactChannel),
		ContactValue:         model.ContactValue,
		Comment:              model.Comment,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
}

func (orderConverter) ItemToModel(entity *domain.OrderItem) *OrderItemModel {
	return &OrderItemModel{
		ID:                 entity.ID,
		OrderID:            entity.OrderID,
		ProductID:          entity.ProductID,
		ProductName:        entity.ProductName,
		Size:               entity.Size,
		PriceSnapshot:      entity.PriceSnapshot,
		Currency:           string(entity.Currency),
		Quantity:           entity.Quantity,
		LineTotal:          entity.LineTotal,
		LineTotalRubApprox: entity.LineTotalRubApprox,
	}
}

func (orderConverter) ItemToEntity(model *OrderItemModel) *domain.OrderItem {
	return &domain.OrderItem{
		ID:                 model.ID,
		OrderID:            model.OrderID,
		ProductID:          model.ProductID,
		ProductName:        model.ProductName,
		Size:               model.Size,
		PriceSnapshot:      model.PriceSnapshot,
		Currency:           domain.Currency(model.Currency),
		Quantity:           model.Quantity,
		LineTotal:          model.LineTotal,
		LineTotalRubApprox: model.LineTotalRubApprox,
	}
}

type outboxEventConverter struct{}

func (outboxEventConverter) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		OrderID:     entity.OrderID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (outboxEventConverter) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		OrderID:     model.OrderID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c outboxEventConverter) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	if models == nil {
		return nil
	}

	entities := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		entities = append(entities, c.ToEntity(model))
	}

	return entities
}
