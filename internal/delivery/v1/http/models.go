package http

import (
	"time"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/internal/usecase"
)

// DTO публичного API. Цены отдаются строками: JSON-числа с плавающей
// точкой искажают денежные значения.

type ProductCardResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description,omitempty"`
	BrandName    string   `json:"brand_name"`
	CategoryName string   `json:"category_name"`
	Price        string   `json:"price"`
	Currency     string   `json:"currency"`
	DisplayPrice string   `json:"display_price"`
	Sizes        []string `json:"sizes"`
	Colors       []string `json:"colors"`
	Season       string   `json:"season,omitempty"`
	ImageKeys    []string `json:"image_keys"`
}

type CatalogResponse struct {
	Products []ProductCardResponse `json:"products"`
	Total    int64                 `json:"total"`
}

type FacetsResponse struct {
	Brands     []BrandResponse      `json:"brands"`
	Categories []CategoryResponse   `json:"categories"`
	Sizes      []SizeOptionResponse `json:"sizes"`
	Colors     []ColorOptionResponse `json:"colors"`
	Seasons    []string             `json:"seasons"`
}

type BrandResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type SizeOptionResponse struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

type ColorOptionResponse struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
}

type ContentResponse struct {
	Hero    domain.HeroBlock         `json:"hero"`
	Tariffs []domain.DeliveryTariff  `json:"tariffs"`
	Rate    ExchangeRateResponse     `json:"rate"`
}

type ExchangeRateResponse struct {
	CnyPerRub string    `json:"cny_per_rub"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CheckoutRequest struct {
	Items          []CheckoutItemRequest `json:"items"`
	CustomerName   string                `json:"customer_name"`
	ContactChannel string                `json:"contact_channel"`
	ContactValue   string                `json:"contact_value"`
	Comment        string                `json:"comment,omitempty"`
}

type CheckoutItemRequest struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
}

type CheckoutResponse struct {
	OrderID int64 `json:"order_id"`
}

type OrderResponse struct {
	ID                   int64               `json:"id"`
	Status               string              `json:"status"`
	TotalAmount          string              `json:"total_amount"`
	TotalCurrency        string              `json:"total_currency"`
	TotalAmountRubApprox string              `json:"total_amount_rub_approx"`
	CustomerName         string              `json:"customer_name"`
	ContactChannel       string              `json:"contact_channel"`
	ContactValue         string              `json:"contact_value"`
	Comment              string              `json:"comment,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	Items                []OrderItemResponse `json:"items,omitempty"`
}

type OrderItemResponse struct {
	ProductID          int64  `json:"product_id"`
	ProductName        string `json:"product_name"`
	Size               string `json:"size,omitempty"`
	PriceSnapshot      string `json:"price_snapshot"`
	Currency           string `json:"currency"`
	Quantity           int    `json:"quantity"`
	LineTotal          string `json:"line_total"`
	LineTotalRubApprox string `json:"line_total_rub_approx"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

type DictionaryItemRequest struct {
	Name  string `json:"name,omitempty"`
	Slug  string `json:"slug,omitempty"`
	Value string `json:"value,omitempty"`
	Label string `json:"label,omitempty"`
}

type UpdateRateRequest struct {
	CnyPerRub string `json:"cny_per_rub"`
}

func toProductCardResponse(card *usecase.ProductCard) ProductCardResponse {
	return ProductCardResponse{
		ID:           card.ID,
		Name:         card.Name,
		Slug:         card.Slug,
		Description:  card.Description,
		BrandName:    card.BrandName,
		CategoryName: card.CategoryName,
		Price:        card.Price.StringFixed(2),
		Currency:     string(card.Currency),
		DisplayPrice: card.DisplayPrice,
		Sizes:        card.Sizes,
		Colors:       card.Colors,
		Season:       string(card.Season),
		ImageKeys:    card.ImageKeys,
	}
}

func toOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductID:          item.ProductID,
			ProductName:        item.ProductName,
			Size:               item.Size,
			PriceSnapshot:      item.PriceSnapshot.StringFixed(2),
			Currency:           string(item.Currency),
			Quantity:           item.Quantity,
			LineTotal:          item.LineTotal.StringFixed(2),
			LineTotalRubApprox: item.LineTotalRubApprox.StringFixed(2),
		})
	}

	return OrderResponse{
		ID:                   order.ID,
		Status:               string(order.Status),
		TotalAmount:          order.TotalAmount.StringFixed(2),
		TotalCurrency:        string(order.TotalCurrency),
		TotalAmountRubApprox: order.TotalAmountRubApprox.StringFixed(2),
		CustomerName:         order.CustomerName,
		ContactChannel:       string(order.ContactChannel),
		ContactValue:         order.ContactValue,
		Comment:              order.Comment,
		CreatedAt:            order.CreatedAt,
		Items:                items,
	}
}
