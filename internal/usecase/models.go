package usecase

import (
	"time"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// CHECKOUT

// CheckoutItemReq — строка корзины, присланная клиентом. Цена и валюта
// намеренно отсутствуют: они берутся только из каталога.
type CheckoutItemReq struct {
	ProductID int64
	Quantity  int
	Size      string
}

// CheckoutReq — запрос на оформление заказа.
type CheckoutReq struct {
	Items          []CheckoutItemReq
	CustomerName   string
	ContactChannel domain.ContactChannel
	ContactValue   string
	Comment        string
}

// CheckoutRes — результат оформления заказа.
type CheckoutRes struct {
	OrderID int64
}

// BuiltOrder — строки заказа и агрегаты, готовые к сохранению.
type BuiltOrder struct {
	Items                []domain.OrderItem
	TotalAmount          decimal.Decimal
	TotalCurrency        domain.Currency
	TotalAmountRubApprox decimal.Decimal
}

// CATALOG

// CatalogQuery — канонический фильтр каталога, получаемый из query-строки.
type CatalogQuery struct {
	Text       string
	Categories []string
	Brands     []string
	Sizes      []string
	Colors     []string
	Seasons    []domain.Season
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
	Sort       domain.SortMode
	Limit      int
	Offset     int
}

// ProductCard — DTO карточки товара для витрины.
type ProductCard struct {
	ID           int64
	Name         string
	Slug         string
	Description  string
	BrandName    string
	CategoryName string
	Price        decimal.Decimal
	Currency     domain.Currency
	Sizes        []string
	Colors       []string
	Season       domain.Season
	ImageKeys    []string
	// DisplayPrice заполняется при выдаче по текущему курсу, не кэшируется.
	DisplayPrice string
}

// CatalogRes — страница каталога.
type CatalogRes struct {
	Products []ProductCard
	Total    int64
}

// FacetsRes — справочники для панели фильтров.
type FacetsRes struct {
	Brands     []domain.Brand
	Categories []domain.Category
	Sizes      []domain.SizeOption
	Colors     []domain.ColorOption
	Seasons    []domain.Season
}

// CONTENT

// ContentRes — редактируемый контент витрины.
type ContentRes struct {
	Hero    domain.HeroBlock
	Tariffs []domain.DeliveryTariff
	Rate    domain.ExchangeRate
}

// ADMIN: PRODUCTS

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// SaveProductReq — запрос на создание/обновление товара в админке.
type SaveProductReq struct {
	Name        string
	Slug        string
	Description string
	BrandID     int64
	CategoryID  int64
	Price       decimal.Decimal
	Currency    domain.Currency
	Sizes       []string
	Colors      []string
	Season      domain.Season
	Images      []ProductImage
}

// UploadImagesReq — запрос на загрузку изображений товара.
type UploadImagesReq struct {
	Name   string
	Images []ProductImage
}

// UploadImagesRes — результат загрузки изображений (ключи в MinIO).
type UploadImagesRes struct {
	ImagesKeys []string
}

// ADMIN: ORDERS

// OrderListReq — фильтр списка заказов в админке.
type OrderListReq struct {
	Status *domain.OrderStatus
	Limit  int
	Offset int
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	EventOrderCreated       OutboxEventType = "order_created"
	EventOrderStatusChanged OutboxEventType = "order_status_changed"
)

// OutboxEvent — событие заказа, записываемое в одной транзакции с ним
// и публикуемое в Kafka фоновым worker'ом.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// MAPPERS

func NewCheckoutRes(orderID int64) *CheckoutRes {
	return &CheckoutRes{OrderID: orderID}
}

func NewUploadImagesReq(name string, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		Name:   name,
		Images: images,
	}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}
