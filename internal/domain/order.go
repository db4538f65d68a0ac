package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus — статус заказа
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDone       OrderStatus = "done"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusNew, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusDone, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal сообщает, является ли статус конечным.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDone || s == OrderStatusCancelled
}

// CanTransitionTo проверяет допустимость перехода статуса.
// Повторное применение текущего статуса допустимо и трактуется как no-op.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}

	switch s {
	case OrderStatusNew:
		return next == OrderStatusConfirmed
	case OrderStatusConfirmed:
		return next == OrderStatusProcessing
	case OrderStatusProcessing:
		return next == OrderStatusDone
	default:
		return false
	}
}

// ContactChannel — способ связи с покупателем.
type ContactChannel string

const (
	ContactTelegram ContactChannel = "telegram"
	ContactPhone    ContactChannel = "phone"
)

func (c ContactChannel) IsValid() bool {
	return c == ContactTelegram || c == ContactPhone
}

// Order описывает заказ. Суммы и валюта фиксируются при оформлении,
// дальше меняется только статус.
type Order struct {
	ID                   int64
	Status               OrderStatus
	TotalAmount          decimal.Decimal
	TotalCurrency        Currency
	TotalAmountRubApprox decimal.Decimal
	CustomerName         string
	ContactChannel       ContactChannel
	ContactValue         string
	Comment              string
	CreatedAt            time.Time
	UpdatedAt            *time.Time
	Items                []OrderItem
}

// OrderItem — строка заказа со снимком товара на момент оформления.
// Снимок не пересчитывается при последующих правках каталога.
type OrderItem struct {
	ID                 int64
	OrderID            int64
	ProductID          int64
	ProductName        string
	Size               string
	PriceSnapshot      decimal.Decimal
	Currency           Currency
	Quantity           int
	LineTotal          decimal.Decimal
	LineTotalRubApprox decimal.Decimal
}
