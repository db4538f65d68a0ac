package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/internal/pricing"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/eastlane-store/go-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutUseCase оформляет заказы: валидация корзины, снимки цен из
// каталога, агрегация сумм и атомарная запись заказа с событием outbox.
type CheckoutUseCase struct {
	productRepo ProductRepository
	orderRepo   OrderRepository
	outboxRepo  OutboxRepository
	contentRepo ContentRepository
	tx          Transactor
	logger      logger.Logger
}

func NewCheckoutUC(
	productRepo ProductRepository,
	orderRepo OrderRepository,
	outboxRepo OutboxRepository,
	contentRepo ContentRepository,
	tx Transactor,
	logger logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		outboxRepo:  outboxRepo,
		contentRepo: contentRepo,
		tx:          tx,
		logger:      logger,
	}
}

// orderCreatedPayload — JSON-тело события order_created для Kafka.
type orderCreatedPayload struct {
	OrderID        int64  `json:"order_id"`
	Status         string `json:"status"`
	TotalAmount    string `json:"total_amount"`
	TotalCurrency  string `json:"total_currency"`
	TotalRubApprox string `json:"total_rub_approx"`
	ItemsCount     int    `json:"items_count"`
}

// PlaceOrder обрабатывает оформление заказа.
// Цены берутся из каталога на момент запроса, а не из корзины клиента.
func (c *CheckoutUseCase) PlaceOrder(ctx context.Context, req *CheckoutReq) (*CheckoutRes, error) {
	const op = "CheckoutUseCase.PlaceOrder"

	if err := validateCheckout(req); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ProductID)
	}

	// Авторитетные строки товаров всегда читаются заново, минуя кэш
	products, err := c.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	rate := c.currentRate(ctx)

	built, err := BuildOrderItems(req.Items, products, rate)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		Status:               domain.OrderStatusNew,
		TotalAmount:          built.TotalAmount,
		TotalCurrency:        built.TotalCurrency,
		TotalAmountRubApprox: built.TotalAmountRubApprox,
		CustomerName:         strings.TrimSpace(req.CustomerName),
		ContactChannel:       req.ContactChannel,
		ContactValue:         strings.TrimSpace(req.ContactValue),
		Comment:              strings.TrimSpace(req.Comment),
	}

	// Заказ, его строки и событие outbox пишутся одной транзакцией,
	// чтобы не оставлять заголовок заказа без строк.
	var orderID int64
	err = c.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		orderID, err = c.orderRepo.InsertOrder(txCtx, order)
		if err != nil {
			return err
		}

		if err := c.orderRepo.InsertOrderItems(txCtx, orderID, built.Items); err != nil {
			return err
		}

		payload, err := json.Marshal(orderCreatedPayload{
			OrderID:        orderID,
			Status:         string(domain.OrderStatusNew),
			TotalAmount:    built.TotalAmount.StringFixed(2),
			TotalCurrency:  string(built.TotalCurrency),
			TotalRubApprox: built.TotalAmountRubApprox.StringFixed(2),
			ItemsCount:     len(built.Items),
		})
		if err != nil {
			return err
		}

		_, err = c.outboxRepo.Create(txCtx, NewOutboxEvent(uuid.NewString(), EventOrderCreated, orderID, payload))
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCheckoutRes(orderID), nil
}

// currentRate возвращает текущий курс или ноль, если курс недоступен.
// Нулевой курс дальше трактуется как «конвертация недоступна».
func (c *CheckoutUseCase) currentRate(ctx context.Context) decimal.Decimal {
	rate, err := c.contentRepo.GetRate(ctx)
	if err != nil {
		c.logger.Warnf("exchange rate unavailable, CNY totals will degrade: %v", err)
		return decimal.Decimal{}
	}

	return rate.CnyPerRub
}

// validateCheckout проверяет корректность запроса на оформление заказа.
// Возвращает первую нарушенную проверку; текст ошибки показывается покупателю.
func validateCheckout(req *CheckoutReq) error {
	if len(req.Items) == 0 {
		return e.ErrCartEmpty
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return e.ErrCustomerNameRequired
	}

	if !req.ContactChannel.IsValid() {
		return e.ErrContactChannelRequired
	}

	contact := strings.TrimSpace(req.ContactValue)
	if contact == "" {
		return e.ErrContactValueRequired
	}

	switch req.ContactChannel {
	case domain.ContactTelegram:
		if !strings.HasPrefix(contact, "@") && !strings.Contains(contact, "t.me/") {
			return e.ErrInvalidTelegram
		}
	case domain.ContactPhone:
		if countDigits(contact) < 10 {
			return e.ErrInvalidPhone
		}
	}

	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// BuildOrderItems сопоставляет строки корзины с авторитетными записями
// каталога, снимает цену/валюту/название и считает агрегаты заказа.
// Валюта заказа — CNY, если хотя бы одна строка в юанях, иначе RUB.
func BuildOrderItems(lines []CheckoutItemReq, products []domain.Product, cnyPerRub decimal.Decimal) (*BuiltOrder, error) {
	byID := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	baseCurrency := domain.CurrencyRUB
	for _, line := range lines {
		p, ok := byID[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: id %d", e.ErrProductNotFound, line.ProductID)
		}
		if p.Currency == domain.CurrencyCNY {
			baseCurrency = domain.CurrencyCNY
		}
	}

	items := make([]domain.OrderItem, 0, len(lines))
	totalAmount := decimal.Decimal{}
	totalRubApprox := decimal.Decimal{}

	for _, line := range lines {
		p := byID[line.ProductID]

		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: %s", e.ErrInvalidQuantity, p.Name)
		}

		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))

		// Конвертация недоступна — строка даёт нулевой вклад в рублёвый
		// эквивалент (поведение исходной системы сохранено намеренно).
		lineRubApprox := decimal.Decimal{}
		if converted, ok := pricing.ConvertTo(lineTotal, p.Currency, domain.CurrencyRUB, cnyPerRub); ok {
			lineRubApprox = converted
		}

		if contribution, ok := pricing.ConvertTo(lineTotal, p.Currency, baseCurrency, cnyPerRub); ok {
			totalAmount = totalAmount.Add(contribution)
		}
		totalRubApprox = totalRubApprox.Add(lineRubApprox)

		items = append(items, domain.OrderItem{
			ProductID:          p.ID,
			ProductName:        p.Name,
			Size:               strings.TrimSpace(line.Size),
			PriceSnapshot:      p.Price,
			Currency:           p.Currency,
			Quantity:           line.Quantity,
			LineTotal:          lineTotal,
			LineTotalRubApprox: lineRubApprox,
		})
	}

	return &BuiltOrder{
		Items:                items,
		TotalAmount:          totalAmount,
		TotalCurrency:        baseCurrency,
		TotalAmountRubApprox: totalRubApprox,
	}, nil
}
