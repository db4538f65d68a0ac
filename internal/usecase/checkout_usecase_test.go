package usecase

import (
	"context"
	"testing"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func rubProduct(id int64, name, price string) domain.Product {
	return domain.Product{ID: id, Name: name, Price: dec(price), Currency: domain.CurrencyRUB}
}

func cnyProduct(id int64, name, price string) domain.Product {
	return domain.Product{ID: id, Name: name, Price: dec(price), Currency: domain.CurrencyCNY}
}

func validCheckout() *CheckoutReq {
	return &CheckoutReq{
		Items:          []CheckoutItemReq{{ProductID: 1, Quantity: 2}},
		CustomerName:   "Анна",
		ContactChannel: domain.ContactTelegram,
		ContactValue:   "@anna",
	}
}

func TestValidateCheckout_EmptyCart(t *testing.T) {
	err := validateCheckout(&CheckoutReq{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Корзина пуста")
}

func TestValidateCheckout_NameRequired(t *testing.T) {
	req := validCheckout()
	req.CustomerName = "   "
	assert.ErrorIs(t, validateCheckout(req), e.ErrCustomerNameRequired)
}

func TestValidateCheckout_ChannelRequired(t *testing.T) {
	req := validCheckout()
	req.ContactChannel = "email"
	assert.ErrorIs(t, validateCheckout(req), e.ErrContactChannelRequired)
}

func TestValidateCheckout_ContactValueRequired(t *testing.T) {
	req := validCheckout()
	req.ContactValue = "  "
	assert.ErrorIs(t, validateCheckout(req), e.ErrContactValueRequired)
}

func TestValidateCheckout_Telegram(t *testing.T) {
	req := validCheckout()
	req.ContactValue = "eastlane"
	err := validateCheckout(req)
	assert.ErrorIs(t, err, e.ErrInvalidTelegram)
	assert.Contains(t, err.Error(), "Telegram")

	for _, ok := range []string{"@eastlane", "https://t.me/eastlane", "t.me/eastlane"} {
		req.ContactValue = ok
		assert.NoError(t, validateCheckout(req), ok)
	}
}

func TestValidateCheckout_Phone(t *testing.T) {
	req := validCheckout()
	req.ContactChannel = domain.ContactPhone

	req.ContactValue = "123"
	err := validateCheckout(req)
	assert.ErrorIs(t, err, e.ErrInvalidPhone)
	assert.Contains(t, err.Error(), "телефон")

	req.ContactValue = "+7 (912) 345-67-89"
	assert.NoError(t, validateCheckout(req))
}

func TestBuildOrderItems_SingleRubLine(t *testing.T) {
	built, err := BuildOrderItems(
		[]CheckoutItemReq{{ProductID: 1, Quantity: 2}},
		[]domain.Product{rubProduct(1, "Куртка", "3500")},
		dec("0.08"),
	)
	require.NoError(t, err)

	require.Len(t, built.Items, 1)
	assert.True(t, built.Items[0].LineTotal.Equal(dec("7000")), "line total %s", built.Items[0].LineTotal)
	assert.Equal(t, domain.CurrencyRUB, built.TotalCurrency)
	assert.True(t, built.TotalAmount.Equal(dec("7000")))
	assert.True(t, built.TotalAmountRubApprox.Equal(dec("7000")))
}

func TestBuildOrderItems_MixedCartUsesCNYBase(t *testing.T) {
	built, err := BuildOrderItems(
		[]CheckoutItemReq{
			{ProductID: 1, Quantity: 1},
			{ProductID: 2, Quantity: 1},
		},
		[]domain.Product{
			cnyProduct(1, "Кроссовки", "560"),
			rubProduct(2, "Футболка", "1000"),
		},
		dec("0.08"),
	)
	require.NoError(t, err)

	assert.Equal(t, domain.CurrencyCNY, built.TotalCurrency)
	// 560 CNY + 1000 RUB * 0.08 = 640 CNY
	assert.True(t, built.TotalAmount.Equal(dec("640")), "total %s", built.TotalAmount)
	// 560 / 0.08 + 1000 = 8000 RUB
	assert.True(t, built.TotalAmountRubApprox.Equal(dec("8000")), "rub approx %s", built.TotalAmountRubApprox)
	assert.True(t, built.TotalAmountRubApprox.IsPositive())
}

func TestBuildOrderItems_SnapshotsAuthoritativePrice(t *testing.T) {
	built, err := BuildOrderItems(
		[]CheckoutItemReq{{ProductID: 1, Quantity: 1, Size: "42"}},
		[]domain.Product{rubProduct(1, "Ботинки", "9990.50")},
		dec("0.08"),
	)
	require.NoError(t, err)

	item := built.Items[0]
	assert.Equal(t, "Ботинки", item.ProductName)
	assert.Equal(t, "42", item.Size)
	assert.True(t, item.PriceSnapshot.Equal(dec("9990.50")))
	assert.Equal(t, domain.CurrencyRUB, item.Currency)
}

func TestBuildOrderItems_MissingProduct(t *testing.T) {
	_, err := BuildOrderItems(
		[]CheckoutItemReq{{ProductID: 7, Quantity: 1}},
		nil,
		dec("0.08"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
	assert.Contains(t, err.Error(), "7")
}

func TestBuildOrderItems_InvalidQuantity(t *testing.T) {
	_, err := BuildOrderItems(
		[]CheckoutItemReq{{ProductID: 1, Quantity: 0}},
		[]domain.Product{rubProduct(1, "Куртка", "3500")},
		dec("0.08"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrInvalidQuantity)
	assert.Contains(t, err.Error(), "Куртка")
}

func TestBuildOrderItems_RateUnavailableZeroesCNYContribution(t *testing.T) {
	built, err := BuildOrderItems(
		[]CheckoutItemReq{
			{ProductID: 1, Quantity: 1},
			{ProductID: 2, Quantity: 1},
		},
		[]domain.Product{
			cnyProduct(1, "Кроссовки", "560"),
			rubProduct(2, "Футболка", "1000"),
		},
		decimal.Decimal{},
	)
	require.NoError(t, err)

	assert.Equal(t, domain.CurrencyCNY, built.TotalCurrency)
	// Рублёвая строка не конвертируется в базовую валюту — вклад нулевой
	assert.True(t, built.TotalAmount.Equal(dec("560")), "total %s", built.TotalAmount)
	// Юаневая строка не даёт рублёвого эквивалента
	assert.True(t, built.TotalAmountRubApprox.Equal(dec("1000")), "rub approx %s", built.TotalAmountRubApprox)
	assert.True(t, built.Items[0].LineTotalRubApprox.IsZero())
}

func TestPlaceOrder_PersistsOrderItemsAndOutbox(t *testing.T) {
	orders := &mockOrderRepo{}
	outbox := &mockOutboxRepo{}
	uc := NewCheckoutUC(
		&mockProductRepo{products: []domain.Product{rubProduct(1, "Куртка", "3500")}},
		orders,
		outbox,
		&mockContentRepo{rate: &domain.ExchangeRate{CnyPerRub: dec("0.08")}},
		&fakeTransactor{},
		noopLogger{},
	)

	res, err := uc.PlaceOrder(context.Background(), validCheckout())
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.OrderID)

	require.NotNil(t, orders.insertedOrder)
	assert.Equal(t, domain.OrderStatusNew, orders.insertedOrder.Status)
	assert.True(t, orders.insertedOrder.TotalAmount.Equal(dec("7000")))
	require.Len(t, orders.insertedItems, 1)

	require.Len(t, outbox.created, 1)
	assert.Equal(t, EventOrderCreated, outbox.created[0].EventType)
	assert.Equal(t, int64(42), outbox.created[0].OrderID)
	assert.Contains(t, string(outbox.created[0].Payload), `"total_amount":"7000.00"`)
}

func TestPlaceOrder_ValidationStopsBeforePersistence(t *testing.T) {
	orders := &mockOrderRepo{}
	uc := NewCheckoutUC(
		&mockProductRepo{},
		orders,
		&mockOutboxRepo{},
		&mockContentRepo{},
		&fakeTransactor{},
		noopLogger{},
	)

	_, err := uc.PlaceOrder(context.Background(), &CheckoutReq{})
	assert.ErrorIs(t, err, e.ErrCartEmpty)
	assert.Nil(t, orders.insertedOrder)
}

func TestPlaceOrder_MissingProductFailsWholeCheckout(t *testing.T) {
	orders := &mockOrderRepo{}
	uc := NewCheckoutUC(
		&mockProductRepo{products: []domain.Product{rubProduct(1, "Куртка", "3500")}},
		orders,
		&mockOutboxRepo{},
		&mockContentRepo{rate: &domain.ExchangeRate{CnyPerRub: dec("0.08")}},
		&fakeTransactor{},
		noopLogger{},
	)

	req := validCheckout()
	req.Items = append(req.Items, CheckoutItemReq{ProductID: 99, Quantity: 1})

	_, err := uc.PlaceOrder(context.Background(), req)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
	assert.Nil(t, orders.insertedOrder)
}

func TestPlaceOrder_RateFetchFailureDegrades(t *testing.T) {
	orders := &mockOrderRepo{}
	uc := NewCheckoutUC(
		&mockProductRepo{products: []domain.Product{cnyProduct(1, "Кроссовки", "560")}},
		orders,
		&mockOutboxRepo{},
		&mockContentRepo{err: assert.AnError},
		&fakeTransactor{},
		noopLogger{},
	)

	res, err := uc.PlaceOrder(context.Background(), validCheckout())
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.OrderID)
	assert.True(t, orders.insertedOrder.TotalAmountRubApprox.IsZero())
}
