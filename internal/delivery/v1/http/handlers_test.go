package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/internal/usecase"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any)        {}
func (noopLogger) Infof(string, ...any)         {}
func (noopLogger) Warnf(string, ...any)         {}
func (noopLogger) Errorf(error, string, ...any) {}

type stubCheckoutUC struct {
	res *usecase.CheckoutRes
	err error
}

func (s *stubCheckoutUC) PlaceOrder(context.Context, *usecase.CheckoutReq) (*usecase.CheckoutRes, error) {
	return s.res, s.err
}

type stubCatalogUC struct {
	card *usecase.ProductCard
	err  error
}

func (s *stubCatalogUC) Query(context.Context, *usecase.CatalogQuery) (*usecase.CatalogRes, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &usecase.CatalogRes{}, nil
}

func (s *stubCatalogUC) GetProductCard(context.Context, int64) (*usecase.ProductCard, error) {
	return s.card, s.err
}

func (s *stubCatalogUC) GetFacets(context.Context) (*usecase.FacetsRes, error) {
	return &usecase.FacetsRes{}, s.err
}

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{e.ErrCartEmpty, http.StatusBadRequest},
		{e.Wrap("op", e.ErrInvalidTelegram), http.StatusBadRequest},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.Wrap("op", e.ErrOrderNotFound), http.StatusNotFound},
		{e.ErrUnauthorized, http.StatusUnauthorized},
		{e.ErrInvalidStatusChange, http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, _ := ToHTTPResponse(tc.err)
		assert.Equal(t, tc.code, code, tc.err.Error())
	}
}

func TestToHTTPResponse_HidesInternalDetails(t *testing.T) {
	_, msg := ToHTTPResponse(e.Wrap("pgdb.OrderRepo", assert.AnError))
	assert.Equal(t, e.ErrInternalServerError.Error(), msg)
}

func TestPlaceOrder_EmptyCartReturnsRussianMessage(t *testing.T) {
	h := NewCheckoutHandler(&stubCheckoutUC{err: e.ErrCartEmpty}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout",
		strings.NewReader(`{"items":[]}`))
	rec := httptest.NewRecorder()

	h.placeOrder(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Корзина пуста")
}

func TestPlaceOrder_Success(t *testing.T) {
	h := NewCheckoutHandler(&stubCheckoutUC{res: &usecase.CheckoutRes{OrderID: 42}}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout",
		strings.NewReader(`{"items":[{"product_id":1,"quantity":2}],"customer_name":"Анна","contact_channel":"telegram","contact_value":"@anna"}`))
	rec := httptest.NewRecorder()

	h.placeOrder(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"order_id":42`)
}

func TestPlaceOrder_MalformedBody(t *testing.T) {
	h := NewCheckoutHandler(&stubCheckoutUC{}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{`))
	rec := httptest.NewRecorder()

	h.placeOrder(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProduct_NotFound(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogUC{err: e.Wrap("op", e.ErrProductNotFound)}, nil, noopLogger{})

	router := chi.NewRouter()
	router.Get("/catalog/{id}", h.getProduct)

	req := httptest.NewRequest(http.MethodGet, "/catalog/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProduct_Found(t *testing.T) {
	card := &usecase.ProductCard{ID: 1, Name: "Куртка", Currency: domain.CurrencyRUB, DisplayPrice: "3 500,00 ₽"}
	h := NewCatalogHandler(&stubCatalogUC{card: card}, nil, noopLogger{})

	router := chi.NewRouter()
	router.Get("/catalog/{id}", h.getProduct)

	req := httptest.NewRequest(http.MethodGet, "/catalog/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"display_price"`)
	assert.Contains(t, rec.Body.String(), "Куртка")
}

func TestAdminAuth(t *testing.T) {
	var reached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	handler := adminAuth("secret")(next)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)

	req.Header.Set("X-Admin-Token", "wrong")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req.Header.Set("X-Admin-Token", "secret")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}
