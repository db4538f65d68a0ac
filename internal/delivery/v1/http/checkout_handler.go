package http

import (
	"net/http"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/internal/usecase"
	"github.com/eastlane-store/go-backend/pkg/logger"
)

// CheckoutHandler принимает оформление заказа с витрины.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUC
	logger     logger.Logger
}

func NewCheckoutHandler(checkoutUC usecase.CheckoutUC, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: checkoutUC, logger: logger}
}

func (h *CheckoutHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var body CheckoutRequest
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	items := make([]usecase.CheckoutItemReq, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, usecase.CheckoutItemReq{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
		})
	}

	res, err := h.checkoutUC.PlaceOrder(r.Context(), &usecase.CheckoutReq{
		Items:          items,
		CustomerName:   body.CustomerName,
		ContactChannel: domain.ContactChannel(body.ContactChannel),
		ContactValue:   body.ContactValue,
		Comment:        body.Comment,
	})
	if err != nil {
		h.logger.Warnf("checkout failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, CheckoutResponse{OrderID: res.OrderID})
}
