package http

import (
	"net/http"
	"strconv"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/internal/usecase"
	"github.com/eastlane-store/go-backend/pkg/logger"
)

// AdminOrderHandler — просмотр заказов и перевод статусов менеджером.
type AdminOrderHandler struct {
	ordersUC usecase.OrdersUC
	logger   logger.Logger
}

func NewAdminOrderHandler(ordersUC usecase.OrdersUC, logger logger.Logger) *AdminOrderHandler {
	return &AdminOrderHandler{ordersUC: ordersUC, logger: logger}
}

func (h *AdminOrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	req := &usecase.OrderListReq{Limit: defaultLimit}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.OrderStatus(raw)
		req.Status = &status
	}

	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		if limit > maxLimit {
			limit = maxLimit
		}
		req.Limit = limit
	}

	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && offset > 0 {
		req.Offset = offset
	}

	orders, err := h.ordersUC.List(r.Context(), req)
	if err != nil {
		h.logger.Warnf("orders list failed: %v", err)
		WriteError(w, err)
		return
	}

	res := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		res = append(res, toOrderResponse(&orders[i]))
	}

	WriteSuccess(w, http.StatusOK, res)
}

func (h *AdminOrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	order, err := h.ordersUC.Get(r.Context(), id)
	if err != nil {
		h.logger.Warnf("order get failed, id: %d: %v", id, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}

func (h *AdminOrderHandler) changeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var body ChangeStatusRequest
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.ordersUC.ChangeStatus(r.Context(), id, body.Status); err != nil {
		h.logger.Warnf("status change failed, id: %d, status: %s: %v", id, body.Status, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]any{"id": id, "status": body.Status})
}
