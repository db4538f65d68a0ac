package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/eastlane-store/go-backend/pkg/logger"
	"github.com/google/uuid"
)

// OrderAdminUseCase — операции менеджера над заказами.
type OrderAdminUseCase struct {
	orderRepo  OrderRepository
	outboxRepo OutboxRepository
	tx         Transactor
	logger     logger.Logger
}

func NewOrderAdminUC(orderRepo OrderRepository, outboxRepo OutboxRepository, tx Transactor, logger logger.Logger) *OrderAdminUseCase {
	return &OrderAdminUseCase{
		orderRepo:  orderRepo,
		outboxRepo: outboxRepo,
		tx:         tx,
		logger:     logger,
	}
}

func (o *OrderAdminUseCase) List(ctx context.Context, req *OrderListReq) ([]domain.Order, error) {
	const op = "OrderAdminUseCase.List"

	if req.Status != nil && !req.Status.IsValid() {
		return nil, e.ErrUnknownOrderStatus
	}

	orders, err := o.orderRepo.List(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

func (o *OrderAdminUseCase) Get(ctx context.Context, id int64) (*domain.Order, error) {
	const op = "OrderAdminUseCase.Get"

	order, err := o.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// statusChangedPayload — JSON-тело события order_status_changed.
type statusChangedPayload struct {
	OrderID int64  `json:"order_id"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// ChangeStatus переводит заказ в новый статус.
// Значение вне перечисления отклоняется до обращения к хранилищу.
func (o *OrderAdminUseCase) ChangeStatus(ctx context.Context, id int64, status string) error {
	const op = "OrderAdminUseCase.ChangeStatus"

	next := domain.OrderStatus(status)
	if !next.IsValid() {
		return fmt.Errorf("%w: %q", e.ErrUnknownOrderStatus, status)
	}

	order, err := o.orderRepo.GetByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	// Повтор текущего статуса — идемпотентный no-op
	if order.Status == next {
		return nil
	}

	if !order.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", e.ErrInvalidStatusChange, order.Status, next)
	}

	payload, err := json.Marshal(statusChangedPayload{
		OrderID: id,
		From:    string(order.Status),
		To:      string(next),
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	err = o.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := o.orderRepo.UpdateStatus(txCtx, id, next); err != nil {
			return err
		}

		_, err := o.outboxRepo.Create(txCtx, NewOutboxEvent(uuid.NewString(), EventOrderStatusChanged, id, payload))
		return err
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
