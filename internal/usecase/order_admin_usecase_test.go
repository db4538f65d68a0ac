package usecase

import (
	"context"
	"testing"

	"github.com/eastlane-store/go-backend/internal/domain"
	"github.com/eastlane-store/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderAdminUC(orders *mockOrderRepo, outbox *mockOutboxRepo) *OrderAdminUseCase {
	return NewOrderAdminUC(orders, outbox, &fakeTransactor{}, noopLogger{})
}

func TestChangeStatus_UnknownStatusRejectedBeforeStorage(t *testing.T) {
	orders := &mockOrderRepo{getErr: assert.AnError} // хранилище не должно быть тронуто
	uc := newOrderAdminUC(orders, &mockOutboxRepo{})

	err := uc.ChangeStatus(context.Background(), 1, "shipped")
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrUnknownOrderStatus)
	assert.Contains(t, err.Error(), "shipped")
}

func TestChangeStatus_HappyPath(t *testing.T) {
	orders := &mockOrderRepo{order: &domain.Order{ID: 1, Status: domain.OrderStatusNew}}
	outbox := &mockOutboxRepo{}
	uc := newOrderAdminUC(orders, outbox)

	err := uc.ChangeStatus(context.Background(), 1, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, orders.updatedStatus)

	require.Len(t, outbox.created, 1)
	assert.Equal(t, EventOrderStatusChanged, outbox.created[0].EventType)
	assert.Contains(t, string(outbox.created[0].Payload), `"to":"confirmed"`)
}

func TestChangeStatus_SameStatusIsNoop(t *testing.T) {
	orders := &mockOrderRepo{order: &domain.Order{ID: 1, Status: domain.OrderStatusConfirmed}}
	outbox := &mockOutboxRepo{}
	uc := newOrderAdminUC(orders, outbox)

	err := uc.ChangeStatus(context.Background(), 1, "confirmed")
	require.NoError(t, err)
	assert.Empty(t, orders.updatedStatus)
	assert.Empty(t, outbox.created)
}

func TestChangeStatus_TerminalStateIsFrozen(t *testing.T) {
	orders := &mockOrderRepo{order: &domain.Order{ID: 1, Status: domain.OrderStatusDone}}
	uc := newOrderAdminUC(orders, &mockOutboxRepo{})

	err := uc.ChangeStatus(context.Background(), 1, "cancelled")
	assert.ErrorIs(t, err, e.ErrInvalidStatusChange)
}

func TestList_ValidatesStatusFilter(t *testing.T) {
	uc := newOrderAdminUC(&mockOrderRepo{}, &mockOutboxRepo{})

	bad := domain.OrderStatus("paid")
	_, err := uc.List(context.Background(), &OrderListReq{Status: &bad})
	assert.ErrorIs(t, err, e.ErrUnknownOrderStatus)
}
