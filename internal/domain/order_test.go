package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_IsValid(t *testing.T) {
	valid := []OrderStatus{
		OrderStatusNew, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusDone, OrderStatusCancelled,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), string(s))
	}

	for _, s := range []string{"", "NEW", "paid", "shipped", "отменён"} {
		assert.False(t, OrderStatus(s).IsValid(), s)
	}
}

func TestOrderStatus_Transitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusNew, OrderStatusConfirmed, true},
		{OrderStatusConfirmed, OrderStatusProcessing, true},
		{OrderStatusProcessing, OrderStatusDone, true},
		{OrderStatusNew, OrderStatusCancelled, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusNew, OrderStatusProcessing, false},
		{OrderStatusNew, OrderStatusDone, false},
		{OrderStatusDone, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusNew, false},
		{OrderStatusDone, OrderStatusNew, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatus_ReapplySameStatus(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusNew, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusDone, OrderStatusCancelled,
	} {
		assert.True(t, s.CanTransitionTo(s), string(s))
	}
}

func TestParseSeason(t *testing.T) {
	s, ok := ParseSeason("  SUMMER ")
	assert.True(t, ok)
	assert.Equal(t, SeasonSummer, s)

	_, ok = ParseSeason("monsoon")
	assert.False(t, ok)
}
