package order_test

import (
	"testing"
	"time"

	"github.com/hoangtm/restaurant-ordering/application/order"
	"github.com/stretchr/testify/assert"
)

func TestFormatOrderCode(t *testing.T) {
	day := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "ORD20260831-000042", order.FormatOrderCode(42, day))
	assert.Equal(t, "ORD20260831-000001", order.FormatOrderCode(1, day))
	// Sequences wider than the pad keep all their digits.
	assert.Equal(t, "ORD20260831-1234567", order.FormatOrderCode(1234567, day))
}
