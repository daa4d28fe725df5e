package order

import (
	"fmt"
	"time"

	"github.com/hoangtm/restaurant-ordering/constant"
)

// FormatOrderCode derives the human-readable order code from an allocated
// sequence number and the creation date, e.g. ORD20260831-000042. Pure; the
// concurrency contract lives in the sequence allocation, not here.
func FormatOrderCode(seq int64, at time.Time) string {
	return fmt.Sprintf("%s%s-%06d", constant.OrderCodePrefix, at.Format("20060102"), seq)
}
