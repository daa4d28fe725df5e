package context

import (
	"context"

	"github.com/hoangtm/restaurant-ordering/constant"
)

func GetUserID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

func GetRequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.RequestIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
