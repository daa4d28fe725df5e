package cart

import (
	"context"
	"encoding/json"

	redisclient "github.com/hoangtm/restaurant-ordering/cmd/redis"
	"github.com/hoangtm/restaurant-ordering/model"
	"github.com/redis/go-redis/v9"
)

// CartRepository stores the pre-order basket in redis, one JSON value per
// user. Clear is idempotent: clearing a missing cart succeeds.
type CartRepository interface {
	Get(ctx context.Context, userID string) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	Clear(ctx context.Context, userID string) error
}

type repo struct{}

func NewCartRepository() CartRepository {
	return &repo{}
}

func cartKey(userID string) string {
	return "cart:" + userID
}

func (r *repo) Get(ctx context.Context, userID string) (*model.Cart, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	val, err := client.Get(ctx, cartKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var cart model.Cart
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *repo) Save(ctx context.Context, cart *model.Cart) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	body, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return client.Set(ctx, cartKey(cart.UserID), body, 0).Err()
}

func (r *repo) Clear(ctx context.Context, userID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, cartKey(userID)).Err()
}
