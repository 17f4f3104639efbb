package redis

import (
	"context"
	"encoding/json"
	"time"

	redisclient "github.com/adindapuspa/storesync/cmd/redis"
	"github.com/adindapuspa/storesync/constant"
	"github.com/adindapuspa/storesync/model"
	goredis "github.com/redis/go-redis/v9"
)

// Repository caches the storefront listing and persists the Etsy token pair
// so refreshed credentials survive restarts. Every method degrades to a
// no-op/miss when the client is not initialized, keeping redis optional.
type Repository interface {
	GetStorefront(ctx context.Context) ([]model.Product, error)
	SetStorefront(ctx context.Context, products []model.Product, ttl time.Duration) error
	InvalidateStorefront(ctx context.Context) error
	GetTokenPair(ctx context.Context) (*model.TokenPair, error)
	SetTokenPair(ctx context.Context, pair *model.TokenPair) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func (r *redis) GetStorefront(ctx context.Context) ([]model.Product, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	val, err := client.Get(ctx, constant.CacheKeyStorefront).Result()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var products []model.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *redis) SetStorefront(ctx context.Context, products []model.Product, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	body, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return client.Set(ctx, constant.CacheKeyStorefront, body, ttl).Err()
}

func (r *redis) InvalidateStorefront(ctx context.Context) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, constant.CacheKeyStorefront).Err()
}

func (r *redis) GetTokenPair(ctx context.Context) (*model.TokenPair, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	val, err := client.Get(ctx, constant.TokenPairKey).Result()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var pair model.TokenPair
	if err := json.Unmarshal([]byte(val), &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (r *redis) SetTokenPair(ctx context.Context, pair *model.TokenPair) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	body, err := json.Marshal(pair)
	if err != nil {
		return err
	}
	return client.Set(ctx, constant.TokenPairKey, body, 0).Err()
}
