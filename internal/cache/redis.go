package cache

import (
	"context"
	"encoding/json"
	"time"

	"flightdesk/config"
	"flightdesk/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCache holds the list caches for the two read-heavy reference
// collections: flights and IATA codes. Both are invalidated whole on any
// mutation of the collection.
type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
	iataTTL    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL, iataTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
		iataTTL:    iataTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey, payload, c.flightsTTL).Err()
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey).Err()
}

func (c *RedisCache) GetIATACodes(ctx context.Context) ([]domain.IATACode, error) {
	data, err := c.client.Get(ctx, iataKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var codes []domain.IATACode
	if err := json.Unmarshal(data, &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

func (c *RedisCache) SetIATACodes(ctx context.Context, codes []domain.IATACode) error {
	payload, err := json.Marshal(codes)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, iataKey, payload, c.iataTTL).Err()
}

func (c *RedisCache) InvalidateIATACodes(ctx context.Context) error {
	return c.client.Del(ctx, iataKey).Err()
}

const (
	flightsKey = "cache:flights"
	iataKey    = "cache:iata-codes"
)
