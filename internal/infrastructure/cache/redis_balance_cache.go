// Package cache guarda en Redis las giacenze calculadas por fecha de referencia.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	appstock "github.com/jhoicas/Reciclaje-api/internal/application/stock"
	"github.com/jhoicas/Reciclaje-api/internal/domain/stock"
	"github.com/jhoicas/Reciclaje-api/pkg/config"
)

var _ appstock.BalanceCache = (*RedisBalanceCache)(nil)
var _ appstock.BalanceCache = NopBalanceCache{}

const keyPrefix = "giacenze:"

// RedisBalanceCache implementación de appstock.BalanceCache sobre go-redis.
type RedisBalanceCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisClient abre el cliente y verifica la conexión.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: 20,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// NewRedisBalanceCache construye la caché con el TTL configurado.
func NewRedisBalanceCache(rdb *redis.Client, ttl time.Duration) *RedisBalanceCache {
	return &RedisBalanceCache{rdb: rdb, ttl: ttl}
}

// Key clave de la giacenza para una fecha de referencia (día).
func Key(ref time.Time) string {
	return keyPrefix + ref.Format("2006-01-02")
}

func (c *RedisBalanceCache) Get(ctx context.Context, ref time.Time) ([]stock.Balance, bool, error) {
	raw, err := c.rdb.Get(ctx, Key(ref)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var balances []stock.Balance
	if err := json.Unmarshal(raw, &balances); err != nil {
		return nil, false, fmt.Errorf("decodificar existencias: %w", err)
	}
	return balances, true, nil
}

func (c *RedisBalanceCache) Set(ctx context.Context, ref time.Time, balances []stock.Balance) error {
	raw, err := json.Marshal(balances)
	if err != nil {
		return fmt.Errorf("codificar existencias: %w", err)
	}
	if err := c.rdb.Set(ctx, Key(ref), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate borra todas las fechas: cualquier movimiento puede cambiar giacenze pasadas.
func (c *RedisBalanceCache) Invalidate(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// NopBalanceCache se usa cuando REDIS_ADDR está vacío: siempre recalcula.
type NopBalanceCache struct{}

func (NopBalanceCache) Get(context.Context, time.Time) ([]stock.Balance, bool, error) {
	return nil, false, nil
}
func (NopBalanceCache) Set(context.Context, time.Time, []stock.Balance) error { return nil }
func (NopBalanceCache) Invalidate(context.Context) error                      { return nil }
