package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	errx "github.com/gamal-store/server/internal/core/error"
	logx "github.com/gamal-store/server/pkg/logger"
)

// Redis keys of the three snapshot slots. Each holds the full serialized
// state of its collection and is rewritten wholesale on every mutation.
const (
	productsKey   = "gamal:products"
	categoriesKey = "gamal:categories"
	configKey     = "gamal:config"
)

// Snapshots mirrors the storefront state to Redis. A missing or malformed
// slot falls back to the seed defaults on load instead of failing.
type Snapshots struct {
	rdb redis.Cmdable
}

func NewSnapshots(rdb redis.Cmdable) *Snapshots {
	return &Snapshots{rdb: rdb}
}

func (s *Snapshots) save(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, key, b, 0).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to write snapshot")
		return errx.WrapRedis(err)
	}
	return nil
}

func (s *Snapshots) load(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to read snapshot")
		return nil, errx.WrapRedis(err)
	}
	return raw, nil
}

func (s *Snapshots) SaveProducts(ctx context.Context, products []Product) error {
	return s.save(ctx, productsKey, products)
}

func (s *Snapshots) LoadProducts(ctx context.Context) ([]Product, error) {
	raw, err := s.load(ctx, productsKey)
	if err != nil {
		return nil, err
	}
	return decodeProducts(raw), nil
}

func (s *Snapshots) SaveCategories(ctx context.Context, categories []string) error {
	return s.save(ctx, categoriesKey, categories)
}

func (s *Snapshots) LoadCategories(ctx context.Context) ([]string, error) {
	raw, err := s.load(ctx, categoriesKey)
	if err != nil {
		return nil, err
	}
	return decodeCategories(raw), nil
}

func (s *Snapshots) SaveConfig(ctx context.Context, cfg Config) error {
	return s.save(ctx, configKey, cfg)
}

func (s *Snapshots) LoadConfig(ctx context.Context) (Config, error) {
	raw, err := s.load(ctx, configKey)
	if err != nil {
		return Config{}, err
	}
	return decodeConfig(raw), nil
}

func decodeProducts(raw []byte) []Product {
	if raw == nil {
		return SeedProducts()
	}
	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		logx.Warn().Err(err).Str("key", productsKey).Msg("malformed products snapshot, using seed data")
		return SeedProducts()
	}
	return products
}

func decodeCategories(raw []byte) []string {
	if raw == nil {
		return DefaultCategories()
	}
	var categories []string
	if err := json.Unmarshal(raw, &categories); err != nil {
		logx.Warn().Err(err).Str("key", categoriesKey).Msg("malformed categories snapshot, using defaults")
		return DefaultCategories()
	}
	return categories
}

func decodeConfig(raw []byte) Config {
	if raw == nil {
		return DefaultConfig()
	}
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		logx.Warn().Err(err).Str("key", configKey).Msg("malformed config snapshot, using defaults")
		return DefaultConfig()
	}
	return cfg.normalized()
}
