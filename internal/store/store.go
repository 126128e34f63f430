package store

import (
	"context"

	"github.com/redis/go-redis/v9"

	logx "github.com/gamal-store/server/pkg/logger"
)

// Store ties the in-memory state to its Redis mirror. Every catalog or
// config mutation rewrites the affected snapshot slot; a failed mirror write
// is logged and does not roll back the in-memory change.
type Store struct {
	Catalog *Catalog
	Cart    *Cart

	config    Config
	snapshots *Snapshots
}

// Open loads the three snapshot slots (falling back to seed data where a
// slot is absent or malformed) and returns a ready store.
func Open(ctx context.Context, rdb redis.Cmdable) (*Store, error) {
	snapshots := NewSnapshots(rdb)

	products, err := snapshots.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := snapshots.LoadCategories(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := snapshots.LoadConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &Store{
		Catalog:   NewCatalog(products, categories),
		Cart:      NewCart(),
		config:    cfg,
		snapshots: snapshots,
	}, nil
}

// Config returns the current presentation settings.
func (s *Store) Config() Config {
	return s.config
}

// UpdateConfig replaces the presentation settings wholesale and mirrors them.
func (s *Store) UpdateConfig(ctx context.Context, cfg Config) {
	s.config = cfg.normalized()
	if err := s.snapshots.SaveConfig(ctx, s.config); err != nil {
		logx.Warn().Err(err).Msg("config mirror write failed")
	}
}

// AddProduct adds a product to the catalog and mirrors the product slot.
func (s *Store) AddProduct(ctx context.Context, p Product) (Product, error) {
	added, err := s.Catalog.Add(p)
	if err != nil {
		return Product{}, err
	}
	s.mirrorProducts(ctx)
	return added, nil
}

// UpdateProduct replaces a catalog entry and mirrors the product slot.
func (s *Store) UpdateProduct(ctx context.Context, p Product) (Product, error) {
	updated, err := s.Catalog.Update(p)
	if err != nil {
		return Product{}, err
	}
	s.mirrorProducts(ctx)
	return updated, nil
}

// DeleteProduct removes a catalog entry and mirrors the product slot.
func (s *Store) DeleteProduct(ctx context.Context, id string) {
	s.Catalog.Delete(id)
	s.mirrorProducts(ctx)
}

// AddCategory adds a category and mirrors the category slot when the set
// changed.
func (s *Store) AddCategory(ctx context.Context, name string) {
	if s.Catalog.AddCategory(name) {
		s.mirrorCategories(ctx)
	}
}

// DeleteCategory removes a category and mirrors the category slot.
func (s *Store) DeleteCategory(ctx context.Context, name string) {
	s.Catalog.DeleteCategory(name)
	s.mirrorCategories(ctx)
}

func (s *Store) mirrorProducts(ctx context.Context) {
	if err := s.snapshots.SaveProducts(ctx, s.Catalog.Products()); err != nil {
		logx.Warn().Err(err).Msg("product mirror write failed")
	}
}

func (s *Store) mirrorCategories(ctx context.Context) {
	if err := s.snapshots.SaveCategories(ctx, s.Catalog.Categories()); err != nil {
		logx.Warn().Err(err).Msg("category mirror write failed")
	}
}
