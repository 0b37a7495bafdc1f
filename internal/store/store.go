// Package store holds the wishlist queries and the admin ingest operations.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wishlist/internal/model"
)

const DefaultNewestLimit = 10

type Store struct {
	db          *gorm.DB
	newestLimit int
}

type Option func(*Store)

func WithNewestLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.newestLimit = n
		}
	}
}

func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{db: db, newestLimit: DefaultNewestLimit}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func desc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: true}
}

func asc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column}}
}

// findProducts runs a product query with the category preloaded and the
// sources attached.
func (s *Store) findProducts(ctx context.Context, query *gorm.DB) ([]model.Product, error) {
	var products []model.Product
	if err := query.Preload("Category").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	if err := s.loadSources(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// loadSources fetches every distinct source referenced by products in one
// query and attaches it. A product without a resolvable source fails the
// whole batch.
func (s *Store) loadSources(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	seen := make(map[uuid.UUID]struct{}, len(products))
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		if p.SourceID == uuid.Nil {
			return notLoaded("product", "source_id")
		}
		if _, ok := seen[p.SourceID]; ok {
			continue
		}
		seen[p.SourceID] = struct{}{}
		ids = append(ids, p.SourceID)
	}

	var sources []model.Source
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&sources).Error; err != nil {
		return fmt.Errorf("find sources: %w", err)
	}

	byID := make(map[uuid.UUID]*model.Source, len(sources))
	for i := range sources {
		byID[sources[i].ID] = &sources[i]
	}

	for i := range products {
		src, ok := byID[products[i].SourceID]
		if !ok {
			return fmt.Errorf("source %s: %w", products[i].SourceID, ErrEmptyResult)
		}
		products[i].Source = src
	}
	return nil
}
