package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wishlist/internal/model"
	"wishlist/internal/pagination"
)

type ProductInput struct {
	ItemID      string
	Name        string
	Description string
	Price       int64
	Currency    string
	URL         string
	Category    string
	SourceID    uuid.UUID
	Timestamp   time.Time
}

// NewestProducts returns the most recently inserted products.
func (s *Store) NewestProducts(ctx context.Context) ([]model.Product, error) {
	q := s.db.WithContext(ctx).
		Order(desc("created_at")).
		Order(desc("id")).
		Limit(s.newestLimit)
	return s.findProducts(ctx, q)
}

// archivedScope selects products that are not members of wishlist w.
func (s *Store) archivedScope(ctx context.Context, w *model.Wishlist) *gorm.DB {
	members := s.db.WithContext(ctx).Model(&model.WishlistItem{}).
		Select("product_id").
		Where("wishlist_id = ?", w.ID)
	return s.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id NOT IN (?)", members)
}

// ArchivedProducts pages through the products missing from the last
// wishlist, newest inserted first.
func (s *Store) ArchivedProducts(ctx context.Context, p pagination.Paginate) ([]model.Product, error) {
	w, err := s.lastWishlist(ctx)
	if err != nil {
		return nil, err
	}

	q := s.archivedScope(ctx, w).
		Order(desc("created_at")).
		Order(desc("id")).
		Offset(p.Offset()).
		Limit(p.Limit())
	return s.findProducts(ctx, q)
}

func (s *Store) ArchivedProductCount(ctx context.Context) (int64, error) {
	w, err := s.lastWishlist(ctx)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := s.archivedScope(ctx, w).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count archived products: %w", err)
	}
	return n, nil
}

func (s *Store) FindProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := s.db.WithContext(ctx).Preload("Category").Take(&p, "id = ?", id).Error
	if isNotFound(err) {
		return nil, ErrEmptyResult
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	products := []model.Product{p}
	if err := s.loadSources(ctx, products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

// UpsertProduct creates the product identified by in.ItemID or updates it in
// place. The category is created on demand. It reports whether a row was
// created.
func (s *Store) UpsertProduct(ctx context.Context, in ProductInput) (*model.Product, bool, error) {
	in.ItemID = strings.TrimSpace(in.ItemID)
	in.Name = strings.TrimSpace(in.Name)
	if in.ItemID == "" || in.Name == "" {
		return nil, false, fmt.Errorf("%w: item_id and name are required", ErrInvalid)
	}
	if in.SourceID == uuid.Nil {
		return nil, false, fmt.Errorf("%w: source_id is required", ErrInvalid)
	}
	if in.Price < 0 {
		return nil, false, fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}
	if in.Timestamp.IsZero() {
		in.Timestamp = time.Now().UTC()
	}

	var (
		id      uuid.UUID
		created bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Source{}).Where("id = ?", in.SourceID).Count(&n).Error; err != nil {
			return fmt.Errorf("check source: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: source %s does not exist", ErrInvalid, in.SourceID)
		}

		var categoryID *uuid.UUID
		// "null" is the uncategorised bucket, never a stored row
		if name := strings.TrimSpace(in.Category); name != "" && name != NullCategory {
			var c model.Category
			if err := tx.Where(model.Category{Name: name}).FirstOrCreate(&c).Error; err != nil {
				return fmt.Errorf("category %q: %w", name, err)
			}
			categoryID = &c.ID
		}

		var existing model.Product
		err := tx.Where("item_id = ?", in.ItemID).Take(&existing).Error
		switch {
		case isNotFound(err):
			p := model.Product{
				ItemID:      in.ItemID,
				Name:        in.Name,
				Description: in.Description,
				Price:       in.Price,
				Currency:    in.Currency,
				URL:         in.URL,
				CategoryID:  categoryID,
				SourceID:    in.SourceID,
				Timestamp:   in.Timestamp,
			}
			if err := tx.Omit("Category").Create(&p).Error; err != nil {
				if isUniqueViolation(err) {
					return fmt.Errorf("product %s: %w", in.ItemID, ErrConflict)
				}
				return fmt.Errorf("create product: %w", err)
			}
			id = p.ID
			created = true
			return nil
		case err != nil:
			return fmt.Errorf("find product: %w", err)
		}

		updates := map[string]any{
			"name":        in.Name,
			"description": in.Description,
			"price":       in.Price,
			"currency":    in.Currency,
			"url":         in.URL,
			"category_id": categoryID,
			"source_id":   in.SourceID,
			"timestamp":   in.Timestamp,
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		id = existing.ID
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	p, err := s.FindProduct(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return p, created, nil
}

// SetProductImage records the object storage key of a product's image.
func (s *Store) SetProductImage(ctx context.Context, id uuid.UUID, key string) error {
	res := s.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", id).
		Update("image_key", key)
	if res.Error != nil {
		return fmt.Errorf("set product image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrEmptyResult
	}
	return nil
}
