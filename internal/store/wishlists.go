package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wishlist/internal/model"
)

type WishlistInput struct {
	ItemIDs   []string
	Timestamp time.Time
}

// lastWishlist returns the snapshot with the greatest timestamp, with its
// membership loaded in position order.
func (s *Store) lastWishlist(ctx context.Context) (*model.Wishlist, error) {
	var w model.Wishlist
	err := s.db.WithContext(ctx).
		Order(desc("timestamp")).
		Order(desc("created_at")).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order(asc("position")) }).
		Take(&w).Error
	if isNotFound(err) {
		return nil, ErrEmptyResult
	}
	if err != nil {
		return nil, fmt.Errorf("last wishlist: %w", err)
	}
	if w.Items == nil {
		w.Items = []model.WishlistItem{}
	}
	return &w, nil
}

// LastWishlist loads the newest snapshot together with its products, newest
// observed first, each with its source attached.
func (s *Store) LastWishlist(ctx context.Context) (*model.Wishlist, error) {
	w, err := s.lastWishlist(ctx)
	if err != nil {
		return nil, err
	}

	ids := w.ProductIDs()
	if ids == nil {
		return nil, notLoaded("wishlist", "product_ids")
	}
	if len(ids) == 0 {
		w.Products = []model.Product{}
		return w, nil
	}

	q := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order(desc("timestamp")).
		Order(desc("created_at"))
	products, err := s.findProducts(ctx, q)
	if err != nil {
		return nil, err
	}
	w.Products = products
	return w, nil
}

// PublishWishlist stores a new snapshot made of the products identified by
// in.ItemIDs, in the given order. Duplicated ids keep their first position.
func (s *Store) PublishWishlist(ctx context.Context, in WishlistInput) (*model.Wishlist, error) {
	itemIDs := dedupe(in.ItemIDs)
	if len(itemIDs) == 0 {
		return nil, fmt.Errorf("%w: item_ids must not be empty", ErrInvalid)
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	var out *model.Wishlist
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var products []model.Product
		if err := tx.Select("id", "item_id").Where("item_id IN ?", itemIDs).Find(&products).Error; err != nil {
			return fmt.Errorf("resolve products: %w", err)
		}

		byItem := make(map[string]model.Product, len(products))
		for _, p := range products {
			byItem[p.ItemID] = p
		}

		var missing []string
		for _, id := range itemIDs {
			if _, ok := byItem[id]; !ok {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			return &UnknownProductsError{ItemIDs: missing}
		}

		w := model.Wishlist{Timestamp: ts}
		if err := tx.Omit(clause.Associations).Create(&w).Error; err != nil {
			return fmt.Errorf("create wishlist: %w", err)
		}

		items := make([]model.WishlistItem, 0, len(itemIDs))
		for pos, id := range itemIDs {
			items = append(items, model.WishlistItem{
				WishlistID: w.ID,
				ProductID:  byItem[id].ID,
				Position:   pos,
			})
		}
		if err := tx.Omit(clause.Associations).Create(&items).Error; err != nil {
			return fmt.Errorf("create wishlist items: %w", err)
		}

		w.Items = items
		out = &w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
