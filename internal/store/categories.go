package store

import (
	"context"
	"fmt"
	"strings"

	"wishlist/internal/model"
)

// NullCategory is the category name that selects uncategorised products.
const NullCategory = "null"

func (s *Store) Categories(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	if err := s.db.WithContext(ctx).Order(asc("name")).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *Store) CategoryByName(ctx context.Context, name string) (*model.Category, error) {
	var c model.Category
	err := s.db.WithContext(ctx).Where("name = ?", name).Take(&c).Error
	if isNotFound(err) {
		return nil, ErrEmptyResult
	}
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &c, nil
}

// ProductsByCategoryName returns the products filed under the named
// category, oldest inserted first.
func (s *Store) ProductsByCategoryName(ctx context.Context, name string) ([]model.Product, error) {
	q := s.db.WithContext(ctx).Order(asc("created_at")).Order(asc("id"))

	if name == NullCategory {
		return s.findProducts(ctx, q.Where("category_id IS NULL"))
	}

	c, err := s.CategoryByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.findProducts(ctx, q.Where("category_id = ?", c.ID))
}

type CategoryInput struct {
	Name string
}

func (s *Store) CreateCategory(ctx context.Context, in CategoryInput) (*model.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if name == NullCategory {
		return nil, fmt.Errorf("%w: %q is reserved", ErrInvalid, NullCategory)
	}

	if _, err := s.CategoryByName(ctx, name); err == nil {
		return nil, fmt.Errorf("category %q: %w", name, ErrConflict)
	}

	c := model.Category{Name: name}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("category %q: %w", name, ErrConflict)
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &c, nil
}
