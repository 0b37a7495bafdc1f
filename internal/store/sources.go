package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"wishlist/internal/model"
)

type SourceInput struct {
	Name string
	URL  string
}

func (s *Store) Sources(ctx context.Context) ([]model.Source, error) {
	sources := []model.Source{}
	if err := s.db.WithContext(ctx).Order(asc("name")).Find(&sources).Error; err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return sources, nil
}

func (s *Store) SourceByID(ctx context.Context, id uuid.UUID) (*model.Source, error) {
	var src model.Source
	err := s.db.WithContext(ctx).Take(&src, "id = ?", id).Error
	if isNotFound(err) {
		return nil, ErrEmptyResult
	}
	if err != nil {
		return nil, fmt.Errorf("find source: %w", err)
	}
	return &src, nil
}

func (s *Store) CreateSource(ctx context.Context, in SourceInput) (*model.Source, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}

	var n int64
	if err := s.db.WithContext(ctx).Model(&model.Source{}).Where("name = ?", name).Count(&n).Error; err != nil {
		return nil, fmt.Errorf("check source: %w", err)
	}
	if n > 0 {
		return nil, fmt.Errorf("source %q: %w", name, ErrConflict)
	}

	src := model.Source{Name: name, URL: strings.TrimSpace(in.URL)}
	if err := s.db.WithContext(ctx).Create(&src).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("source %q: %w", name, ErrConflict)
		}
		return nil, fmt.Errorf("create source: %w", err)
	}
	return &src, nil
}
