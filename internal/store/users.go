package store

import (
	"context"
	"fmt"
	"strings"

	"wishlist/internal/model"
)

func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).Take(&u).Error
	if isNotFound(err) {
		return nil, ErrEmptyResult
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// CreateUser stores an admin account. passwordHash must already be hashed.
func (s *Store) CreateUser(ctx context.Context, email, passwordHash string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || passwordHash == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalid)
	}
	if _, err := s.UserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("user %s: %w", email, ErrConflict)
	}

	u := model.User{Email: email, PasswordHash: passwordHash}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("user %s: %w", email, ErrConflict)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}
