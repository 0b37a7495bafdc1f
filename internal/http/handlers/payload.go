package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wishlist/internal/logger"
	"wishlist/internal/model"
)

// ImageSigner turns an object key into a time-limited download URL.
type ImageSigner interface {
	SignGetURL(ctx context.Context, key string) (string, error)
}

type SourceOut struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
}

type CategoryOut struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProductOut is the public product shape; database and item ids stay private.
type ProductOut struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       int64      `json:"price"`
	Currency    string     `json:"currency"`
	URL         string     `json:"url"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Source      *SourceOut `json:"source,omitempty"`
	Timestamp   time.Time  `json:"timestamp"`
}

type AdminProductOut struct {
	ID     uuid.UUID `json:"id"`
	ItemID string    `json:"item_id"`
	ProductOut
}

type WishlistOut struct {
	Timestamp time.Time    `json:"timestamp"`
	Products  []ProductOut `json:"products"`
}

type CountOut struct {
	Count int64 `json:"count"`
}

func sourceOut(s *model.Source) *SourceOut {
	if s == nil {
		return nil
	}
	return &SourceOut{ID: s.ID, Name: s.Name, URL: s.URL}
}

func categoryOut(c model.Category) CategoryOut {
	return CategoryOut{ID: c.ID, Name: c.Name}
}

func productOut(ctx context.Context, signer ImageSigner, p model.Product) ProductOut {
	out := ProductOut{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		URL:         p.URL,
		Source:      sourceOut(p.Source),
		Timestamp:   p.Timestamp,
	}
	if p.Category != nil {
		name := p.Category.Name
		out.Category = &name
	}
	if signer != nil && p.ImageKey != nil && *p.ImageKey != "" {
		link, err := signer.SignGetURL(ctx, *p.ImageKey)
		if err != nil {
			logger.L().Warn("product.image_sign_failed", "product_id", p.ID, "error", err)
		} else {
			out.ImageURL = &link
		}
	}
	return out
}

func productsOut(ctx context.Context, signer ImageSigner, products []model.Product) []ProductOut {
	out := make([]ProductOut, 0, len(products))
	for _, p := range products {
		out = append(out, productOut(ctx, signer, p))
	}
	return out
}

func adminProductOut(ctx context.Context, signer ImageSigner, p model.Product) AdminProductOut {
	return AdminProductOut{ID: p.ID, ItemID: p.ItemID, ProductOut: productOut(ctx, signer, p)}
}
