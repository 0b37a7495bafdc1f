package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Source struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"       json:"id"`
	Name      string    `gorm:"not null;uniqueIndex"       json:"name"`
	URL       string    `gorm:"not null;default:''"        json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"                                                            json:"id"`
	ItemID      string     `gorm:"not null;uniqueIndex"                                                            json:"-"`
	Name        string     `gorm:"not null"                                                                        json:"name"`
	Description string     `gorm:"not null;default:''"                                                             json:"description"`
	Price       int64      `gorm:"not null;default:0"                                                              json:"price"`
	Currency    string     `gorm:"not null;default:''"                                                             json:"currency"`
	URL         string     `gorm:"not null;default:''"                                                             json:"url"`
	ImageKey    *string    `json:"-"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"                                                                 json:"category_id,omitempty"`
	Category    *Category  `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	SourceID    uuid.UUID  `gorm:"type:uuid;not null;index"                                                        json:"source_id"`
	Source      *Source    `gorm:"-"                                                                               json:"-"`
	Timestamp   time.Time  `gorm:"not null;index"                                                                  json:"timestamp"`
	CreatedAt   time.Time  `gorm:"index"                                                                           json:"created_at"`
}

type Wishlist struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Timestamp time.Time      `gorm:"not null;index"       json:"timestamp"`
	CreatedAt time.Time      `json:"created_at"`
	Items     []WishlistItem `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"-"`
	Products  []Product      `gorm:"-" json:"products"`
}

type WishlistItem struct {
	WishlistID uuid.UUID `gorm:"type:uuid;primaryKey"                                                              json:"wishlist_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;primaryKey;index"                                                        json:"product_id"`
	Product    Product   `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Position   int       `gorm:"not null;default:0"                                                                json:"position"`
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null"             json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductIDs returns the member ids of a loaded wishlist, in position order.
func (w *Wishlist) ProductIDs() []uuid.UUID {
	if w.Items == nil {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(w.Items))
	for _, it := range w.Items {
		ids = append(ids, it.ProductID)
	}
	return ids
}

func (s *Source) BeforeCreate(*gorm.DB) error   { s.ID = ensureID(s.ID); return nil }
func (c *Category) BeforeCreate(*gorm.DB) error { c.ID = ensureID(c.ID); return nil }
func (p *Product) BeforeCreate(*gorm.DB) error  { p.ID = ensureID(p.ID); return nil }
func (w *Wishlist) BeforeCreate(*gorm.DB) error { w.ID = ensureID(w.ID); return nil }
func (u *User) BeforeCreate(*gorm.DB) error     { u.ID = ensureID(u.ID); return nil }

func ensureID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}

// All lists every persisted model, in dependency order.
func All() []any {
	return []any{&User{}, &Source{}, &Category{}, &Product{}, &Wishlist{}, &WishlistItem{}}
}
