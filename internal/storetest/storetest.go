// Package storetest provides in-memory databases and fixtures for tests.
package storetest

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wishlist/internal/model"
)

// NewSQLite opens a private in-memory SQLite database with the schema
// migrated.
func NewSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := gdb.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return gdb
}

// Clock hands out strictly increasing UTC times so insertion order is
// deterministic.
type Clock struct {
	now time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *Clock) Next() time.Time {
	c.now = c.now.Add(time.Minute)
	return c.now
}

func SeedSource(t *testing.T, db *gorm.DB, name string) model.Source {
	t.Helper()

	src := model.Source{Name: name, URL: "https://" + name + ".example"}
	if err := db.Create(&src).Error; err != nil {
		t.Fatalf("create source: %v", err)
	}
	return src
}

func SeedCategory(t *testing.T, db *gorm.DB, name string) model.Category {
	t.Helper()

	c := model.Category{Name: name}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return c
}

// SeedProduct inserts a product; created is used both as insertion time and
// observation timestamp unless the caller adjusts Timestamp afterwards.
func SeedProduct(t *testing.T, db *gorm.DB, itemID string, src model.Source, category *model.Category, created time.Time) model.Product {
	t.Helper()

	p := model.Product{
		ItemID:    itemID,
		Name:      "Product " + itemID,
		Price:     1999,
		Currency:  "EUR",
		URL:       "https://shop.example/" + itemID,
		SourceID:  src.ID,
		Timestamp: created,
		CreatedAt: created,
	}
	if category != nil {
		p.CategoryID = &category.ID
	}
	if err := db.Omit("Category").Create(&p).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func SeedWishlist(t *testing.T, db *gorm.DB, ts time.Time, products ...model.Product) model.Wishlist {
	t.Helper()

	w := model.Wishlist{Timestamp: ts, CreatedAt: ts}
	if err := db.Omit("Items").Create(&w).Error; err != nil {
		t.Fatalf("create wishlist: %v", err)
	}
	for i, p := range products {
		item := model.WishlistItem{WishlistID: w.ID, ProductID: p.ID, Position: i}
		if err := db.Omit("Product").Create(&item).Error; err != nil {
			t.Fatalf("create wishlist item: %v", err)
		}
		w.Items = append(w.Items, item)
	}
	return w
}
