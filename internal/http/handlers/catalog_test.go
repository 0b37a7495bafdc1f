package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wishlist/internal/http/handlers"
	"wishlist/internal/model"
	"wishlist/internal/store"
	"wishlist/internal/storetest"
)

type catalogFixture struct {
	r     *gin.Engine
	db    *gorm.DB
	clock *storetest.Clock
	src   model.Source
}

func newCatalog(t *testing.T, signer handlers.ImageSigner, opts ...store.Option) catalogFixture {
	t.Helper()

	gdb := storetest.NewSQLite(t)
	h := handlers.NewCatalogHandler(store.New(gdb, opts...), signer, 20)

	r := newEngine()
	r.GET("/wishlist/last", h.LastWishlist)
	r.GET("/products/newest", h.NewestProducts)
	r.GET("/products/archive", h.ArchivedProducts)
	r.GET("/products/archive/count", h.ArchivedProductCount)
	r.GET("/categories", h.Categories)
	r.GET("/categories/products", h.ProductsByCategory)

	return catalogFixture{
		r:     r,
		db:    gdb,
		clock: storetest.NewClock(),
		src:   storetest.SeedSource(t, gdb, "shop"),
	}
}

func TestLastWishlist_NoneYet(t *testing.T) {
	f := newCatalog(t, nil)

	rec := do(t, f.r, http.MethodGet, "/wishlist/last", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"not found"}`, rec.Body.String())
}

func TestLastWishlist(t *testing.T) {
	f := newCatalog(t, nil)
	older := storetest.SeedProduct(t, f.db, "a", f.src, nil, f.clock.Next())
	newer := storetest.SeedProduct(t, f.db, "b", f.src, nil, f.clock.Next())
	storetest.SeedProduct(t, f.db, "c", f.src, nil, f.clock.Next())
	storetest.SeedWishlist(t, f.db, f.clock.Next(), older, newer)

	rec := do(t, f.r, http.MethodGet, "/wishlist/last", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	out := decode[struct {
		Timestamp string           `json:"timestamp"`
		Products  []map[string]any `json:"products"`
	}](t, rec)

	assert.NotEmpty(t, out.Timestamp)
	assert.Equal(t, []string{"Product b", "Product a"}, names(out.Products))
	for _, p := range out.Products {
		assert.NotContains(t, p, "id")
		assert.NotContains(t, p, "item_id")
		assert.NotContains(t, p, "image_url")
		src := p["source"].(map[string]any)
		assert.Equal(t, "shop", src["name"])
	}
}

func TestLastWishlist_EmptySnapshot(t *testing.T) {
	f := newCatalog(t, nil)
	storetest.SeedWishlist(t, f.db, f.clock.Next())

	rec := do(t, f.r, http.MethodGet, "/wishlist/last", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode[map[string]any](t, rec)
	assert.Equal(t, []any{}, out["products"])
}

func TestNewestProducts(t *testing.T) {
	f := newCatalog(t, nil, store.WithNewestLimit(2))

	rec := do(t, f.r, http.MethodGet, "/products/newest", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	for _, id := range []string{"1", "2", "3"} {
		storetest.SeedProduct(t, f.db, id, f.src, nil, f.clock.Next())
	}

	rec = do(t, f.r, http.MethodGet, "/products/newest", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Product 3", "Product 2"}, names(decode[[]map[string]any](t, rec)))
}

func TestArchivedProducts(t *testing.T) {
	f := newCatalog(t, nil)

	rec := do(t, f.r, http.MethodGet, "/products/archive", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, f.r, http.MethodGet, "/products/archive/count", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	listed := storetest.SeedProduct(t, f.db, "listed", f.src, nil, f.clock.Next())
	storetest.SeedProduct(t, f.db, "old", f.src, nil, f.clock.Next())
	storetest.SeedProduct(t, f.db, "new", f.src, nil, f.clock.Next())
	storetest.SeedWishlist(t, f.db, f.clock.Next(), listed)

	rec = do(t, f.r, http.MethodGet, "/products/archive", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Product new", "Product old"}, names(decode[[]map[string]any](t, rec)))

	rec = do(t, f.r, http.MethodGet, "/products/archive?page=2&per_page=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Product old"}, names(decode[[]map[string]any](t, rec)))

	rec = do(t, f.r, http.MethodGet, "/products/archive?page=3&per_page=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(t, f.r, http.MethodGet, "/products/archive/count", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":2}`, rec.Body.String())
}

func TestCategories(t *testing.T) {
	f := newCatalog(t, nil)

	rec := do(t, f.r, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	storetest.SeedCategory(t, f.db, "Books")
	storetest.SeedCategory(t, f.db, "Games")

	rec = do(t, f.r, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]map[string]any](t, rec)
	require.Len(t, got, 2)
	assert.ElementsMatch(t, []any{"Books", "Games"}, []any{got[0]["name"], got[1]["name"]})
}

func TestProductsByCategory(t *testing.T) {
	f := newCatalog(t, nil)
	books := storetest.SeedCategory(t, f.db, "Books")
	storetest.SeedProduct(t, f.db, "b1", f.src, &books, f.clock.Next())
	storetest.SeedProduct(t, f.db, "loose", f.src, nil, f.clock.Next())
	storetest.SeedProduct(t, f.db, "b2", f.src, &books, f.clock.Next())

	tests := []struct {
		name  string
		path  string
		code  int
		names []string
	}{
		{name: "named", path: "/categories/products?category=Books", code: http.StatusOK, names: []string{"Product b1", "Product b2"}},
		{name: "uncategorised", path: "/categories/products?category=null", code: http.StatusOK, names: []string{"Product loose"}},
		{name: "unknown", path: "/categories/products?category=Toys", code: http.StatusNotFound},
		{name: "missing", path: "/categories/products", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, f.r, http.MethodGet, tt.path, nil)
			require.Equal(t, tt.code, rec.Code, rec.Body.String())
			if tt.names != nil {
				got := decode[[]map[string]any](t, rec)
				assert.Equal(t, tt.names, names(got))
			}
		})
	}

	rec := do(t, f.r, http.MethodGet, "/categories/products?category=Books", nil)
	got := decode[[]map[string]any](t, rec)
	assert.Equal(t, "Books", got[0]["category"])
}

func TestProductImageURL(t *testing.T) {
	f := newCatalog(t, &fakeImages{})
	p := storetest.SeedProduct(t, f.db, "pic", f.src, nil, f.clock.Next())
	require.NoError(t, f.db.Model(&p).Update("image_key", "products/x/pic.png").Error)

	rec := do(t, f.r, http.MethodGet, "/products/newest", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]map[string]any](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "https://img.test/products/x/pic.png", got[0]["image_url"])
}
