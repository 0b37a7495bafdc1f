package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wishlist/internal/pagination"
	"wishlist/internal/store"
)

type CatalogHandler struct {
	store          *store.Store
	signer         ImageSigner
	defaultPerPage int
}

// NewCatalogHandler wires the public read endpoints. signer may be nil when
// no object storage is configured.
func NewCatalogHandler(s *store.Store, signer ImageSigner, defaultPerPage int) *CatalogHandler {
	return &CatalogHandler{store: s, signer: signer, defaultPerPage: defaultPerPage}
}

// LastWishlist godoc
// @Summary Most recent wishlist
// @Tags    wishlist
// @Produce json
// @Success 200 {object} WishlistOut
// @Failure 404 {object} map[string]string
// @Router  /wishlist/last [get]
func (h *CatalogHandler) LastWishlist(c *gin.Context) {
	w, err := h.store.LastWishlist(c.Request.Context())
	if err != nil {
		respondError(c, err, "load wishlist failed")
		return
	}
	c.JSON(http.StatusOK, WishlistOut{
		Timestamp: w.Timestamp,
		Products:  productsOut(c.Request.Context(), h.signer, w.Products),
	})
}

// NewestProducts godoc
// @Summary Most recently added products
// @Tags    products
// @Produce json
// @Success 200 {array} ProductOut
// @Router  /products/newest [get]
func (h *CatalogHandler) NewestProducts(c *gin.Context) {
	products, err := h.store.NewestProducts(c.Request.Context())
	if err != nil {
		respondError(c, err, "load products failed")
		return
	}
	c.JSON(http.StatusOK, productsOut(c.Request.Context(), h.signer, products))
}

// ArchivedProducts godoc
// @Summary Products missing from the most recent wishlist
// @Tags    products
// @Produce json
// @Param   page     query int false "1-based page"
// @Param   per_page query int false "page size (max 100)"
// @Success 200 {array} ProductOut
// @Failure 404 {object} map[string]string
// @Router  /products/archive [get]
func (h *CatalogHandler) ArchivedProducts(c *gin.Context) {
	p := pagination.MakeFrom(c.Request.URL.Query(), h.defaultPerPage)
	products, err := h.store.ArchivedProducts(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, "load archive failed")
		return
	}
	c.JSON(http.StatusOK, productsOut(c.Request.Context(), h.signer, products))
}

// ArchivedProductCount godoc
// @Summary Number of archived products
// @Tags    products
// @Produce json
// @Success 200 {object} CountOut
// @Router  /products/archive/count [get]
func (h *CatalogHandler) ArchivedProductCount(c *gin.Context) {
	n, err := h.store.ArchivedProductCount(c.Request.Context())
	if err != nil {
		respondError(c, err, "count archive failed")
		return
	}
	c.JSON(http.StatusOK, CountOut{Count: n})
}

// Categories godoc
// @Summary All categories
// @Tags    categories
// @Produce json
// @Success 200 {array} CategoryOut
// @Router  /categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.store.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err, "load categories failed")
		return
	}
	out := make([]CategoryOut, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categoryOut(cat))
	}
	c.JSON(http.StatusOK, out)
}

type CategoryQuery struct {
	Category string `form:"category" binding:"required"`
}

// ProductsByCategory godoc
// @Summary Products of a category
// @Tags    categories
// @Produce json
// @Param   category query string true "category name, or null for uncategorised"
// @Success 200 {array} ProductOut
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router  /categories/products [get]
func (h *CatalogHandler) ProductsByCategory(c *gin.Context) {
	var q CategoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "category is required"})
		return
	}
	products, err := h.store.ProductsByCategoryName(c.Request.Context(), q.Category)
	if err != nil {
		respondError(c, err, "load products failed")
		return
	}
	c.JSON(http.StatusOK, productsOut(c.Request.Context(), h.signer, products))
}
