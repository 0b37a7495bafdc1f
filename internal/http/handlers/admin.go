package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wishlist/internal/logger"
	"wishlist/internal/metrics"
	"wishlist/internal/store"
	"wishlist/internal/ws"
)

// ImageUploader signs direct-to-bucket uploads of product images.
type ImageUploader interface {
	ImageSigner
	ProductImageKey(productID, uploadID, filename string) string
	SignPutURL(ctx context.Context, key, contentType string) (string, error)
	Expiry() time.Duration
}

type Publisher interface {
	Publish(topic string, v any) error
}

type AdminHandler struct {
	store     *store.Store
	images    ImageUploader
	publisher Publisher
}

// NewAdminHandler wires the ingest endpoints. images may be nil when no
// object storage is configured.
func NewAdminHandler(s *store.Store, images ImageUploader, publisher Publisher) *AdminHandler {
	return &AdminHandler{store: s, images: images, publisher: publisher}
}

func (h *AdminHandler) signer() ImageSigner {
	if h.images == nil {
		return nil
	}
	return h.images
}

type SourceIn struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url"`
}

// CreateSource godoc
// @Summary Register a source
// @Tags    admin
// @Accept  json
// @Produce json
// @Param   body body SourceIn true "source"
// @Success 201 {object} SourceOut
// @Failure 409 {object} map[string]string
// @Security Bearer
// @Router  /admin/sources [post]
func (h *AdminHandler) CreateSource(c *gin.Context) {
	var in SourceIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	src, err := h.store.CreateSource(c.Request.Context(), store.SourceInput{Name: in.Name, URL: in.URL})
	if err != nil {
		respondError(c, err, "create source failed")
		return
	}
	c.JSON(http.StatusCreated, sourceOut(src))
}

type CategoryIn struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory godoc
// @Summary Register a category
// @Tags    admin
// @Accept  json
// @Produce json
// @Param   body body CategoryIn true "category"
// @Success 201 {object} CategoryOut
// @Failure 409 {object} map[string]string
// @Security Bearer
// @Router  /admin/categories [post]
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var in CategoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	cat, err := h.store.CreateCategory(c.Request.Context(), store.CategoryInput{Name: in.Name})
	if err != nil {
		respondError(c, err, "create category failed")
		return
	}
	c.JSON(http.StatusCreated, categoryOut(*cat))
}

type ProductIn struct {
	ItemID      string     `json:"item_id" binding:"required"`
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Price       int64      `json:"price" binding:"gte=0"`
	Currency    string     `json:"currency" binding:"omitempty,len=3"`
	URL         string     `json:"url" binding:"omitempty,url"`
	Category    string     `json:"category"`
	SourceID    uuid.UUID  `json:"source_id" binding:"required"`
	Timestamp   *time.Time `json:"timestamp"`
}

// UpsertProduct godoc
// @Summary Create or update a product by item_id
// @Tags    admin
// @Accept  json
// @Produce json
// @Param   body body ProductIn true "product"
// @Success 200 {object} AdminProductOut
// @Success 201 {object} AdminProductOut
// @Security Bearer
// @Router  /admin/products [post]
func (h *AdminHandler) UpsertProduct(c *gin.Context) {
	var in ProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	pin := store.ProductInput{
		ItemID:      in.ItemID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Currency:    strings.ToUpper(in.Currency),
		URL:         in.URL,
		Category:    in.Category,
		SourceID:    in.SourceID,
	}
	if in.Timestamp != nil {
		pin.Timestamp = in.Timestamp.UTC()
	}

	p, created, err := h.store.UpsertProduct(c.Request.Context(), pin)
	if err != nil {
		respondError(c, err, "save product failed")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, adminProductOut(c.Request.Context(), h.signer(), *p))
}

type SignImageIn struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// SignImageUpload godoc
// @Summary Presigned upload URL for a product image
// @Tags    admin
// @Accept  json
// @Produce json
// @Param   product_id path string true "product id"
// @Param   body body SignImageIn true "file"
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]string
// @Security Bearer
// @Router  /admin/products/{product_id}/image/sign-upload [post]
func (h *AdminHandler) SignImageUpload(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "object storage not configured"})
		return
	}

	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid product_id"})
		return
	}

	var in SignImageIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	if !strings.HasPrefix(strings.ToLower(in.ContentType), "image/") {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "content_type must be an image type"})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.store.FindProduct(ctx, productID); err != nil {
		respondError(c, err, "load product failed")
		return
	}

	key := h.images.ProductImageKey(productID.String(), uuid.NewString(), in.Filename)
	link, err := h.images.SignPutURL(ctx, key, in.ContentType)
	if err != nil {
		logger.L().Error("product.presign_failed", "product_id", productID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "presign failed"})
		return
	}
	if err := h.store.SetProductImage(ctx, productID, key); err != nil {
		respondError(c, err, "record image failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upload_url":  link,
		"storage_key": key,
		"expires_at":  time.Now().Add(h.images.Expiry()),
	})
}

type WishlistIn struct {
	ItemIDs   []string   `json:"item_ids" binding:"required,min=1"`
	Timestamp *time.Time `json:"timestamp"`
}

type WishlistEvent struct {
	Type     string              `json:"type"`
	Wishlist WishlistEventDetail `json:"wishlist"`
}

type WishlistEventDetail struct {
	ID           uuid.UUID `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	ProductCount int       `json:"product_count"`
}

// PublishWishlist godoc
// @Summary Publish a new wishlist snapshot
// @Tags    admin
// @Accept  json
// @Produce json
// @Param   body body WishlistIn true "ordered item ids"
// @Success 201 {object} WishlistEventDetail
// @Failure 422 {object} map[string]any
// @Security Bearer
// @Router  /admin/wishlists [post]
func (h *AdminHandler) PublishWishlist(c *gin.Context) {
	var in WishlistIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	win := store.WishlistInput{ItemIDs: in.ItemIDs}
	if in.Timestamp != nil {
		win.Timestamp = in.Timestamp.UTC()
	}

	w, err := h.store.PublishWishlist(c.Request.Context(), win)
	if err != nil {
		respondError(c, err, "publish wishlist failed")
		return
	}

	detail := WishlistEventDetail{ID: w.ID, Timestamp: w.Timestamp, ProductCount: len(w.Items)}
	metrics.WishlistPublished()
	logger.L().Info("wishlist.published", "wishlist_id", w.ID, "products", detail.ProductCount, "by", c.GetString("user_id"))

	if h.publisher != nil {
		if err := h.publisher.Publish(ws.TopicWishlist, WishlistEvent{Type: "wishlist_published", Wishlist: detail}); err != nil {
			logger.L().Warn("wishlist.broadcast_failed", "error", err)
		}
	}
	c.JSON(http.StatusCreated, detail)
}
