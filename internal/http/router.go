package httpapi

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"wishlist/internal/http/handlers"
	"wishlist/internal/http/middleware"
	"wishlist/internal/http/wsroute"
	jwtutil "wishlist/internal/jwt"
	"wishlist/internal/limiter"
	"wishlist/internal/metrics"
	"wishlist/internal/store"
	"wishlist/internal/ws"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "wishlist/docs"
)

type Deps struct {
	Store  *store.Store
	Ping   handlers.Pinger
	JWT    *jwtutil.Maker
	Limit  *limiter.MemoryLimiter
	Hub    *ws.Hub
	Logger *slog.Logger

	// Verifier overrides JWT for admin routes when an external issuer is
	// configured.
	Verifier middleware.TokenVerifier
	// Images is nil when object storage is disabled.
	Images handlers.ImageUploader

	AllowOrigins   []string
	WSOrigins      []string
	DefaultPerPage int
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if d.Logger != nil {
		r.Use(middleware.RequestLog(d.Logger))
	}
	r.Use(middleware.Metrics())

	corsCfg := cors.Config{
		AllowOrigins:     d.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(d.AllowOrigins) == 0 {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", handlers.Health(d.Ping))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	var signer handlers.ImageSigner
	if d.Images != nil {
		signer = d.Images
	}
	catalog := handlers.NewCatalogHandler(d.Store, signer, d.DefaultPerPage)
	r.GET("/wishlist/last", catalog.LastWishlist)
	r.GET("/products/newest", catalog.NewestProducts)
	r.GET("/products/archive", catalog.ArchivedProducts)
	r.GET("/products/archive/count", catalog.ArchivedProductCount)
	r.GET("/categories", catalog.Categories)
	r.GET("/categories/products", catalog.ProductsByCategory)

	var verifier middleware.TokenVerifier = d.JWT
	if d.Verifier != nil {
		verifier = d.Verifier
	}
	jwtMw := middleware.JWT(verifier)

	authH := handlers.NewAuthHandler(d.Store, d.JWT, d.Limit)
	r.POST("/auth/login", authH.Login)
	r.GET("/auth/me", jwtMw, authH.Me)

	var publisher handlers.Publisher
	if d.Hub != nil {
		publisher = d.Hub
	}
	admin := handlers.NewAdminHandler(d.Store, d.Images, publisher)
	ag := r.Group("/admin")
	ag.Use(jwtMw)
	ag.POST("/sources", admin.CreateSource)
	ag.POST("/categories", admin.CreateCategory)
	ag.POST("/products", admin.UpsertProduct)
	ag.POST("/products/:product_id/image/sign-upload", admin.SignImageUpload)
	ag.POST("/wishlists", admin.PublishWishlist)

	if d.Hub != nil {
		wsroute.Register(r, wsroute.Deps{Hub: d.Hub, AllowedOrigins: d.WSOrigins})
	}

	r.GET("/docs/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/docs/doc.json"),
	))

	return r
}
