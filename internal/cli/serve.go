package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"wishlist/internal/auth"
	"wishlist/internal/config"
	"wishlist/internal/db"
	httpapi "wishlist/internal/http"
	"wishlist/internal/http/handlers"
	jwtutil "wishlist/internal/jwt"
	"wishlist/internal/limiter"
	"wishlist/internal/logger"
	"wishlist/internal/storage"
	"wishlist/internal/store"
	"wishlist/internal/ws"
)

const (
	loginWindow   = 10 * time.Minute
	loginMaxFails = 5
)

func serveCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func openDB(cfg config.Config) (*gorm.DB, error) {
	if cfg.AutoMigrate {
		return db.OpenAndMigrate(cfg.DBURL)
	}
	return db.Open(cfg.DBURL)
}

func serve(ctx context.Context, cfg config.Config) error {
	log := logger.L()

	gdb, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(gdb) }()

	deps := httpapi.Deps{
		Store:          store.New(gdb, store.WithNewestLimit(cfg.NewestLimit)),
		Ping:           func(ctx context.Context) error { return db.Ping(ctx, gdb) },
		JWT:            jwtutil.New(cfg.JWTSecret, cfg.JWTTTL()),
		Limit:          limiter.NewMemoryLimiter(loginWindow, loginMaxFails),
		Hub:            ws.NewHub(),
		Logger:         log,
		AllowOrigins:   cfg.AllowOrigins(),
		WSOrigins:      cfg.WSOrigins(),
		DefaultPerPage: cfg.DefaultPerPage,
	}

	if cfg.StorageEnabled() {
		s3deps, err := storage.NewS3Deps(ctx, cfg)
		if err != nil {
			return fmt.Errorf("storage: %w", err)
		}
		deps.Images = s3deps
	} else {
		log.Info("storage.disabled")
	}

	if cfg.AuthDomain != "" {
		v, err := auth.NewVerifier(ctx, auth.Config{Domain: cfg.AuthDomain, Audience: cfg.AuthAudience})
		if err != nil {
			return fmt.Errorf("jwks: %w", err)
		}
		deps.Verifier = v
	}

	if cfg.AppEnv != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: httpapi.NewRouter(deps),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		log.Info("http.listen", "addr", cfg.BindAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("http.shutdown")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

var _ handlers.ImageUploader = (*storage.S3Deps)(nil)
