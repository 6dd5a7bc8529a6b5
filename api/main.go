package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/binaamart/storefront/internal/cart"
	"github.com/binaamart/storefront/internal/catalog"
	"github.com/binaamart/storefront/internal/config"
	"github.com/binaamart/storefront/internal/contact"
	api "github.com/binaamart/storefront/internal/http"
	"github.com/binaamart/storefront/internal/http/handlers"
	rl "github.com/binaamart/storefront/internal/http/rate_limiter"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalogRepo, err := openCatalog(cfg.Catalog)
	if err != nil {
		logger.Fatal("could not materialize catalog", zap.Error(err))
	}
	handlers.SetCatalogRepo(catalogRepo)

	slots, err := openSlotStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("could not open cart slot store", zap.Error(err))
	}
	handlers.SetCartHub(cart.NewHub(slots, logger))

	handlers.SetContactRepo(contact.NewInMemoryRepository())
	handlers.SetMailer(contact.Mailer{
		Server:   cfg.Contact.SMTPServer,
		Port:     cfg.Contact.SMTPPort,
		User:     cfg.Contact.SMTPUser,
		Password: cfg.Contact.SMTPPass,
		From:     cfg.Contact.From,
		To:       cfg.Contact.To,
	})
	handlers.SetLogger(logger)

	go rl.StartVisitorCleanupLoop()

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: api.NewRouter(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server running", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
	logger.Info("server shut down")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = lvl
	}
	return cfg.Build()
}

// openCatalog materializes the read-only catalog from the configured source.
func openCatalog(cfg config.CatalogConfig) (catalog.Repository, error) {
	switch cfg.Source {
	case "postgres":
		db, err := catalog.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		doc, err := catalog.LoadFromPostgres(db)
		if err != nil {
			return nil, err
		}
		return catalog.NewInMemoryRepository(doc), nil
	default:
		doc, err := catalog.LoadDocument(cfg.Path)
		if err != nil {
			return nil, err
		}
		return catalog.NewInMemoryRepository(doc), nil
	}
}

func openSlotStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (cart.SlotStore, error) {
	switch cfg.Cart.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		return cart.NewRedisSlotStore(rdb), nil
	case "file":
		return cart.NewFileSlotStore(cfg.Cart.DataDir)
	default:
		logger.Info("cart slots held in memory; carts will not survive a restart")
		return cart.NewMemorySlotStore(), nil
	}
}
