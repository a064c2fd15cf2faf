package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/catalog/business/category"
	"encore.app/catalog/business/product"
	"encore.app/catalog/readthrough"
	"encore.app/catalog/store"
)

var catalogDB = sqldb.NewDatabase("catalog", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

//encore:service
type Service struct {
	categories category.Business
	products   product.Business
	pagination pagination
	metrics    http.Handler
	closers    []io.Closer
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(catalogDB)
	repo := store.NewStore(pgxdb)

	backend, err := newCacheBackend(context.Background(), cfg.CacheBackend(), cfg.RedisAddr())
	if err != nil {
		return nil, err
	}
	rlog.Info("Initializing cache", "backend", cfg.CacheBackend())

	registry := prometheus.NewRegistry()
	metrics := readthrough.NewMetrics(registry)

	categoryCache := readthrough.New("categories", backend, readthrough.WithMetrics(metrics))
	latestCache := readthrough.New("latest_products", backend, readthrough.WithMetrics(metrics))

	svc := &Service{
		categories: category.NewCategoryBusiness(repo.Categories, categoryCache, category.Config{
			CacheTTL:     seconds(cfg.CategoriesTTLSeconds()),
			AssetBaseURL: cfg.AssetBaseURL(),
		}),
		products: product.NewProductBusiness(repo.Products, repo.Categories, latestCache, product.Config{
			LatestCacheTTL: seconds(cfg.LatestProductsTTLSeconds()),
			LatestLimit:    cfg.LatestProductsLimit(),
			AssetBaseURL:   cfg.AssetBaseURL(),
		}),
		pagination: pagination{
			DefaultPerPage: cfg.DefaultPerPage(),
			MaxPerPage:     cfg.MaxPerPage(),
		},
		metrics: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}
	if closer, ok := backend.(io.Closer); ok {
		svc.closers = append(svc.closers, closer)
	}

	rlog.Info("Initialized catalog service",
		"categories_ttl_seconds", cfg.CategoriesTTLSeconds(),
		"latest_products_ttl_seconds", cfg.LatestProductsTTLSeconds(),
	)
	return svc, nil
}

// Shutdown releases connections held outside the Encore runtime
func (s *Service) Shutdown(force context.Context) {
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			rlog.Error("failed to close resource", "error", err)
		}
	}
}

func newCacheBackend(ctx context.Context, kind, redisAddr string) (readthrough.Backend, error) {
	switch kind {
	case "", "encore":
		return readthrough.NewKeyspaceBackend(), nil
	case "memory":
		return readthrough.NewMemoryBackend(nil), nil
	case "redis":
		backend := readthrough.NewRedisBackend(readthrough.RedisConfig{
			Addr:      redisAddr,
			KeyPrefix: "catalog:",
		})
		if err := backend.Ping(ctx); err != nil {
			_ = backend.Close()
			return nil, fmt.Errorf("ping redis %s: %w", redisAddr, err)
		}
		return backend, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", kind)
	}
}
