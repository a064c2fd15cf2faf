package product

import (
	"context"
	"fmt"
	"time"

	"encore.app/catalog/domain"
	"encore.app/catalog/model"
	"encore.app/catalog/readthrough"
	"encore.app/catalog/store/categories"
	"encore.app/catalog/store/products"
)

// ProductNotFoundMessage is returned when no product matches a slug
const ProductNotFoundMessage = "Product not found."

type Business interface {
	ListProducts(ctx context.Context, page domain.Page) ([]*model.Product, int64, error)
	LatestProducts(ctx context.Context) ([]*model.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*model.Product, error)
}

type Config struct {
	// LatestCacheTTL is how long the latest products are served from cache.
	// Zero or less disables caching.
	LatestCacheTTL time.Duration
	LatestLimit    int
	AssetBaseURL   string
}

// LatestCacheKey names the cache entry for the latest in-stock products
func (c Config) LatestCacheKey() string {
	return fmt.Sprintf("latest_%d_products", c.LatestLimit)
}

// ProductBusiness handles product listings and lookups
type business struct {
	productRepo  products.Querier
	categoryRepo categories.Querier
	cache        *readthrough.Cache
	cfg          Config
}

// NewProductBusiness creates the product business layer
func NewProductBusiness(
	productRepo products.Querier,
	categoryRepo categories.Querier,
	cache *readthrough.Cache,
	cfg Config,
) Business {
	return &business{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		cfg:          cfg,
	}
}
