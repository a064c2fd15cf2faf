package category

import (
	"context"
	"time"

	"encore.app/catalog/model"
	"encore.app/catalog/readthrough"
	"encore.app/catalog/store/categories"
)

// CategoriesCacheKey holds the sorted category list
const CategoriesCacheKey = "all_categories_sorted"

type Business interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
}

type Config struct {
	// CacheTTL is how long the category list is served from cache.
	// Zero or less disables caching.
	CacheTTL     time.Duration
	AssetBaseURL string
}

type business struct {
	categoryRepo categories.Querier
	cache        *readthrough.Cache
	cfg          Config
}

// NewCategoryBusiness creates the category business layer
func NewCategoryBusiness(categoryRepo categories.Querier, cache *readthrough.Cache, cfg Config) Business {
	return &business{
		categoryRepo: categoryRepo,
		cache:        cache,
		cfg:          cfg,
	}
}
