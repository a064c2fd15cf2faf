package catalog

import (
	"time"

	"encore.dev/config"
)

type Config struct {
	// Cache lifetimes in seconds. Zero or less disables caching.
	CategoriesTTLSeconds     config.Int
	LatestProductsTTLSeconds config.Int

	LatestProductsLimit config.Int
	DefaultPerPage      config.Int
	MaxPerPage          config.Int

	// AssetBaseURL prefixes stored image paths
	AssetBaseURL config.String

	// CacheBackend is one of "encore", "redis" or "memory"
	CacheBackend config.String
	RedisAddr    config.String
}

var cfg = config.Load[*Config]()

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
