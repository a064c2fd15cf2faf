package readthrough

import (
	"context"
	"errors"
	"time"

	"encore.dev/storage/cache"
)

// CatalogCluster is the cache cluster backing catalog read-through entries
var CatalogCluster = cache.NewCluster("catalog-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// CatalogEntries is the keyspace holding encoded read-through entries
var CatalogEntries = cache.NewStringKeyspace[string](
	CatalogCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "catalog/:key",
		DefaultExpiry: cache.ExpireIn(time.Hour),
	},
)

// KeyspaceBackend stores entries in the Encore managed cache cluster
type KeyspaceBackend struct {
	keyspace *cache.StringKeyspace[string]
}

func NewKeyspaceBackend() *KeyspaceBackend {
	return &KeyspaceBackend{keyspace: CatalogEntries}
}

func (k *KeyspaceBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := k.keyspace.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.Miss) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (k *KeyspaceBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return k.keyspace.With(cache.ExpireIn(ttl)).Set(ctx, key, string(value))
}
