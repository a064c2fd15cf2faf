package product

import (
	"context"

	"encore.app/catalog/business/storeerr"
	"encore.app/catalog/model"
	"encore.app/catalog/readthrough"
)

// LatestProducts returns the newest in-stock products, served from cache
// for the configured ttl
func (b *business) LatestProducts(ctx context.Context) ([]*model.Product, error) {
	result, err := readthrough.GetOrCompute(ctx, b.cache, b.cfg.LatestCacheKey(), b.cfg.LatestCacheTTL, b.loadLatestProducts)
	if err != nil {
		return nil, storeerr.Wrap(err, "failed to get latest products")
	}
	return result, nil
}

func (b *business) loadLatestProducts(ctx context.Context) ([]*model.Product, error) {
	dbProducts, err := b.productRepo.ListLatestInStock(ctx, int32(b.cfg.LatestLimit))
	if err != nil {
		return nil, storeerr.Wrap(err, "failed to get latest products")
	}
	return b.withRelations(ctx, dbProducts)
}
