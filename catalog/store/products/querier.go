package products

import (
	"context"
)

type Querier interface {
	CountProducts(ctx context.Context) (int64, error)
	GetProductBySlug(ctx context.Context, slug string) (Product, error)
	ListImagesByProductIDs(ctx context.Context, productIds []int64) ([]ProductImage, error)
	ListLatestInStock(ctx context.Context, limit int32) ([]Product, error)
	ListProducts(ctx context.Context, arg ListProductsParams) ([]Product, error)
}

var _ Querier = (*Queries)(nil)
