package product

import (
	"context"

	"encore.app/catalog/business/storeerr"
	"encore.app/catalog/domain"
	"encore.app/catalog/model"
	"encore.app/catalog/store/products"
)

// ListProducts returns one page of products in listing order (in stock
// first, then most recently updated) together with the total product count
func (b *business) ListProducts(ctx context.Context, page domain.Page) ([]*model.Product, int64, error) {
	dbProducts, err := b.productRepo.ListProducts(ctx, products.ListProductsParams{
		Limit:  int32(page.Size),
		Offset: int64(page.Offset()),
	})
	if err != nil {
		return nil, 0, storeerr.Wrap(err, "failed to list products")
	}

	totalCount, err := b.productRepo.CountProducts(ctx)
	if err != nil {
		return nil, 0, storeerr.Wrap(err, "failed to count products")
	}

	productList, err := b.withRelations(ctx, dbProducts)
	if err != nil {
		return nil, 0, err
	}

	return productList, totalCount, nil
}
