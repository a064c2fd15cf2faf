package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/catalog/business/storeerr"
	"encore.app/catalog/model"
	"encore.app/catalog/store/products"
)

// GetProductBySlug returns the product with the given slug and its relations
func (b *business) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	dbProduct, err := b.productRepo.GetProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: ProductNotFoundMessage}
		}
		return nil, storeerr.Wrap(err, "failed to get product")
	}

	result, err := b.withRelations(ctx, []products.Product{dbProduct})
	if err != nil {
		return nil, err
	}

	return result[0], nil
}
