package categories

import (
	"context"
)

type Querier interface {
	GetCategoriesByIDs(ctx context.Context, ids []int64) ([]Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
}

var _ Querier = (*Queries)(nil)
