package products

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"encore.app/catalog/domain"
)

var productColumns = []string{
	"id", "category_id", "name", "slug", "description", "price", "stock", "created_at", "updated_at",
}

func scanProduct(row interface{ Scan(...any) error }, i *Product) error {
	return row.Scan(
		&i.ID,
		&i.CategoryID,
		&i.Name,
		&i.Slug,
		&i.Description,
		&i.Price,
		&i.Stock,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}

func (q *Queries) CountProducts(ctx context.Context) (int64, error) {
	query, args, err := psql.Select("COUNT(*)").From("products").ToSql()
	if err != nil {
		return 0, err
	}
	row := q.db.QueryRow(ctx, query, args...)
	var count int64
	err = row.Scan(&count)
	return count, err
}

type ListProductsParams struct {
	Limit  int32 `json:"limit"`
	Offset int64 `json:"offset"`
}

// listProductsQuery orders by the listing policy before paginating. id breaks
// ties so page boundaries are stable across calls.
func listProductsQuery(arg ListProductsParams) sq.SelectBuilder {
	offset := max(arg.Offset, 0)
	orderBy := append(append([]string{}, domain.ListingOrderBy...), "id ASC")
	return psql.Select(productColumns...).
		From("products").
		OrderBy(orderBy...).
		Limit(uint64(arg.Limit)).
		Offset(uint64(offset))
}

// ListProducts returns one page of products in listing order
func (q *Queries) ListProducts(ctx context.Context, arg ListProductsParams) ([]Product, error) {
	query, args, err := listProductsQuery(arg).ToSql()
	if err != nil {
		return nil, err
	}
	return q.queryProducts(ctx, query, args...)
}

func listLatestInStockQuery(limit int32) sq.SelectBuilder {
	return psql.Select(productColumns...).
		From("products").
		Where(sq.Gt{"stock": 0}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))
}

// ListLatestInStock returns the newest products that have stock left
func (q *Queries) ListLatestInStock(ctx context.Context, limit int32) ([]Product, error) {
	query, args, err := listLatestInStockQuery(limit).ToSql()
	if err != nil {
		return nil, err
	}
	return q.queryProducts(ctx, query, args...)
}

func getProductBySlugQuery(slug string) sq.SelectBuilder {
	return psql.Select(productColumns...).
		From("products").
		Where(sq.Eq{"slug": slug}).
		Limit(1)
}

func (q *Queries) GetProductBySlug(ctx context.Context, slug string) (Product, error) {
	var i Product
	query, args, err := getProductBySlugQuery(slug).ToSql()
	if err != nil {
		return i, err
	}
	row := q.db.QueryRow(ctx, query, args...)
	err = scanProduct(row, &i)
	return i, err
}

func listImagesByProductIDsQuery(productIds []int64) sq.SelectBuilder {
	return psql.Select("id", "product_id", "image", "is_primary").
		From("product_images").
		Where(sq.Eq{"product_id": productIds}).
		OrderBy("product_id ASC", "id ASC")
}

func (q *Queries) ListImagesByProductIDs(ctx context.Context, productIds []int64) ([]ProductImage, error) {
	if len(productIds) == 0 {
		return []ProductImage{}, nil
	}
	query, args, err := listImagesByProductIDsQuery(productIds).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ProductImage{}
	for rows.Next() {
		var i ProductImage
		if err := rows.Scan(
			&i.ID,
			&i.ProductID,
			&i.Image,
			&i.IsPrimary,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (q *Queries) queryProducts(ctx context.Context, query string, args ...interface{}) ([]Product, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		var i Product
		if err := scanProduct(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
