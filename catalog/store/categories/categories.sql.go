package categories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

var categoryColumns = []string{"id", "category_name", "slug", "image", "created_at", "updated_at"}

func listCategoriesQuery() sq.SelectBuilder {
	return psql.Select(categoryColumns...).
		From("categories").
		OrderBy("updated_at DESC", "id ASC")
}

// ListCategories returns every category, most recently updated first
func (q *Queries) ListCategories(ctx context.Context) ([]Category, error) {
	query, args, err := listCategoriesQuery().ToSql()
	if err != nil {
		return nil, err
	}
	return q.queryCategories(ctx, query, args...)
}

func getCategoriesByIDsQuery(ids []int64) sq.SelectBuilder {
	return psql.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"id": ids}).
		OrderBy("id ASC")
}

func (q *Queries) GetCategoriesByIDs(ctx context.Context, ids []int64) ([]Category, error) {
	if len(ids) == 0 {
		return []Category{}, nil
	}
	query, args, err := getCategoriesByIDsQuery(ids).ToSql()
	if err != nil {
		return nil, err
	}
	return q.queryCategories(ctx, query, args...)
}

func (q *Queries) queryCategories(ctx context.Context, query string, args ...interface{}) ([]Category, error) {
	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Category{}
	for rows.Next() {
		var i Category
		if err := rows.Scan(
			&i.ID,
			&i.CategoryName,
			&i.Slug,
			&i.Image,
			&i.CreatedAt,
			&i.UpdatedAt,
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
