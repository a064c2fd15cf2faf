package main

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type seedStats struct {
	Categories int
	Products   int
	Images     int
}

// seed inserts the generated catalog in a single transaction.
func seed(ctx context.Context, db pgx.Tx, categories []categorySeed) (seedStats, error) {
	var stats seedStats

	for _, c := range categories {
		categoryID, err := insertReturningID(ctx, db, psql.Insert("categories").
			Columns("category_name", "slug", "image", "created_at", "updated_at").
			Values(c.Name, c.Slug, c.Image, c.UpdatedAt, c.UpdatedAt))
		if err != nil {
			return stats, fmt.Errorf("insert category %s: %w", c.Slug, err)
		}
		stats.Categories++

		for _, p := range c.Products {
			productID, err := insertReturningID(ctx, db, psql.Insert("products").
				Columns("category_id", "name", "slug", "description", "price", "stock", "created_at", "updated_at").
				Values(categoryID, p.Name, p.Slug, p.Description, p.Price.StringFixed(2), p.Stock, p.CreatedAt, p.UpdatedAt))
			if err != nil {
				return stats, fmt.Errorf("insert product %s: %w", p.Slug, err)
			}
			stats.Products++

			if len(p.Images) == 0 {
				continue
			}
			images := psql.Insert("product_images").Columns("product_id", "image", "is_primary")
			for _, img := range p.Images {
				images = images.Values(productID, img.Path, img.IsPrimary)
			}
			query, args, err := images.ToSql()
			if err != nil {
				return stats, fmt.Errorf("build images insert: %w", err)
			}
			if _, err := db.Exec(ctx, query, args...); err != nil {
				return stats, fmt.Errorf("insert images for %s: %w", p.Slug, err)
			}
			stats.Images += len(p.Images)
		}
	}
	return stats, nil
}

func insertReturningID(ctx context.Context, db pgx.Tx, b sq.InsertBuilder) (int64, error) {
	query, args, err := b.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
