package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/catalog/store/categories"
	"encore.app/catalog/store/products"
)

// Store combines all domain-specific repositories
type Store struct {
	Categories categories.Querier
	Products   products.Querier
}

// NewStore creates a new Store with all domain queriers
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Categories: categories.New(db),
		Products:   products.New(db),
	}
}
