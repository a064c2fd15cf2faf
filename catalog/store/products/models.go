package products

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Product struct {
	ID          int64              `json:"id"`
	CategoryID  pgtype.Int8        `json:"category_id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description pgtype.Text        `json:"description"`
	Price       pgtype.Numeric     `json:"price"`
	Stock       int32              `json:"stock"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type ProductImage struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Image     string `json:"image"`
	IsPrimary bool   `json:"is_primary"`
}
