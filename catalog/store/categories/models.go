package categories

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Category struct {
	ID           int64              `json:"id"`
	CategoryName string             `json:"category_name"`
	Slug         string             `json:"slug"`
	Image        pgtype.Text        `json:"image"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}
