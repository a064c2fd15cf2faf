package catalog

import (
	"context"

	"encore.dev/rlog"

	"encore.app/catalog/model"
)

type ListCategoriesResponse struct {
	Data []model.Category `json:"data"`
}

//encore:api public path=/v1/categories method=GET
func (s *Service) ListCategories(ctx context.Context) (*ListCategoriesResponse, error) {
	result, err := s.categories.ListCategories(ctx)
	if err != nil {
		rlog.Error("failed to list categories", "error", err)
		return nil, err
	}

	return &ListCategoriesResponse{
		Data: result,
	}, nil
}
