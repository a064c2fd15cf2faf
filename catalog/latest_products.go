package catalog

import (
	"context"

	"encore.dev/rlog"

	"encore.app/catalog/model"
)

type LatestProductsResponse struct {
	Data []*model.Product `json:"data"`
}

//encore:api public path=/v1/latest-products method=GET
func (s *Service) LatestProducts(ctx context.Context) (*LatestProductsResponse, error) {
	result, err := s.products.LatestProducts(ctx)
	if err != nil {
		rlog.Error("failed to get latest products", "error", err)
		return nil, err
	}

	return &LatestProductsResponse{
		Data: result,
	}, nil
}
