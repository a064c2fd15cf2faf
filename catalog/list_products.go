package catalog

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/catalog/domain"
	"encore.app/catalog/model"
)

type ListProductsRequest struct {
	PerPage int `query:"per_page" validate:"gte=0"`
	Page    int `query:"page" validate:"gte=0"`
}

type ListProductsResponse struct {
	Data []*model.Product     `json:"data"`
	Meta model.PaginationMeta `json:"meta"`
}

//encore:api public path=/v1/products method=GET
func (s *Service) ListProducts(ctx context.Context, req *ListProductsRequest) (*ListProductsResponse, error) {
	page := s.pagination.page(req.Page, req.PerPage)

	result, total, err := s.products.ListProducts(ctx, page)
	if err != nil {
		rlog.Error("failed to list products", "error", err, "page", page.Number, "per_page", page.Size)
		return nil, err
	}

	return &ListProductsResponse{
		Data: result,
		Meta: domain.Paginate(total, page, len(result)),
	}, nil
}

// Validate implements validation for ListProductsRequest using go-playground/validator
func (r *ListProductsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
