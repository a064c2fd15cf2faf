package catalog

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/catalog/model"
)

type ProductResponse struct {
	Data model.Product `json:"data"`
}

//encore:api public path=/v1/products/:slug method=GET
func (s *Service) GetProduct(ctx context.Context, slug string) (*ProductResponse, error) {
	if err := validate.Var(slug, "required,max=255"); err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid product slug"}
	}

	result, err := s.products.GetProductBySlug(ctx, slug)
	if err != nil {
		if errs.Code(err) == errs.NotFound {
			rlog.Info("product not found", "slug", slug)
		} else {
			rlog.Error("failed to get product", "error", err, "slug", slug)
		}
		return nil, err
	}

	return &ProductResponse{
		Data: *result,
	}, nil
}
