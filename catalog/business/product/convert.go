package product

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.app/catalog/business/category"
	"encore.app/catalog/business/storeerr"
	"encore.app/catalog/domain"
	"encore.app/catalog/model"
	"encore.app/catalog/store/categories"
	"encore.app/catalog/store/products"
)

// withRelations converts products and attaches their images and category,
// loading each relation with one query for the whole batch.
func (b *business) withRelations(ctx context.Context, dbProducts []products.Product) ([]*model.Product, error) {
	result := make([]*model.Product, len(dbProducts))
	if len(dbProducts) == 0 {
		return result, nil
	}

	productIDs := make([]int64, 0, len(dbProducts))
	categoryIDs := make([]int64, 0, len(dbProducts))
	seenCategory := make(map[int64]bool)
	for _, p := range dbProducts {
		productIDs = append(productIDs, p.ID)
		if p.CategoryID.Valid && !seenCategory[p.CategoryID.Int64] {
			seenCategory[p.CategoryID.Int64] = true
			categoryIDs = append(categoryIDs, p.CategoryID.Int64)
		}
	}

	dbImages, err := b.productRepo.ListImagesByProductIDs(ctx, productIDs)
	if err != nil {
		return nil, storeerr.Wrap(err, "failed to get product images")
	}
	imagesByProduct := make(map[int64][]products.ProductImage, len(dbProducts))
	for _, img := range dbImages {
		imagesByProduct[img.ProductID] = append(imagesByProduct[img.ProductID], img)
	}

	categoriesByID := make(map[int64]categories.Category, len(categoryIDs))
	if len(categoryIDs) > 0 {
		dbCategories, err := b.categoryRepo.GetCategoriesByIDs(ctx, categoryIDs)
		if err != nil {
			return nil, storeerr.Wrap(err, "failed to get product categories")
		}
		for _, c := range dbCategories {
			categoriesByID[c.ID] = c
		}
	}

	for i, p := range dbProducts {
		product := convertDBProductToModel(p)
		product.Images = convertDBImagesToModel(imagesByProduct[p.ID], b.cfg.AssetBaseURL)
		product.PrimaryImage = primaryImage(product.Images)

		if p.CategoryID.Valid {
			if c, ok := categoriesByID[p.CategoryID.Int64]; ok {
				summary := category.ConvertDBCategoryToModel(c, b.cfg.AssetBaseURL)
				product.Category = &summary
			}
		}

		result[i] = product
	}

	return result, nil
}

// convertDBProductToModel converts a database Product to a domain model Product
func convertDBProductToModel(dbProduct products.Product) *model.Product {
	product := &model.Product{
		ID:        dbProduct.ID,
		Name:      dbProduct.Name,
		Slug:      dbProduct.Slug,
		Price:     numericToDecimal(dbProduct.Price),
		Stock:     dbProduct.Stock,
		CreatedAt: dbProduct.CreatedAt.Time,
		UpdatedAt: dbProduct.UpdatedAt.Time,
	}

	if dbProduct.Description.Valid {
		product.Description = &dbProduct.Description.String
	}

	return product
}

func convertDBImagesToModel(dbImages []products.ProductImage, assetBaseURL string) []model.ProductImage {
	images := make([]model.ProductImage, len(dbImages))
	for i, img := range dbImages {
		images[i] = model.ProductImage{
			ID:        img.ID,
			ImageURL:  domain.AssetURL(assetBaseURL, img.Image),
			IsPrimary: img.IsPrimary,
		}
	}
	return images
}

// primaryImage picks the image flagged primary, falling back to the first one
func primaryImage(images []model.ProductImage) *model.ProductImage {
	if len(images) == 0 {
		return nil
	}
	for i := range images {
		if images[i].IsPrimary {
			img := images[i]
			return &img
		}
	}
	img := images[0]
	return &img
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
