package category

import (
	"context"

	"encore.app/catalog/business/storeerr"
	"encore.app/catalog/domain"
	"encore.app/catalog/model"
	"encore.app/catalog/readthrough"
	"encore.app/catalog/store/categories"
)

// ListCategories returns all categories, most recently updated first,
// served from cache for the configured ttl
func (b *business) ListCategories(ctx context.Context) ([]model.Category, error) {
	result, err := readthrough.GetOrCompute(ctx, b.cache, CategoriesCacheKey, b.cfg.CacheTTL, b.loadCategories)
	if err != nil {
		return nil, storeerr.Wrap(err, "failed to list categories")
	}
	return result, nil
}

func (b *business) loadCategories(ctx context.Context) ([]model.Category, error) {
	dbCategories, err := b.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, storeerr.Wrap(err, "failed to list categories")
	}

	result := make([]model.Category, len(dbCategories))
	for i, dbCategory := range dbCategories {
		result[i] = ConvertDBCategoryToModel(dbCategory, b.cfg.AssetBaseURL)
	}
	return result, nil
}

// ConvertDBCategoryToModel converts a database Category to its API shape
func ConvertDBCategoryToModel(dbCategory categories.Category, assetBaseURL string) model.Category {
	category := model.Category{
		ID:   dbCategory.ID,
		Name: dbCategory.CategoryName,
		Slug: dbCategory.Slug,
	}

	if dbCategory.Image.Valid && dbCategory.Image.String != "" {
		image := domain.AssetURL(assetBaseURL, dbCategory.Image.String)
		category.Image = &image
	}

	return category
}
