package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	categoryNames = []string{"Shoes", "Bags", "Watches", "Jackets", "Hats", "Scarves", "Belts", "Sunglasses"}
	adjectives    = []string{"Classic", "Urban", "Vintage", "Sport", "Canvas", "Leather", "Everyday", "Travel"}
)

type categorySeed struct {
	Name      string
	Slug      string
	Image     string
	UpdatedAt time.Time
	Products  []productSeed
}

type productSeed struct {
	Name        string
	Slug        string
	Description string
	Price       decimal.Decimal
	Stock       int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Images      []imageSeed
}

type imageSeed struct {
	Path      string
	IsPrimary bool
}

// generate builds a deterministic catalog for the given seed. Every fourth
// product is out of stock so the listing order is visible in the data.
func generate(cfg *Config, now time.Time) []categorySeed {
	rng := rand.New(rand.NewSource(cfg.RandomSeed))

	categories := make([]categorySeed, 0, cfg.Categories)
	n := 0
	for i := 0; i < cfg.Categories; i++ {
		name := categoryNames[i%len(categoryNames)]
		if i >= len(categoryNames) {
			name = fmt.Sprintf("%s %d", name, i/len(categoryNames)+1)
		}
		slug := slugify(name)

		category := categorySeed{
			Name:      name,
			Slug:      slug,
			Image:     fmt.Sprintf("categories/%s.png", slug),
			UpdatedAt: now.Add(-time.Duration(i) * time.Hour),
		}

		for j := 0; j < cfg.ProductsPerCategory; j++ {
			n++
			productName := fmt.Sprintf("%s %s %d", adjectives[rng.Intn(len(adjectives))], strings.TrimSuffix(name, "s"), j+1)
			productSlug := fmt.Sprintf("%s-%d", slugify(productName), n)

			stock := int32(rng.Intn(50) + 1)
			if n%4 == 0 {
				stock = 0
			}
			createdAt := now.Add(-time.Duration(n) * 37 * time.Minute)

			product := productSeed{
				Name:        productName,
				Slug:        productSlug,
				Description: fmt.Sprintf("%s from the %s collection.", productName, strings.ToLower(name)),
				Price:       decimal.New(int64(rng.Intn(49900)+100), -2),
				Stock:       stock,
				CreatedAt:   createdAt,
				UpdatedAt:   createdAt.Add(time.Duration(rng.Intn(36*60)) * time.Minute),
			}
			for k := 0; k < cfg.ImagesPerProduct; k++ {
				product.Images = append(product.Images, imageSeed{
					Path:      fmt.Sprintf("products/%s-%d.jpg", productSlug, k+1),
					IsPrimary: k == 0,
				})
			}
			category.Products = append(category.Products, product)
		}
		categories = append(categories, category)
	}
	return categories
}

func slugify(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
