// Command catalogseed fills a catalog database with sample categories,
// products and images for local development.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	logger := log.New(os.Stdout, "catalogseed: ", log.LstdFlags)

	cfg, err := LoadFromEnv()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	logger.Printf("config: %s", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, cfg); err != nil {
		logger.Fatalf("seed failed: %v", err)
	}
}

func run(ctx context.Context, logger *log.Logger, cfg *Config) error {
	logger.Println("initializing pgxpool...")
	pool, err := pgxpool.New(ctx, cfg.GetDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	categories := generate(cfg, time.Now().UTC())

	var stats seedStats
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		var err error
		stats, err = seed(ctx, tx, categories)
		return err
	})
	if err != nil {
		return err
	}

	logger.Printf("seeded %d categories, %d products, %d images", stats.Categories, stats.Products, stats.Images)
	return nil
}
