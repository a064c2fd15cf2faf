package main

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     int    `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`

	Categories          int   `mapstructure:"SEED_CATEGORIES"`
	ProductsPerCategory int   `mapstructure:"SEED_PRODUCTS_PER_CATEGORY"`
	ImagesPerProduct    int   `mapstructure:"SEED_IMAGES_PER_PRODUCT"`
	RandomSeed          int64 `mapstructure:"SEED_RANDOM"`
}

func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  DBHost: %s\n", c.DBHost))
	sb.WriteString(fmt.Sprintf("  DBPort: %d\n", c.DBPort))
	sb.WriteString(fmt.Sprintf("  DBUser: %s\n", c.DBUser))
	sb.WriteString(fmt.Sprintf("  DBName: %s\n", c.DBName))
	sb.WriteString(fmt.Sprintf("  DBSSLMode: %s\n", c.DBSSLMode))

	if c.DBPassword != "" {
		sb.WriteString("  DBPassword: ********\n")
	} else {
		sb.WriteString("  DBPassword: (empty)\n")
	}

	sb.WriteString(fmt.Sprintf("  Categories: %d\n", c.Categories))
	sb.WriteString(fmt.Sprintf("  ProductsPerCategory: %d\n", c.ProductsPerCategory))
	sb.WriteString(fmt.Sprintf("  ImagesPerProduct: %d\n", c.ImagesPerProduct))
	sb.WriteString(fmt.Sprintf("  RandomSeed: %d\n", c.RandomSeed))

	return sb.String()
}

// LoadFromEnv reads the seeding configuration from the environment, loading
// a local .env file first when one exists.
func LoadFromEnv() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, errors.New("failed to load .env")
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SEED_CATEGORIES", 6)
	v.SetDefault("SEED_PRODUCTS_PER_CATEGORY", 10)
	v.SetDefault("SEED_IMAGES_PER_PRODUCT", 3)
	v.SetDefault("SEED_RANDOM", 42)

	keys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"SEED_CATEGORIES", "SEED_PRODUCTS_PER_CATEGORY", "SEED_IMAGES_PER_PRODUCT", "SEED_RANDOM",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.DBName == "" {
		return nil, errors.New("DB_NAME is required")
	}
	return &cfg, nil
}

func (c *Config) GetDSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return dsn.String()
}
