package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const DefaultScraperAPIURL = "https://api.scraperapi.com/structured/amazon/product"

type Config struct {
	AppName string

	LogLevel  string
	LogFormat string `validate:"oneof=json console"`

	// ScraperAPI structured endpoint.
	APIKey        string `validate:"required"`
	ScraperAPIURL string `validate:"required,url"`
	Country       string `validate:"required"`
	TLD           string `validate:"required"`

	// Resolver labels: the host label before the TLD suffix.
	AmazonDomain    string `validate:"required"`
	ShortLinkDomain string `validate:"required"`

	ImagePath   string `validate:"required"`
	UserAgent   string
	HTTPTimeout time.Duration `validate:"min=0"`
}

func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "amazon-price-tracker")
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("SCRAPER_API_URL", DefaultScraperAPIURL)
	v.SetDefault("SCRAPER_COUNTRY", "in")
	v.SetDefault("SCRAPER_TLD", "in")

	v.SetDefault("AMAZON_DOMAIN", "amazon")
	v.SetDefault("SHORT_LINK_DOMAIN", "amzn")

	v.SetDefault("IMAGE_PATH", "product_image.jpg")
	v.SetDefault("HTTP_TIMEOUT", "0s")

	return v
}

func NewConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppName: v.GetString("APP_NAME"),

		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT"))),

		APIKey:        strings.TrimSpace(v.GetString("APIKEY")),
		ScraperAPIURL: strings.TrimSpace(v.GetString("SCRAPER_API_URL")),
		Country:       strings.TrimSpace(v.GetString("SCRAPER_COUNTRY")),
		TLD:           strings.TrimSpace(v.GetString("SCRAPER_TLD")),

		AmazonDomain:    strings.TrimSpace(v.GetString("AMAZON_DOMAIN")),
		ShortLinkDomain: strings.TrimSpace(v.GetString("SHORT_LINK_DOMAIN")),

		ImagePath:   strings.TrimSpace(v.GetString("IMAGE_PATH")),
		UserAgent:   v.GetString("USER_AGENT"),
		HTTPTimeout: v.GetDuration("HTTP_TIMEOUT"),
	}

	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("missing APIKEY (set it in the environment or a .env file)")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
