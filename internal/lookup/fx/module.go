package fx

import (
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"amazon-price-tracker/config"
	"amazon-price-tracker/internal/lookup"
	"amazon-price-tracker/internal/resolver"
	"amazon-price-tracker/internal/scraperapi"
)

var Module = fx.Module(
	"lookup",
	fx.Provide(
		NewResolver,
		NewScraperClient,
		fx.Annotate(
			lookup.NewService,
			fx.From(new(*resolver.Resolver), new(*scraperapi.Client)),
		),
		NewOptions,
	),
)

type Params struct {
	fx.In

	Cfg    config.Config
	Client *http.Client
	Logger *zap.SugaredLogger
}

func NewResolver(p Params) *resolver.Resolver {
	return resolver.New(resolver.Config{
		Direct:    resolver.Domain(p.Cfg.AmazonDomain),
		ShortLink: resolver.Domain(p.Cfg.ShortLinkDomain),
		UserAgent: p.Cfg.UserAgent,
	}, p.Client, p.Logger.Named("resolver"))
}

func NewScraperClient(p Params) *scraperapi.Client {
	return scraperapi.New(scraperapi.Config{
		Endpoint:  p.Cfg.ScraperAPIURL,
		APIKey:    p.Cfg.APIKey,
		Country:   p.Cfg.Country,
		TLD:       p.Cfg.TLD,
		UserAgent: p.Cfg.UserAgent,
	}, p.Client, p.Logger.Named("scraperapi"))
}

func NewOptions(cfg config.Config) lookup.Options {
	return lookup.Options{Country: cfg.Country, ImagePath: cfg.ImagePath}
}
