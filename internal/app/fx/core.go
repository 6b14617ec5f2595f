package fx

import (
	"net/http"

	"amazon-price-tracker/config"
	"amazon-price-tracker/internal/logs"

	"go.uber.org/fx"
)

var ConfigOptions = fx.Options(
	fx.Provide(
		config.NewViper,
		config.NewConfig,
	),
)

// CoreAppOptions expects config.Config to be provided or supplied.
var CoreAppOptions = fx.Options(
	fx.Provide(
		logs.NewLogger,
		logs.NewSugaredLogger,
		NewHTTPClient,
	),
)

// NewHTTPClient returns the client shared by every outbound request. A zero
// HTTP_TIMEOUT keeps the default of no client-side timeout.
func NewHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{Timeout: cfg.HTTPTimeout}
}
