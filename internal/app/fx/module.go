package fx

import (
	"go.uber.org/fx"

	"amazon-price-tracker/config"
	"amazon-price-tracker/internal/logs"
	lookupfx "amazon-price-tracker/internal/lookup/fx"
)

var runtimeOptions = fx.Options(
	CoreAppOptions,
	lookupfx.Module,
	fx.Invoke(logs.RegisterLifecycle),
)

// Module builds the config from the environment.
var Module = fx.Options(
	ConfigOptions,
	runtimeOptions,
)

// WithConfig is Module with a config the caller already built and validated.
func WithConfig(cfg config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		runtimeOptions,
	)
}
