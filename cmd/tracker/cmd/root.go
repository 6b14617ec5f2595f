package cmd

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"amazon-price-tracker/config"
	appfx "amazon-price-tracker/internal/app/fx"
	"amazon-price-tracker/internal/lookup"
)

func newRootCmd() *cobra.Command {
	var (
		url       string
		imagePath string
	)

	rootCmd := &cobra.Command{
		Use:           "tracker",
		Short:         "Look up an Amazon product's name, price and image",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				_ = cmd.Help()
				return errUsage
			}

			v := config.NewViper()
			if strings.TrimSpace(imagePath) != "" {
				v.Set("IMAGE_PATH", imagePath)
			}
			cfg, err := config.NewConfig(v)
			if err != nil {
				return err
			}

			var svc *lookup.Service
			app := fx.New(
				fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
					return &fxevent.ZapLogger{Logger: logger}
				}),
				appfx.WithConfig(cfg),
				fx.Populate(&svc),
			)
			if err := app.Err(); err != nil {
				return err
			}

			ctx := cmd.Context()
			if err := app.Start(ctx); err != nil {
				return err
			}
			defer func() {
				stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = app.Stop(stopCtx)
			}()

			rawURL := strings.TrimSpace(url)
			if rawURL == "" {
				rawURL, err = svc.Prompt(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
			}

			_, err = svc.Run(ctx, rawURL, cmd.OutOrStdout())
			return err
		},
	}

	rootCmd.Flags().StringVar(&url, "url", "", "Amazon product URL (prompted for when empty)")
	rootCmd.Flags().StringVar(&imagePath, "image-path", "", "Where to save the product image (overrides IMAGE_PATH)")
	return rootCmd
}
