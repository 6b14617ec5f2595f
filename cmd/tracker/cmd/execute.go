package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"amazon-price-tracker/config"
	"amazon-price-tracker/internal/pkg/render"
)

var errUsage = errors.New("usage")

func Execute(ctx context.Context) int {
	if err := config.LoadDotEnv(config.DotEnvPath(os.Getenv)); err != nil {
		render.Err(os.Stdout, err)
		return 1
	}
	if config.ForceColor(os.Getenv) {
		color.NoColor = false
	}
	return run(ctx, newRootCmd(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, root *cobra.Command, args []string, in io.Reader, out, errOut io.Writer) int {
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errUsage) {
			return 2
		}
		render.Err(root.OutOrStdout(), err)
		return 1
	}
	return 0
}
