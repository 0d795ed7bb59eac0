package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/km-arc/go-registry/framework/app"
	"github.com/km-arc/go-registry/framework/config"
	"github.com/km-arc/go-registry/framework/logging"
)

type serveOptions struct {
	envFiles []string
	addr     string
	values   string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the registry inspection API",
		Long:  `Load configuration from the environment (and .env), build the registry and serve it over HTTP until interrupted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.envFiles, "env-file", nil, "Env files to load (default .env)")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address, overrides HTTP_ADDR")
	cmd.Flags().StringVar(&opts.values, "values", "", "YAML values file, overrides REGISTRY_VALUES")
	return cmd
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	cfg := config.Load(opts.envFiles...)
	if opts.addr != "" {
		cfg.HTTP.Addr = opts.addr
	}
	if opts.values != "" {
		cfg.Registry.ValuesFile = opts.values
	}
	logging.Init(os.Stderr, cfg.Log.Level, cfg.Log.JSON)

	application, err := app.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return application.Run(ctx)
}
