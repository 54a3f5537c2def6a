package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ecometric/footprint/internal/config"
	"github.com/ecometric/footprint/internal/factors"
	"github.com/ecometric/footprint/internal/server"
)

func newServeCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the footprint HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("listen") {
				cfg.Server.ListenAddr = listen
			}

			registry, err := factors.NewRegistry(logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(registry, cfg, logger)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", config.DefaultListenAddr, "address to listen on")

	return cmd
}
