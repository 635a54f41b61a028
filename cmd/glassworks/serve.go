package main

import (
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/config"
	obslogger "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/observability/logger"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := fx.New(
			infrastructure(),
			domains(),
			server.Module,
			fx.Invoke(watchConfig),
		)
		if err := app.Err(); err != nil {
			return err
		}
		app.Run()
		return nil
	},
}

// watchConfig re-applies the log level when glassworks.yaml is edited.
func watchConfig(h *config.Holder, log *zap.Logger) {
	h.Watch(log, func(cfg config.Config) {
		if err := obslogger.SetLevel(cfg.LogLevel); err != nil {
			log.Warn("log level not changed", zap.String("level", cfg.LogLevel), zap.Error(err))
		}
	})
}
