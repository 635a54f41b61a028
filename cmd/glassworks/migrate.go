package main

import (
	"context"
	"fmt"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/config"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/migration"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and seed defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			conn *gorm.DB
			cfg  config.Config
		)
		return runOnce(cmd.Context(), func(context.Context) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			v, dirty, err := migration.Version(sqlDB, cfg.DBType)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty=%t)\n", v, dirty)
			return nil
		}, fx.Populate(&conn, &cfg))
	},
}
