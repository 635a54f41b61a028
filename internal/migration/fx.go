package migration

import (
	"context"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/config"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/seed"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, log *zap.Logger) error {
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}

		if err := RunMigrations(sqlDB, cfg.DBType); err != nil {
			return err
		}
		log.Info("schema up to date", zap.String("type", cfg.DBType))

		return seed.Ensure(context.Background(), conn)
	}),
)
