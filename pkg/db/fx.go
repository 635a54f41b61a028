package db

import (
	"context"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/config"
	obslogger "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/observability/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("db",
	fx.Provide(provideDB),
)

func provideDB(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	dbCfg := FromConfig(cfg)
	gormLog := obslogger.NewGormLogger(obslogger.GormLoggerConfigFor(cfg.IsDevelopment() || cfg.LogLevel == "debug"))

	conn, err := Open(dbCfg, gormLog)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			log.Info("closing database", zap.String("type", dbCfg.Type))
			return sqlDB.Close()
		},
	})

	log.Info("database opened", zap.String("type", dbCfg.Type), zap.String("path", dbCfg.Path))
	return conn, nil
}
