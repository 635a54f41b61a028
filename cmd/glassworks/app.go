package main

import (
	"context"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/attendance"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/config"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/customer"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/document"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/expense"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/inventory"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/invoice"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/ledger"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/migration"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/observability"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/payment"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/product"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/providers"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/setting"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/visit"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/work"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

// infrastructure is what every command needs: config, logging, the
// database with its schema applied, ids and time.
func infrastructure() fx.Option {
	return fx.Options(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
	)
}

// domains provides every feature service and the document renderers.
func domains() fx.Option {
	return fx.Options(
		setting.Module,
		customer.Module,
		product.Module,
		inventory.Module,
		payment.Module,
		visit.Module,
		work.Module,
		invoice.Module,
		expense.Module,
		attendance.Module,
		ledger.Module,
		providers.Module,
		document.Module,
	)
}

func RegisterSnowflake(cfg config.Config) (*snowflake.Node, error) {
	return snowflake.NewNode(cfg.SnowflakeNode)
}

// runOnce starts a quiet app, hands the populated targets to fn and stops
// the app again.
func runOnce(ctx context.Context, fn func(context.Context) error, opts ...fx.Option) error {
	app := fx.New(append([]fx.Option{fx.NopLogger, infrastructure()}, opts...)...)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	return fn(ctx)
}
