package ledger

import (
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/ledger/service"
	"go.uber.org/fx"
)

var Module = fx.Module("ledger.service",
	fx.Provide(service.NewService),
)
