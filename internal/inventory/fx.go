package inventory

import (
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/inventory/repository"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/inventory/service"
	"go.uber.org/fx"
)

var Module = fx.Module("inventory.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
