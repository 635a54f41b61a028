package visit

import (
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/visit/repository"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/visit/service"
	"go.uber.org/fx"
)

var Module = fx.Module("visit.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
