package work

import (
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/work/repository"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/work/service"
	"go.uber.org/fx"
)

var Module = fx.Module("work.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
