package setting

import (
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/setting/repository"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/setting/service"
	"go.uber.org/fx"
)

var Module = fx.Module("setting.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
