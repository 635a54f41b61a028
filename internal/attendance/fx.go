package attendance

import (
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/attendance/repository"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/attendance/service"
	"go.uber.org/fx"
)

var Module = fx.Module("attendance.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
