package customer

import (
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/customer/repository"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
