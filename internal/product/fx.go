package product

import (
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/product/repository"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
