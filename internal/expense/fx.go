package expense

import (
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/expense/repository"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/expense/service"
	"go.uber.org/fx"
)

var Module = fx.Module("expense.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
