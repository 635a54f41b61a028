package invoice

import (
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/invoice/draft"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/invoice/repository"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
	fx.Provide(draft.NewStore),
)
