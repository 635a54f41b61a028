package providers

import (
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/providers/pdf"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/providers/xlsx"
	"go.uber.org/fx"
)

// Module provides the document renderers.
var Module = fx.Module("providers",
	pdf.Module,
	xlsx.Module,
)
