package config

import "go.uber.org/fx"

// Module provides the config holder and a snapshot of the startup Config.
var Module = fx.Module("config",
	fx.Provide(
		NewHolder,
		func(h *Holder) Config { return h.Get() },
	),
)
