package config

import (
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Holder keeps the current Config and swaps it when glassworks.yaml changes on disk.
// Only settings read per operation (invoice template, document dir, log level)
// take effect without a restart.
type Holder struct {
	v       *viper.Viper
	current atomic.Value // holds Config
}

// NewHolder loads configuration the same way Load does and keeps the viper
// instance around for watching.
func NewHolder() (*Holder, error) {
	cfg, v, err := loadWithViper()
	if err != nil {
		return nil, err
	}
	h := &Holder{v: v}
	h.current.Store(cfg)
	return h, nil
}

// Get returns the latest valid configuration.
func (h *Holder) Get() Config {
	return h.current.Load().(Config)
}

// Watch starts watching the config file. Invalid edits are logged and ignored.
func (h *Holder) Watch(log *zap.Logger, onChange func(Config)) {
	if h.v.ConfigFileUsed() == "" {
		return
	}
	h.v.OnConfigChange(func(e fsnotify.Event) {
		updated, err := fromViper(h.v)
		if err != nil {
			log.Warn("config reload ignored", zap.String("file", e.Name), zap.Error(err))
			return
		}
		h.current.Store(updated)
		log.Info("config reloaded", zap.String("file", e.Name), zap.String("op", e.Op.String()))
		if onChange != nil {
			onChange(updated)
		}
	})
	h.v.WatchConfig()
}
