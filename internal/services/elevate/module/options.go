package module

import "elevator/internal/platform/config"

// Options holds configuration settings for the elevate module
type Options struct {
	Workers int `json:"workers" validate:"min=1,max=64"`
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	ef := cfg.Prefix("ELEVATE_")
	return Options{
		Workers: ef.MayInt("WORKERS", 4),
	}
}
