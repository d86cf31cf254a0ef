// internal/workers/tco/calculate-tco/config.go
package calculatetco

import (
	"time"

	"platform-finder/pkg/registry"
)

type Config struct {
	Timeout     time.Duration
	InputSchema map[string]interface{}
}

func DefaultConfig() *Config {
	return &Config{
		Timeout: registry.DefaultTimeout,
	}
}

// NewConfig takes timeout and input schema from the registry entry for TaskType.
func NewConfig(reg *registry.ActivityRegistry) *Config {
	cfg := DefaultConfig()
	if activity, ok := reg.Find(TaskType); ok {
		cfg.Timeout = activity.TimeoutDuration()
		cfg.InputSchema = activity.InputSchema
	}
	return cfg
}
