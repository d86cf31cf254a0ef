// internal/workers/matching/find-top-matches/config.go
package findtopmatches

import (
	"time"

	"platform-finder/internal/matching"
	"platform-finder/pkg/registry"
)

type Config struct {
	Timeout      time.Duration
	InputSchema  map[string]interface{}
	DefaultLimit int
}

func DefaultConfig() *Config {
	return &Config{
		Timeout:      registry.DefaultTimeout,
		DefaultLimit: matching.DefaultLimit,
	}
}

// NewConfig takes timeout and input schema from the registry entry for
// TaskType. A non-positive defaultLimit keeps matching.DefaultLimit.
func NewConfig(reg *registry.ActivityRegistry, defaultLimit int) *Config {
	cfg := DefaultConfig()
	if activity, ok := reg.Find(TaskType); ok {
		cfg.Timeout = activity.TimeoutDuration()
		cfg.InputSchema = activity.InputSchema
	}
	if defaultLimit > 0 {
		cfg.DefaultLimit = defaultLimit
	}
	return cfg
}
