// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"platform-finder/internal/common/validation"
)

// DefaultTimeout applies when an activity's timeout is empty or unparsable.
const DefaultTimeout = 10 * time.Second

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}
	return &reg, nil
}

// Save writes the registry as indented JSON, creating parent directories.
func (r *ActivityRegistry) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}

// Find returns the activity bound to a job type.
func (r *ActivityRegistry) Find(taskType string) (*Activity, bool) {
	if r == nil {
		return nil, false
	}
	for i := range r.Activities {
		if r.Activities[i].TaskType == taskType {
			return &r.Activities[i], true
		}
	}
	return nil, false
}

// FindByID looks an activity up by its registry id.
func (r *ActivityRegistry) FindByID(id string) (*Activity, bool) {
	for i := range r.Activities {
		if r.Activities[i].ID == id {
			return &r.Activities[i], true
		}
	}
	return nil, false
}

// InputSchema returns the variables schema of a job type, or nil when the
// type is unknown. A nil schema accepts any variables.
func (r *ActivityRegistry) InputSchema(taskType string) map[string]interface{} {
	if a, ok := r.Find(taskType); ok {
		return a.InputSchema
	}
	return nil
}

// Validate reports every structural problem in the registry.
func (r *ActivityRegistry) Validate() []string {
	var problems []string
	if len(r.Activities) == 0 {
		return []string{"registry contains no activities"}
	}

	ids := make(map[string]bool)
	taskTypes := make(map[string]bool)
	for i, a := range r.Activities {
		if a.ID == "" {
			problems = append(problems, fmt.Sprintf("activity %d: missing id", i))
			continue
		}
		if ids[a.ID] {
			problems = append(problems, fmt.Sprintf("duplicate activity id: %s", a.ID))
		}
		ids[a.ID] = true

		if a.DisplayName == "" {
			problems = append(problems, fmt.Sprintf("%s: missing displayName", a.ID))
		}
		if a.Category == "" {
			problems = append(problems, fmt.Sprintf("%s: missing category", a.ID))
		}
		if a.TaskType == "" {
			problems = append(problems, fmt.Sprintf("%s: missing taskType", a.ID))
		} else if taskTypes[a.TaskType] {
			problems = append(problems, fmt.Sprintf("%s: taskType %s already registered", a.ID, a.TaskType))
		}
		taskTypes[a.TaskType] = true

		if a.ImplementationStatus != "" && !contains(Statuses, a.ImplementationStatus) {
			problems = append(problems, fmt.Sprintf("%s: unknown implementationStatus %q", a.ID, a.ImplementationStatus))
		}
		if a.Timeout != "" {
			if _, err := time.ParseDuration(a.Timeout); err != nil {
				problems = append(problems, fmt.Sprintf("%s: invalid timeout %q", a.ID, a.Timeout))
			}
		}
		if len(a.InputSchema) > 0 {
			if _, err := validation.CompileMap(a.InputSchema); err != nil {
				problems = append(problems, fmt.Sprintf("%s: inputSchema: %v", a.ID, err))
			}
		}
	}
	return problems
}

// TimeoutDuration parses the activity timeout, falling back to DefaultTimeout.
func (a *Activity) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(a.Timeout)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
