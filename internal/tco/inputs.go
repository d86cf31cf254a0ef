// internal/tco/inputs.go
package tco

import (
	"strings"

	"platform-finder/internal/common/errors"
	"platform-finder/internal/models"
)

// ValidateInputs rejects assumptions the estimator cannot price.
func ValidateInputs(inputs *models.TCOInputs) error {
	var problems []string
	if inputs.NumberOfAgents < 1 {
		problems = append(problems, "numberOfAgents must be at least 1")
	}
	if inputs.ExpectedTickets < 0 {
		problems = append(problems, "expectedTickets must not be negative")
	}
	if len(problems) > 0 {
		return errors.NewInvalidTCOInputsError(strings.Join(problems, "; "))
	}
	return nil
}
