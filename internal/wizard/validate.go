// internal/wizard/validate.go
package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"platform-finder/internal/common/errors"
	"platform-finder/internal/models"
)

type problems []string

func (p *problems) requireOneOf(field, value string, allowed []string) {
	switch {
	case value == "":
		*p = append(*p, fmt.Sprintf("%s is required", field))
	case !models.Contains(allowed, value):
		*p = append(*p, fmt.Sprintf("%s %q is not one of %s", field, value, strings.Join(allowed, ", ")))
	}
}

func (p *problems) eachOneOf(field string, values, allowed []string) {
	for _, v := range values {
		if !models.Contains(allowed, v) {
			*p = append(*p, fmt.Sprintf("%s %q is not one of %s", field, v, strings.Join(allowed, ", ")))
		}
	}
}

func (p problems) err() error {
	if len(p) == 0 {
		return nil
	}
	return errors.NewInvalidWizardAnswersError(strings.Join(p, "; "))
}

// ValidateStep1 checks the company context answers.
func ValidateStep1(s *models.WizardStep1) error {
	var p problems
	p.requireOneOf("companySize", s.CompanySize, models.CompanySizes)
	p.requireOneOf("industry", s.Industry, models.Industries)
	p.requireOneOf("supportVolume", s.SupportVolume, models.SupportVolumes)
	p.requireOneOf("budget", s.Budget, models.BudgetRanges)
	if teamSize := strings.TrimSpace(s.TeamSize); teamSize == "" {
		p = append(p, "teamSize is required")
	} else if n, err := strconv.Atoi(teamSize); err != nil || n < 1 {
		p = append(p, fmt.Sprintf("teamSize %q must be a positive whole number", s.TeamSize))
	}
	if len(s.Channels) == 0 {
		p = append(p, "at least one channel is required")
	}
	p.eachOneOf("channels", s.Channels, models.SupportChannels)
	return p.err()
}

// ValidateStep2 checks the requirements answers. Integrations are free-form.
func ValidateStep2(s *models.WizardStep2) error {
	var p problems
	p.requireOneOf("deployment", s.Deployment, models.Deployments)
	p.requireOneOf("implementationTimeline", s.ImplementationTimeline, models.ImplementationTimelines)
	if len(s.SecurityCerts) == 0 {
		p = append(p, "securityCerts needs at least one entry (use \"None Required\")")
	}
	p.eachOneOf("securityCerts", s.SecurityCerts, models.SecurityCerts)
	p.eachOneOf("aiCapabilities", s.AICapabilities, models.AICapabilities)
	return p.err()
}

// ValidateStep3 checks the ranked priorities.
func ValidateStep3(s *models.WizardStep3) error {
	var p problems
	switch {
	case len(s.Priorities) == 0:
		p = append(p, "at least one priority is required")
	case len(s.Priorities) > models.MaxPriorities:
		p = append(p, fmt.Sprintf("at most %d priorities may be ranked", models.MaxPriorities))
	}
	p.eachOneOf("priorities", s.Priorities, models.Priorities)
	seen := make(map[string]bool, len(s.Priorities))
	for _, pr := range s.Priorities {
		if seen[pr] {
			p = append(p, fmt.Sprintf("priority %q is ranked twice", pr))
		}
		seen[pr] = true
	}
	return p.err()
}

// ValidateAnswers checks a complete answer set submitted in one piece.
func ValidateAnswers(a *models.WizardAnswers) error {
	var all []string
	for _, err := range []error{
		ValidateStep1(&a.WizardStep1),
		ValidateStep2(&a.WizardStep2),
		ValidateStep3(&a.WizardStep3),
	} {
		if stdErr, ok := errors.AsStandardError(err); ok {
			all = append(all, stdErr.Details)
		}
	}
	return problems(all).err()
}
