// internal/wizard/session.go
package wizard

import (
	"fmt"
	"time"

	"platform-finder/internal/common/errors"
	"platform-finder/internal/models"

	"github.com/google/uuid"
)

// Steps is the number of questionnaire steps.
const Steps = 3

// Session accumulates answers across the three wizard steps. Step counts
// the steps applied so far; re-applying an earlier step rewinds it, so the
// later steps must be confirmed again.
type Session struct {
	ID        string               `json:"id"`
	Step      int                  `json:"step"`
	Answers   models.WizardAnswers `json:"answers"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

func NewSession(now time.Time) *Session {
	now = now.UTC()
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NextStep is the step the visitor should see next, or 0 once complete.
func (s *Session) NextStep() int {
	if s.Step >= Steps {
		return 0
	}
	return s.Step + 1
}

func (s *Session) Completed() bool {
	return s.Step >= Steps
}

func (s *Session) checkOrder(step int) error {
	if step > s.Step+1 {
		return errors.NewInvalidWizardAnswersError(
			fmt.Sprintf("step %d submitted before step %d", step, s.Step+1))
	}
	return nil
}

func (s *Session) ApplyStep1(step models.WizardStep1, now time.Time) error {
	if err := ValidateStep1(&step); err != nil {
		return err
	}
	s.Answers.WizardStep1 = step
	s.advance(1, now)
	return nil
}

func (s *Session) ApplyStep2(step models.WizardStep2, now time.Time) error {
	if err := s.checkOrder(2); err != nil {
		return err
	}
	if err := ValidateStep2(&step); err != nil {
		return err
	}
	s.Answers.WizardStep2 = step
	s.advance(2, now)
	return nil
}

func (s *Session) ApplyStep3(step models.WizardStep3, now time.Time) error {
	if err := s.checkOrder(3); err != nil {
		return err
	}
	if err := ValidateStep3(&step); err != nil {
		return err
	}
	s.Answers.WizardStep3 = step
	s.advance(3, now)
	return nil
}

func (s *Session) advance(step int, now time.Time) {
	s.Step = step
	s.UpdatedAt = now.UTC()
}

// Complete returns the merged answers once all steps are applied.
func (s *Session) Complete() (models.WizardAnswers, error) {
	if !s.Completed() {
		return models.WizardAnswers{}, errors.NewInvalidWizardAnswersError(
			fmt.Sprintf("wizard incomplete: step %d of %d", s.Step, Steps))
	}
	return s.Answers, nil
}
