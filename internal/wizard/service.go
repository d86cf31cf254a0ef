// internal/wizard/service.go
package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"platform-finder/internal/common/errors"
	"platform-finder/internal/common/metrics"
	"platform-finder/internal/models"
)

// Service drives sessions through the wizard on top of a Store.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Submit applies one step's JSON payload. An empty sessionID starts a new
// session, which must begin at step 1.
func (s *Service) Submit(ctx context.Context, sessionID string, step int, payload []byte) (*Session, error) {
	var session *Session
	if sessionID == "" {
		if step != 1 {
			return nil, errors.NewInvalidWizardAnswersError(fmt.Sprintf("a new session must start at step 1, got step %d", step))
		}
		session = NewSession(s.now())
		metrics.WizardSessionEvents.WithLabelValues("created").Inc()
	} else {
		loaded, err := s.store.Load(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		session = loaded
	}

	if err := apply(session, step, payload, s.now()); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	event := "step"
	if session.Completed() {
		event = "completed"
	}
	metrics.WizardSessionEvents.WithLabelValues(event).Inc()
	return session, nil
}

// Answers consumes a completed session and returns its merged answers.
func (s *Service) Answers(ctx context.Context, sessionID string) (models.WizardAnswers, error) {
	session, err := s.store.Consume(ctx, sessionID)
	if err != nil {
		return models.WizardAnswers{}, err
	}
	return session.Complete()
}

func apply(session *Session, step int, payload []byte, now time.Time) error {
	switch step {
	case 1:
		var in models.WizardStep1
		if err := decodeStep(payload, &in); err != nil {
			return err
		}
		return session.ApplyStep1(in, now)
	case 2:
		var in models.WizardStep2
		if err := decodeStep(payload, &in); err != nil {
			return err
		}
		return session.ApplyStep2(in, now)
	case 3:
		var in models.WizardStep3
		if err := decodeStep(payload, &in); err != nil {
			return err
		}
		return session.ApplyStep3(in, now)
	default:
		return errors.NewInvalidWizardAnswersError(fmt.Sprintf("unknown step %d", step))
	}
}

func decodeStep(payload []byte, v interface{}) error {
	if len(payload) == 0 {
		return errors.NewInvalidWizardAnswersError("step payload is empty")
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return errors.NewInvalidWizardAnswersError(fmt.Sprintf("step payload: %v", err))
	}
	return nil
}
