// internal/workers/wizard/submit-wizard-step/models.go
package submitwizardstep

import "encoding/json"

type Input struct {
	SessionID string          `json:"sessionId"`
	Step      int             `json:"step"`
	Payload   json.RawMessage `json:"payload"`
}

type Output struct {
	SessionID      string `json:"sessionId"`
	CompletedSteps int    `json:"completedSteps"`
	NextStep       int    `json:"nextStep"`
	Complete       bool   `json:"complete"`
}
