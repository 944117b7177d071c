package domain

import (
	"time"

	"mailtriage-backend/pkg/ai"
)

// AnalysisResult is the unit returned to the caller for one processed
// email. It has no persisted lifecycle: created, returned, discarded.
type AnalysisResult struct {
	ID             string
	Text           string
	Classification ai.Classification
	Response       ai.Reply
	Timestamp      time.Time
}
