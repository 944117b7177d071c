package dto

import (
	"mime/multipart"
	"time"

	"mailtriage-backend/internal/analysis/domain"
)

type ProcessEmailRequest struct {
	EmailText     string                `form:"email_text"`
	EmailFile     *multipart.FileHeader `form:"email_file"`
	Context       string                `form:"context"`
	ForceResponse bool                  `form:"force_response"`
}

type ClassificationPayload struct {
	Category     string   `json:"category"`
	IsProductive bool     `json:"is_productive"`
	Confidence   *float64 `json:"confidence,omitempty"`
}

type ReplyPayload struct {
	Generated bool    `json:"generated"`
	Message   string  `json:"message"`
	Text      *string `json:"text"`
}

type AnalysisResponse struct {
	Success        bool                  `json:"success"`
	Text           string                `json:"text"`
	Classification ClassificationPayload `json:"classification"`
	Response       ReplyPayload          `json:"response"`
	Timestamp      string                `json:"timestamp"`
}

func NewAnalysisResponse(r *domain.AnalysisResult) AnalysisResponse {
	return AnalysisResponse{
		Success: true,
		Text:    r.Text,
		Classification: ClassificationPayload{
			Category:     string(r.Classification.Category),
			IsProductive: r.Classification.Category.IsProductive(),
			Confidence:   r.Classification.Confidence,
		},
		Response: ReplyPayload{
			Generated: r.Response.Generated,
			Message:   r.Response.Message,
			Text:      r.Response.Text,
		},
		Timestamp: r.Timestamp.Format(time.RFC3339),
	}
}
