package delivery

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mailtriage-backend/internal/analysis/dto"
	"mailtriage-backend/internal/analysis/usecase"
)

type AnalysisHandler struct {
	analysisUsecase usecase.AnalysisUsecase
	log             zerolog.Logger
}

func NewAnalysisHandler(analysisUsecase usecase.AnalysisUsecase, log zerolog.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisUsecase: analysisUsecase,
		log:             log,
	}
}

// ProcessEmail handles POST /api/process_email: form fields email_text,
// email_file, context and force_response.
func (h *AnalysisHandler) ProcessEmail(c *gin.Context) {
	var req dto.ProcessEmailRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.AnalyzeInput{
		Text:    req.EmailText,
		Context: req.Context,
		Force:   req.ForceResponse,
	}

	if req.EmailText == "" && req.EmailFile != nil {
		raw, err := readUpload(req.EmailFile)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
			return
		}
		input.FileBytes = raw
	}

	result, err := h.analysisUsecase.AnalyzeEmail(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "nenhum texto fornecido"})
		case errors.Is(err, usecase.ErrAIUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "serviço de IA indisponível"})
		default:
			h.log.Error().Err(err).Msg("email processing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "erro ao processar o e-mail"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewAnalysisResponse(result))
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
