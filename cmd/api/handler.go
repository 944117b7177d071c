package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mailtriage-backend/internal/analysis/delivery"
	"mailtriage-backend/internal/analysis/usecase"
	"mailtriage-backend/pkg/ai"
	"mailtriage-backend/pkg/config"
	"mailtriage-backend/pkg/metrics"
)

type Handler struct {
	analysisHandler *delivery.AnalysisHandler
	config          *config.Config
	log             zerolog.Logger
}

// NewHandler wires the AI strategies and the analysis pipeline. When the AI
// integration cannot be initialized the server still starts; the analysis
// endpoint answers 503 until restart.
func NewHandler(cfg *config.Config, log zerolog.Logger) *Handler {
	// Initialize runtime config for the settings API
	InitRuntimeConfig(cfg.InferenceBaseURL, cfg.InferenceModel)

	services, err := ai.NewServices(ai.Config{
		Provider:            ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:        cfg.GeminiAPIKey,
		GeminiModel:         cfg.GeminiModel,
		GetInferenceBaseURL: GetRuntimeInferenceBaseURL,
		GetInferenceModel:   GetRuntimeInferenceModel,
		Timeout:             cfg.AITimeout,
		Logger:              log,
	})

	var classifier ai.Classifier
	var responder ai.ReplyGenerator
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize AI service; analysis requests will return 503")
	} else {
		classifier = services.Classifier
		responder = services.Responder
		log.Info().Str("provider", cfg.AIProvider).Msg("AI service initialized")
	}

	analysisUc := usecase.NewAnalysisUsecase(classifier, responder, log)

	return &Handler{
		analysisHandler: delivery.NewAnalysisHandler(analysisUc, log),
		config:          cfg,
		log:             log,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(h.corsMiddleware())
	r.Use(metricsMiddleware())

	SetupRoutes(r, h.analysisHandler)

	return r.Run(addr)
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	allowed := make(map[string]bool, len(h.config.AllowedOrigins))
	for _, o := range h.config.AllowedOrigins {
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
