package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// RuntimeConfig holds runtime-configurable inference settings
type RuntimeConfig struct {
	InferenceBaseURL string `json:"inference_base_url"`
	InferenceModel   string `json:"inference_model,omitempty"`
}

var (
	runtimeConfig     RuntimeConfig
	runtimeConfigLock sync.RWMutex
)

// InitRuntimeConfig initializes runtime config from static config
func InitRuntimeConfig(inferenceBaseURL, inferenceModel string) {
	runtimeConfigLock.Lock()
	defer runtimeConfigLock.Unlock()
	runtimeConfig = RuntimeConfig{
		InferenceBaseURL: inferenceBaseURL,
		InferenceModel:   inferenceModel,
	}
}

// GetRuntimeInferenceBaseURL returns the current inference server base URL
func GetRuntimeInferenceBaseURL() string {
	runtimeConfigLock.RLock()
	defer runtimeConfigLock.RUnlock()
	return runtimeConfig.InferenceBaseURL
}

// GetRuntimeInferenceModel returns the current inference model
func GetRuntimeInferenceModel() string {
	runtimeConfigLock.RLock()
	defer runtimeConfigLock.RUnlock()
	return runtimeConfig.InferenceModel
}

// UpdateInferenceSettingsRequest represents the request body for updating inference settings
type UpdateInferenceSettingsRequest struct {
	InferenceBaseURL string `json:"inference_base_url" binding:"required"`
	InferenceModel   string `json:"inference_model,omitempty"`
}

// GetInferenceSettings returns current inference configuration
// GET /api/settings/inference
func GetInferenceSettings(c *gin.Context) {
	runtimeConfigLock.RLock()
	defer runtimeConfigLock.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"inference_base_url": runtimeConfig.InferenceBaseURL,
		"inference_model":    runtimeConfig.InferenceModel,
	})
}

// UpdateInferenceSettings updates inference configuration at runtime
// PUT /api/settings/inference
func UpdateInferenceSettings(c *gin.Context) {
	var req UpdateInferenceSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runtimeConfigLock.Lock()
	runtimeConfig.InferenceBaseURL = req.InferenceBaseURL
	if req.InferenceModel != "" {
		runtimeConfig.InferenceModel = req.InferenceModel
	}
	runtimeConfigLock.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"message":            "inference settings updated successfully",
		"inference_base_url": req.InferenceBaseURL,
		"inference_model":    GetRuntimeInferenceModel(),
	})
}

// TestInferenceConnection tests if the inference server is reachable
// POST /api/settings/inference/test
func TestInferenceConnection(c *gin.Context) {
	var req struct {
		InferenceBaseURL string `json:"inference_base_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		// If no body provided, use current config
		req.InferenceBaseURL = GetRuntimeInferenceBaseURL()
	}
	if req.InferenceBaseURL == "" {
		req.InferenceBaseURL = GetRuntimeInferenceBaseURL()
	}

	resp, err := http.Get(req.InferenceBaseURL + "/health")
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"connected": false,
			"error":     err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"connected":   false,
			"status_code": resp.StatusCode,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"connected":          true,
		"inference_base_url": req.InferenceBaseURL,
	})
}
