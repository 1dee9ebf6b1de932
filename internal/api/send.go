package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"offhire-sms-gateway/internal/config"
	"offhire-sms-gateway/internal/iterable"
)

type SendHandler struct {
	Gateway iterable.Gateway
	Config  *config.Config
	Log     *zap.SugaredLogger
}

func NewSendHandler(gateway iterable.Gateway, cfg *config.Config, log *zap.SugaredLogger) *SendHandler {
	return &SendHandler{Gateway: gateway, Config: cfg, Log: log}
}

type SendRequest struct {
	Phone   string            `json:"phone"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// SendSMS dispatches one resolved message. Without an API key the send is
// simulated as successful so the tool stays usable as a demo; bulk paths do
// not get this fallback.
func (h *SendHandler) SendSMS(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Phone number is required"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Message is required"})
		return
	}

	if h.Config.IterableAPIKey == "" {
		h.Log.Infow("SMS demo send (no API key)", "phone", req.Phone)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "SMS queued (demo mode - no Iterable API key configured)",
			"demo":    true,
		})
		return
	}

	if err := h.Gateway.SendMessage(req.Phone, req.Message, req.Fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "SMS sent successfully via Iterable"})
}
