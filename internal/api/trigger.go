package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"offhire-sms-gateway/internal/csvimport"
	"offhire-sms-gateway/internal/upload"
)

type TriggerHandler struct {
	Orchestrator *upload.Orchestrator
	Log          *zap.SugaredLogger
}

func NewTriggerHandler(orchestrator *upload.Orchestrator, log *zap.SugaredLogger) *TriggerHandler {
	return &TriggerHandler{Orchestrator: orchestrator, Log: log}
}

type TriggerRequest struct {
	Users []csvimport.Row `json:"users"`
}

// TriggerWorkflow runs the legacy per-user workflow path: one remote call per
// row, every row attempted, counts aggregated.
func (h *TriggerHandler) TriggerWorkflow(c *gin.Context) {
	h.trigger(c, "workflow", h.Orchestrator.TriggerWorkflow)
}

// TriggerCampaign is the per-user campaign equivalent.
func (h *TriggerHandler) TriggerCampaign(c *gin.Context) {
	h.trigger(c, "campaign", h.Orchestrator.TriggerCampaign)
}

func (h *TriggerHandler) trigger(c *gin.Context, kind string, run func(int64, []csvimport.Row) (upload.TriggerResult, error)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + kind + " id"})
		return
	}

	var req TriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := run(id, req.Users)
	if err != nil {
		var validationErr *upload.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "Triggers processed",
		"attempted": result.Attempted,
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
	})
}
