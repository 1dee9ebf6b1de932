package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"offhire-sms-gateway/internal/csvimport"
	"offhire-sms-gateway/internal/upload"
)

type UploadHandler struct {
	Orchestrator *upload.Orchestrator
	Log          *zap.SugaredLogger
}

func NewUploadHandler(orchestrator *upload.Orchestrator, log *zap.SugaredLogger) *UploadHandler {
	return &UploadHandler{Orchestrator: orchestrator, Log: log}
}

type UploadListRequest struct {
	ListName string          `json:"listName"`
	Users    []csvimport.Row `json:"users"`
}

// UploadList accepts pre-parsed rows and drives the batch against the remote
// service.
func (h *UploadHandler) UploadList(c *gin.Context) {
	var req UploadListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	h.run(c, upload.Batch{ListName: req.ListName, Rows: req.Users})
}

// UploadCSV accepts the raw CSV file and parses it server-side before running
// the same batch pipeline.
func (h *UploadHandler) UploadCSV(c *gin.Context) {
	listName := c.PostForm("listName")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "CSV file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to read CSV file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to read CSV file"})
		return
	}

	rows, err := csvimport.Parse(string(data))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	h.run(c, upload.Batch{ListName: listName, Rows: rows})
}

func (h *UploadHandler) run(c *gin.Context, batch upload.Batch) {
	result, err := h.Orchestrator.Run(batch)
	if err != nil {
		var validationErr *upload.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": validationErr.Error()})
			return
		}

		// A step failure after list creation still reports the created list:
		// there is no rollback.
		resp := gin.H{"success": false, "error": err.Error()}
		var stepErr *upload.StepError
		if errors.As(err, &stepErr) && stepErr.ListID != 0 {
			resp["listId"] = stepErr.ListID
		}
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        result.Message,
		"listId":         result.ListID,
		"batchId":        result.BatchID,
		"usersProcessed": result.UsersProcessed,
	})
}
