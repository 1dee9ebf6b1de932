package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"offhire-sms-gateway/internal/csvimport"
	"offhire-sms-gateway/internal/sms"
)

type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// GetTemplates returns the static template catalog.
func (h *TemplateHandler) GetTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, sms.Templates())
}

// PreviewTemplate merges a catalog template with the sample data set and
// reports its segment cost.
func (h *TemplateHandler) PreviewTemplate(c *gin.Context) {
	id := sms.TemplateID(c.Param("id"))

	message, ok := sms.Preview(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      id,
		"message": message,
		"report":  sms.CountSegments(message),
	})
}

type PreviewRequest struct {
	TemplateID string      `json:"templateId"`
	Template   string      `json:"template"`
	Fields     sms.Context `json:"fields"`
}

// Preview resolves a template (by catalog id or as free text) against the
// supplied fields and returns the resolved message, the merge fields still
// unresolved, and the segment report.
func (h *TemplateHandler) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	body := req.Template
	if req.TemplateID != "" {
		t, ok := sms.Template(sms.TemplateID(req.TemplateID))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		body = t.Body
	}
	if body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Template is required"})
		return
	}

	resolved := sms.Merge(body, req.Fields)
	unresolved := sms.UnresolvedFields(body, req.Fields)
	if unresolved == nil {
		unresolved = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          resolved,
		"unresolvedFields": unresolved,
		"report":           sms.CountSegments(resolved),
	})
}

// DownloadTemplateCSV serves the fixed example upload file.
func (h *TemplateHandler) DownloadTemplateCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=offhire_template.csv")
	c.String(http.StatusOK, csvimport.TemplateCSV())
}
