package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"offhire-sms-gateway/internal/iterable"
)

type ListHandler struct {
	Gateway iterable.Gateway
}

func NewListHandler(gateway iterable.Gateway) *ListHandler {
	return &ListHandler{Gateway: gateway}
}

// GetLists passes the remote contact lists through to the UI.
func (h *ListHandler) GetLists(c *gin.Context) {
	lists, err := h.Gateway.GetLists()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "lists": lists})
}
