package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"offhire-sms-gateway/internal/config"
	"offhire-sms-gateway/internal/journey"
	"offhire-sms-gateway/internal/themes"
)

// SiteHandler serves the static catalogs the UI renders: brand themes and the
// offhire journey.
type SiteHandler struct {
	Config *config.Config
}

func NewSiteHandler(cfg *config.Config) *SiteHandler {
	return &SiteHandler{Config: cfg}
}

func (h *SiteHandler) GetThemes(c *gin.Context) {
	c.JSON(http.StatusOK, themes.Brands())
}

// GetTheme returns one brand's CSS variables, falling back to the configured
// default brand for unknown ids.
func (h *SiteHandler) GetTheme(c *gin.Context) {
	theme, ok := themes.Get(c.Param("brand"))
	if !ok {
		theme, ok = themes.Get(h.Config.DefaultBrand)
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
		return
	}

	c.JSON(http.StatusOK, theme)
}

func (h *SiteHandler) GetJourney(c *gin.Context) {
	c.JSON(http.StatusOK, journey.Nodes())
}
