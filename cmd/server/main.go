package main

import (
	"offhire-sms-gateway/internal/api"
	"offhire-sms-gateway/internal/config"
	"offhire-sms-gateway/internal/iterable"
	"offhire-sms-gateway/internal/logging"
	"offhire-sms-gateway/internal/upload"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewSugaredLogger()
	defer logger.Sync()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"POST", "GET", "PUT", "OPTIONS", "DELETE"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	client := iterable.NewClient(cfg)
	orchestrator := upload.NewOrchestrator(client, logger)

	uploadHandler := api.NewUploadHandler(orchestrator, logger)
	sendHandler := api.NewSendHandler(client, cfg, logger)
	templateHandler := api.NewTemplateHandler()
	triggerHandler := api.NewTriggerHandler(orchestrator, logger)
	listHandler := api.NewListHandler(client)
	siteHandler := api.NewSiteHandler(cfg)

	apiGroup := r.Group("/api", gin.BasicAuth(gin.Accounts{
		cfg.AuthUser: cfg.AuthPassword,
	}))
	{
		// Upload Routes
		apiGroup.POST("/upload-list", uploadHandler.UploadList)
		apiGroup.POST("/upload-csv", uploadHandler.UploadCSV)

		// Send Routes
		apiGroup.POST("/send-sms", sendHandler.SendSMS)

		// Template Routes
		apiGroup.GET("/templates", templateHandler.GetTemplates)
		apiGroup.GET("/templates/:id/preview", templateHandler.PreviewTemplate)
		apiGroup.POST("/preview", templateHandler.Preview)
		apiGroup.GET("/template.csv", templateHandler.DownloadTemplateCSV)

		// Remote List Routes
		apiGroup.GET("/lists", listHandler.GetLists)

		// Legacy Trigger Routes
		apiGroup.POST("/workflows/:id/trigger", triggerHandler.TriggerWorkflow)
		apiGroup.POST("/campaigns/:id/trigger", triggerHandler.TriggerCampaign)

		// UI Catalog Routes
		apiGroup.GET("/themes", siteHandler.GetThemes)
		apiGroup.GET("/themes/:brand", siteHandler.GetTheme)
		apiGroup.GET("/journey", siteHandler.GetJourney)
	}

	logger.Infof("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Failed to run server: %v", err)
	}
}
