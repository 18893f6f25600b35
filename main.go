package main

import (
	"log"
	"time"

	"affiliateforge/config"
	"affiliateforge/database"
	contentapi "affiliateforge/internal/api/content"
	linksapi "affiliateforge/internal/api/links"
	sitesapi "affiliateforge/internal/api/sites"
	routes "affiliateforge/internal/app/http"
	"affiliateforge/internal/domain/sites"
	"affiliateforge/internal/infra/ai"
	"affiliateforge/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	var siteStore store.SiteStore
	var linkStore store.LinkStore
	if config.DB_URL != "" {
		db, err := database.Open(config.DB_URL)
		if err != nil {
			logger.Fatal("database unavailable", zap.Error(err))
		}
		siteStore = store.NewGormSites(db)
		linkStore = store.NewGormLinks(db)
	} else {
		logger.Info("DB_URL not set, using in-memory stores")
		siteStore = store.NewMemorySites()
		linkStore = store.NewMemoryLinks()
	}

	aiClient := ai.NewClient(ai.Config{
		BaseURL:    config.AI_BASE_URL,
		APIKey:     config.AI_API_KEY,
		CustomerID: config.AI_CUSTOMER_ID,
		Model:      config.AI_MODEL,
		Timeout:    config.AI_TIMEOUT,
	}, logger)

	pipeline := &sites.Pipeline{
		Generator: aiClient,
		Store:     siteStore,
		Logger:    logger,
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Sites:   &sitesapi.Handler{Pipeline: pipeline, Store: siteStore},
		Links:   &linksapi.Handler{Store: linkStore},
		Content: &contentapi.Handler{AI: aiClient},
	})

	r.Run(":" + config.PORT)
}
