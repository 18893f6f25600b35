package routes

import (
	contentapi "affiliateforge/internal/api/content"
	linksapi "affiliateforge/internal/api/links"
	sitesapi "affiliateforge/internal/api/sites"
	"affiliateforge/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Sites   *sitesapi.Handler
	Links   *linksapi.Handler
	Content *contentapi.Handler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.SanitizeAndCleanInputMiddleware())

	api.POST("/sites", d.Sites.GenerateSite)
	api.GET("/sites", d.Sites.ListSites)
	api.GET("/sites/:id", d.Sites.GetSite)
	api.PUT("/sites/:id", d.Sites.UpdateSite)

	api.GET("/affiliate-links", d.Links.List)
	api.POST("/affiliate-links", d.Links.Create)
	api.PUT("/affiliate-links/:id", d.Links.Update)
	api.DELETE("/affiliate-links/:id", d.Links.Delete)

	api.POST("/generate-content", d.Content.Generate)
}
