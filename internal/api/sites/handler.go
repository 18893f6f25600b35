package sitesapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"affiliateforge/internal/domain/sites"
	"affiliateforge/internal/store"
)

const (
	previewURLBase = "https://preview.affiliateforge.com/"
	editURLBase    = "https://affiliateforge.com/builder/"
)

type Handler struct {
	Pipeline *sites.Pipeline
	Store    store.SiteStore
}

// POST /api/sites
func (h *Handler) GenerateSite(c *gin.Context) {
	var req GenerateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	site, err := h.Pipeline.GenerateSite(c.Request.Context(), req.Template, req.Settings)
	if err != nil {
		if errors.Is(err, sites.ErrInvalidTemplate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters: template and siteName"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate site"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": GenerateSiteResponse{
			Site:       site,
			PreviewURL: previewURLBase + site.ID,
			EditURL:    editURLBase + site.ID,
		},
		"message": "Site generated successfully",
	})
}

// GET /api/sites
func (h *Handler) ListSites(c *gin.Context) {
	all, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sites"})
		return
	}

	out := make([]SiteSummaryDTO, 0, len(all))
	for _, s := range all {
		out = append(out, toSummaryDTO(s))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

// GET /api/sites/:id
func (h *Handler) GetSite(c *gin.Context) {
	site, err := h.Store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch site"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": site})
}

// PUT /api/sites/:id
func (h *Handler) UpdateSite(c *gin.Context) {
	var patch sites.SitePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	site, err := h.Store.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
		case errors.Is(err, sites.ErrDuplicatePage), errors.Is(err, sites.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update site"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    site,
		"message": "Site updated successfully",
	})
}
