package linksapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"affiliateforge/internal/domain/links"
	"affiliateforge/internal/store"
)

type Handler struct {
	Store store.LinkStore
}

// GET /api/affiliate-links?category=&limit=&page=
func (h *Handler) List(c *gin.Context) {
	all, err := h.Store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch affiliate links"})
		return
	}

	category := c.Query("category")
	limit := intQuery(c, "limit", 10)
	page := intQuery(c, "page", 1)

	filtered := all
	if category != "" && category != "all" {
		filtered = make([]*links.Link, 0, len(all))
		for _, l := range all {
			if strings.EqualFold(l.Category, category) {
				filtered = append(filtered, l)
			}
		}
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	totalPages := (len(filtered) + limit - 1) / limit

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": ListLinksResponse{
			Links: filtered[start:end],
			Pagination: PaginationDTO{
				Current: page,
				Total:   totalPages,
				HasNext: end < len(filtered),
				HasPrev: page > 1,
			},
			// Stats cover the whole collection, not the filtered page.
			Stats: links.Summarize(all),
		},
	})
}

// POST /api/affiliate-links
func (h *Handler) Create(c *gin.Context) {
	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	link, err := links.New(req.Title, req.OriginalURL, req.Category, req.Description, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.Insert(c.Request.Context(), link); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create affiliate link"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    link,
		"message": "Affiliate link created successfully",
	})
}

// PUT /api/affiliate-links/:id
func (h *Handler) Update(c *gin.Context) {
	var patch links.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	link, err := h.Store.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Affiliate link not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update affiliate link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    link,
		"message": "Affiliate link updated successfully",
	})
}

// DELETE /api/affiliate-links/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.Store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Affiliate link not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete affiliate link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Affiliate link deleted successfully",
	})
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(fallback)))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
