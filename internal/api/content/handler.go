package contentapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"affiliateforge/internal/domain/sites"
)

// Completer is the slice of the AI client this endpoint needs.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) sites.RawResult
}

// Handler serves ad-hoc copy generation for the builder UI. Unlike the
// site pipeline, this endpoint has no fallback to degrade to, so a
// generator failure is surfaced to the caller.
type Handler struct {
	AI Completer
}

type GenerateContentRequest struct {
	Prompt      string `json:"prompt"`
	ContentType string `json:"contentType"`
	Niche       string `json:"niche"`
	Tone        string `json:"tone"`
}

// POST /api/generate-content
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Prompt == "" || req.ContentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters: prompt and contentType"})
		return
	}

	raw := h.AI.Complete(c.Request.Context(), systemPrompt(req), req.Prompt)
	if !raw.OK {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate content. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"content": raw.Text,
		"metadata": gin.H{
			"contentType": req.ContentType,
			"niche":       req.Niche,
			"tone":        req.Tone,
			"wordCount":   len(strings.Fields(raw.Text)),
		},
	})
}

func systemPrompt(req GenerateContentRequest) string {
	return fmt.Sprintf(`You are an expert affiliate marketing content writer. Create high-converting, SEO-optimized content for affiliate websites.

Content Type: %s
Niche: %s
Tone: %s

Guidelines:
- Write compelling, trustworthy content that builds authority
- Include natural calls-to-action without being overly salesy
- Optimize for search engines with relevant keywords
- Focus on providing value to readers
- Use the specified tone consistently
- Format content appropriately (HTML for web content, plain text for meta descriptions, etc.)

Generate content that helps affiliate marketers convert visitors into customers while maintaining credibility and trust.`,
		req.ContentType,
		valueOr(req.Niche, "general"),
		valueOr(req.Tone, "professional"),
	)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
