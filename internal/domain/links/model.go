package links

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"affiliateforge/internal/domain/sites"
)

const shortURLBase = "https://affiliateforge.site/go/"

var (
	ErrMissingFields = errors.New("missing required fields: title, originalUrl, and category")
	ErrInvalidURL    = errors.New("invalid URL format")
)

// Link is one tracked affiliate link. Clicks/conversions/revenue are
// counters owned by the analytics collaborator after creation.
type Link struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	OriginalURL string    `json:"originalUrl"`
	ShortURL    string    `json:"shortUrl"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	Revenue     float64   `json:"revenue"`
	CreatedAt   time.Time `json:"createdAt"`
	IsActive    bool      `json:"isActive"`
}

// New validates the input and derives the tracked short URL from the
// title slug.
func New(title, originalURL, category, description string, now time.Time) (*Link, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(originalURL) == "" || strings.TrimSpace(category) == "" {
		return nil, ErrMissingFields
	}
	u, err := url.ParseRequestURI(originalURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidURL
	}

	slug := sites.Slugify(title, 50)
	if slug == "" {
		slug = "link"
	}

	return &Link{
		ID:          uuid.NewString(),
		Title:       title,
		OriginalURL: originalURL,
		ShortURL:    shortURLBase + slug,
		Category:    category,
		Description: description,
		CreatedAt:   now,
		IsActive:    true,
	}, nil
}

// Patch carries one optional field per mutable attribute.
type Patch struct {
	Title       *string `json:"title,omitempty"`
	OriginalURL *string `json:"originalUrl,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (l *Link) Apply(p Patch) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.OriginalURL != nil {
		l.OriginalURL = *p.OriginalURL
	}
	if p.Category != nil {
		l.Category = *p.Category
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.IsActive != nil {
		l.IsActive = *p.IsActive
	}
}

// Stats aggregates the whole collection for the dashboard.
type Stats struct {
	TotalLinks     int     `json:"totalLinks"`
	ActiveLinks    int     `json:"activeLinks"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	Revenue        float64 `json:"revenue"`
	ConversionRate string  `json:"conversionRate"`
}

func Summarize(all []*Link) Stats {
	s := Stats{TotalLinks: len(all), ConversionRate: "0.00"}
	for _, l := range all {
		if l.IsActive {
			s.ActiveLinks++
		}
		s.Clicks += l.Clicks
		s.Conversions += l.Conversions
		s.Revenue += l.Revenue
	}
	if s.Clicks > 0 {
		s.ConversionRate = fmt.Sprintf("%.2f", float64(s.Conversions)/float64(s.Clicks)*100)
	}
	return s
}
