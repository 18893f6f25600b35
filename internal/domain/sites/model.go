package sites

import (
	"encoding/json"
	"time"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Settings is the user input for a site-generation call. Immutable once
// it enters the pipeline.
type Settings struct {
	SiteName     string `json:"siteName"`
	Description  string `json:"description"`
	Niche        string `json:"niche"`
	PrimaryColor string `json:"primaryColor"`
}

type Theme struct {
	PrimaryColor string `json:"primaryColor"`
	Font         string `json:"font"`
	Layout       string `json:"layout"`
}

// SiteSettings is the copy of Settings stored on the site, plus the
// resolved theme.
type SiteSettings struct {
	SiteName     string `json:"siteName"`
	Description  string `json:"description"`
	Niche        string `json:"niche"`
	PrimaryColor string `json:"primaryColor"`
	Theme        Theme  `json:"theme"`
}

type NavLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type Footer struct {
	Copyright string    `json:"copyright"`
	Links     []NavLink `json:"links"`
}

type Analytics struct {
	Views       int64   `json:"views"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

// Page is one addressable content unit inside a site. Content is an
// opaque payload whose shape depends on the page kind.
type Page struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Slug           string          `json:"slug"`
	Content        json.RawMessage `json:"content"`
	SEOTitle       string          `json:"seoTitle"`
	SEODescription string          `json:"seoDescription"`
	IsPublished    bool            `json:"isPublished"`
}

// Site is the aggregate content model for one generated affiliate
// website. It is created fully formed by the Assembler; later edits go
// through ApplyPatch.
type Site struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Template   string       `json:"template"`
	Domain     string       `json:"domain"`
	Settings   SiteSettings `json:"settings"`
	Pages      []Page       `json:"pages"`
	Navigation []NavLink    `json:"navigation"`
	Footer     Footer       `json:"footer"`
	Status     string       `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
	Analytics  Analytics    `json:"analytics"`
}

// Payload shapes marshaled into Page.Content when the generator did not
// supply its own.

type Hero struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
	CTA         string `json:"cta"`
}

type HomeContent struct {
	Hero     Hero     `json:"hero"`
	Features []string `json:"features"`
}

type ReviewContent struct {
	Title      string   `json:"title"`
	Outline    string   `json:"outline"`
	Rating     string   `json:"rating"`
	Pros       []string `json:"pros"`
	Cons       []string `json:"cons"`
	BottomLine string   `json:"bottomLine"`
}
