package sites

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	hostingSuffix = ".affiliateforge.site"

	siteIDSlugMax  = 20
	domainLabelMax = 20

	// Used when the site name slugifies to nothing, so the id is
	// never empty.
	siteIDPlaceholder = "site"
)

// Assembler merges GeneratedContent with template defaults into a
// complete Site. Now and Token are injectable so tests can pin the
// assembly instant and the id uniqueness suffix; zero value uses the
// wall clock.
type Assembler struct {
	Now   func() time.Time
	Token func() string
}

func (a Assembler) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a Assembler) token() string {
	if a.Token != nil {
		return a.Token()
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// Assemble builds the final Site. It never fails on missing or partial
// content; that is exactly what it exists to absorb. Postconditions:
// at least home and about pages, home first, unique page ids and slugs,
// and non-empty title/seoTitle/seoDescription on every page.
func (a Assembler) Assemble(settings Settings, templateID string, theme Theme, content GeneratedContent) *Site {
	now := a.now()

	base := Slugify(settings.SiteName, siteIDSlugMax)
	if base == "" {
		base = siteIDPlaceholder
	}
	id := base + "-" + a.token()

	label := id
	if len(label) > domainLabelMax {
		label = label[:domainLabelMax]
	}
	domain := label + hostingSuffix

	slugs := newSlugSet()
	pages := []Page{
		a.homePage(settings, content, slugs),
		a.aboutPage(settings, content, slugs),
	}
	for i, rev := range content.Reviews {
		pages = append(pages, a.reviewPage(rev, i+1, slugs))
	}

	nav := content.Navigation
	if len(nav) == 0 {
		nav = defaultNavigation()
	}

	footer := Footer{
		Copyright: fmt.Sprintf("© %d %s. All rights reserved.", now.Year(), settings.SiteName),
		Links:     []NavLink{},
	}
	if content.Footer != nil {
		footer = *content.Footer
	}

	return &Site{
		ID:       id,
		Name:     settings.SiteName,
		Template: templateID,
		Domain:   domain,
		Settings: SiteSettings{
			SiteName:     settings.SiteName,
			Description:  settings.Description,
			Niche:        settings.Niche,
			PrimaryColor: settings.PrimaryColor,
			Theme:        theme,
		},
		Pages:      pages,
		Navigation: nav,
		Footer:     footer,
		Status:     StatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
		Analytics:  Analytics{},
	}
}

func (a Assembler) homePage(settings Settings, content GeneratedContent, slugs *slugSet) Page {
	var body json.RawMessage
	if content.Homepage != nil {
		body = mustJSON(content.Homepage)
	} else {
		body = mustJSON(HomeContent{
			Hero: Hero{
				Headline:    "Welcome to " + settings.SiteName,
				Description: firstNonEmpty(settings.Description, "Your trusted source for product recommendations and reviews"),
				CTA:         "Explore Our Reviews",
			},
			Features: []string{
				"Expert Reviews",
				"Detailed Comparisons",
				"Best Deals",
				"Trusted Recommendations",
			},
		})
	}

	seoTitle := settings.SiteName + " - Product Reviews & Recommendations"
	seoDescription := firstNonEmpty(settings.Description, "Find the best products with our expert reviews and comparisons")
	if content.SEO != nil {
		seoTitle = firstNonEmpty(content.SEO.HomeTitle, seoTitle)
		seoDescription = firstNonEmpty(content.SEO.HomeDescription, seoDescription)
	}

	return Page{
		ID:             "home",
		Title:          "Home",
		Slug:           slugs.claim("/"),
		Content:        body,
		SEOTitle:       seoTitle,
		SEODescription: seoDescription,
		IsPublished:    true,
	}
}

func (a Assembler) aboutPage(settings Settings, content GeneratedContent, slugs *slugSet) Page {
	var body json.RawMessage
	if content.About != nil {
		body = mustJSON(content.About)
	} else {
		body = mustJSON(About{
			Intro:   fmt.Sprintf("Welcome to %s! We're dedicated to helping you make informed purchasing decisions through honest, detailed product reviews.", settings.SiteName),
			Mission: "Our mission is to provide unbiased, comprehensive reviews that help you find the perfect products for your needs.",
			Team:    "Our team consists of experienced reviewers and industry experts who test products thoroughly before making recommendations.",
		})
	}

	return Page{
		ID:             "about",
		Title:          "About",
		Slug:           slugs.claim("/about"),
		Content:        body,
		SEOTitle:       fmt.Sprintf("About %s - Our Story & Mission", settings.SiteName),
		SEODescription: fmt.Sprintf("Learn about %s and our commitment to providing honest, helpful product reviews and recommendations.", settings.SiteName),
		IsPublished:    true,
	}
}

func (a Assembler) reviewPage(rev Review, n int, slugs *slugSet) Page {
	title := rev.Title
	if strings.TrimSpace(title) == "" {
		title = fmt.Sprintf("Product Review %d", n)
	}

	slug := Slugify(rev.Title, 0)
	if slug == "" {
		slug = fmt.Sprintf("product-%d", n)
	}

	body := mustJSON(ReviewContent{
		Title:      rev.Title,
		Outline:    rev.Outline,
		Rating:     firstNonEmpty(rev.Rating, "4.5/5"),
		Pros:       nonNil(rev.Pros),
		Cons:       nonNil(rev.Cons),
		BottomLine: rev.BottomLine,
	})

	return Page{
		ID:             fmt.Sprintf("review-%d", n),
		Title:          title,
		Slug:           slugs.claim("/reviews/" + slug),
		Content:        body,
		SEOTitle:       firstNonEmpty(rev.SEOTitle, title),
		SEODescription: firstNonEmpty(rev.SEODescription, "Read our detailed review of "+title),
		IsPublished:    true,
	}
}

func defaultNavigation() []NavLink {
	return []NavLink{
		{Title: "Home", URL: "/"},
		{Title: "Reviews", URL: "/reviews"},
		{Title: "About", URL: "/about"},
		{Title: "Contact", URL: "/contact"},
	}
}

// slugSet resolves slug collisions within one site by appending a
// numeric disambiguator until the slug is unique.
type slugSet struct {
	used map[string]bool
}

func newSlugSet() *slugSet {
	return &slugSet{used: make(map[string]bool)}
}

func (s *slugSet) claim(slug string) string {
	if !s.used[slug] {
		s.used[slug] = true
		return slug
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", slug, n)
		if !s.used[candidate] {
			s.used[candidate] = true
			return candidate
		}
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func mustJSON(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}
