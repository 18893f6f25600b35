package sites

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testInstant = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testAssembler() Assembler {
	return Assembler{
		Now:   func() time.Time { return testInstant },
		Token: func() string { return "1700000000000" },
	}
}

func acmeSettings() Settings {
	return Settings{SiteName: "Acme Reviews", Niche: "tech"}
}

func acmeTheme(t *testing.T) Theme {
	t.Helper()
	theme, err := ResolveTemplate("tech-reviews", acmeSettings())
	require.NoError(t, err)
	return theme
}

func assertSitePostconditions(t *testing.T, site *Site) {
	t.Helper()
	require.GreaterOrEqual(t, len(site.Pages), 2)
	assert.Equal(t, "home", site.Pages[0].ID)

	ids := make(map[string]bool)
	slugs := make(map[string]bool)
	for _, p := range site.Pages {
		assert.False(t, ids[p.ID], "duplicate page id %s", p.ID)
		assert.False(t, slugs[p.Slug], "duplicate slug %s", p.Slug)
		ids[p.ID] = true
		slugs[p.Slug] = true

		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.SEOTitle)
		assert.NotEmpty(t, p.SEODescription)
	}
}

func TestAssembleFallbackCompleteness(t *testing.T) {
	site := testAssembler().Assemble(acmeSettings(), "tech-reviews", acmeTheme(t), GeneratedContent{})

	assertSitePostconditions(t, site)
	require.Len(t, site.Pages, 2)

	var home HomeContent
	require.NoError(t, json.Unmarshal(site.Pages[0].Content, &home))
	assert.Equal(t, "Welcome to Acme Reviews", home.Hero.Headline)
	assert.NotEmpty(t, home.Hero.Description)

	about := site.Pages[1]
	assert.Equal(t, "about", about.ID)
	assert.Equal(t, "/about", about.Slug)
	assert.NotEmpty(t, about.Content)

	require.Len(t, site.Navigation, 4)
	assert.Equal(t, []NavLink{
		{Title: "Home", URL: "/"},
		{Title: "Reviews", URL: "/reviews"},
		{Title: "About", URL: "/about"},
		{Title: "Contact", URL: "/contact"},
	}, site.Navigation)

	assert.Equal(t, DefaultPrimaryColor, site.Settings.Theme.PrimaryColor)
	assert.Equal(t, "© 2024 Acme Reviews. All rights reserved.", site.Footer.Copyright)
	assert.NotNil(t, site.Footer.Links)
	assert.Len(t, site.Footer.Links, 0)

	assert.Equal(t, StatusDraft, site.Status)
	assert.Equal(t, Analytics{}, site.Analytics)
	assert.Equal(t, testInstant, site.CreatedAt)
	assert.Equal(t, testInstant, site.UpdatedAt)
}

func TestAssemblePartialGeneratorSuccess(t *testing.T) {
	content := Normalize(Ok(`{"reviews":[{"title":"Widget X"}]}`))
	site := testAssembler().Assemble(acmeSettings(), "tech-reviews", acmeTheme(t), content)

	assertSitePostconditions(t, site)
	require.Len(t, site.Pages, 3)

	review := site.Pages[2]
	assert.Equal(t, "review-1", review.ID)
	assert.Equal(t, "Widget X", review.Title)
	assert.Equal(t, "/reviews/widget-x", review.Slug)

	var body map[string]any
	require.NoError(t, json.Unmarshal(review.Content, &body))
	assert.Equal(t, "", body["bottomLine"], "missing bottom line resolves to empty string, never null")
	assert.Equal(t, "4.5/5", body["rating"])
	assert.Equal(t, []any{}, body["pros"])
	assert.Equal(t, []any{}, body["cons"])
}

func TestAssembleSlugDeduplication(t *testing.T) {
	content := GeneratedContent{Reviews: []Review{
		{Title: "Best Widget!"},
		{Title: "best widget"},
		{Title: "Best?? Widget"},
	}}
	site := testAssembler().Assemble(acmeSettings(), "tech-reviews", acmeTheme(t), content)

	assertSitePostconditions(t, site)
	assert.Equal(t, "/reviews/best-widget", site.Pages[2].Slug)
	assert.Equal(t, "/reviews/best-widget-2", site.Pages[3].Slug)
	assert.Equal(t, "/reviews/best-widget-3", site.Pages[4].Slug)
}

func TestAssembleUntitledReviews(t *testing.T) {
	content := GeneratedContent{Reviews: []Review{
		{Outline: "first"},
		{Title: "!!!", Outline: "second"},
	}}
	site := testAssembler().Assemble(acmeSettings(), "tech-reviews", acmeTheme(t), content)

	assertSitePostconditions(t, site)
	assert.Equal(t, "Product Review 1", site.Pages[2].Title)
	assert.Equal(t, "/reviews/product-1", site.Pages[2].Slug)
	assert.Equal(t, "/reviews/product-2", site.Pages[3].Slug)
}

func TestAssembleDomainDeterminism(t *testing.T) {
	a := testAssembler()
	first := a.Assemble(acmeSettings(), "tech-reviews", acmeTheme(t), GeneratedContent{})
	second := a.Assemble(acmeSettings(), "tech-reviews", acmeTheme(t), GeneratedContent{})

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Domain, second.Domain)
	assert.Equal(t, "acme-reviews-1700000000000", first.ID)
	assert.Equal(t, "acme-reviews-1700000.affiliateforge.site", first.Domain)
}

func TestAssembleIDNeverEmpty(t *testing.T) {
	settings := Settings{SiteName: "!!!"}
	theme := Theme{PrimaryColor: DefaultPrimaryColor, Font: DefaultFont, Layout: "tech-reviews"}
	site := testAssembler().Assemble(settings, "tech-reviews", theme, GeneratedContent{})

	assert.Equal(t, "site-1700000000000", site.ID)
	assert.NotEmpty(t, site.Domain)
}

func TestAssembleUsesGeneratedContent(t *testing.T) {
	content := Normalize(Ok(`{
		"homepage": {"headline": "Gen Headline", "description": "gen desc"},
		"about": {"intro": "gen intro", "mission": "m", "team": "t"},
		"navigation": [{"title": "Start", "url": "/start"}],
		"footer": {"copyright": "custom", "links": []},
		"seo": {"homeTitle": "SEO Home", "homeDescription": "SEO Desc"}
	}`))
	site := testAssembler().Assemble(acmeSettings(), "tech-reviews", acmeTheme(t), content)

	assertSitePostconditions(t, site)

	var home Homepage
	require.NoError(t, json.Unmarshal(site.Pages[0].Content, &home))
	assert.Equal(t, "Gen Headline", home.Headline)
	assert.Equal(t, "SEO Home", site.Pages[0].SEOTitle)
	assert.Equal(t, "SEO Desc", site.Pages[0].SEODescription)

	var about About
	require.NoError(t, json.Unmarshal(site.Pages[1].Content, &about))
	assert.Equal(t, "gen intro", about.Intro)

	assert.Equal(t, []NavLink{{Title: "Start", URL: "/start"}}, site.Navigation)
	assert.Equal(t, "custom", site.Footer.Copyright)
}

// Totality: for any generator outcome, normalize-then-assemble yields a
// site satisfying every postcondition.
func TestAssembleTotality(t *testing.T) {
	outputs := []RawResult{
		Unavailable("down"),
		Ok(""),
		Ok("not json at all"),
		Ok("{}"),
		Ok(`{"homepage": 1, "about": [], "reviews": "x", "navigation": {}, "footer": 2, "seo": []}`),
		Ok(`{"reviews":[{"title":"A"},{"title":"A"},"garbage",{"title":"B","rating":5}]}`),
	}
	for i, raw := range outputs {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			site := testAssembler().Assemble(acmeSettings(), "tech-reviews", acmeTheme(t), Normalize(raw))
			assertSitePostconditions(t, site)
		})
	}
}
