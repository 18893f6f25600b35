package sites

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patchTarget(t *testing.T) *Site {
	t.Helper()
	return testAssembler().Assemble(acmeSettings(), "tech-reviews", acmeTheme(t), GeneratedContent{})
}

func strPtr(s string) *string { return &s }

func TestApplyPatchSettings(t *testing.T) {
	site := patchTarget(t)
	later := testInstant.Add(time.Hour)

	err := ApplyPatch(site, SitePatch{
		Settings: &SettingsPatch{
			Description:  strPtr("new description"),
			PrimaryColor: strPtr("#000000"),
		},
	}, later)
	require.NoError(t, err)

	assert.Equal(t, "new description", site.Settings.Description)
	assert.Equal(t, "#000000", site.Settings.PrimaryColor)
	assert.Equal(t, "Acme Reviews", site.Settings.SiteName, "untouched fields keep their values")
	assert.Equal(t, "tech", site.Settings.Niche)
	assert.Equal(t, later, site.UpdatedAt)
	assert.Equal(t, testInstant, site.CreatedAt)
}

func TestApplyPatchStatus(t *testing.T) {
	site := patchTarget(t)

	require.NoError(t, ApplyPatch(site, SitePatch{Status: strPtr(StatusPublished)}, testInstant))
	assert.Equal(t, StatusPublished, site.Status)

	err := ApplyPatch(site, SitePatch{Status: strPtr("archived")}, testInstant)
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, StatusPublished, site.Status, "invalid patch leaves the site untouched")
}

func TestApplyPatchPagesReplacement(t *testing.T) {
	site := patchTarget(t)
	pages := append([]Page(nil), site.Pages...)
	pages[1].Title = "About Us"

	require.NoError(t, ApplyPatch(site, SitePatch{Pages: pages}, testInstant))
	assert.Equal(t, "About Us", site.Pages[1].Title)
}

func TestApplyPatchRejectsDuplicatePages(t *testing.T) {
	site := patchTarget(t)
	before := len(site.Pages)

	dupSlug := append([]Page(nil), site.Pages...)
	dupSlug[1].Slug = dupSlug[0].Slug
	assert.ErrorIs(t, ApplyPatch(site, SitePatch{Pages: dupSlug}, testInstant), ErrDuplicatePage)

	dupID := append([]Page(nil), site.Pages...)
	dupID[1].ID = dupID[0].ID
	assert.ErrorIs(t, ApplyPatch(site, SitePatch{Pages: dupID}, testInstant), ErrDuplicatePage)

	assert.Len(t, site.Pages, before)
}

func TestApplyPatchEmptyIsTimestampOnly(t *testing.T) {
	site := patchTarget(t)
	later := testInstant.Add(time.Minute)

	require.NoError(t, ApplyPatch(site, SitePatch{}, later))
	assert.Equal(t, later, site.UpdatedAt)
	assert.Equal(t, StatusDraft, site.Status)
}
