package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"affiliateforge/internal/domain/links"
	"affiliateforge/internal/domain/sites"
)

func demoSite(id string) *sites.Site {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &sites.Site{
		ID:     id,
		Name:   "Acme Reviews",
		Status: sites.StatusDraft,
		Pages: []sites.Page{
			{ID: "home", Title: "Home", Slug: "/", SEOTitle: "t", SEODescription: "d", IsPublished: true},
			{ID: "about", Title: "About", Slug: "/about", SEOTitle: "t", SEODescription: "d", IsPublished: true},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMemorySitesInsertAndGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemorySites()

	require.NoError(t, m.Insert(ctx, demoSite("acme-1")))

	got, err := m.Get(ctx, "acme-1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Reviews", got.Name)

	_, err = m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySitesInsertDuplicate(t *testing.T) {
	ctx := context.Background()
	m := NewMemorySites()

	require.NoError(t, m.Insert(ctx, demoSite("acme-1")))
	assert.ErrorIs(t, m.Insert(ctx, demoSite("acme-1")), ErrDuplicateID)
}

func TestMemorySitesListNewestFirst(t *testing.T) {
	ctx := context.Background()
	m := NewMemorySites()

	require.NoError(t, m.Insert(ctx, demoSite("first")))
	require.NoError(t, m.Insert(ctx, demoSite("second")))

	all, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].ID)
	assert.Equal(t, "first", all[1].ID)
}

func TestMemorySitesUpdate(t *testing.T) {
	ctx := context.Background()
	m := NewMemorySites()
	require.NoError(t, m.Insert(ctx, demoSite("acme-1")))

	status := sites.StatusPublished
	updated, err := m.Update(ctx, "acme-1", sites.SitePatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, sites.StatusPublished, updated.Status)

	got, err := m.Get(ctx, "acme-1")
	require.NoError(t, err)
	assert.Equal(t, sites.StatusPublished, got.Status)

	_, err = m.Update(ctx, "missing", sites.SitePatch{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySitesUpdateRejectsInvalidPatch(t *testing.T) {
	ctx := context.Background()
	m := NewMemorySites()
	require.NoError(t, m.Insert(ctx, demoSite("acme-1")))

	bad := "archived"
	_, err := m.Update(ctx, "acme-1", sites.SitePatch{Status: &bad})
	assert.ErrorIs(t, err, sites.ErrInvalidStatus)
}

func demoLink(t *testing.T, title string) *links.Link {
	t.Helper()
	link, err := links.New(title, "https://example.com/p", "Technology", "", time.Now())
	require.NoError(t, err)
	return link
}

func TestMemoryLinksCRUD(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryLinks()

	first := demoLink(t, "First")
	second := demoLink(t, "Second")
	require.NoError(t, m.Insert(ctx, first))
	require.NoError(t, m.Insert(ctx, second))

	all, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Second", all[0].Title, "newest first")

	inactive := false
	updated, err := m.Update(ctx, first.ID, links.Patch{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	require.NoError(t, m.Delete(ctx, first.ID))
	assert.ErrorIs(t, m.Delete(ctx, first.ID), ErrNotFound)

	all, err = m.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, second.ID, all[0].ID)
}
