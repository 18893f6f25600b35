package store

import (
	"context"
	"sync"
	"time"

	"affiliateforge/internal/domain/links"
	"affiliateforge/internal/domain/sites"
)

// MemorySites is the in-memory SiteStore used when no database is
// configured and by tests, which instantiate isolated stores instead of
// sharing a process-global collection. Newest sites first.
type MemorySites struct {
	mu    sync.RWMutex
	sites []*sites.Site
	byID  map[string]*sites.Site
}

func NewMemorySites() *MemorySites {
	return &MemorySites{byID: make(map[string]*sites.Site)}
}

func (m *MemorySites) Insert(_ context.Context, site *sites.Site) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byID[site.ID]; exists {
		return ErrDuplicateID
	}
	m.byID[site.ID] = site
	m.sites = append([]*sites.Site{site}, m.sites...)
	return nil
}

func (m *MemorySites) Get(_ context.Context, id string) (*sites.Site, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	site, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return site, nil
}

func (m *MemorySites) List(_ context.Context) ([]*sites.Site, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*sites.Site, len(m.sites))
	copy(out, m.sites)
	return out, nil
}

func (m *MemorySites) Update(_ context.Context, id string, patch sites.SitePatch) (*sites.Site, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	site, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := sites.ApplyPatch(site, patch, time.Now()); err != nil {
		return nil, err
	}
	return site, nil
}

// MemoryLinks is the in-memory LinkStore. Newest links first.
type MemoryLinks struct {
	mu    sync.RWMutex
	links []*links.Link
	byID  map[string]*links.Link
}

func NewMemoryLinks() *MemoryLinks {
	return &MemoryLinks{byID: make(map[string]*links.Link)}
}

func (m *MemoryLinks) Insert(_ context.Context, link *links.Link) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byID[link.ID]; exists {
		return ErrDuplicateID
	}
	m.byID[link.ID] = link
	m.links = append([]*links.Link{link}, m.links...)
	return nil
}

func (m *MemoryLinks) List(_ context.Context) ([]*links.Link, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*links.Link, len(m.links))
	copy(out, m.links)
	return out, nil
}

func (m *MemoryLinks) Update(_ context.Context, id string, patch links.Patch) (*links.Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	link, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	link.Apply(patch)
	return link, nil
}

func (m *MemoryLinks) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	for i, l := range m.links {
		if l.ID == id {
			m.links = append(m.links[:i], m.links[i+1:]...)
			break
		}
	}
	return nil
}
