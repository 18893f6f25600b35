package store

import (
	"context"
	"errors"

	"affiliateforge/internal/domain/links"
	"affiliateforge/internal/domain/sites"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicateID = errors.New("duplicate id")
)

// SiteStore persists site aggregates. Insert is atomic with respect to
// id uniqueness; Update applies a typed patch and re-checks the
// per-site invariants before committing.
type SiteStore interface {
	Insert(ctx context.Context, site *sites.Site) error
	Get(ctx context.Context, id string) (*sites.Site, error)
	List(ctx context.Context) ([]*sites.Site, error)
	Update(ctx context.Context, id string, patch sites.SitePatch) (*sites.Site, error)
}

// LinkStore persists affiliate links.
type LinkStore interface {
	Insert(ctx context.Context, link *links.Link) error
	List(ctx context.Context) ([]*links.Link, error)
	Update(ctx context.Context, id string, patch links.Patch) (*links.Link, error)
	Delete(ctx context.Context, id string) error
}
