package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"affiliateforge/internal/domain/links"
	"affiliateforge/internal/domain/sites"
)

// siteRecord stores the site aggregate as a jsonb document next to the
// few columns worth indexing. The document is the source of truth; the
// scalar columns are denormalized for listing.
type siteRecord struct {
	ID        string          `gorm:"primaryKey"`
	Name      string          `gorm:"not null"`
	Template  string          `gorm:"not null;index"`
	Status    string          `gorm:"not null;index"`
	Data      json.RawMessage `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (siteRecord) TableName() string { return "sites" }

type linkRecord struct {
	ID          string `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	OriginalURL string `gorm:"not null"`
	ShortURL    string `gorm:"not null"`
	Category    string `gorm:"not null;index"`
	Description string
	Clicks      int64   `gorm:"not null;default:0"`
	Conversions int64   `gorm:"not null;default:0"`
	Revenue     float64 `gorm:"not null;default:0"`
	CreatedAt   time.Time
	IsActive    bool `gorm:"not null;default:true"`
}

func (linkRecord) TableName() string { return "affiliate_links" }

// AutoMigrate creates the store tables. Called by database.Open.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&siteRecord{}, &linkRecord{})
}

// GormSites is the Postgres-backed SiteStore.
type GormSites struct {
	db *gorm.DB
}

func NewGormSites(db *gorm.DB) *GormSites {
	return &GormSites{db: db}
}

func (g *GormSites) Insert(ctx context.Context, site *sites.Site) error {
	rec, err := toSiteRecord(site)
	if err != nil {
		return err
	}
	if err := g.db.WithContext(ctx).Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

func (g *GormSites) Get(ctx context.Context, id string) (*sites.Site, error) {
	var rec siteRecord
	if err := g.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return fromSiteRecord(&rec)
}

func (g *GormSites) List(ctx context.Context) ([]*sites.Site, error) {
	var recs []siteRecord
	if err := g.db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*sites.Site, 0, len(recs))
	for i := range recs {
		site, err := fromSiteRecord(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, site)
	}
	return out, nil
}

func (g *GormSites) Update(ctx context.Context, id string, patch sites.SitePatch) (*sites.Site, error) {
	var updated *sites.Site
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec siteRecord
		if err := tx.First(&rec, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		site, err := fromSiteRecord(&rec)
		if err != nil {
			return err
		}
		if err := sites.ApplyPatch(site, patch, time.Now()); err != nil {
			return err
		}
		next, err := toSiteRecord(site)
		if err != nil {
			return err
		}
		if err := tx.Save(next).Error; err != nil {
			return err
		}
		updated = site
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func toSiteRecord(site *sites.Site) (*siteRecord, error) {
	data, err := json.Marshal(site)
	if err != nil {
		return nil, fmt.Errorf("encode site %s: %w", site.ID, err)
	}
	return &siteRecord{
		ID:        site.ID,
		Name:      site.Name,
		Template:  site.Template,
		Status:    site.Status,
		Data:      data,
		CreatedAt: site.CreatedAt,
		UpdatedAt: site.UpdatedAt,
	}, nil
}

func fromSiteRecord(rec *siteRecord) (*sites.Site, error) {
	var site sites.Site
	if err := json.Unmarshal(rec.Data, &site); err != nil {
		return nil, fmt.Errorf("decode site %s: %w", rec.ID, err)
	}
	return &site, nil
}

// GormLinks is the Postgres-backed LinkStore.
type GormLinks struct {
	db *gorm.DB
}

func NewGormLinks(db *gorm.DB) *GormLinks {
	return &GormLinks{db: db}
}

func (g *GormLinks) Insert(ctx context.Context, link *links.Link) error {
	if err := g.db.WithContext(ctx).Create(toLinkRecord(link)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

func (g *GormLinks) List(ctx context.Context) ([]*links.Link, error) {
	var recs []linkRecord
	if err := g.db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*links.Link, 0, len(recs))
	for i := range recs {
		out = append(out, fromLinkRecord(&recs[i]))
	}
	return out, nil
}

func (g *GormLinks) Update(ctx context.Context, id string, patch links.Patch) (*links.Link, error) {
	var updated *links.Link
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec linkRecord
		if err := tx.First(&rec, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		link := fromLinkRecord(&rec)
		link.Apply(patch)
		if err := tx.Save(toLinkRecord(link)).Error; err != nil {
			return err
		}
		updated = link
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (g *GormLinks) Delete(ctx context.Context, id string) error {
	res := g.db.WithContext(ctx).Delete(&linkRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func toLinkRecord(l *links.Link) *linkRecord {
	return &linkRecord{
		ID:          l.ID,
		Title:       l.Title,
		OriginalURL: l.OriginalURL,
		ShortURL:    l.ShortURL,
		Category:    l.Category,
		Description: l.Description,
		Clicks:      l.Clicks,
		Conversions: l.Conversions,
		Revenue:     l.Revenue,
		CreatedAt:   l.CreatedAt,
		IsActive:    l.IsActive,
	}
}

func fromLinkRecord(rec *linkRecord) *links.Link {
	return &links.Link{
		ID:          rec.ID,
		Title:       rec.Title,
		OriginalURL: rec.OriginalURL,
		ShortURL:    rec.ShortURL,
		Category:    rec.Category,
		Description: rec.Description,
		Clicks:      rec.Clicks,
		Conversions: rec.Conversions,
		Revenue:     rec.Revenue,
		CreatedAt:   rec.CreatedAt,
		IsActive:    rec.IsActive,
	}
}
