package sites

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrDuplicatePage = errors.New("pages must have unique ids and slugs")
	ErrInvalidStatus = errors.New("status must be draft or published")
)

// SettingsPatch carries one optional field per mutable setting. Nil
// means leave unchanged.
type SettingsPatch struct {
	SiteName     *string `json:"siteName,omitempty"`
	Description  *string `json:"description,omitempty"`
	Niche        *string `json:"niche,omitempty"`
	PrimaryColor *string `json:"primaryColor,omitempty"`
}

// SitePatch is the explicit update contract for a stored site. A nil
// Pages keeps the existing pages; a non-nil Pages replaces them whole.
type SitePatch struct {
	Settings *SettingsPatch `json:"settings,omitempty"`
	Pages    []Page         `json:"pages,omitempty"`
	Status   *string        `json:"status,omitempty"`
}

// ApplyPatch merges a patch into a site. Pure field-by-field merge, no
// deep-merge surprises. A pages replacement is rejected unless it
// preserves the per-site id and slug uniqueness invariants.
func ApplyPatch(site *Site, patch SitePatch, now time.Time) error {
	if patch.Pages != nil {
		if err := checkPageUniqueness(patch.Pages); err != nil {
			return err
		}
	}
	if patch.Status != nil && *patch.Status != StatusDraft && *patch.Status != StatusPublished {
		return ErrInvalidStatus
	}

	if s := patch.Settings; s != nil {
		if s.SiteName != nil {
			site.Settings.SiteName = *s.SiteName
		}
		if s.Description != nil {
			site.Settings.Description = *s.Description
		}
		if s.Niche != nil {
			site.Settings.Niche = *s.Niche
		}
		if s.PrimaryColor != nil {
			site.Settings.PrimaryColor = *s.PrimaryColor
		}
	}
	if patch.Pages != nil {
		site.Pages = patch.Pages
	}
	if patch.Status != nil {
		site.Status = *patch.Status
	}
	site.UpdatedAt = now
	return nil
}

func checkPageUniqueness(pages []Page) error {
	ids := make(map[string]bool, len(pages))
	slugs := make(map[string]bool, len(pages))
	for _, p := range pages {
		if ids[p.ID] || slugs[p.Slug] {
			return fmt.Errorf("%w: %s", ErrDuplicatePage, p.ID)
		}
		ids[p.ID] = true
		slugs[p.Slug] = true
	}
	return nil
}
