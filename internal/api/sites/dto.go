package sitesapi

import (
	"time"

	"affiliateforge/internal/domain/sites"
)

type GenerateSiteRequest struct {
	Template string         `json:"template"`
	Settings sites.Settings `json:"settings"`
}

type GenerateSiteResponse struct {
	Site       *sites.Site `json:"site"`
	PreviewURL string      `json:"previewUrl"`
	EditURL    string      `json:"editUrl"`
}

// SiteSummaryDTO is the listing row: no pages, just the dashboard
// columns.
type SiteSummaryDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Template  string          `json:"template"`
	Domain    string          `json:"domain"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Analytics sites.Analytics `json:"analytics"`
}

func toSummaryDTO(s *sites.Site) SiteSummaryDTO {
	return SiteSummaryDTO{
		ID:        s.ID,
		Name:      s.Name,
		Template:  s.Template,
		Domain:    s.Domain,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Analytics: s.Analytics,
	}
}
