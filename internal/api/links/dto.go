package linksapi

import "affiliateforge/internal/domain/links"

type CreateLinkRequest struct {
	Title       string `json:"title"`
	OriginalURL string `json:"originalUrl"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type PaginationDTO struct {
	Current int  `json:"current"`
	Total   int  `json:"total"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

type ListLinksResponse struct {
	Links      []*links.Link `json:"links"`
	Pagination PaginationDTO `json:"pagination"`
	Stats      links.Stats   `json:"stats"`
}
