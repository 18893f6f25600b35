package sites

import (
	"encoding/json"
	"strings"
)

// GeneratedContent is the normalized result of interpreting external
// generator output. Every sub-tree is independently present-or-absent;
// a present value is always shape-valid. Reviews distinguishes absent
// (nil) from present-but-empty (non-nil, len 0).
type GeneratedContent struct {
	Homepage   *Homepage `json:"homepage,omitempty"`
	About      *About    `json:"about,omitempty"`
	Reviews    []Review  `json:"reviews,omitempty"`
	Navigation []NavLink `json:"navigation,omitempty"`
	Footer     *Footer   `json:"footer,omitempty"`
	SEO        *SEO      `json:"seo,omitempty"`

	// Raw keeps generator text that did not parse as JSON, for
	// diagnostic or manual use. Never rendered as an empty site.
	Raw string `json:"content,omitempty"`
	// Discarded counts review entries dropped during validation.
	Discarded int `json:"-"`
}

type Homepage struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
	CTA         string `json:"cta,omitempty"`
}

type About struct {
	Intro   string `json:"intro"`
	Mission string `json:"mission"`
	Team    string `json:"team"`
}

type SEO struct {
	HomeTitle       string `json:"homeTitle,omitempty"`
	HomeDescription string `json:"homeDescription,omitempty"`
}

type Review struct {
	Title          string   `json:"title"`
	Outline        string   `json:"outline"`
	Rating         string   `json:"rating,omitempty"`
	Pros           []string `json:"pros,omitempty"`
	Cons           []string `json:"cons,omitempty"`
	BottomLine     string   `json:"bottomLine"`
	SEOTitle       string   `json:"seoTitle,omitempty"`
	SEODescription string   `json:"seoDescription,omitempty"`
}

// Normalize narrows an untrusted generator result into the strictly
// optional GeneratedContent shape. Total: never fails. Unavailable
// input yields the zero value; unparseable text yields the zero value
// plus Raw; a parsed document is validated key by key, and any key with
// the wrong shape is demoted to absent instead of failing the document.
func Normalize(raw RawResult) GeneratedContent {
	var out GeneratedContent
	if !raw.OK {
		return out
	}

	var probe struct {
		Homepage   json.RawMessage `json:"homepage"`
		About      json.RawMessage `json:"about"`
		Reviews    json.RawMessage `json:"reviews"`
		Navigation json.RawMessage `json:"navigation"`
		Footer     json.RawMessage `json:"footer"`
		SEO        json.RawMessage `json:"seo"`
	}
	if err := json.Unmarshal([]byte(raw.Text), &probe); err != nil {
		out.Raw = raw.Text
		return out
	}

	if hp := decodeField[Homepage](probe.Homepage); hp != nil && strings.TrimSpace(hp.Headline) != "" {
		out.Homepage = hp
	}
	if ab := decodeField[About](probe.About); ab != nil && strings.TrimSpace(ab.Intro) != "" {
		out.About = ab
	}
	if nav := decodeField[[]NavLink](probe.Navigation); nav != nil && validLinks(*nav) {
		out.Navigation = *nav
	}
	if ft := decodeField[Footer](probe.Footer); ft != nil && strings.TrimSpace(ft.Copyright) != "" && (ft.Links == nil || validLinks(ft.Links)) {
		if ft.Links == nil {
			ft.Links = []NavLink{}
		}
		out.Footer = ft
	}
	if seo := decodeField[SEO](probe.SEO); seo != nil {
		out.SEO = seo
	}
	out.Reviews, out.Discarded = decodeReviews(probe.Reviews)

	return out
}

// decodeField strictly decodes one top-level key. Absent, null, or
// wrong-shaped values all come back nil.
func decodeField[T any](raw json.RawMessage) *T {
	if isAbsent(raw) {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func validLinks(links []NavLink) bool {
	for _, l := range links {
		if strings.TrimSpace(l.Title) == "" || strings.TrimSpace(l.URL) == "" {
			return false
		}
	}
	return true
}

// reviewPayload accepts the field aliases the generator uses
// interchangeably (outline/content, bottomLine/conclusion) and a rating
// that may arrive as either a string or a bare number.
type reviewPayload struct {
	Title          string      `json:"title"`
	Outline        string      `json:"outline"`
	Content        string      `json:"content"`
	Rating         ratingValue `json:"rating"`
	Pros           []string    `json:"pros"`
	Cons           []string    `json:"cons"`
	BottomLine     string      `json:"bottomLine"`
	Conclusion     string      `json:"conclusion"`
	SEOTitle       string      `json:"seoTitle"`
	SEODescription string      `json:"seoDescription"`
}

type ratingValue string

func (r *ratingValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = ratingValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*r = ratingValue(n.String())
	return nil
}

// decodeReviews validates each entry independently: a malformed entry
// is dropped and counted, not propagated. The key itself is absent
// (nil) only when it is missing or not a sequence; an empty sequence
// stays a present, empty value.
func decodeReviews(raw json.RawMessage) ([]Review, int) {
	if isAbsent(raw) {
		return nil, 0
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, 0
	}

	reviews := make([]Review, 0, len(entries))
	dropped := 0
	for _, entry := range entries {
		var p reviewPayload
		if err := json.Unmarshal(entry, &p); err != nil {
			dropped++
			continue
		}
		rev := Review{
			Title:          p.Title,
			Outline:        firstNonEmpty(p.Outline, p.Content),
			Rating:         string(p.Rating),
			Pros:           p.Pros,
			Cons:           p.Cons,
			BottomLine:     firstNonEmpty(p.BottomLine, p.Conclusion),
			SEOTitle:       p.SEOTitle,
			SEODescription: p.SEODescription,
		}
		if strings.TrimSpace(rev.Title) == "" && strings.TrimSpace(rev.Outline) == "" {
			dropped++
			continue
		}
		reviews = append(reviews, rev)
	}
	return reviews, dropped
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
