package sites

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// RawResult is the Generation Requester's outcome: either the raw
// completion text or an explicit unavailable signal. Generator failure
// is a normal, expected outcome, never a pipeline fault.
type RawResult struct {
	OK     bool
	Text   string
	Reason string
}

func Ok(text string) RawResult {
	return RawResult{OK: true, Text: text}
}

func Unavailable(reason string) RawResult {
	return RawResult{Reason: reason}
}

// Generator issues a single, bounded content-generation request. One
// shot, no retry: the pipeline guarantees a usable site either way.
type Generator interface {
	Complete(ctx context.Context, system, prompt string) RawResult
}

// SiteInserter is the slice of the site store the pipeline needs.
type SiteInserter interface {
	Insert(ctx context.Context, site *Site) error
}

// Pipeline runs one site-generation call end to end: resolve template,
// request content, normalize, assemble, store. Only ErrInvalidTemplate
// and a store failure cross this boundary.
type Pipeline struct {
	Generator Generator
	Store     SiteInserter
	Assembler Assembler
	Logger    *zap.Logger
}

func (p *Pipeline) GenerateSite(ctx context.Context, templateID string, settings Settings) (*Site, error) {
	theme, err := ResolveTemplate(templateID, settings)
	if err != nil {
		return nil, err
	}

	raw := Unavailable("no generator configured")
	if p.Generator != nil {
		req := BuildGenerationRequest(templateID, settings)
		raw = p.Generator.Complete(ctx, SitePromptSystem, req.Prompt)
	}

	content := Normalize(raw)
	log := p.logger()
	if !raw.OK {
		log.Warn("content generation unavailable, falling back to template defaults",
			zap.String("template", templateID),
			zap.String("reason", raw.Reason))
	} else if content.Raw != "" {
		log.Warn("generator output did not parse as JSON, falling back to template defaults",
			zap.String("template", templateID))
	}
	if content.Discarded > 0 {
		log.Info("dropped malformed review entries from generated content",
			zap.Int("dropped", content.Discarded))
	}

	site := p.Assembler.Assemble(settings, templateID, theme, content)
	if err := p.Store.Insert(ctx, site); err != nil {
		return nil, fmt.Errorf("store site %s: %w", site.ID, err)
	}

	log.Info("site generated",
		zap.String("site_id", site.ID),
		zap.String("template", templateID),
		zap.Int("pages", len(site.Pages)))
	return site, nil
}

func (p *Pipeline) logger() *zap.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return zap.NewNop()
}
