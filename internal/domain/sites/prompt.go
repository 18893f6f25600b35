package sites

import "fmt"

// SitePromptSystem primes the generator for the structured site
// payload the Normalizer expects.
const SitePromptSystem = "You are an expert affiliate marketing content strategist. Create comprehensive, SEO-optimized content that converts visitors into customers. Always respond with valid JSON format."

// GenerationRequest is derived from Settings plus the template id;
// built once per site-generation call, never persisted.
type GenerationRequest struct {
	Prompt   string
	Template string
	Niche    string
}

func BuildGenerationRequest(templateID string, settings Settings) GenerationRequest {
	prompt := fmt.Sprintf(`Create a complete affiliate website content structure for:

Site Name: %s
Description: %s
Niche: %s
Template: %s

Generate the following content:
1. Homepage hero section with compelling headline and description
2. About page content
3. 3-5 product review articles (titles and brief outlines)
4. SEO meta titles and descriptions
5. Navigation menu structure
6. Footer content

Format the response as a JSON object with clear sections for each content type.`,
		settings.SiteName,
		firstNonEmpty(settings.Description, "Affiliate marketing website"),
		firstNonEmpty(settings.Niche, "general"),
		templateID,
	)

	return GenerationRequest{
		Prompt:   prompt,
		Template: templateID,
		Niche:    settings.Niche,
	}
}
