package sites

import (
	"errors"
	"strings"
)

const (
	DefaultPrimaryColor = "#3b82f6"
	DefaultFont         = "Inter"
)

// ErrInvalidTemplate is the only pipeline error that reaches the
// caller. Everything else degrades to template defaults.
var ErrInvalidTemplate = errors.New("missing required parameters: template and siteName")

// ResolveTemplate merges a template id with user settings into the
// starting theme. Pure; fails only on the precondition violations the
// rest of the pipeline is not designed to absorb.
func ResolveTemplate(templateID string, settings Settings) (Theme, error) {
	if strings.TrimSpace(templateID) == "" || strings.TrimSpace(settings.SiteName) == "" {
		return Theme{}, ErrInvalidTemplate
	}

	color := settings.PrimaryColor
	if color == "" {
		color = DefaultPrimaryColor
	}

	return Theme{
		PrimaryColor: color,
		Font:         DefaultFont,
		Layout:       templateID,
	}, nil
}
