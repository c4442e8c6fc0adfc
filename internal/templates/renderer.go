package templates

import (
	"strings"
)

// Literal tokens understood by the renderer. There is no expression syntax:
// each token is replaced verbatim and nothing else is interpreted.
const (
	// NameToken is replaced with the unit name.
	NameToken = "{{unit_name}}"

	// SlugToken is replaced with the unit slug.
	SlugToken = "{{unit_slug}}"

	// SlugSegment is a path segment that is replaced with the unit slug.
	SlugSegment = "__slug__"
)

// Renderer substitutes unit data into template paths and content.
type Renderer struct {
	data     Data
	replacer *strings.Replacer
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data Data) *Renderer {
	return &Renderer{
		data:     data,
		replacer: strings.NewReplacer(NameToken, data.Name, SlugToken, data.Slug),
	}
}

// RenderString renders template content. Substituted values are never
// rescanned, so a name that itself contains a token stays literal.
func (r *Renderer) RenderString(content string) string {
	return r.replacer.Replace(content)
}

// RenderPath splits a slash-separated template path into segments and
// replaces every SlugSegment with the slug.
func (r *Renderer) RenderPath(rel string) []string {
	parts := strings.Split(rel, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if p == SlugSegment {
			p = r.data.Slug
		}
		segments = append(segments, p)
	}
	return segments
}
