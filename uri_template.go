package webmate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z][A-Za-z0-9_]*)\}`)

// PathParams binds URI template placeholders to their values.
type PathParams map[string]string

// UriTemplate is a request path with ${name} placeholders, e.g.
// "/projects/${projectId}/packages".
type UriTemplate struct {
	template string
	names    []string
}

// NewUriTemplate parses template. It panics if template is empty, so it is
// meant for package-level template definitions.
func NewUriTemplate(template string) UriTemplate {
	if strings.TrimSpace(template) == "" {
		panic("webmate: empty URI template")
	}

	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		names = append(names, m[1])
	}

	return UriTemplate{template: template, names: names}
}

func (t UriTemplate) String() string {
	return t.template
}

// Placeholders returns the placeholder names in order of appearance.
func (t UriTemplate) Placeholders() []string {
	return append([]string(nil), t.names...)
}

// Expand substitutes every placeholder with its path-escaped value. Every
// placeholder must be bound to a non-empty value; unused params are ignored.
func (t UriTemplate) Expand(params PathParams) (string, error) {
	for _, name := range t.names {
		if v, ok := params[name]; !ok || v == "" {
			return "", fmt.Errorf("%w: no value for placeholder %q in %s", ErrInvalidRequest, name, t.template)
		}
	}

	return placeholderPattern.ReplaceAllStringFunc(t.template, func(m string) string {
		name := m[2 : len(m)-1]
		return url.PathEscape(params[name])
	}), nil
}
