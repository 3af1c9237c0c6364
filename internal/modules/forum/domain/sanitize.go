package domain

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var contentPolicy = bluemonday.StrictPolicy()

// Sanitize strips all markup from user-authored forum content. Posts come
// from the backend as rich text; the terminal only ever renders plain text.
func Sanitize(content string) string {
	clean := contentPolicy.Sanitize(content)
	return strings.TrimSpace(html.UnescapeString(clean))
}
