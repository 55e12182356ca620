package asset

import (
	"net/url"
	"path"
	"strings"
)

// PublicIDFromURL derives the hosted asset id from its delivery URL: the last
// path segment without the extension.
func PublicIDFromURL(rawURL string) string {
	p := rawURL
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Path != "" {
		p = parsed.Path
	}

	segment := path.Base(p)
	if segment == "." || segment == "/" {
		return ""
	}

	return strings.TrimSuffix(segment, path.Ext(segment))
}
