package readability

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// dateLayouts is the short list of additional layouts tried once
// go-dateparser fails to resolve a date, mirroring the two-tier strategy of
// parsing with a general-purpose library first and a fixed fallback list
// second.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"02 Jan 2006",
}

// normalizeDate resolves raw into an RFC3339 timestamp when it can be
// parsed as a date. When it cannot, raw is returned unchanged: metadata
// fields are best-effort passthrough, never lossy rewrites of a value the
// parser doesn't understand.
func normalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	// Already a valid RFC3339 timestamp: return it verbatim rather than
	// reformatting, so a caller-supplied offset is never silently rewritten
	// to UTC.
	if _, err := time.Parse(time.RFC3339, raw); err == nil {
		return raw
	}

	if result, err := dateparser.Parse(nil, raw); err == nil && result != nil && !result.Time.IsZero() {
		return result.Time.UTC().Format(time.RFC3339)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}

	return raw
}
