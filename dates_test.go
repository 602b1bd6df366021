package readability

import "testing"

func TestNormalizeDateRFC3339Passthrough(t *testing.T) {
	raw := "2024-03-05T10:30:00+02:00"
	if got := normalizeDate(raw); got != raw {
		t.Fatalf("expected verbatim passthrough of a valid RFC3339 value, got %q", got)
	}
}

func TestNormalizeDateEmpty(t *testing.T) {
	if got := normalizeDate("   "); got != "" {
		t.Fatalf("expected empty input to normalize to empty, got %q", got)
	}
}

func TestNormalizeDateFallbackLayout(t *testing.T) {
	got := normalizeDate("2024-03-05")
	if got == "2024-03-05" {
		t.Fatalf("expected a bare date to be resolved to a timestamp, got unchanged value")
	}
}

func TestNormalizeDateUnparseable(t *testing.T) {
	raw := "not a date at all"
	if got := normalizeDate(raw); got != raw {
		t.Fatalf("expected unparseable input to pass through unchanged, got %q", got)
	}
}
