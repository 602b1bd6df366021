package readability

import (
	"strings"
	"testing"
)

func TestTitlesAgree(t *testing.T) {
	if !titlesAgree("Breaking News Today", "Breaking News Today - Example Times") {
		t.Fatalf("expected a prefix match to agree")
	}
	if titlesAgree("Completely Unrelated Headline", "Something Else Entirely Different") {
		t.Fatalf("expected unrelated titles to disagree")
	}
}

func TestGetArticleMetadataPrefersJSONLD(t *testing.T) {
	source := `<html><head>
<title>Fallback Title</title>
<meta property="og:title" content="OpenGraph Title">
<meta property="og:site_name" content="Example Times">
<script type="application/ld+json">
{"@type":"Article","headline":"Fallback Title","author":"A Writer","datePublished":"2024-05-01T12:00:00Z"}
</script>
</head><body><p>` + strings.Repeat("body text here. ", 50) + `</p></body></html>`

	r := New()
	result, err := r.Parse(source, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Byline != "A Writer" {
		t.Fatalf("expected byline from JSON-LD, got %q", result.Byline)
	}
	if result.PublishedTime != "2024-05-01T12:00:00Z" {
		t.Fatalf("expected literal passthrough of a valid RFC3339 publish date, got %q", result.PublishedTime)
	}
	if result.SiteName != "Example Times" {
		t.Fatalf("expected site name from OpenGraph meta tag, got %q", result.SiteName)
	}
}

func TestGetArticleMetadataFallsBackToMetaTags(t *testing.T) {
	source := `<html><head>
<title>A Plain Old Page</title>
<meta name="author" content="Meta Author">
<meta property="og:description" content="A short summary.">
</head><body><p>` + strings.Repeat("body text here. ", 50) + `</p></body></html>`

	r := New()
	result, err := r.Parse(source, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Byline != "Meta Author" {
		t.Fatalf("expected byline from meta tag, got %q", result.Byline)
	}
	if result.Excerpt != "A short summary." {
		t.Fatalf("expected excerpt from og:description, got %q", result.Excerpt)
	}
}
