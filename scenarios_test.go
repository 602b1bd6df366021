package readability

import (
	"strings"
	"testing"
)

func prose(words int) string {
	return strings.Repeat("lorem ipsum dolor sit amet consectetur adipiscing elit ", words)
}

func TestScenarioDublinCoreWinsOverOpenGraph(t *testing.T) {
	source := `<html><head><meta name="dc.title" content="DC Title"><meta property="og:title" content="OG Title"></head>` +
		`<body><article><p>` + prose(60) + `</p></article></body></html>`

	r := New()
	result, err := r.Parse(source, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Title != "DC Title" {
		t.Fatalf("expected Dublin Core title to win, got %q", result.Title)
	}
}

func TestScenarioSpaceSeparatedMetaProperty(t *testing.T) {
	source := `<html><head><meta property="og:title dc:title" content="Both"></head>` +
		`<body><article><p>` + prose(60) + `</p></article></body></html>`

	r := New()
	result, err := r.Parse(source, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Title != "Both" {
		t.Fatalf("expected title %q, got %q", "Both", result.Title)
	}
}

func TestScenarioJSONLDNewsArticle(t *testing.T) {
	source := `<html><head>
<script type="application/ld+json">{"@type":"NewsArticle","headline":"H","author":{"name":"A"},"description":"D","publisher":{"name":"P"},"datePublished":"2024-01-01T00:00:00Z"}</script>
</head><body><article><p>` + prose(60) + `</p></article></body></html>`

	r := New()
	result, err := r.Parse(source, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Title != "H" {
		t.Fatalf("title: got %q want H", result.Title)
	}
	if result.Byline != "A" {
		t.Fatalf("byline: got %q want A", result.Byline)
	}
	if result.Excerpt != "D" {
		t.Fatalf("excerpt: got %q want D", result.Excerpt)
	}
	if result.SiteName != "P" {
		t.Fatalf("siteName: got %q want P", result.SiteName)
	}
	if result.PublishedTime != "2024-01-01T00:00:00Z" {
		t.Fatalf("publishedTime: got %q want literal passthrough", result.PublishedTime)
	}
}

func TestScenarioUnlikelyCandidateRemoval(t *testing.T) {
	source := `<html><body><div class="comment">C</div><article><p>` + prose(60) + `</p></article></body></html>`

	r := New()
	result, err := r.Parse(source, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(result.Content, ">C<") {
		t.Fatalf("expected the comment div's content to be stripped, got: %s", result.Content)
	}
	if strings.Contains(result.TextContent, "C") {
		t.Fatalf("unexpected leftover comment text in TextContent: %s", result.TextContent)
	}
}

func TestScenarioDivWithSingleParagraphUnwrapped(t *testing.T) {
	source := `<html><body><article><div><p>` + prose(60) + `</p></div></article></body></html>`

	r := New()
	result, err := r.Parse(source, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Content, "<p>") {
		t.Fatalf("expected a <p> in the output, got: %s", result.Content)
	}
	if strings.Contains(result.Content, "<div><p>") {
		t.Fatalf("expected the single-<p> div to be unwrapped, got: %s", result.Content)
	}
}

func TestScenarioFallbackProgression(t *testing.T) {
	source := `<html><head><title>Short Page Title</title></head>` +
		`<body><div class="comment">` + prose(3) + `</div></body></html>`

	r := New()
	result, err := r.Parse(source, "")
	if err != nil {
		t.Fatalf("expected fallback to the longest attempt rather than an error: %v", err)
	}

	if result.Title != "Short Page Title" {
		t.Fatalf("expected title resolved from <title> even on a relaxed-fallback pass, got %q", result.Title)
	}
}
