package readability

import "testing"

func TestFlattenJSONLDSingleObject(t *testing.T) {
	var parsed interface{} = map[string]interface{}{
		"@type":    "Article",
		"headline": "A Headline",
	}

	out := flattenJSONLD(parsed)
	if len(out) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(out))
	}
}

func TestFlattenJSONLDGraph(t *testing.T) {
	var parsed interface{} = map[string]interface{}{
		"@graph": []interface{}{
			map[string]interface{}{"@type": "WebSite", "name": "Example"},
			map[string]interface{}{"@type": "NewsArticle", "headline": "Graph Headline"},
		},
	}

	out := flattenJSONLD(parsed)
	if len(out) != 3 {
		t.Fatalf("expected graph entries plus the wrapping object, got %d", len(out))
	}

	found := false
	for _, obj := range out {
		if md, ok := parseJSONLDArticle(obj); ok && md.Title == "Graph Headline" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected to resolve the NewsArticle entity from @graph")
	}
}

func TestIsArticleType(t *testing.T) {
	if !isArticleType("NewsArticle") {
		t.Fatalf("expected NewsArticle to count as an article type")
	}
	if !isArticleType([]interface{}{"Thing", "BlogPosting"}) {
		t.Fatalf("expected an array containing BlogPosting to match")
	}
	if isArticleType("Person") {
		t.Fatalf("did not expect Person to match")
	}
}

func TestJSONLDAuthorVariants(t *testing.T) {
	if got := jsonLDAuthor("Jane Doe"); got != "Jane Doe" {
		t.Fatalf("string author: got %q", got)
	}

	obj := map[string]interface{}{"name": "John Smith"}
	if got := jsonLDAuthor(obj); got != "John Smith" {
		t.Fatalf("object author: got %q", got)
	}

	arr := []interface{}{
		map[string]interface{}{"name": "Alice"},
		"Bob",
	}
	if got := jsonLDAuthor(arr); got != "Alice, Bob" {
		t.Fatalf("array author: got %q", got)
	}
}

func TestJSONLDImageVariants(t *testing.T) {
	if got := jsonLDImage("https://example.com/a.jpg"); got != "https://example.com/a.jpg" {
		t.Fatalf("string image: got %q", got)
	}

	obj := map[string]interface{}{"url": "https://example.com/b.jpg"}
	if got := jsonLDImage(obj); got != "https://example.com/b.jpg" {
		t.Fatalf("ImageObject: got %q", got)
	}

	arr := []interface{}{obj, "https://example.com/c.jpg"}
	if got := jsonLDImage(arr); got != "https://example.com/b.jpg" {
		t.Fatalf("array image: got %q", got)
	}
}

func TestGetJSONLDFromDocument(t *testing.T) {
	source := `<html><head>
<script type="application/ld+json">
{"@context":"https://schema.org","@type":"NewsArticle","headline":"Breaking News","author":{"name":"A Reporter"},"datePublished":"2024-01-02T03:04:05Z"}
</script>
</head><body><p>content</p></body></html>`

	r := New()
	doc := parseTestDoc(t, source)
	md := r.getJSONLD(doc)

	if !md.ok {
		t.Fatalf("expected a resolved JSON-LD entity")
	}
	if md.Title != "Breaking News" {
		t.Fatalf("unexpected title: %q", md.Title)
	}
	if md.Byline != "A Reporter" {
		t.Fatalf("unexpected byline: %q", md.Byline)
	}
	if md.PublishedTime != "2024-01-02T03:04:05Z" {
		t.Fatalf("unexpected publish time: %q", md.PublishedTime)
	}
}

func TestGetJSONLDDisabled(t *testing.T) {
	source := `<html><head>
<script type="application/ld+json">{"@type":"Article","headline":"x"}</script>
</head><body></body></html>`

	r := New(WithDisableJSONLD(true))
	doc := parseTestDoc(t, source)
	md := r.getJSONLD(doc)
	if md.ok {
		t.Fatalf("expected JSON-LD extraction to be disabled")
	}
}
