package readability

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// parseTestDoc parses source into a document tree for tests that exercise a
// single internal helper directly instead of the full Parse pipeline.
func parseTestDoc(t *testing.T, source string) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		t.Fatalf("failed to parse test document: %v", err)
	}
	return doc
}
