package readability

import "testing"

func TestJaccardSimilarity(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"hello world", "hello world", 1},
		{"", "", 1},
		{"foo bar", "baz qux", 0},
	}

	for _, c := range cases {
		if got := jaccardSimilarity(c.a, c.b); got != c.want {
			t.Errorf("jaccardSimilarity(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestJaccardSimilarityPartialOverlap(t *testing.T) {
	got := jaccardSimilarity("the quick brown fox", "the quick brown dog")
	if got <= 0.5 || got >= 1 {
		t.Fatalf("expected partial overlap between 0.5 and 1, got %v", got)
	}
}

func TestGetArticleTitleStripsHierarchySeparator(t *testing.T) {
	source := `<html><head><title>My Site - A Great Story About Go</title></head><body><p>` +
		`filler filler filler filler filler filler filler filler filler filler` +
		`</p></body></html>`

	r := New()
	result, err := r.Parse(source, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Title != "A Great Story About Go" {
		t.Fatalf("expected the site-name part before the separator to be stripped, got %q", result.Title)
	}
}
