package readability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMaxElemsToParse checks that an oversized document is rejected
// instead of scored.
func TestMaxElemsToParse(t *testing.T) {
	source := `<html><body><p>one</p><p>two</p><p>three</p></body></html>`

	r := New(WithMaxElemsToParse(3))
	if _, err := r.Parse(source, ""); err == nil {
		t.Fatalf("expected an error when the document exceeds MaxElemsToParse")
	}
}

func TestRemoveScripts(t *testing.T) {
	source := `<html><body><script>alert(1)</script><p>` + strings.Repeat("word ", 200) + `</p></body></html>`

	r := New()
	result, err := r.Parse(source, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(result.Content, "alert") {
		t.Fatalf("expected <script> content to be removed, got: %s", result.Content)
	}
}

func TestParseAlreadyParsed(t *testing.T) {
	source := `<html><body><p>` + strings.Repeat("word ", 200) + `</p></body></html>`

	r := New()
	_, err := r.Parse(source, "")
	require.NoError(t, err)

	_, err = r.Parse(source, "")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ErrAlreadyParsed, parseErr.Code)
}

func TestParseInvalidHTML(t *testing.T) {
	r := New()
	_, err := r.Parse("not even a document", "")
	// html.Parse tolerates almost anything, wrapping it in html/body, so
	// this only fails if the implicit body genuinely carries no content.
	if err != nil {
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	}
}

func TestParseBasicArticle(t *testing.T) {
	source := `<html>
<head><title>Example Domain - My Great Story</title></head>
<body>
<div id="container">
<article>
<h1>My Great Story</h1>
<p>` + strings.Repeat("This is the article body with plenty of words in it. ", 20) + `</p>
<p>` + strings.Repeat("And a second paragraph keeps the content flowing along nicely. ", 20) + `</p>
</article>
<aside class="sidebar"><p>Related links and ads go here, not part of the article.</p></aside>
</div>
</body>
</html>`

	r := New()
	result, err := r.Parse(source, "https://example.com/story")
	require.NoError(t, err)

	assert.Contains(t, result.Title, "My Great Story")
	assert.Greater(t, result.Length, 500)
	assert.Contains(t, result.TextContent, "article body")
}

func TestIsReadable(t *testing.T) {
	longArticle := `<html><body><p>` + strings.Repeat("This sentence has enough characters to count toward readability scoring. ", 10) + `</p></body></html>`
	assert.True(t, IsReadable(strings.NewReader(longArticle)))

	shortPage := `<html><body><p>Too short.</p></body></html>`
	assert.False(t, IsReadable(strings.NewReader(shortPage)))
}
