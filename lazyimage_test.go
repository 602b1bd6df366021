package readability

import (
	"testing"

	"github.com/go-shiori/dom"
)

func TestFixLazyImagesPromotesDataSrc(t *testing.T) {
	doc := parseTestDoc(t, `<html><body><article>`+
		`<img class="lazyload" data-src="https://example.com/real.jpg" src="data:image/gif;base64,R0lGODlh">`+
		`</article></body></html>`)

	r := New()
	article := dom.GetElementsByTagName(doc, "article")[0]
	r.fixLazyImages(article)

	img := dom.GetElementsByTagName(doc, "img")[0]
	if got := dom.GetAttribute(img, "src"); got != "https://example.com/real.jpg" {
		t.Fatalf("expected src promoted from data-src, got %q", got)
	}
}

func TestFixLazyImagesLeavesRealSrcAlone(t *testing.T) {
	doc := parseTestDoc(t, `<html><body><article>`+
		`<img src="https://example.com/real.jpg" data-src="https://example.com/other.jpg">`+
		`</article></body></html>`)

	r := New()
	article := dom.GetElementsByTagName(doc, "article")[0]
	r.fixLazyImages(article)

	img := dom.GetElementsByTagName(doc, "img")[0]
	if got := dom.GetAttribute(img, "src"); got != "https://example.com/real.jpg" {
		t.Fatalf("expected real src to be left untouched, got %q", got)
	}
}

func TestBestSrcsetCandidatePicksHighestWidth(t *testing.T) {
	srcset := "small.jpg 320w, medium.jpg 768w, large.jpg 1200w"
	if got := bestSrcsetCandidate(srcset); got != "large.jpg" {
		t.Fatalf("expected the widest candidate, got %q", got)
	}
}

func TestBestSrcsetCandidateEmpty(t *testing.T) {
	if got := bestSrcsetCandidate(""); got != "" {
		t.Fatalf("expected empty result for empty input, got %q", got)
	}
}
