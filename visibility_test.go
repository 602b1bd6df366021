package readability

import (
	"testing"

	"github.com/go-shiori/dom"
)

func TestIsProbablyVisibleDisplayNone(t *testing.T) {
	doc := parseTestDoc(t, `<html><body><div style="display: none">hidden</div></body></html>`)
	r := New()

	div := dom.GetElementsByTagName(doc, "div")[0]
	if r.isProbablyVisible(div) {
		t.Fatalf("expected display:none element to be invisible")
	}
}

func TestIsProbablyVisibleAriaHiddenFallbackImage(t *testing.T) {
	doc := parseTestDoc(t, `<html><body><img aria-hidden="true" class="fallback-image" src="a.png"></body></html>`)
	r := New()

	img := dom.GetElementsByTagName(doc, "img")[0]
	if !r.isProbablyVisible(img) {
		t.Fatalf("expected fallback-image carve-out to remain visible despite aria-hidden")
	}
}

func TestIsProbablyVisiblePlainAriaHidden(t *testing.T) {
	doc := parseTestDoc(t, `<html><body><div aria-hidden="true">x</div></body></html>`)
	r := New()

	div := dom.GetElementsByTagName(doc, "div")[0]
	if r.isProbablyVisible(div) {
		t.Fatalf("expected plain aria-hidden element to be invisible")
	}
}

func TestIsProbablyVisibleVisibilityHidden(t *testing.T) {
	doc := parseTestDoc(t, `<html><body><div style="visibility: hidden">x</div></body></html>`)
	r := New()

	div := dom.GetElementsByTagName(doc, "div")[0]
	if r.isProbablyVisible(div) {
		t.Fatalf("expected visibility:hidden element to be invisible")
	}
}

func TestIsProbablyVisibleVisible(t *testing.T) {
	doc := parseTestDoc(t, `<html><body><div>x</div></body></html>`)
	r := New()

	div := dom.GetElementsByTagName(doc, "div")[0]
	if !r.isProbablyVisible(div) {
		t.Fatalf("expected a plain div to be visible")
	}
}
