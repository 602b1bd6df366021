package readability

import "testing"

func TestGetLangDirExplicit(t *testing.T) {
	doc := parseTestDoc(t, `<html lang="en" dir="ltr"><body><p>hi</p></body></html>`)
	r := New()

	lang, dir := r.getLangDir(doc)
	if lang != "en" || dir != "ltr" {
		t.Fatalf("got lang=%q dir=%q, want en/ltr", lang, dir)
	}
}

func TestGetLangDirRTLHeuristic(t *testing.T) {
	doc := parseTestDoc(t, `<html lang="ar"><body><p>hi</p></body></html>`)
	r := New()

	lang, dir := r.getLangDir(doc)
	if lang != "ar" || dir != "rtl" {
		t.Fatalf("got lang=%q dir=%q, want ar/rtl", lang, dir)
	}
}

func TestGetLangDirLTRDefault(t *testing.T) {
	doc := parseTestDoc(t, `<html lang="fr"><body><p>hi</p></body></html>`)
	r := New()

	_, dir := r.getLangDir(doc)
	if dir != "ltr" {
		t.Fatalf("got dir=%q, want ltr", dir)
	}
}

func TestGetLangDirNoAttributes(t *testing.T) {
	doc := parseTestDoc(t, `<html><body><p>hi</p></body></html>`)
	r := New()

	lang, dir := r.getLangDir(doc)
	if lang != "" || dir != "" {
		t.Fatalf("got lang=%q dir=%q, want both empty", lang, dir)
	}
}
