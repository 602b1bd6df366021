package readability

import (
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
)

// getLangDir captures the document's lang/dir attributes verbatim, falling
// back to an RTL-script heuristic derived from the language tag when dir is
// absent. A malformed BCP-47 tag degrades to an empty direction instead of
// panicking.
func (r *Readability) getLangDir(doc *html.Node) (lang string, dir string) {
	htmlElems := dom.GetElementsByTagName(doc, "html")
	if len(htmlElems) == 0 {
		return "", ""
	}

	root := htmlElems[0]
	lang = dom.GetAttribute(root, "lang")
	dir = dom.GetAttribute(root, "dir")

	if dir != "" || lang == "" {
		return lang, dir
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return lang, ""
	}

	base, _ := tag.Base()
	primary := strings.ToLower(base.String())

	for _, rtl := range rtlLanguagePrefixes {
		if primary == rtl {
			return lang, "rtl"
		}
	}

	return lang, "ltr"
}
