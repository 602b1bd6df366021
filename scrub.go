package readability

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-shiori/dom"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var rxReadabilityID = regexp.MustCompile(`^readability-[a-z0-9-]+$`)

var (
	outputPolicy     *bluemonday.Policy
	outputPolicyOnce sync.Once
)

// articlePolicy builds once, at first use, the bluemonday.Policy that
// defines the final serialization-time attribute allow-list. A
// bluemonday.Policy is documented as safe for concurrent Sanitize calls, so
// a single package-level instance matches the package's single-threaded,
// no-package-level-mutable-state design.
func articlePolicy() *bluemonday.Policy {
	outputPolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()

		p.AllowStandardURLs()
		p.AllowAttrs("href").OnElements("a")
		p.AllowAttrs("src", "srcset", "alt").OnElements("img", "source")
		p.AllowAttrs("alt", "title", "class").Globally()
		p.AllowAttrs("role").Globally()
		p.AllowAttrs("datetime").OnElements("time")
		p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
		p.AllowAttrs("id").Matching(rxReadabilityID).OnElements("div")
		p.AllowElements(
			"p", "div", "span", "a", "img", "source", "picture", "figure", "figcaption",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"ul", "ol", "li", "dl", "dt", "dd",
			"table", "thead", "tbody", "tfoot", "tr", "td", "th", "caption",
			"blockquote", "pre", "code", "em", "strong", "b", "i", "u", "small",
			"sub", "sup", "mark", "time", "br", "hr", "q", "cite", "abbr",
		)

		outputPolicy = p
	})

	return outputPolicy
}

// fixRelativeURIs rewrites every <a href> and <img src> under articleContent
// to an absolute URI (ignoring fragment references), and turns a
// javascript: link into plain text since it will not work once scripts are
// removed.
func (r *Readability) fixRelativeURIs(articleContent *html.Node) {
	r.forEachNode(r.getAllNodesWithTag(articleContent, "a"), func(link *html.Node, _ int) {
		href := dom.GetAttribute(link, "href")
		if href == "" {
			return
		}

		if strings.HasPrefix(href, "javascript:") {
			text := dom.CreateTextNode(dom.TextContent(link))
			replaceNode(link, text)
			return
		}

		newHref := toAbsoluteURI(href, r.documentURI)
		if newHref == "" {
			dom.RemoveAttribute(link, "href")
			return
		}

		dom.SetAttribute(link, "href", newHref)
	})

	r.forEachNode(r.getAllNodesWithTag(articleContent, "img"), func(img *html.Node, _ int) {
		src := dom.GetAttribute(img, "src")
		if src == "" {
			return
		}

		newSrc := toAbsoluteURI(src, r.documentURI)
		if newSrc == "" {
			dom.RemoveAttribute(img, "src")
			return
		}

		dom.SetAttribute(img, "src", newSrc)
	})
}

// postProcessContent runs the final, non-heuristic modifications to the
// article content: absolute URIs, class stripping, and any PostProcessor
// site-rule hooks. The serialization-time attribute whitelist is applied
// separately, by scrubOutputHTML.
func (r *Readability) postProcessContent(articleContent *html.Node) {
	r.fixRelativeURIs(articleContent)
	r.cleanClasses(articleContent)

	for _, rule := range r.rules {
		if pp, ok := rule.(PostProcessor); ok {
			pp.PostProcess(articleContent)
		}
	}
}

// scrubOutputHTML renders articleContent to a string passed through the
// serialization-time attribute whitelist. This is strictly an attribute
// allow-list step (spec's non-goal of not being a general HTML sanitizer is
// respected); it runs after, not instead of, the heuristic cleaning passes.
func (r *Readability) scrubOutputHTML(articleContent *html.Node) string {
	for _, rule := range r.rules {
		if s, ok := rule.(Serializer); ok {
			if out, handled := s.Serialize(articleContent); handled {
				return out
			}
		}
	}

	raw := dom.InnerHTML(articleContent)
	return articlePolicy().Sanitize(raw)
}
