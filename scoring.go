package readability

import (
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// initializeNode seeds a node's content score from its class weight and a
// small per-tag adjustment, then records it in the identity map.
func (r *Readability) initializeNode(node *html.Node) {
	contentScore := float64(r.getClassWeight(node))

	switch dom.TagName(node) {
	case "div":
		contentScore += 5
	case "pre", "td", "blockquote":
		contentScore += 3
	case "address", "ol", "ul", "dl", "dd", "dt", "li", "form":
		contentScore -= 3
	case "h1", "h2", "h3", "h4", "h5", "h6", "th":
		contentScore -= 5
	}

	r.setContentScore(node, contentScore)
}

// getClassWeight scores an element's class/id combination. Only active
// while flags.useWeightClasses is set, per the relaxation lattice.
func (r *Readability) getClassWeight(node *html.Node) int {
	if !r.flags.useWeightClasses {
		return 0
	}

	weight := 0

	if nodeClassName := dom.ClassName(node); nodeClassName != "" {
		if rxNegative.MatchString(nodeClassName) {
			weight -= 25
		}
		if rxPositive.MatchString(nodeClassName) {
			weight += 25
		}
	}

	if nodeID := dom.ID(node); nodeID != "" {
		if rxNegative.MatchString(nodeID) {
			weight -= 25
		}
		if rxPositive.MatchString(nodeID) {
			weight += 25
		}
	}

	return weight
}

// getLinkDensity is the fraction of a node's text that sits inside <a>
// elements.
func (r *Readability) getLinkDensity(element *html.Node) float64 {
	textLength := len(r.getInnerText(element, true))
	if textLength == 0 {
		return 0
	}

	linkLength := 0
	r.forEachNode(dom.GetElementsByTagName(element, "a"), func(link *html.Node, _ int) {
		href := dom.GetAttribute(link, "href")
		coefficient := 1.0
		if href != "" && strings.HasPrefix(href, "#") {
			coefficient = 0.3
		}
		linkLength += int(float64(len(r.getInnerText(link, true))) * coefficient)
	})

	return float64(linkLength) / float64(textLength)
}

// getInnerText returns a node's text, trimmed and (when normalizeSpaces is
// set) with runs of internal whitespace collapsed to a single space.
func (r *Readability) getInnerText(node *html.Node, normalizeSpaces bool) string {
	text := strings.TrimSpace(dom.TextContent(node))
	if normalizeSpaces {
		text = rxNormalize.ReplaceAllString(text, "\x20")
	}
	return text
}

func (r *Readability) getCharCount(node *html.Node, s string) int {
	return strings.Count(r.getInnerText(node, true), s)
}
