package readability

import (
	"math"
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// clean removes every descendant of node with the given tag, except an
// embed-like element (object/embed/iframe) whose attributes or, for
// <object>, inner HTML match the allowed video regex.
func (r *Readability) clean(node *html.Node, tag string) {
	isEmbed := indexOf([]string{"object", "embed", "iframe"}, tag) != -1
	allowed := r.AllowedVideoRegex
	if allowed == nil {
		allowed = rxVideos
	}

	r.removeNodes(dom.GetElementsByTagName(node, tag), func(element *html.Node) bool {
		if isEmbed {
			for _, attr := range element.Attr {
				if allowed.MatchString(attr.Val) {
					return false
				}
			}

			if dom.TagName(element) == "object" && allowed.MatchString(dom.InnerHTML(element)) {
				return false
			}
		}

		return true
	})
}

// cleanConditionally removes descendants of element with the given tag when
// they look "fishy": low comma count, high link density, few paragraphs
// relative to other elements, and so on. Only active while
// flags.cleanConditionally is set.
func (r *Readability) cleanConditionally(element *html.Node, tag string) {
	if !r.flags.cleanConditionally {
		return
	}

	isList := tag == "ul" || tag == "ol"

	r.removeNodes(dom.GetElementsByTagName(element, tag), func(node *html.Node) bool {
		if tag == "table" && r.isReadabilityDataTable(node) {
			return false
		}

		if r.hasAncestorTag(node, "table", -1, r.isReadabilityDataTable) {
			return false
		}

		weight := r.getClassWeight(node)
		if weight < 0 {
			return true
		}

		if r.getCharCount(node, ",") < 10 {
			p := float64(len(dom.GetElementsByTagName(node, "p")))
			img := float64(len(dom.GetElementsByTagName(node, "img")))
			li := float64(len(dom.GetElementsByTagName(node, "li")) - 100)
			input := float64(len(dom.GetElementsByTagName(node, "input")))

			embedCount := 0
			embeds := r.concatNodeLists(
				dom.GetElementsByTagName(node, "object"),
				dom.GetElementsByTagName(node, "embed"),
				dom.GetElementsByTagName(node, "iframe"),
			)

			allowed := r.AllowedVideoRegex
			if allowed == nil {
				allowed = rxVideos
			}

			for _, embed := range embeds {
				for _, attr := range embed.Attr {
					if allowed.MatchString(attr.Val) {
						return false
					}
				}

				if dom.TagName(embed) == "object" && allowed.MatchString(dom.InnerHTML(embed)) {
					return false
				}

				embedCount++
			}

			linkDensity := r.getLinkDensity(node)
			contentLength := len(r.getInnerText(node, true))
			linkDensityThreshold := 0.2 + r.LinkDensityModifier

			return (img > 1 && p/img < 0.5 && !r.hasAncestorTag(node, "figure", 3, nil)) ||
				(!isList && li > p) ||
				(input > math.Floor(p/3)) ||
				(!isList && contentLength < 25 && (img == 0 || img > 2) && !r.hasAncestorTag(node, "figure", 3, nil)) ||
				(!isList && weight < 25 && linkDensity > linkDensityThreshold) ||
				(weight >= 25 && linkDensity > 0.5+r.LinkDensityModifier) ||
				((embedCount == 1 && contentLength < 75) || embedCount > 1)
		}

		return false
	})
}

// cleanMatchedNodes removes elements between e and the end of its subtree
// whose classname+id combination satisfies filter.
func (r *Readability) cleanMatchedNodes(e *html.Node, filter func(*html.Node, string) bool) {
	endMarker := r.getNextNode(e, true)
	next := r.getNextNode(e, false)

	for next != nil && next != endMarker {
		if filter != nil && filter(next, dom.ClassName(next)+"\x20"+dom.ID(next)) {
			next = r.removeAndGetNext(next)
		} else {
			next = r.getNextNode(next, false)
		}
	}
}

// cleanHeaders removes h1/h2 elements whose class weight is negative.
func (r *Readability) cleanHeaders(e *html.Node) {
	for headerIndex := 1; headerIndex < 3; headerIndex++ {
		headerTag := []string{"h1", "h2"}[headerIndex-1]
		r.removeNodes(dom.GetElementsByTagName(e, headerTag), func(header *html.Node) bool {
			return r.getClassWeight(header) < 0
		})
	}
}

// cleanStyles strips presentational attributes (and, on legacy elements,
// width/height) from node and its descendants.
func (r *Readability) cleanStyles(node *html.Node) {
	if node == nil || dom.TagName(node) == "svg" {
		return
	}

	for _, attr := range presentationalAttributes {
		dom.RemoveAttribute(node, attr)
	}

	if indexOf(deprecatedSizeAttributeElems, dom.TagName(node)) != -1 {
		dom.RemoveAttribute(node, "width")
		dom.RemoveAttribute(node, "height")
	}

	for child := dom.FirstElementChild(node); child != nil; child = dom.NextElementSibling(child) {
		r.cleanStyles(child)
	}
}

// cleanClasses removes class attributes from node and its descendants,
// except values that appear in ClassesToPreserve (and all of them, when
// KeepClasses is set).
func (r *Readability) cleanClasses(node *html.Node) {
	if r.KeepClasses {
		return
	}

	var preserved []string
	for _, class := range strings.Fields(dom.ClassName(node)) {
		if indexOf(r.ClassesToPreserve, class) != -1 {
			preserved = append(preserved, class)
		}
	}

	if len(preserved) > 0 {
		dom.SetAttribute(node, "class", strings.Join(preserved, "\x20"))
	} else {
		dom.RemoveAttribute(node, "class")
	}

	for child := dom.FirstElementChild(node); child != nil; child = dom.NextElementSibling(child) {
		r.cleanClasses(child)
	}
}

func (r *Readability) hasSingleTagInsideElement(element *html.Node, tag string) bool {
	childs := dom.Children(element)
	if len(childs) != 1 || dom.TagName(childs[0]) != tag {
		return false
	}

	return !r.someNode(dom.ChildNodes(element), func(node *html.Node) bool {
		return node.Type == html.TextNode && rxHasContent.MatchString(dom.TextContent(node))
	})
}

func (r *Readability) isElementWithoutContent(node *html.Node) bool {
	brs := dom.GetElementsByTagName(node, "br")
	hrs := dom.GetElementsByTagName(node, "hr")
	childs := dom.Children(node)

	return node.Type == html.ElementNode &&
		strings.TrimSpace(dom.TextContent(node)) == "" &&
		(len(childs) == 0 || len(childs) == len(brs)+len(hrs))
}

func (r *Readability) hasChildBlockElement(element *html.Node) bool {
	return r.someNode(dom.ChildNodes(element), func(node *html.Node) bool {
		return indexOf(divToPElems, dom.TagName(node)) != -1 || r.hasChildBlockElement(node)
	})
}

// isPhrasingContent reports whether node qualifies as phrasing content.
// See https://developer.mozilla.org/en-US/docs/Web/Guide/HTML/Content_categories#Phrasing_content.
func (r *Readability) isPhrasingContent(node *html.Node) bool {
	if node.Type == html.TextNode {
		return true
	}

	tag := dom.TagName(node)
	if indexOf(phrasingElems, tag) != -1 {
		return true
	}

	return (tag == "a" || tag == "del" || tag == "ins") && r.everyNode(dom.ChildNodes(node), r.isPhrasingContent)
}

func (r *Readability) isWhitespace(node *html.Node) bool {
	if node.Type == html.TextNode && strings.TrimSpace(dom.TextContent(node)) == "" {
		return true
	}
	return node.Type == html.ElementNode && dom.TagName(node) == "br"
}

// isValidByline reports whether a candidate byline string is a plausible
// length for an author credit line.
func (r *Readability) isValidByline(byline string) bool {
	byline = strings.TrimSpace(byline)
	return len(byline) > 0 && len(byline) < 100
}

// checkByline records node as the article byline (once) if it looks like
// one, and reports whether it matched.
func (r *Readability) checkByline(node *html.Node, matchString string) bool {
	if r.articleByline != "" {
		return false
	}

	rel := dom.GetAttribute(node, "rel")
	itemprop := dom.GetAttribute(node, "itemprop")
	nodeText := dom.TextContent(node)

	if (rel == "author" || strings.Contains(itemprop, "author") || rxByline.MatchString(matchString)) && r.isValidByline(nodeText) {
		nodeText = strings.TrimSpace(nodeText)
		nodeText = strings.Join(strings.Fields(nodeText), "\x20")
		r.articleByline = nodeText
		return true
	}

	return false
}
