package readability

import (
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// isProbablyVisible determines whether a node should be considered part of
// the visible page. Beyond a plain display:none/hidden-attribute check,
// this also honors aria-hidden and visibility:hidden. aria-hidden="true" is
// ignored on two kinds of node that pages routinely mark aria-hidden yet
// that still carry content worth keeping: a node whose class contains
// "fallback-image", and MathML/mwe-math markup (see isMweMath). These
// exceptions do not apply to display:none, visibility:hidden or the hidden
// attribute.
func (r *Readability) isProbablyVisible(node *html.Node) bool {
	style := dom.GetAttribute(node, "style")
	displayNone := style != "" && rxDisplayNone.MatchString(style)
	visibilityHidden := style != "" && rxVisibilityHidden.MatchString(style)
	hiddenAttr := dom.HasAttribute(node, "hidden")

	ariaHidden := dom.GetAttribute(node, "aria-hidden") == "true"

	if ariaHidden {
		class := dom.ClassName(node)
		if strings.Contains(class, "fallback-image") || isMweMath(node) {
			ariaHidden = false
		}
	}

	return !displayNone && !visibilityHidden && !hiddenAttr && !ariaHidden
}

// isMweMath reports whether node itself is MediaWiki-style math markup (a
// class containing "mwe-math", such as "mwe-math-fallback-image-inline", or a
// <math> element), which is commonly aria-hidden even though it contains the
// renderable content. Ancestors are not checked.
func isMweMath(node *html.Node) bool {
	class := dom.ClassName(node)
	return strings.Contains(class, "mwe-math") || dom.TagName(node) == "math"
}
