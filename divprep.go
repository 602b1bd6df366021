package readability

import (
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// convertDivToParagraph wraps a <div>'s phrasing-content runs in <p>
// elements, and either unwraps a div that contains nothing but a single
// low-link-density <p>, or retags the div itself to <p> when it has no
// block-level children at all. Returns the replacement node to resume
// traversal from (which may be the original node) and whether it should be
// added to elementsToScore.
func (r *Readability) convertDivToParagraph(node *html.Node) (*html.Node, bool) {
	var p *html.Node
	childNode := node.FirstChild

	for childNode != nil {
		nextSibling := childNode.NextSibling

		if r.isPhrasingContent(childNode) {
			if p != nil {
				appendChild(p, childNode)
			} else if !r.isWhitespace(childNode) {
				p = dom.CreateElement("p")
				appendChild(p, cloneNode(childNode))
				replaceNode(childNode, p)
			}
		} else if p != nil {
			for p.LastChild != nil && r.isWhitespace(p.LastChild) {
				p.RemoveChild(p.LastChild)
			}
			p = nil
		}

		childNode = nextSibling
	}

	// Sites enclosing each paragraph in a DIV with nothing else inside can
	// be safely flattened: a DIV containing only a single <p> and no text
	// content of its own is, in practice, just a paragraph.
	if r.hasSingleTagInsideElement(node, "p") && r.getLinkDensity(node) < 0.25 {
		newNode := dom.Children(node)[0]
		replaceNode(node, newNode)
		return newNode, true
	}

	if !r.hasChildBlockElement(node) {
		setNodeTag(node, "p")
		return node, true
	}

	return node, false
}
