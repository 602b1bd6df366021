package readability

import (
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// prepDocument strips <style> elements, collapses <br><br> chains into
// paragraphs, and normalizes legacy <font> elements before scoring begins.
func (r *Readability) prepDocument() {
	doc := r.doc

	r.removeNodes(dom.GetElementsByTagName(doc, "style"), nil)

	if bodies := dom.GetElementsByTagName(doc, "body"); len(bodies) > 0 && bodies[0] != nil {
		r.replaceBrs(bodies[0])
	}

	r.replaceNodeTags(dom.GetElementsByTagName(doc, "font"), "span")
}

// replaceBrs replaces runs of two or more <br> elements with a single <p>,
// folding whatever phrasing content follows into that paragraph. For
// example "foo<br>bar<br> <br><br>abc" becomes "foo<br>bar<p>abc</p>".
func (r *Readability) replaceBrs(elem *html.Node) {
	r.forEachNode(r.getAllNodesWithTag(elem, "br"), func(br *html.Node, _ int) {
		next := br.NextSibling
		replaced := false

		for {
			next = r.nextElement(next)

			if next == nil || dom.TagName(next) != "br" {
				break
			}

			replaced = true
			brSibling := next.NextSibling
			next.Parent.RemoveChild(next)
			next = brSibling
		}

		if !replaced {
			return
		}

		p := dom.CreateElement("p")
		replaceNode(br, p)

		next = p.NextSibling
		for next != nil {
			if dom.TagName(next) == "br" {
				if nextElem := r.nextElement(next.NextSibling); nextElem != nil && dom.TagName(nextElem) == "br" {
					break
				}
			}

			if !r.isPhrasingContent(next) {
				break
			}

			sibling := next.NextSibling
			appendChild(p, next)
			next = sibling
		}

		for p.LastChild != nil && r.isWhitespace(p.LastChild) {
			p.RemoveChild(p.LastChild)
		}

		if dom.TagName(p.Parent) == "p" {
			setNodeTag(p.Parent, "div")
		}
	})
}

// removeScripts removes <script> and <noscript> elements from doc.
func (r *Readability) removeScripts(doc *html.Node) {
	r.removeNodes(dom.GetElementsByTagName(doc, "script"), nil)
	r.removeNodes(dom.GetElementsByTagName(doc, "noscript"), nil)
}
