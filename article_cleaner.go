package readability

import (
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// prepArticle prepares the selected article content node for output: it
// strips inline styles, marks data tables so later passes spare them, fixes
// lazily-loaded images, removes known junk elements, collapses a redundant
// duplicate-of-the-title <h2>, runs the conditional cleaners over tables,
// lists and divs now that the easy junk is gone, and finally strips empty
// paragraphs, drops <br>s right before a <p>, and flattens single-cell
// tables into their cell.
func (r *Readability) prepArticle(articleContent *html.Node) {
	r.cleanStyles(articleContent)

	// Check for data tables before continuing, to avoid removing items in
	// those tables which will often look isolated even though they are
	// visually linked to other content-ful elements.
	r.markDataTables(articleContent)

	r.fixLazyImages(articleContent)

	r.cleanConditionally(articleContent, "form")
	r.cleanConditionally(articleContent, "fieldset")
	r.clean(articleContent, "object")
	r.clean(articleContent, "embed")
	r.clean(articleContent, "h1")
	r.clean(articleContent, "footer")
	r.clean(articleContent, "link")
	r.clean(articleContent, "aside")

	// Remove elements with "share" in their id/class combination from the
	// final top candidates, but never the top candidates themselves.
	r.forEachNode(dom.Children(articleContent), func(topCandidate *html.Node, _ int) {
		r.cleanMatchedNodes(topCandidate, func(node *html.Node, nodeClassID string) bool {
			return rxShare.MatchString(nodeClassID) && len(dom.TextContent(node)) < r.CharThreshold
		})
	})

	// A lone h2 whose text is a near-duplicate of the resolved title is
	// almost certainly being used as a page header rather than a subheading,
	// and the title is already extracted separately.
	if h2s := dom.GetElementsByTagName(articleContent, "h2"); len(h2s) == 1 {
		h2Text := dom.TextContent(h2s[0])
		if jaccardSimilarity(h2Text, r.articleTitle) > 0.5 {
			r.clean(articleContent, "h2")
		}
	}

	r.clean(articleContent, "iframe")
	r.clean(articleContent, "input")
	r.clean(articleContent, "textarea")
	r.clean(articleContent, "select")
	r.clean(articleContent, "button")
	r.cleanHeaders(articleContent)

	// Do these after the passes above, since everything above may have
	// removed junk that affects these heuristics.
	r.cleanConditionally(articleContent, "table")
	r.cleanConditionally(articleContent, "ul")
	r.cleanConditionally(articleContent, "div")

	r.removeNodes(dom.GetElementsByTagName(articleContent, "p"), func(p *html.Node) bool {
		imgCount := len(dom.GetElementsByTagName(p, "img"))
		embedCount := len(dom.GetElementsByTagName(p, "embed"))
		objectCount := len(dom.GetElementsByTagName(p, "object"))
		iframeCount := len(dom.GetElementsByTagName(p, "iframe"))
		totalCount := imgCount + embedCount + objectCount + iframeCount

		return totalCount == 0 && r.getInnerText(p, false) == ""
	})

	r.forEachNode(dom.GetElementsByTagName(articleContent, "br"), func(br *html.Node, _ int) {
		if next := r.nextElement(br.NextSibling); next != nil && dom.TagName(next) == "p" {
			br.Parent.RemoveChild(br)
			r.forgetNode(br)
		}
	})

	r.forEachNode(dom.GetElementsByTagName(articleContent, "table"), func(table *html.Node, _ int) {
		tbody := table

		if r.hasSingleTagInsideElement(table, "tbody") {
			tbody = dom.FirstElementChild(table)
		}

		if r.hasSingleTagInsideElement(tbody, "tr") {
			row := dom.FirstElementChild(tbody)

			if r.hasSingleTagInsideElement(row, "td") {
				cell := dom.FirstElementChild(row)

				newTag := "div"
				if r.everyNode(dom.ChildNodes(cell), r.isPhrasingContent) {
					newTag = "p"
				}

				setNodeTag(cell, newTag)
				replaceNode(table, cell)
			}
		}
	})
}
