package readability

import (
	"sort"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// minimumTopCandidates is how many of the top-scoring candidates must share
// a common ancestor before that ancestor is preferred as a better top
// candidate than the single highest scorer.
const minimumTopCandidates = 3

// grabArticle scores and selects the node most likely to hold the article,
// merges in related siblings, and retries with a relaxed flag set (fewer
// restrictions) whenever the result falls under CharThreshold. It returns
// nil only if every attempt, including the last-resort longest one,
// produced no text at all.
func (r *Readability) grabArticle() *html.Node {
	for {
		doc := cloneNode(r.doc)
		r.scores = make(map[*html.Node]*nodeScore)

		var page *html.Node
		if bodies := dom.GetElementsByTagName(doc, "body"); len(bodies) > 0 {
			page = bodies[0]
		}

		if page == nil {
			return nil
		}

		elementsToScore := r.prepareNodes(page)
		candidates := r.scoreElements(elementsToScore)

		topCandidate, neededToCreateTopCandidate := r.selectTopCandidate(candidates, page)

		articleContent := r.mergeSiblings(topCandidate)

		r.finalizeTopCandidateWrapper(articleContent, neededToCreateTopCandidate)

		r.prepArticle(articleContent)

		textLength := len(r.getInnerText(articleContent, true))
		if textLength >= r.CharThreshold {
			return articleContent
		}

		r.attempts = append(r.attempts, attempt{content: articleContent, textLength: textLength})

		if r.flags.stripUnlikelys {
			r.flags.stripUnlikelys = false
			continue
		}
		if r.flags.useWeightClasses {
			r.flags.useWeightClasses = false
			continue
		}
		if r.flags.cleanConditionally {
			r.flags.cleanConditionally = false
			continue
		}

		sort.Slice(r.attempts, func(i, j int) bool {
			return r.attempts[i].textLength > r.attempts[j].textLength
		})

		if r.attempts[0].textLength == 0 {
			return nil
		}

		return r.attempts[0].content
	}
}

// prepareNodes walks the document depth-first, dropping hidden/byline/
// unlikely-candidate/empty nodes, converting loosely-structured <div>s into
// <p>s, and collecting the set of elements eligible for scoring.
func (r *Readability) prepareNodes(page *html.Node) []*html.Node {
	var elementsToScore []*html.Node
	node := documentElementOf(page)

	for node != nil {
		matchString := dom.ClassName(node) + "\x20" + dom.ID(node)

		if !r.isProbablyVisible(node) {
			node = r.removeAndGetNext(node)
			continue
		}

		if r.checkByline(node, matchString) {
			node = r.removeAndGetNext(node)
			continue
		}

		nodeTagName := dom.TagName(node)

		if r.flags.stripUnlikelys {
			if rxUnlikelyCandidates.MatchString(matchString) &&
				!rxOkMaybeItsACandidate.MatchString(matchString) &&
				!r.hasAncestorTag(node, "table", 3, nil) &&
				nodeTagName != "body" &&
				nodeTagName != "a" {
				node = r.removeAndGetNext(node)
				continue
			}
		}

		switch nodeTagName {
		case "div", "section", "header", "footer", "aside":
			if r.isElementWithoutContent(node) {
				node = r.removeAndGetNext(node)
				continue
			}
		}

		if indexOf(r.TagsToScore, nodeTagName) != -1 {
			elementsToScore = append(elementsToScore, node)
		}

		if nodeTagName == "div" {
			replacement, scored := r.convertDivToParagraph(node)
			node = replacement
			if scored {
				elementsToScore = append(elementsToScore, node)
			}
		}

		node = r.getNextNode(node, false)
	}

	return elementsToScore
}

// documentElementOf returns the root element of the tree page belongs to.
func documentElementOf(page *html.Node) *html.Node {
	node := page
	for node.Parent != nil {
		node = node.Parent
	}
	if node.Type == html.DocumentNode {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				return c
			}
		}
	}
	return node
}

// scoreElements assigns a content score to every scoreable element's
// ancestors (up to five levels up), then scales the resulting candidate
// scores by (1 - link density).
func (r *Readability) scoreElements(elementsToScore []*html.Node) []*html.Node {
	var candidates []*html.Node

	r.forEachNode(elementsToScore, func(elementToScore *html.Node, _ int) {
		if elementToScore.Parent == nil || dom.TagName(elementToScore.Parent) == "" {
			return
		}

		innerText := r.getInnerText(elementToScore, true)
		if len(innerText) < 25 {
			return
		}

		ancestors := r.getNodeAncestors(elementToScore, 5)
		if len(ancestors) == 0 {
			return
		}

		contentScore := 1
		contentScore += countRune(innerText, ',')
		if bonus := len(innerText) / 100; bonus > 0 {
			if bonus > 3 {
				bonus = 3
			}
			contentScore += bonus
		}

		r.forEachNode(ancestors, func(ancestor *html.Node, level int) {
			if dom.TagName(ancestor) == "" || ancestor.Parent == nil || ancestor.Parent.Type != html.ElementNode {
				return
			}

			if !r.hasContentScore(ancestor) {
				r.initializeNode(ancestor)
				candidates = append(candidates, ancestor)
			}

			scoreDivider := 1
			switch level {
			case 0:
				scoreDivider = 1
			case 1:
				scoreDivider = 2
			default:
				scoreDivider = level * 3
			}

			ancestorScore := r.getContentScore(ancestor) + float64(contentScore)/float64(scoreDivider)
			r.setContentScore(ancestor, ancestorScore)
		})
	})

	for _, candidate := range candidates {
		r.setContentScore(candidate, r.getContentScore(candidate)*(1-r.getLinkDensity(candidate)))
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return r.getContentScore(candidates[i]) > r.getContentScore(candidates[j])
	})

	return candidates
}

func countRune(s string, r rune) int {
	count := 0
	for _, c := range s {
		if c == r {
			count++
		}
	}
	return count
}

// selectTopCandidate picks the best single node to build the article around.
// When several of the top N candidates are close in score and share a
// common ancestor, that ancestor is preferred; the result is then replaced by
// the first scored parent whose score exceeds the previous one (the walk
// stops at a parent scoring under a third of the starting score), and
// collapsed to its parent while it remains an only child.
func (r *Readability) selectTopCandidate(candidates []*html.Node, page *html.Node) (*html.Node, bool) {
	var topCandidates []*html.Node
	if len(candidates) > r.NTopCandidates {
		topCandidates = candidates[:r.NTopCandidates]
	} else {
		topCandidates = candidates
	}

	var topCandidate *html.Node
	if len(topCandidates) > 0 {
		topCandidate = topCandidates[0]
	}

	if topCandidate == nil || dom.TagName(topCandidate) == "body" {
		topCandidate = dom.CreateElement("div")
		kids := dom.ChildNodes(page)
		for _, kid := range kids {
			appendChild(topCandidate, kid)
		}
		appendChild(page, topCandidate)
		r.initializeNode(topCandidate)
		return topCandidate, true
	}

	topCandidateScore := r.getContentScore(topCandidate)
	var alternativeCandidateAncestors [][]*html.Node
	for i := 1; i < len(topCandidates); i++ {
		if topCandidateScore != 0 && r.getContentScore(topCandidates[i])/topCandidateScore >= 0.75 {
			alternativeCandidateAncestors = append(alternativeCandidateAncestors, r.getNodeAncestors(topCandidates[i], 0))
		}
	}

	if len(alternativeCandidateAncestors) >= minimumTopCandidates {
		parentOfTopCandidate := topCandidate.Parent
		for parentOfTopCandidate != nil && dom.TagName(parentOfTopCandidate) != "body" {
			listContainingThisAncestor := 0
			for i := 0; i < len(alternativeCandidateAncestors) && listContainingThisAncestor < minimumTopCandidates; i++ {
				if includeNode(alternativeCandidateAncestors[i], parentOfTopCandidate) {
					listContainingThisAncestor++
				}
			}

			if listContainingThisAncestor >= minimumTopCandidates {
				topCandidate = parentOfTopCandidate
				break
			}

			parentOfTopCandidate = parentOfTopCandidate.Parent
		}
	}

	if !r.hasContentScore(topCandidate) {
		r.initializeNode(topCandidate)
	}

	// Parents of candidates can themselves accrue a score from the bonus
	// system; move up to the first parent whose score rises above the last
	// one seen, since that is a sign more content is lurking in a wider
	// container. Unscored parents are skipped.
	parentOfTopCandidate := topCandidate.Parent
	lastScore := r.getContentScore(topCandidate)
	scoreThreshold := lastScore / 3.0

	for parentOfTopCandidate != nil && dom.TagName(parentOfTopCandidate) != "body" {
		if !r.hasContentScore(parentOfTopCandidate) {
			parentOfTopCandidate = parentOfTopCandidate.Parent
			continue
		}

		parentScore := r.getContentScore(parentOfTopCandidate)
		if parentScore < scoreThreshold {
			break
		}

		if parentScore > lastScore {
			topCandidate = parentOfTopCandidate
			break
		}

		lastScore = parentScore
		parentOfTopCandidate = parentOfTopCandidate.Parent
	}

	// If the top candidate is an only child, use its parent instead, so the
	// sibling-merge pass below has siblings to actually look at.
	parentOfTopCandidate = topCandidate.Parent
	for parentOfTopCandidate != nil && dom.TagName(parentOfTopCandidate) != "body" && len(dom.Children(parentOfTopCandidate)) == 1 {
		topCandidate = parentOfTopCandidate
		parentOfTopCandidate = topCandidate.Parent
	}

	if !r.hasContentScore(topCandidate) {
		r.initializeNode(topCandidate)
	}

	return topCandidate, false
}

// finalizeTopCandidateWrapper assigns the standard readability-page-1/page
// id and class to the wrapper, whether articleContent's first child already
// is the synthetic top-candidate div (the neededToCreateTopCandidate case)
// or a fresh wrapper div needs to be created around the merged siblings.
func (r *Readability) finalizeTopCandidateWrapper(articleContent *html.Node, neededToCreateTopCandidate bool) {
	if neededToCreateTopCandidate {
		if firstChild := dom.FirstElementChild(articleContent); firstChild != nil && dom.TagName(firstChild) == "div" {
			dom.SetAttribute(firstChild, "id", "readability-page-1")
			dom.SetAttribute(firstChild, "class", "page")
		}
		return
	}

	div := dom.CreateElement("div")
	dom.SetAttribute(div, "id", "readability-page-1")
	dom.SetAttribute(div, "class", "page")

	for _, child := range dom.ChildNodes(articleContent) {
		appendChild(div, child)
	}

	appendChild(articleContent, div)
}
