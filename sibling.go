package readability

import (
	"math"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// mergeSiblings walks topCandidate's siblings and folds in the ones that
// look related: a scored sibling reaching a threshold proportional to
// topCandidate's own score (a sibling sharing topCandidate's class gets a
// bonus toward it), or a <p> that is long with low link density (or short,
// link-free, and ends in a sentence). Everything folded in is returned as children of a new <div>.
func (r *Readability) mergeSiblings(topCandidate *html.Node) *html.Node {
	articleContent := dom.CreateElement("div")
	siblingScoreThreshold := math.Max(10, r.getContentScore(topCandidate)*0.2)

	topCandidateScore := r.getContentScore(topCandidate)
	topCandidateClassName := dom.ClassName(topCandidate)

	parentOfTopCandidate := topCandidate.Parent
	siblings := dom.Children(parentOfTopCandidate)

	for _, sibling := range siblings {
		appendNode := false

		if sibling == topCandidate {
			appendNode = true
		} else {
			contentBonus := 0.0

			if dom.ClassName(sibling) == topCandidateClassName && topCandidateClassName != "" {
				contentBonus += topCandidateScore * 0.2
			}

			if r.hasContentScore(sibling) && r.getContentScore(sibling)+contentBonus >= siblingScoreThreshold {
				appendNode = true
			} else if dom.TagName(sibling) == "p" {
				linkDensity := r.getLinkDensity(sibling)
				nodeContent := r.getInnerText(sibling, true)
				nodeLength := len(nodeContent)

				if nodeLength > 80 && linkDensity < 0.25 {
					appendNode = true
				} else if nodeLength < 80 && nodeLength > 0 && linkDensity == 0 && rxSentencePeriod.MatchString(nodeContent) {
					appendNode = true
				}
			}
		}

		if appendNode {
			// Non-block-level elements (FORM, TD, ...) are turned into DIVs
			// so a later pass doesn't filter them out by accident.
			if indexOf(alterToDivExceptions, dom.TagName(sibling)) == -1 {
				setNodeTag(sibling, "div")
			}

			appendChild(articleContent, sibling)
		}
	}

	return articleContent
}
