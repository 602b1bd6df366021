package readability

import (
	"strconv"
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// fixLazyImages promotes lazy-loading attributes (data-src, data-srcset,
// data-original, data-url, ...) to their real src/srcset counterparts on
// <img>, <picture> and <figure> elements whose src is missing, is a tiny
// base64 placeholder spacer, or whose class mentions "lazy". A src candidate
// is only promoted when it looks like an image URL (jpg, png, webp, gif).
func (r *Readability) fixLazyImages(articleContent *html.Node) {
	tags := r.getAllNodesWithTag(articleContent, "img", "picture", "figure")

	r.forEachNode(tags, func(elem *html.Node, _ int) {
		src := dom.GetAttribute(elem, "src")
		srcset := dom.GetAttribute(elem, "srcset")
		class := strings.ToLower(dom.ClassName(elem))

		isPlaceholder := src != "" && rxLazyImagePlaceholder.MatchString(src)
		looksLikeLazyClass := strings.Contains(class, "lazy")

		if srcset == "" && (isPlaceholder || looksLikeLazyClass || src == "") {
			for _, attr := range lazyImageSrcsetAttrs {
				if value := dom.GetAttribute(elem, attr); value != "" {
					dom.SetAttribute(elem, "srcset", value)
					break
				}
			}
		}

		if isPlaceholder || looksLikeLazyClass || src == "" {
			for _, attr := range lazyImageSrcAttrs {
				if value := dom.GetAttribute(elem, attr); value != "" && rxLazyImageKeyword.MatchString(value) {
					dom.SetAttribute(elem, "src", value)
					break
				}
			}
		}
	})
}

// bestSrcsetCandidate returns the URL of the highest width/density
// descriptor in a srcset attribute value, or "" if none parse.
func bestSrcsetCandidate(srcset string) string {
	best := ""
	bestScore := -1.0

	for _, part := range strings.Split(srcset, ",") {
		m := rxSrcsetCandidate.FindStringSubmatch(strings.TrimSpace(part))
		if len(m) != 4 {
			continue
		}

		score, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}

		if score > bestScore {
			bestScore = score
			best = m[1]
		}
	}

	return best
}
