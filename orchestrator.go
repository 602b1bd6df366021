package readability

import (
	"io"
	"math"
	"net/url"
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// Parse parses the given HTML text and extracts its main content and
// metadata. baseURL is used to resolve relative links and images; it may be
// empty, in which case relative URIs are left as-is. A Readability value may
// only be parsed once.
func (r *Readability) Parse(source, baseURL string) (Result, error) {
	if r.parsed {
		return Result{}, newParseError("Parse", ErrAlreadyParsed, nil)
	}
	r.parsed = true

	r.reset()

	if baseURL != "" {
		parsed, err := url.Parse(baseURL)
		if err != nil {
			return Result{}, newParseError("Parse", ErrParsingFailed, err)
		}
		r.documentURI = parsed
	}

	var activeRules []SiteRule
	for _, rule := range r.rules {
		if rule.Matches(baseURL) {
			activeRules = append(activeRules, rule)
		}
	}
	r.rules = activeRules

	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return Result{}, newParseError("Parse", ErrParsingFailed, err)
	}
	r.doc = doc

	if len(dom.GetElementsByTagName(r.doc, "body")) == 0 {
		return Result{}, newParseError("Parse", ErrInvalidHTML, nil)
	}

	if r.MaxElemsToParse > 0 {
		if numTags := len(dom.GetElementsByTagName(r.doc, "*")); numTags > r.MaxElemsToParse {
			return Result{}, newParseError("Parse", ErrParsingFailed, nil)
		}
	}

	r.removeScripts(r.doc)
	r.prepDocument()

	metadata := r.getArticleMetadata()
	r.articleTitle = metadata.Title

	for _, rule := range r.rules {
		if bo, ok := rule.(BylineOverrider); ok {
			if byline, override := bo.OverrideByline(r.articleByline); override {
				r.articleByline = byline
			}
		}
	}

	articleContent := r.grabArticle()

	finalHTMLContent := ""
	finalTextContent := ""
	var readableNode *html.Node

	if articleContent != nil {
		for _, rule := range r.rules {
			if uc, ok := rule.(UnwantedCleaner); ok {
				uc.CleanUnwanted(articleContent)
			}
		}

		r.postProcessContent(articleContent)

		if metadata.Excerpt == "" {
			if paragraphs := dom.GetElementsByTagName(articleContent, "p"); len(paragraphs) > 0 {
				metadata.Excerpt = strings.TrimSpace(dom.TextContent(paragraphs[0]))
			}
		}

		readableNode = dom.FirstElementChild(articleContent)
		finalHTMLContent = r.scrubOutputHTML(articleContent)
		finalTextContent = strings.TrimSpace(dom.TextContent(articleContent))
	}

	finalByline := metadata.Byline
	if finalByline == "" {
		finalByline = r.articleByline
	}

	if articleContent == nil {
		return Result{}, newParseError("Parse", ErrNoContent, nil)
	}

	return Result{
		Title:         r.articleTitle,
		Byline:        finalByline,
		Dir:           metadata.Dir,
		Lang:          metadata.Lang,
		Node:          readableNode,
		Content:       finalHTMLContent,
		TextContent:   finalTextContent,
		Length:        len(finalTextContent),
		Excerpt:       metadata.Excerpt,
		SiteName:      metadata.SiteName,
		Image:         metadata.Image,
		Favicon:       metadata.Favicon,
		PublishedTime: metadata.PublishedTime,
		ModifiedTime:  metadata.ModifiedTime,
	}, nil
}

// ParseBytes decodes raw, possibly non-UTF-8, fetched bytes using
// contentType's declared charset (falling back to sniffing) and then Parses
// the result. It is an additive convenience; decoding happens entirely
// before the document tree is built, so it does not change Parse's
// contract.
func (r *Readability) ParseBytes(raw []byte, contentType string, baseURL string) (Result, error) {
	text, err := decodeHTMLBytes(raw, contentType)
	if err != nil {
		return Result{}, newParseError("ParseBytes", ErrParsingFailed, err)
	}
	return r.Parse(text, baseURL)
}

// IsReadable decides whether a document is likely worth extracting, without
// running the full grabArticle pipeline. It looks at <p>/<pre> elements
// (plus <div> wrapping <br> chains) and accumulates a score from the
// visible, non-unlikely-candidate ones that are at least 140 characters
// long.
func IsReadable(source io.Reader) bool {
	doc, err := html.Parse(source)
	if err != nil {
		return false
	}

	r := New()
	r.doc = doc

	var nodeList []*html.Node
	seen := make(map[*html.Node]struct{})
	var finder func(*html.Node)

	finder = func(node *html.Node) {
		if node.Type == html.ElementNode {
			tag := dom.TagName(node)
			if tag == "p" || tag == "pre" {
				if _, ok := seen[node]; !ok {
					nodeList = append(nodeList, node)
					seen[node] = struct{}{}
				}
			} else if tag == "br" && node.Parent != nil && dom.TagName(node.Parent) == "div" {
				if _, ok := seen[node.Parent]; !ok {
					nodeList = append(nodeList, node.Parent)
					seen[node.Parent] = struct{}{}
				}
			}
		}

		for child := node.FirstChild; child != nil; child = child.NextSibling {
			finder(child)
		}
	}

	finder(doc)

	score := 0.0

	return r.someNode(nodeList, func(node *html.Node) bool {
		if !r.isProbablyVisible(node) {
			return false
		}

		matchString := dom.ClassName(node) + "\x20" + dom.ID(node)
		if rxUnlikelyCandidates.MatchString(matchString) && !rxOkMaybeItsACandidate.MatchString(matchString) {
			return false
		}

		if dom.TagName(node) == "p" && r.hasAncestorTag(node, "li", -1, nil) {
			return false
		}

		nodeText := strings.TrimSpace(dom.TextContent(node))
		nodeTextLength := len(nodeText)
		if nodeTextLength < 140 {
			return false
		}

		score += math.Sqrt(float64(nodeTextLength - 140))
		return score > 20
	})
}
