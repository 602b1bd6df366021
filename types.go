package readability

import "golang.org/x/net/html"

// flags tracks which relaxation stage grabArticle is currently running
// under. Each failed attempt clears one flag, widest first.
type flags struct {
	stripUnlikelys     bool
	useWeightClasses   bool
	cleanConditionally bool
}

// attempt records one grabArticle pass that did not reach CharThreshold, so
// the orchestrator can fall back to the longest attempt if every pass fails.
type attempt struct {
	content    *html.Node
	textLength int
}

// nodeScore is the external state Readability keeps about a node instead of
// writing it onto the node itself. Entries are removed when their node is
// removed through removeNodes or removeAndGetNext; the whole map is reset at
// the start of every grabArticle attempt.
type nodeScore struct {
	score      float64
	isDataCell bool
}

// candidate pairs a scored node with the score it held during candidate
// selection, once link-density scaling has been applied.
type candidate struct {
	node  *html.Node
	score float64
}

// Metadata holds the values the metadata extractor resolves from JSON-LD,
// OpenGraph, Twitter Card, Dublin Core, and Parsely meta tags, plus document
// attributes such as lang/dir.
type Metadata struct {
	Title         string
	Byline        string
	Excerpt       string
	SiteName      string
	Image         string
	Favicon       string
	PublishedTime string
	ModifiedTime  string
	Lang          string
	Dir           string
}

// Result is the outcome of a successful extraction.
type Result struct {
	Title         string
	Byline        string
	Dir           string
	Lang          string
	Content       string
	TextContent   string
	Excerpt       string
	SiteName      string
	Favicon       string
	Image         string
	PublishedTime string
	ModifiedTime  string
	Length        int
	Node          *html.Node
}

// SiteRule lets a caller plug domain-specific behavior into the four
// extension points the orchestrator exposes. No concrete rule ships; the
// registry exists for callers that need one.
type SiteRule interface {
	// Matches reports whether this rule applies to the document being
	// parsed. documentURI may be empty when no base URL was supplied.
	Matches(documentURI string) bool
}

// UnwantedCleaner, BylineOverrider, PostProcessor, and Serializer are
// optional extensions a SiteRule may additionally implement.
type UnwantedCleaner interface {
	CleanUnwanted(articleContent *html.Node)
}

type BylineOverrider interface {
	OverrideByline(current string) (string, bool)
}

type PostProcessor interface {
	PostProcess(articleContent *html.Node)
}

type Serializer interface {
	Serialize(articleContent *html.Node) (string, bool)
}
