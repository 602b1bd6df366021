package readability

import (
	"net/url"

	"golang.org/x/net/html"
)

// Readability is an HTML parser that reads and extracts the main content and
// metadata of a document. A value is single-use: construct it with New, call
// Parse or ParseBytes once, then discard it.
type Readability struct {
	Options

	doc         *html.Node
	documentURI *url.URL

	articleTitle  string
	articleByline string

	attempts []attempt
	flags    flags

	// scores holds per-node state outside the DOM tree itself, keyed by
	// node identity. Entries are purged when a node is removed through
	// removeNodes, removeAndGetNext or forgetNode; a node detached by
	// replaceNode keeps its entry until the map is reset for the next attempt.
	scores map[*html.Node]*nodeScore

	rules []SiteRule

	parsed bool
}

// New returns a Readability configured with the documented defaults,
// optionally overridden by opts.
func New(opts ...Option) *Readability {
	r := &Readability{
		Options: defaultOptions(),
		scores:  make(map[*html.Node]*nodeScore),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithSiteRules attaches site-specific extension hooks consulted by the
// orchestrator at its four extension points. The registry is empty by
// default; no concrete rule ships with this package.
func WithSiteRules(rules ...SiteRule) Option {
	return func(r *Readability) { r.rules = rules }
}

func (r *Readability) reset() {
	r.articleTitle = ""
	r.articleByline = ""
	r.attempts = nil
	r.flags = flags{stripUnlikelys: true, useWeightClasses: true, cleanConditionally: true}
	r.scores = make(map[*html.Node]*nodeScore)
}

// state returns this node's external state, creating it if absent.
func (r *Readability) state(node *html.Node) *nodeScore {
	st, ok := r.scores[node]
	if !ok {
		st = &nodeScore{}
		r.scores[node] = st
	}
	return st
}

func (r *Readability) hasContentScore(node *html.Node) bool {
	_, ok := r.scores[node]
	return ok
}

func (r *Readability) getContentScore(node *html.Node) float64 {
	if st, ok := r.scores[node]; ok {
		return st.score
	}
	return 0
}

func (r *Readability) setContentScore(node *html.Node, score float64) {
	r.state(node).score = score
}

func (r *Readability) isReadabilityDataTable(node *html.Node) bool {
	if st, ok := r.scores[node]; ok {
		return st.isDataCell
	}
	return false
}

func (r *Readability) setReadabilityDataTable(node *html.Node, isDataTable bool) {
	r.state(node).isDataCell = isDataTable
}

// forgetNode purges a removed node (and, since the map is keyed by pointer
// identity alone, any of its descendants that were scored) from the
// identity map, so the map does not keep entries for nodes that have left
// the tree.
func (r *Readability) forgetNode(node *html.Node) {
	delete(r.scores, node)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		r.forgetNode(child)
	}
}
