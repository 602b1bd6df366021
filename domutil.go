package readability

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// The bulk of DOM access in this package goes straight through
// github.com/go-shiori/dom (tag/attribute access, selector queries,
// serialization, element creation). This file holds only the handful of
// operations specific to this algorithm that no generic DOM library
// provides: in-place tag rewriting, node cloning/replacement, absolute-URI
// resolution, and small string helpers.

func setNodeTag(node *html.Node, newTagName string) {
	if node.Type == html.ElementNode {
		node.Data = newTagName
	}
}

// cloneNode performs a full deep clone of node and its descendants,
// detached from any parent.
func cloneNode(node *html.Node) *html.Node {
	if node == nil {
		return nil
	}

	clone := &html.Node{
		Type:      node.Type,
		DataAtom:  node.DataAtom,
		Data:      node.Data,
		Namespace: node.Namespace,
		Attr:      append([]html.Attribute(nil), node.Attr...),
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		clone.AppendChild(cloneNode(child))
	}

	return clone
}

// replaceNode swaps oldNode for newNode at the same position in the tree,
// detaching oldNode.
func replaceNode(oldNode, newNode *html.Node) {
	if oldNode == nil || oldNode.Parent == nil {
		return
	}

	oldNode.Parent.InsertBefore(newNode, oldNode)
	oldNode.Parent.RemoveChild(oldNode)
}

// appendChild moves child to the end of parent's children, detaching it
// from its current parent first if it has one. This never clones: node
// identity must survive a move so the external content-score map stays
// valid for the node that was moved.
func appendChild(parent, child *html.Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	parent.AppendChild(child)
}

func indexOf(haystack []string, needle string) int {
	for i, s := range haystack {
		if s == needle {
			return i
		}
	}
	return -1
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// toAbsoluteURI resolves uri against base. A uri that is only a fragment
// reference is returned unchanged.
func toAbsoluteURI(uri string, base *url.URL) string {
	if uri == "" || base == nil {
		return uri
	}

	if strings.HasPrefix(uri, "#") {
		return uri
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	return base.ResolveReference(parsed).String()
}
