package readability

import (
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// removeNodes iterates over list, calling the optional filter on each node,
// and removes the node if filter returns true (or filter is nil). Nodes are
// also purged from the identity map.
func (r *Readability) removeNodes(list []*html.Node, filter func(*html.Node) bool) {
	for i := len(list) - 1; i >= 0; i-- {
		node := list[i]
		parent := node.Parent

		if parent != nil && (filter == nil || filter(node)) {
			parent.RemoveChild(node)
			r.forgetNode(node)
		}
	}
}

func (r *Readability) replaceNodeTags(list []*html.Node, newTagName string) {
	for i := len(list) - 1; i >= 0; i-- {
		setNodeTag(list[i], newTagName)
	}
}

func (r *Readability) forEachNode(list []*html.Node, fn func(*html.Node, int)) {
	for idx, node := range list {
		fn(node, idx)
	}
}

func (r *Readability) someNode(list []*html.Node, fn func(*html.Node) bool) bool {
	for _, node := range list {
		if fn(node) {
			return true
		}
	}
	return false
}

func (r *Readability) everyNode(list []*html.Node, fn func(*html.Node) bool) bool {
	for _, node := range list {
		if !fn(node) {
			return false
		}
	}
	return true
}

func (r *Readability) concatNodeLists(lists ...[]*html.Node) []*html.Node {
	var result []*html.Node
	for _, list := range lists {
		result = append(result, list...)
	}
	return result
}

func (r *Readability) getAllNodesWithTag(node *html.Node, tagNames ...string) []*html.Node {
	var list []*html.Node
	for _, tag := range tagNames {
		list = append(list, dom.GetElementsByTagName(node, tag)...)
	}
	return list
}

// nextElement finds the next element starting from node, skipping
// whitespace-only text nodes in between.
func (r *Readability) nextElement(node *html.Node) *html.Node {
	next := node
	for next != nil && next.Type != html.ElementNode && rxWhitespace.MatchString(dom.TextContent(next)) {
		next = next.NextSibling
	}
	return next
}

// getNextNode traverses the tree depth-first, starting at node. Pass true
// for ignoreSelfAndKids when node (and its children) are about to be
// removed and the next node over is wanted instead.
func (r *Readability) getNextNode(node *html.Node, ignoreSelfAndKids bool) *html.Node {
	if firstChild := dom.FirstElementChild(node); !ignoreSelfAndKids && firstChild != nil {
		return firstChild
	}

	if sibling := dom.NextElementSibling(node); sibling != nil {
		return sibling
	}

	for {
		node = node.Parent
		if node == nil || dom.NextElementSibling(node) != nil {
			break
		}
	}

	if node != nil {
		return dom.NextElementSibling(node)
	}

	return nil
}

func (r *Readability) removeAndGetNext(node *html.Node) *html.Node {
	next := r.getNextNode(node, true)

	if node.Parent != nil {
		node.Parent.RemoveChild(node)
		r.forgetNode(node)
	}

	return next
}

// getNodeAncestors returns node's direct parent and successive grandparents.
// maxDepth of 0 means unbounded.
func (r *Readability) getNodeAncestors(node *html.Node, maxDepth int) []*html.Node {
	level := 0
	var ancestors []*html.Node

	for node.Parent != nil {
		level++
		ancestors = append(ancestors, node.Parent)

		if maxDepth > 0 && level == maxDepth {
			break
		}

		node = node.Parent
	}

	return ancestors
}

// hasAncestorTag checks whether node has an ancestor with the given tag
// name. maxDepth <= 0 means unbounded.
func (r *Readability) hasAncestorTag(node *html.Node, tag string, maxDepth int, filter func(*html.Node) bool) bool {
	depth := 0

	for node.Parent != nil {
		if maxDepth > 0 && depth > maxDepth {
			return false
		}

		if dom.TagName(node.Parent) == tag && (filter == nil || filter(node.Parent)) {
			return true
		}

		node = node.Parent
		depth++
	}

	return false
}

func includeNode(list []*html.Node, node *html.Node) bool {
	for _, n := range list {
		if n == node {
			return true
		}
	}
	return false
}
