package readability

import (
	"encoding/json"
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// articleSchemaTypes lists the JSON-LD @type values treated as an article
// for the purposes of metadata extraction. JSON-LD's schema is too
// polymorphic (string or array @type, optionally @graph-wrapped) for a
// generated/static schema decoder, so this is parsed with encoding/json into
// a plain map and walked by hand; see DESIGN.md.
var articleSchemaTypes = map[string]bool{
	"article":          true,
	"newsarticle":      true,
	"blogposting":      true,
	"techarticle":      true,
	"scholarlyarticle": true,
	"report":           true,
	"webpage":          true,
}

// jsonLDMetadata is the subset of schema.org Article fields this module
// resolves out of a JSON-LD block.
type jsonLDMetadata struct {
	Title         string
	Byline        string
	Excerpt       string
	SiteName      string
	Image         string
	PublishedTime string
	ModifiedTime  string
	ok            bool
}

// getJSONLD scans <script type="application/ld+json"> elements for the
// first block describing an article-like entity.
func (r *Readability) getJSONLD(doc *html.Node) jsonLDMetadata {
	if r.DisableJSONLD {
		return jsonLDMetadata{}
	}

	scripts := dom.QuerySelectorAll(doc, `script[type="application/ld+json"]`)

	for _, script := range scripts {
		raw := strings.TrimSpace(dom.TextContent(script))
		if raw == "" {
			continue
		}

		var parsed interface{}
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			continue
		}

		for _, obj := range flattenJSONLD(parsed) {
			if md, ok := parseJSONLDArticle(obj); ok {
				return md
			}
		}
	}

	return jsonLDMetadata{}
}

// flattenJSONLD normalizes a parsed JSON-LD document (a single object, an
// array of objects, or an object with an @graph array) into a flat list of
// candidate entities.
func flattenJSONLD(parsed interface{}) []map[string]interface{} {
	var out []map[string]interface{}

	switch v := parsed.(type) {
	case map[string]interface{}:
		if graph, ok := v["@graph"].([]interface{}); ok {
			for _, item := range graph {
				if m, ok := item.(map[string]interface{}); ok {
					out = append(out, m)
				}
			}
		}
		out = append(out, v)
	case []interface{}:
		for _, item := range v {
			if m, ok := item.(map[string]interface{}); ok {
				out = append(out, m)
			}
		}
	}

	return out
}

func parseJSONLDArticle(obj map[string]interface{}) (jsonLDMetadata, bool) {
	if !isArticleType(obj["@type"]) {
		return jsonLDMetadata{}, false
	}

	md := jsonLDMetadata{ok: true}

	md.Title = jsonLDString(obj["headline"])
	if md.Title == "" {
		md.Title = jsonLDString(obj["name"])
	}

	md.Byline = jsonLDAuthor(obj["author"])

	md.Excerpt = jsonLDString(obj["description"])

	if pub, ok := obj["publisher"].(map[string]interface{}); ok {
		md.SiteName = jsonLDString(pub["name"])
	}

	md.Image = jsonLDImage(obj["image"])

	md.PublishedTime = jsonLDString(obj["datePublished"])
	md.ModifiedTime = jsonLDString(obj["dateModified"])

	return md, true
}

func isArticleType(v interface{}) bool {
	switch t := v.(type) {
	case string:
		return articleSchemaTypes[strings.ToLower(t)]
	case []interface{}:
		for _, item := range t {
			if s, ok := item.(string); ok && articleSchemaTypes[strings.ToLower(s)] {
				return true
			}
		}
	}
	return false
}

func jsonLDString(v interface{}) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// jsonLDAuthor accepts a string, a single {name: ...} object, or an array of
// either, joining multiple authors with ", ".
func jsonLDAuthor(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]interface{}:
		return jsonLDString(t["name"])
	case []interface{}:
		var names []string
		for _, item := range t {
			switch a := item.(type) {
			case string:
				if s := strings.TrimSpace(a); s != "" {
					names = append(names, s)
				}
			case map[string]interface{}:
				if s := jsonLDString(a["name"]); s != "" {
					names = append(names, s)
				}
			}
		}
		return strings.Join(names, ", ")
	}
	return ""
}

// jsonLDImage accepts a URL string, an ImageObject, or an array of either,
// returning the first usable URL.
func jsonLDImage(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]interface{}:
		return jsonLDString(t["url"])
	case []interface{}:
		for _, item := range t {
			if s := jsonLDImage(item); s != "" {
				return s
			}
		}
	}
	return ""
}
