package readability

import (
	"html"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/go-shiori/dom"
	nethtml "golang.org/x/net/html"
)

// titleAgreementThreshold is how similar (by normalized Levenshtein ratio) a
// JSON-LD headline and the page's <title> must be before they are treated
// as describing the same article, letting JSON-LD's cleaner value win over
// the raw <title> text outright.
const titleAgreementThreshold = 0.5

// getArticleFavicon picks the highest-quality PNG favicon declared via
// <link rel="icon">, preferring the link whose declared (square) size is
// largest.
func (r *Readability) getArticleFavicon() string {
	favicon := ""
	faviconSize := -1

	r.forEachNode(dom.GetElementsByTagName(r.doc, "link"), func(link *nethtml.Node, _ int) {
		linkRel := strings.TrimSpace(dom.GetAttribute(link, "rel"))
		linkType := strings.TrimSpace(dom.GetAttribute(link, "type"))
		linkHref := strings.TrimSpace(dom.GetAttribute(link, "href"))
		linkSizes := strings.TrimSpace(dom.GetAttribute(link, "sizes"))

		if linkHref == "" || !strings.Contains(linkRel, "icon") {
			return
		}

		if linkType != "image/png" && !strings.Contains(linkHref, ".png") {
			return
		}

		size := 0
		for _, sizesLocation := range []string{linkSizes, linkHref} {
			sizeParts := rxFaviconSize.FindStringSubmatch(sizesLocation)
			if len(sizeParts) != 3 || sizeParts[1] != sizeParts[2] {
				continue
			}
			size, _ = strconv.Atoi(sizeParts[1])
			break
		}

		if size > faviconSize {
			faviconSize = size
			favicon = linkHref
		}
	})

	return toAbsoluteURI(favicon, r.documentURI)
}

// getArticleMetadata resolves title, byline, excerpt, site name, image, and
// publish/modify timestamps from JSON-LD (when enabled) and meta tags, plus
// document lang/dir and favicon. JSON-LD values take priority when present;
// meta tags fill in whatever JSON-LD did not supply.
func (r *Readability) getArticleMetadata() Metadata {
	values := make(map[string]string)

	r.forEachNode(dom.GetElementsByTagName(r.doc, "meta"), func(element *nethtml.Node, _ int) {
		elementName := dom.GetAttribute(element, "name")
		elementProperty := dom.GetAttribute(element, "property")
		content := dom.GetAttribute(element, "content")
		if content == "" {
			return
		}

		var matches []string
		name := ""

		if elementProperty != "" {
			matches = rxPropertyPattern.FindAllString(elementProperty, -1)
			for i := len(matches) - 1; i >= 0; i-- {
				name = strings.ToLower(matches[i])
				name = strings.Join(strings.Fields(name), "")
				name = canonicalizeDctermsPrefix(name)
				values[name] = strings.TrimSpace(content)
			}
		}

		if len(matches) == 0 && elementName != "" && rxNamePattern.MatchString(elementName) {
			name = strings.ToLower(elementName)
			name = strings.Join(strings.Fields(name), "")
			name = strings.Replace(name, ".", ":", -1)
			name = canonicalizeDctermsPrefix(name)
			values[name] = strings.TrimSpace(content)
		}
	})

	jsonLD := r.getJSONLD(r.doc)

	metadataTitle := jsonLD.Title
	if metadataTitle != "" {
		pageTitle := r.getArticleTitle()
		if pageTitle != "" && !titlesAgree(metadataTitle, pageTitle) {
			metadataTitle = ""
		}
	}

	if metadataTitle == "" {
		for _, name := range []string{
			"dc:title", "dcterms:title", "og:title",
			"weibo:article:title", "weibo:webpage:title",
			"twitter:title", "parsely:title", "title",
		} {
			if value, ok := values[name]; ok {
				metadataTitle = value
				break
			}
		}
	}

	if metadataTitle == "" {
		metadataTitle = r.getArticleTitle()
	}

	metadataByline := jsonLD.Byline
	if metadataByline == "" {
		for _, name := range []string{
			"dc:creator", "dcterms:creator", "author", "parsely:author",
			"weibo:article:author", "weibo:webpage:author", "twitter:creator", "og:author",
		} {
			if value, ok := values[name]; ok {
				metadataByline = value
				break
			}
		}
	}

	metadataExcerpt := jsonLD.Excerpt
	if metadataExcerpt == "" {
		for _, name := range []string{
			"dc:description", "dcterms:description", "og:description",
			"weibo:article:description", "weibo:webpage:description",
			"description", "twitter:description",
		} {
			if value, ok := values[name]; ok {
				metadataExcerpt = value
				break
			}
		}
	}

	metadataSiteName := jsonLD.SiteName
	if metadataSiteName == "" {
		for _, name := range []string{"og:site_name", "twitter:site", "dc:publisher", "dcterms:publisher"} {
			if value, ok := values[name]; ok {
				metadataSiteName = value
				break
			}
		}
	}

	metadataImage := jsonLD.Image
	if metadataImage != "" {
		metadataImage = toAbsoluteURI(metadataImage, r.documentURI)
	} else {
		for _, name := range []string{"og:image", "image", "twitter:image"} {
			if value, ok := values[name]; ok {
				metadataImage = toAbsoluteURI(value, r.documentURI)
				break
			}
		}
	}

	publishedTime := jsonLD.PublishedTime
	if publishedTime == "" {
		publishedTime = values["parsely:pub-date"]
	}

	modifiedTime := jsonLD.ModifiedTime

	lang, dir := r.getLangDir(r.doc)

	return Metadata{
		Title:         html.UnescapeString(metadataTitle),
		Byline:        html.UnescapeString(metadataByline),
		Excerpt:       html.UnescapeString(metadataExcerpt),
		SiteName:      html.UnescapeString(metadataSiteName),
		Image:         metadataImage,
		Favicon:       r.getArticleFavicon(),
		PublishedTime: normalizeDate(publishedTime),
		ModifiedTime:  normalizeDate(modifiedTime),
		Lang:          lang,
		Dir:           dir,
	}
}

// canonicalizeDctermsPrefix folds the "dcterm:" spelling some pages use for
// the Dublin Core Terms namespace onto the correct "dcterms:" prefix, so
// both spellings land under the same values key.
func canonicalizeDctermsPrefix(name string) string {
	if strings.HasPrefix(name, "dcterm:") {
		return "dcterms:" + name[len("dcterm:"):]
	}
	return name
}

// titlesAgree reports whether a and b are similar enough, by normalized
// Levenshtein distance, to be considered the same title.
func titlesAgree(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return true
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return true
	}

	distance := levenshtein.ComputeDistance(a, b)
	similarity := 1 - float64(distance)/float64(maxLen)

	return similarity >= titleAgreementThreshold
}
