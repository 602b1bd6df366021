package readability

import "regexp"

// Precompiled once at package init and shared read-only across calls; no
// extraction holds mutable package-level state beyond these.
var (
	rxUnlikelyCandidates   = regexp.MustCompile(`(?i)-ad-|ai2html|banner|breadcrumbs|combx|comment|community|cover-wrap|disqus|extra|foot|gdpr|header|legends|menu|related|remark|replies|rss|shoutbox|sidebar|skyscraper|social|sponsor|supplemental|ad-break|agegate|pagination|pager|popup|yom-remote`)
	rxOkMaybeItsACandidate = regexp.MustCompile(`(?i)and|article|body|column|content|main|mathjax|shadow`)
	rxPositive             = regexp.MustCompile(`(?i)article|body|content|entry|hentry|h-entry|main|page|pagination|post|text|blog|story`)
	rxNegative             = regexp.MustCompile(`(?i)hidden|^hid$| hid$| hid |^hid |banner|combx|comment|com-|contact|foot|footer|footnote|gdpr|masthead|media|meta|outbrain|promo|related|scroll|share|shoutbox|sidebar|skyscraper|sponsor|shopping|tags|tool|widget`)
	rxByline               = regexp.MustCompile(`(?i)byline|author|dateline|writtenby|p-author`)
	rxNormalize            = regexp.MustCompile(`(?i)\s{2,}`)
	rxVideos               = regexp.MustCompile(`(?i)//(www\.)?((dailymotion|youtube|youtube-nocookie|player\.vimeo|v\.qq)\.com|(archive|upload\.wikimedia)\.org|player\.twitch\.tv)`)
	rxWhitespace           = regexp.MustCompile(`(?i)^\s*$`)
	rxHasContent           = regexp.MustCompile(`(?i)\S$`)
	rxPropertyPattern      = regexp.MustCompile(`(?i)\s*(dc|dcterms?|og|twitter|parsely)\s*:\s*(author|creator|description|title|site_name|site|image\S*|pub-date|section|publisher)\s*`)
	rxNamePattern          = regexp.MustCompile(`(?i)^\s*(?:(dc|dcterms?|og|twitter|parsely|weibo:(article|webpage))\s*[\.:]\s*)?(author|creator|description|title|site_name|site|image|pub-date|publisher)\s*$`)
	rxTitleSeparator       = regexp.MustCompile(`(?i) [\|\-\\/>»] `)
	rxTitleHierarchySep    = regexp.MustCompile(`(?i) [\\/>»] `)
	rxTitleRemoveFinalPart = regexp.MustCompile(`(?i)(.*)[\|\-\\/>»] .*`)
	rxTitleRemove1stPart   = regexp.MustCompile(`(?i)[^\|\-\\/>»]*[\|\-\\/>»](.*)`)
	rxTitleAnySeparator    = regexp.MustCompile(`(?i)[\|\-\\/>»]+`)
	rxDisplayNone          = regexp.MustCompile(`(?i)display\s*:\s*none`)
	rxVisibilityHidden     = regexp.MustCompile(`(?i)visibility\s*:\s*hidden`)
	rxSentencePeriod       = regexp.MustCompile(`(?i)\.( |$)`)
	rxShare                = regexp.MustCompile(`(?i)share`)
	rxFaviconSize          = regexp.MustCompile(`(?i)(\d+)x(\d+)`)
	rxLazyImagePlaceholder = regexp.MustCompile(`(?i)data:image/(?:gif|png|jpe?g);base64,\s*[a-z0-9+/=]{1,80}\s*$`)
	rxLazyImageKeyword     = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|webp|gif)`)
	rxSrcsetCandidate      = regexp.MustCompile(`(?i)(\S+)\s+(\d+(?:\.\d+)?)([wx])`)
)

// divToPElems is a list of HTML tag names representing content dividers.
var divToPElems = []string{
	"a", "blockquote", "div", "dl", "img",
	"ol", "p", "pre", "select", "table", "ul",
}

// alterToDivExceptions is a list of HTML tags that are kept as they are when
// a sibling is merged into the article; every other merged sibling is
// converted into a regular DIV to prevent unwanted removal when the parser
// is cleaning out unnecessary nodes.
var alterToDivExceptions = []string{
	"article",
	"div",
	"ol",
	"p",
	"section",
	"ul",
}

// presentationalAttributes is a list of HTML attributes used to style nodes.
var presentationalAttributes = []string{
	"align",
	"background",
	"bgcolor",
	"border",
	"cellpadding",
	"cellspacing",
	"frame",
	"hspace",
	"rules",
	"style",
	"valign",
	"vspace",
}

// deprecatedSizeAttributeElems is a list of HTML tags that allow width and
// height attributes already deprecated in recent HTML specifications.
var deprecatedSizeAttributeElems = []string{
	"table",
	"th",
	"td",
	"hr",
	"pre",
}

// phrasingElems qualify as phrasing content. canvas, iframe, svg and video
// qualify too but tend to be removed when put into paragraphs, so they are
// deliberately left out of this list.
var phrasingElems = []string{
	"abbr", "audio", "b", "bdo", "br", "button", "cite", "code", "data",
	"datalist", "dfn", "em", "embed", "i", "img", "input", "kbd", "label",
	"mark", "math", "meter", "noscript", "object", "output", "progress", "q",
	"ruby", "samp", "script", "select", "small", "span", "strong", "sub",
	"sup", "textarea", "time", "var", "wbr",
}

// lazyImageSrcAttrs and lazyImageSrcsetAttrs are the attributes, in priority
// order, that lazy-loading markup commonly uses in place of src/srcset.
var lazyImageSrcAttrs = []string{"data-src", "data-original", "data-url", "data-lazy-src"}
var lazyImageSrcsetAttrs = []string{"data-srcset", "data-lazy-srcset"}

// rtlLanguagePrefixes are BCP-47 primary language subtags that are written
// right-to-left, used when the document omits an explicit dir attribute.
var rtlLanguagePrefixes = []string{
	"ar", "arc", "dv", "fa", "ha", "he", "khw", "ks", "ku", "ps", "ur", "yi",
}
