// Package nav models the blog's navigation state: which page is showing.
//
// Pages are a tagged variant (Kind plus an article ID for detail pages).
// String tags such as "about" or "article-2" are parsed once, at the
// navigation boundary, by Parse.
package nav

import (
	"strconv"
	"strings"
	"unicode"
)

// Kind identifies the variant of a Page.
type Kind int

const (
	KindHome Kind = iota
	KindArticles
	KindAbout
	KindContact
	KindArticleDetail
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindHome:
		return "Home"
	case KindArticles:
		return "Articles"
	case KindAbout:
		return "About"
	case KindContact:
		return "Contact"
	case KindArticleDetail:
		return "ArticleDetail"
	default:
		return "Unknown"
	}
}

// Fixed page tags.
const (
	TagHome     = "home"
	TagArticles = "articles"
	TagAbout    = "about"
	TagContact  = "contact"

	// ArticlePrefix starts every article detail tag ("article-<id>").
	ArticlePrefix = "article-"
)

// BarTags is the navigation bar order.
var BarTags = []string{TagHome, TagArticles, TagAbout, TagContact}

// Page is a navigation target.
// ID is set only for KindArticleDetail; Raw only for KindUnknown.
type Page struct {
	Kind Kind
	ID   int
	Raw  string
}

// Home returns the home page.
func Home() Page { return Page{Kind: KindHome} }

// Article returns the detail page for the article with the given ID.
// The ID is not checked against any catalog.
func Article(id int) Page { return Page{Kind: KindArticleDetail, ID: id} }

// ArticleTag returns the string tag for an article detail page.
func ArticleTag(id int) string {
	return ArticlePrefix + strconv.Itoa(id)
}

// Parse converts a string tag into a Page.
//
// For "article-<id>" tags only the first '-'-delimited segment after the
// prefix is read, so "article-2-draft" is article 2. The segment is read by
// leadingInt. A segment without a leading integer makes the whole tag
// KindUnknown.
func Parse(tag string) Page {
	switch tag {
	case TagHome:
		return Page{Kind: KindHome}
	case TagArticles:
		return Page{Kind: KindArticles}
	case TagAbout:
		return Page{Kind: KindAbout}
	case TagContact:
		return Page{Kind: KindContact}
	}
	if rest, ok := strings.CutPrefix(tag, ArticlePrefix); ok {
		seg, _, _ := strings.Cut(rest, "-")
		if id, ok := leadingInt(seg); ok {
			return Article(id)
		}
	}
	return Page{Kind: KindUnknown, Raw: tag}
}

// leadingInt reads a base-10 integer at the start of s: leading white space,
// an optional sign, then at least one digit. Anything after the digits is
// ignored, so " 2", "+2" and "2abc" are all 2.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Tag returns the string form of the page. Parse(p.Tag()) == p for every
// page except unknown pages whose raw tag happens to be valid.
func (p Page) Tag() string {
	switch p.Kind {
	case KindHome:
		return TagHome
	case KindArticles:
		return TagArticles
	case KindAbout:
		return TagAbout
	case KindContact:
		return TagContact
	case KindArticleDetail:
		return ArticleTag(p.ID)
	default:
		return p.Raw
	}
}

func (p Page) String() string {
	return p.Tag()
}
