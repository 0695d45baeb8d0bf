// Package site resolves the current page into the content to display.
//
// Resolve is a pure function of the page and the catalog; the UI renders its
// result and never looks at the catalog directly.
package site

import "techsphere/internal/catalog"

// ViewKind identifies which view a Content value describes.
type ViewKind int

const (
	ViewHome ViewKind = iota
	ViewArticles
	ViewAbout
	ViewContact
	ViewArticle
	ViewNotFound
)

func (k ViewKind) String() string {
	switch k {
	case ViewHome:
		return "home"
	case ViewArticles:
		return "articles"
	case ViewAbout:
		return "about"
	case ViewContact:
		return "contact"
	case ViewArticle:
		return "article"
	default:
		return "not-found"
	}
}

// Link is a clickable control that navigates to Target.
type Link struct {
	Label  string
	Target string
}

// Card is an article preview: title and excerpt, never the full content.
type Card struct {
	ID      int
	Title   string
	Excerpt string
	Target  string
}

// Hero is the home page banner.
type Hero struct {
	Title  string
	Action Link
}

// Section is a heading with a paragraph.
type Section struct {
	Heading string
	Text    string
}

// FormField is one input of the contact form.
type FormField struct {
	Name        string
	Placeholder string
	Multiline   bool
}

// ContactForm describes the contact form. Submitting it does nothing.
type ContactForm struct {
	Fields []FormField
	Submit string
}

// Content is everything a view shows. Fields not used by a kind are zero.
type Content struct {
	Kind    ViewKind
	Heading string

	Hero         *Hero
	CardsHeading string
	Cards        []Card
	Blurb        *Section

	Paragraphs []string
	Article    *catalog.Article
	Form       *ContactForm

	// Links are the view's standalone controls (back button, not-found links).
	Links []Link

	// Requested is the tag that could not be resolved, for ViewNotFound.
	Requested string
}

// Empty reports whether the content carries nothing from the site itself:
// no article, no cards, no hero, no copy and no form.
func (c Content) Empty() bool {
	return c.Hero == nil && len(c.Cards) == 0 && c.Blurb == nil &&
		len(c.Paragraphs) == 0 && c.Article == nil && c.Form == nil
}
