package site

import (
	"techsphere/internal/catalog"
	"techsphere/internal/nav"
)

// Resolve maps a page to its content.
//
// Article pages whose ID is not in the catalog, and unknown tags, resolve to
// a ViewNotFound content that carries no site copy, only links back to the
// home page and the listing.
func Resolve(p nav.Page, c *catalog.Catalog) Content {
	switch p.Kind {
	case nav.KindHome:
		return Content{
			Kind: ViewHome,
			Hero: &Hero{
				Title:  HeroTitle,
				Action: Link{Label: HeroCTA, Target: nav.TagArticles},
			},
			CardsHeading: FeaturedHeading,
			Cards:        cards(c),
			Blurb:        &Section{Heading: AboutHeading, Text: AboutBlurb},
		}
	case nav.KindArticles:
		return Content{
			Kind:    ViewArticles,
			Heading: ListingHeading,
			Cards:   cards(c),
		}
	case nav.KindAbout:
		return Content{
			Kind:       ViewAbout,
			Heading:    AboutHeading,
			Paragraphs: []string{AboutText},
		}
	case nav.KindContact:
		fields := make([]FormField, len(contactFields))
		copy(fields, contactFields)
		return Content{
			Kind:    ViewContact,
			Heading: ContactHeading,
			Form:    &ContactForm{Fields: fields, Submit: ContactSubmit},
		}
	case nav.KindArticleDetail:
		a, ok := c.Lookup(p.ID)
		if !ok {
			return notFound(p)
		}
		return Content{
			Kind:    ViewArticle,
			Heading: a.Title,
			Article: &a,
			Links:   []Link{{Label: BackLabel, Target: nav.TagArticles}},
		}
	}
	return notFound(p)
}

func notFound(p nav.Page) Content {
	return Content{
		Kind:      ViewNotFound,
		Heading:   NotFoundHeading,
		Requested: p.Tag(),
		Links: []Link{
			{Label: "Home", Target: nav.TagHome},
			{Label: "All Articles", Target: nav.TagArticles},
		},
	}
}

func cards(c *catalog.Catalog) []Card {
	all := c.All()
	out := make([]Card, len(all))
	for i, a := range all {
		out[i] = Card{
			ID:      a.ID,
			Title:   a.Title,
			Excerpt: a.Excerpt,
			Target:  nav.ArticleTag(a.ID),
		}
	}
	return out
}
