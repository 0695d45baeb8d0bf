// Package catalog holds the fixed set of articles published on the blog.
package catalog

// Article is a single blog post.
type Article struct {
	ID      int
	Title   string
	Excerpt string
	Content string
}

// Catalog is an ordered, read-only list of articles with unique IDs.
type Catalog struct {
	articles []Article
}

var defaultArticles = []Article{
	{
		ID:      1,
		Title:   "The Future of AI in Everyday Life",
		Excerpt: "How AI is shaping our world…",
		Content: "Artificial intelligence has quietly moved from research labs into the tools we use every day. " +
			"Recommendation feeds, spam filters and voice assistants all lean on models trained on enormous datasets.\n\n" +
			"The next wave is less visible: scheduling, translation and accessibility features that adapt to the person using them. " +
			"The open questions are about trust, privacy and who gets to decide what a model should optimise for.",
	},
	{
		ID:      2,
		Title:   "Top 10 Programming Languages in 2025",
		Excerpt: "A breakdown of popular coding languages…",
		Content: "Python keeps its lead in data work and scripting, while TypeScript has become the default for anything that runs in a browser.\n\n" +
			"Go and Rust continue to grow in infrastructure, Java and C# hold the enterprise, and Kotlin and Swift own mobile. " +
			"C++, SQL and a steady newcomer or two round out a list that changes more slowly than the headlines suggest.",
	},
	{
		ID:      3,
		Title:   "5G, 6G, and the Future of Connectivity",
		Excerpt: "How ultra-fast internet transforms life…",
		Content: "5G brought lower latency and denser networks, enabling everything from remote surgery trials to smart factories.\n\n" +
			"6G research aims further: sub-millisecond latency, terahertz spectrum and networks that sense their environment. " +
			"The hard problems are coverage, energy use and making the upgrade worthwhile for people outside dense cities.",
	},
}

// Default returns the blog's built-in catalog of three articles.
func Default() *Catalog {
	articles := make([]Article, len(defaultArticles))
	copy(articles, defaultArticles)
	return &Catalog{articles: articles}
}

// All returns the articles in catalog order.
// The returned slice is a copy; modifying it does not affect the catalog.
func (c *Catalog) All() []Article {
	out := make([]Article, len(c.articles))
	copy(out, c.articles)
	return out
}

// Lookup returns the article with the given ID.
func (c *Catalog) Lookup(id int) (Article, bool) {
	for _, a := range c.articles {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}

// Len returns the number of articles.
func (c *Catalog) Len() int {
	return len(c.articles)
}
