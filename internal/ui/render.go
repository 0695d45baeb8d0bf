package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"techsphere/internal/nav"
	"techsphere/internal/site"
	"techsphere/internal/ui/textutil"
)

const (
	navGap       = 3
	cardWidth    = 30 // inner width of an article card
	cardGap      = 2
	textWidth    = 70
	articleWidth = 80
)

// View implements tea.Model. Click zones are recorded while drawing.
//
// The frame is the nav bar, a scrolling page window, then the bottom bar
// (leader hints, status line, footer). The output is never taller than the
// terminal.
func (a *appModelAdapter) View() string {
	w, h := a.size()
	a.zones.reset()

	top := &canvas{width: w, zones: &a.zones}
	a.renderNavBar(top)

	page := &canvas{width: w, zones: &zoneMap{}}
	scroll := a.scroll
	if o, ok := a.Overlays.Peek(); ok {
		page.blank()
		box := o.View.View()
		page.block(indent(box, centerOffset(w, lipgloss.Width(box))))
		scroll = 0
	} else {
		a.renderPage(page)
	}

	var bottom []string
	if hints := RenderKeybindHelp(a.KeyHandler, a.content.Kind); hints != "" {
		bottom = append(bottom, strings.Split(indent(hints, 1), "\n")...)
	}
	footer := Styles.Muted.Render(site.Footer)
	bottom = append(bottom, a.statusLine(w), indent(footer, centerOffset(w, lipgloss.Width(footer))))

	avail := max(0, h-top.height()-len(bottom))
	if a.Overlays.Len() == 0 {
		scroll = a.scrollTo(page, avail)
	}
	pageTop := top.height()
	for y := scroll; y < scroll+avail; y++ {
		if y < page.height() {
			top.lines = append(top.lines, page.lines[y])
		} else {
			top.blank()
		}
	}
	for _, z := range page.zones.zones {
		if r, ok := clipRect(z.area, scroll, avail); ok {
			r.Y += pageTop
			a.zones.add(z.id, r)
		}
	}
	top.lines = append(top.lines, bottom...)
	return top.String()
}

// scrollTo clamps the page scroll offset and, when focus has moved since the
// last frame, scrolls just enough to show the focused control.
func (a *AppModel) scrollTo(page *canvas, avail int) int {
	if a.Focus.Current != a.scrolledFor {
		if r, ok := page.zones.find(a.Focus.Current); ok {
			if r.Y < a.scroll {
				a.scroll = r.Y
			}
			if r.Y+r.H > a.scroll+avail {
				a.scroll = r.Y + r.H - avail
			}
		}
		a.scrolledFor = a.Focus.Current
	}
	a.scroll = max(0, min(a.scroll, page.height()-avail))
	return a.scroll
}

// clipRect limits r to the window of rows [scroll, scroll+avail) and
// returns it relative to the window's first row.
func clipRect(r rect, scroll, avail int) (rect, bool) {
	y0 := max(r.Y, scroll)
	y1 := min(r.Y+r.H, scroll+avail)
	if y0 >= y1 {
		return rect{}, false
	}
	return rect{X: r.X, Y: y0 - scroll, W: r.W, H: y1 - y0}, true
}

func (a *AppModel) renderNavBar(c *canvas) {
	logo := Styles.Logo.Render(site.Name)
	logoW := lipgloss.Width(logo)

	items := make([]string, len(nav.BarTags))
	itemsW := navGap * (len(items) - 1)
	current := a.State.Current().Tag()
	for i, tag := range nav.BarTags {
		style := Styles.NavItem
		if tag == current {
			style = Styles.NavActive
		}
		items[i] = style.Render(strings.ToUpper(tag))
		itemsW += lipgloss.Width(items[i])
	}

	space := c.width - 2 - logoW - itemsW
	if space < 2 {
		space = 2
	}
	y := c.block(" " + logo + strings.Repeat(" ", space) + strings.Join(items, strings.Repeat(" ", navGap)))
	c.zones.add(ctrlLogo, rect{X: 1, Y: y, W: logoW, H: 1})
	x := 1 + logoW + space
	for i, tag := range nav.BarTags {
		iw := lipgloss.Width(items[i])
		c.zones.add(navControlID(tag), rect{X: x, Y: y, W: iw, H: 1})
		x += iw + navGap
	}
	c.block(Styles.Rule.Render(strings.Repeat("─", c.width)))
}

func (a *AppModel) renderPage(c *canvas) {
	switch a.content.Kind {
	case site.ViewHome:
		a.renderHome(c)
	case site.ViewArticles:
		c.blank()
		c.block(indent(Styles.Heading.Render(a.content.Heading), 2))
		c.blank()
		a.renderCards(c, 2)
	case site.ViewAbout:
		c.blank()
		a.centered(c, Styles.Heading.Render(a.content.Heading))
		c.blank()
		for _, p := range a.content.Paragraphs {
			a.centered(c, Styles.Body.Width(min(textWidth, c.width-4)).Render(p))
		}
	case site.ViewContact:
		a.renderContact(c)
	case site.ViewArticle:
		a.renderArticle(c)
	default:
		a.renderNotFound(c)
	}
}

func (a *AppModel) renderHome(c *canvas) {
	hero := a.content.Hero
	c.blank()
	a.centered(c, Styles.HeroTitle.Render(hero.Title))
	c.blank()
	btn := a.button(ctrlCTA, hero.Action.Label)
	a.place(c, ctrlCTA, btn, centerOffset(c.width, lipgloss.Width(btn)))
	c.blank()
	a.centered(c, Styles.Heading.Render(a.content.CardsHeading))
	c.blank()
	a.renderCards(c, len(a.content.Cards))
	if b := a.content.Blurb; b != nil {
		c.blank()
		a.centered(c, Styles.Heading.Render(b.Heading))
		a.centered(c, Styles.Body.Width(min(textWidth, c.width-4)).Render(b.Text))
	}
}

// renderCards lays the cards out in rows of at most maxCols, as many as fit.
func (a *AppModel) renderCards(c *canvas, maxCols int) {
	cards := a.content.Cards
	if len(cards) == 0 {
		return
	}
	inner := cardWidth
	if c.width < cardWidth+8 {
		inner = max(10, c.width-8)
	}
	outer := inner + 4
	cols := (c.width - 2 + cardGap) / (outer + cardGap)
	cols = max(1, min(cols, maxCols, len(cards)))

	for start := 0; start < len(cards); start += cols {
		if start > 0 {
			c.blank()
		}
		row := cards[start:min(start+cols, len(cards))]
		rendered := make([]string, len(row))
		parts := make([]string, 0, 2*len(row))
		for i, card := range row {
			rendered[i] = a.card(card, inner)
			if i > 0 {
				parts = append(parts, strings.Repeat(" ", cardGap))
			}
			parts = append(parts, rendered[i])
		}
		joined := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		x := centerOffset(c.width, lipgloss.Width(joined))
		y := c.block(indent(joined, x))
		for i, card := range row {
			cw := lipgloss.Width(rendered[i])
			c.zones.add(cardControlID(card.ID), rect{X: x, Y: y, W: cw, H: lipgloss.Height(rendered[i])})
			x += cw + cardGap
		}
	}
}

func (a *AppModel) card(card site.Card, inner int) string {
	style := Styles.Card
	if a.Focus.Current == cardControlID(card.ID) {
		style = Styles.CardFocused
	}
	title := Styles.CardTitle.Width(inner).Render(card.Title)
	excerpt := Styles.Muted.Render(textutil.Truncate(card.Excerpt, inner))
	return style.Width(inner + 2).Render(title + "\n" + excerpt)
}

func (a *AppModel) renderContact(c *canvas) {
	c.blank()
	a.centered(c, Styles.Heading.Render(a.content.Heading))
	c.blank()
	if a.Form == nil {
		return
	}
	x := centerOffset(c.width, formWidth)
	for _, field := range a.Form.Fields() {
		id := fieldControlID(field.Name)
		style := Styles.Input
		if a.Focus.Current == id {
			style = Styles.InputFocused
		}
		a.place(c, id, style.Width(formWidth-2).Render(a.Form.FieldView(field.Name)), x)
	}
	style := Styles.Button
	if a.Focus.Current == ctrlSubmit {
		style = Styles.ButtonFocused
	}
	a.place(c, ctrlSubmit, style.Width(formWidth).Align(lipgloss.Center).Render(a.Form.Submit()), x)
}

func (a *AppModel) renderArticle(c *canvas) {
	art := a.content.Article
	c.blank()
	c.block(indent(Styles.Title.Width(a.articleWidth()).Render(art.Title), 2))
	c.blank()
	c.block(indent(a.detail.View(), 2))
	c.blank()
	for i, l := range a.content.Links {
		id := linkControlID(i)
		a.place(c, id, a.button(id, l.Label), 2)
	}
}

func (a *AppModel) renderNotFound(c *canvas) {
	c.blank()
	a.centered(c, Styles.Error.Render(a.content.Heading))
	c.blank()
	a.centered(c, Styles.Muted.Render(fmt.Sprintf("Nothing lives at %q.", a.content.Requested)))
	c.blank()

	buttons := make([]string, len(a.content.Links))
	total := cardGap * (len(buttons) - 1)
	for i, l := range a.content.Links {
		buttons[i] = a.button(linkControlID(i), l.Label)
		total += lipgloss.Width(buttons[i])
	}
	x := centerOffset(c.width, total)
	y := c.block(indent(strings.Join(buttons, strings.Repeat(" ", cardGap)), x))
	for i, b := range buttons {
		bw := lipgloss.Width(b)
		c.zones.add(linkControlID(i), rect{X: x, Y: y, W: bw, H: 1})
		x += bw + cardGap
	}
}

func (a *AppModel) button(id, label string) string {
	if a.Focus.Current == id {
		return Styles.ButtonFocused.Render(label)
	}
	return Styles.Button.Render(label)
}

// place draws block at column x and records it as the control's zone.
func (a *AppModel) place(c *canvas, id, block string, x int) {
	y := c.block(indent(block, x))
	c.zones.add(id, rect{X: x, Y: y, W: lipgloss.Width(block), H: lipgloss.Height(block)})
}

func (a *AppModel) centered(c *canvas, block string) {
	c.block(indent(block, centerOffset(c.width, lipgloss.Width(block))))
}

func (a *AppModel) statusLine(width int) string {
	if a.status != "" {
		style := Styles.Status
		if a.failed {
			style = Styles.Error
		}
		return " " + style.Render(textutil.Truncate(a.status, width-2))
	}
	hint := "1-4 pages · tab focus · enter open · SPC menu · ? help · q quit"
	switch {
	case a.Form != nil && a.Form.Editing():
		hint = "tab next field · esc stop editing · ctrl+c quit"
	case a.content.Kind == site.ViewArticle:
		hint = "j/k scroll · y copy · esc back · ? help · q quit"
	}
	return " " + Styles.Hint.Render(textutil.Truncate(hint, width-2))
}

func (a *AppModel) articleWidth() int {
	w, _ := a.size()
	return max(20, min(articleWidth, w-4))
}

// resizeDetail fits the article viewport between the title and the back
// button and reflows the article text.
func (a *AppModel) resizeDetail() {
	art := a.content.Article
	if art == nil {
		a.detail.SetContent("")
		return
	}
	_, h := a.size()
	width := a.articleWidth()
	titleH := lipgloss.Height(Styles.Title.Width(width).Render(art.Title))
	// nav bar, rule, blank, title, blank, viewport, blank, button, status, footer
	a.detail.Width = width
	a.detail.Height = max(3, h-8-titleH)
	a.detail.SetContent(Styles.Body.Width(width).Render(art.Content))
}
