package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techsphere/internal/catalog"
	"techsphere/internal/nav"
	"techsphere/internal/site"
)

func newTestApp(t *testing.T) *appModelAdapter {
	t.Helper()
	a := NewAppModel(nil, catalog.Default())
	a.Clipboard = func(string) error { return nil }
	adapter := &appModelAdapter{AppModel: a}
	adapter.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return adapter
}

// press sends a key and feeds back any app message its command produces.
// Commands from the contact form (cursor blink) are not run.
func press(t *testing.T, a *appModelAdapter, key string) {
	t.Helper()
	_, cmd := a.Update(keyMsg(key))
	runAppCmd(a, cmd)
}

func runAppCmd(a *appModelAdapter, cmd tea.Cmd) {
	if cmd == nil || (a.Form != nil && a.Form.Editing()) {
		return
	}
	switch msg := cmd().(type) {
	case NavigateMsg, ToggleHelpMsg, DismissOverlayMsg, CopyArticleMsg, copyResultMsg:
		_, next := a.Update(msg)
		runAppCmd(a, next)
	}
}

// click renders a frame and left-clicks the middle of the control's zone.
func click(t *testing.T, a *appModelAdapter, id string) tea.Cmd {
	t.Helper()
	a.View()
	r, ok := a.zones.find(id)
	require.True(t, ok, "no zone for %q", id)
	_, cmd := a.Update(tea.MouseMsg{
		X:      r.X + r.W/2,
		Y:      r.Y + r.H/2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	return cmd
}

func kind(a *appModelAdapter) site.ViewKind {
	return a.Content().Kind
}

func TestApp_StartsOnHome(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, site.ViewHome, kind(a))

	out := a.View()
	assert.Contains(t, out, site.HeroTitle)
	assert.Contains(t, out, site.FeaturedHeading)
	for _, label := range []string{"HOME", "ARTICLES", "ABOUT", "CONTACT", site.Name, site.Footer} {
		assert.Contains(t, out, label)
	}
}

func TestApp_ViewFitsTerminal(t *testing.T) {
	a := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	for _, tag := range []string{"home", "articles", "about", "contact", "article-1", "nonsense"} {
		a.Update(NavigateMsg{Target: tag})
		lines := strings.Split(a.View(), "\n")
		assert.Len(t, lines, 24, tag)
		assert.Contains(t, lines[0], site.Name, tag)
	}
}

func TestApp_NumberKeysNavigate(t *testing.T) {
	a := newTestApp(t)
	want := []site.ViewKind{site.ViewHome, site.ViewArticles, site.ViewAbout, site.ViewContact}
	for _, i := range []int{3, 2, 4, 1} {
		press(t, a, string(rune('0'+i)))
		assert.Equal(t, want[i-1], kind(a), "key %d", i)
	}
}

func TestApp_NavigateTwiceIsIdempotent(t *testing.T) {
	a := newTestApp(t)
	press(t, a, "3")
	first := a.View()
	press(t, a, "3")
	assert.Equal(t, site.ViewAbout, kind(a))
	assert.Equal(t, first, a.View())
	assert.Contains(t, first, site.AboutHeading)
	assert.Contains(t, first, "passionate writers")
}

func TestApp_LeaderNavigation(t *testing.T) {
	a := newTestApp(t)
	press(t, a, " ")
	assert.Contains(t, a.View(), "About")
	press(t, a, "b")
	assert.Equal(t, site.ViewAbout, kind(a))
	assert.False(t, a.KeyHandler.LeaderWaiting)

	tests := []struct {
		key  string
		want site.ViewKind
	}{
		{"h", site.ViewHome},
		{"c", site.ViewContact},
		{"a", site.ViewArticles},
		{"b", site.ViewAbout},
	}
	for _, tt := range tests {
		press(t, a, " ")
		press(t, a, tt.key)
		assert.Equal(t, tt.want, kind(a), "SPC %s", tt.key)
	}
}

func TestApp_ClickNavBar(t *testing.T) {
	a := newTestApp(t)
	for _, tag := range []string{"contact", "articles", "about", "home"} {
		click(t, a, navControlID(tag))
		assert.Equal(t, nav.Parse(tag), a.State.Current())
	}

	click(t, a, navControlID("about"))
	click(t, a, ctrlLogo)
	assert.Equal(t, nav.Home(), a.State.Current())
}

func TestApp_HeroCallToAction(t *testing.T) {
	a := newTestApp(t)
	click(t, a, ctrlCTA)
	assert.Equal(t, site.ViewArticles, kind(a))
}

func TestApp_ClickCardOpensArticle(t *testing.T) {
	cat := catalog.Default()
	for _, want := range cat.All() {
		for _, from := range []string{"home", "articles"} {
			a := newTestApp(t)
			a.Update(NavigateMsg{Target: from})
			click(t, a, cardControlID(want.ID))

			require.Equal(t, site.ViewArticle, kind(a), "from %s", from)
			got := a.Content().Article
			assert.Equal(t, want.Title, got.Title)
			assert.Equal(t, want.Content, got.Content)
			assert.Equal(t, nav.Article(want.ID), a.State.Current())
			assert.Contains(t, a.View(), want.Title)
		}
	}
}

func TestApp_ArticleListingShowsExcerptsOnly(t *testing.T) {
	a := newTestApp(t)
	press(t, a, "2")
	out := a.View()

	assert.Contains(t, out, site.ListingHeading)
	lastIdx := -1
	for _, art := range catalog.Default().All() {
		// Cards truncate long excerpts; the opening words always show.
		idx := strings.Index(out, art.Excerpt[:15])
		assert.Greater(t, idx, lastIdx, "excerpt of article %d out of order", art.ID)
		lastIdx = idx
		assert.NotContains(t, out, art.Content)
	}
}

func TestApp_BackButton(t *testing.T) {
	a := newTestApp(t)
	a.Update(NavigateMsg{Target: "article-2"})
	assert.Contains(t, a.View(), site.BackLabel)

	click(t, a, linkControlID(0))
	assert.Equal(t, site.ViewArticles, kind(a))
}

func TestApp_EscOnArticleGoesBack(t *testing.T) {
	a := newTestApp(t)
	a.Update(NavigateMsg{Target: "article-1"})
	press(t, a, "esc")
	assert.Equal(t, site.ViewArticles, kind(a))
}

func TestApp_KeyboardFocusOpensArticle(t *testing.T) {
	a := newTestApp(t)
	press(t, a, "2")
	press(t, a, "j")
	press(t, a, "j")
	assert.Equal(t, cardControlID(2), a.Focus.Current)
	press(t, a, "k")
	press(t, a, "tab")
	press(t, a, "tab")
	assert.Equal(t, cardControlID(3), a.Focus.Current)

	press(t, a, "enter")
	assert.Equal(t, nav.Article(3), a.State.Current())
}

func TestApp_UnknownArticle(t *testing.T) {
	a := newTestApp(t)
	a.Update(NavigateMsg{Target: "article-999"})

	assert.Equal(t, site.ViewNotFound, kind(a))
	assert.Nil(t, a.Content().Article)
	out := a.View()
	assert.Contains(t, out, site.NotFoundHeading)
	for _, art := range catalog.Default().All() {
		assert.NotContains(t, out, art.Title)
	}
}

func TestApp_UnknownTagKeepsNavigationWorking(t *testing.T) {
	a := newTestApp(t)
	a.Update(NavigateMsg{Target: "nonsense"})
	assert.Equal(t, site.ViewNotFound, kind(a))
	assert.Contains(t, a.View(), `"nonsense"`)

	click(t, a, navControlID("contact"))
	assert.Equal(t, site.ViewContact, kind(a))

	a.Update(NavigateMsg{Target: "nonsense"})
	press(t, a, "1")
	assert.Equal(t, site.ViewHome, kind(a))

	a.Update(NavigateMsg{Target: "nonsense"})
	click(t, a, linkControlID(1))
	assert.Equal(t, site.ViewArticles, kind(a))
}

func TestApp_ContactFormTyping(t *testing.T) {
	a := newTestApp(t)
	press(t, a, "4")
	require.NotNil(t, a.Form)
	assert.False(t, a.Form.Editing())

	press(t, a, "tab")
	assert.Equal(t, "name", a.Form.Focused())

	// Keys bound globally are typed while editing.
	for _, k := range []string{"q", "1", " ", "?"} {
		press(t, a, k)
	}
	assert.Equal(t, site.ViewContact, kind(a))
	assert.Equal(t, "q1 ?", a.Form.Value("name"))

	press(t, a, "enter")
	assert.Equal(t, "email", a.Form.Focused())
	press(t, a, "a@b.c")
	press(t, a, "tab")
	assert.Equal(t, "message", a.Form.Focused())
	press(t, a, "hi")
	press(t, a, "enter")
	press(t, a, "there")
	assert.Equal(t, "hi\nthere", a.Form.Value("message"))

	press(t, a, "esc")
	assert.False(t, a.Form.Editing())
	assert.Equal(t, "a@b.c", a.Form.Value("email"))
}

func TestApp_ContactSubmitDoesNothing(t *testing.T) {
	a := newTestApp(t)
	press(t, a, "4")
	click(t, a, fieldControlID("name"))
	assert.Equal(t, "name", a.Form.Focused())
	press(t, a, "Ada")

	cmd := click(t, a, ctrlSubmit)
	assert.Nil(t, cmd)
	assert.Equal(t, site.ViewContact, kind(a))
	assert.False(t, a.Form.Editing())
	assert.Equal(t, ctrlSubmit, a.Focus.Current)
	assert.Equal(t, "Ada", a.Form.Value("name"))
	assert.Empty(t, a.Status())

	press(t, a, "enter")
	assert.Equal(t, site.ViewContact, kind(a))
	assert.Equal(t, "Ada", a.Form.Value("name"))
}

func TestApp_ContactFormResetsOnReturn(t *testing.T) {
	a := newTestApp(t)
	press(t, a, "4")
	press(t, a, "tab")
	press(t, a, "Ada")
	press(t, a, "esc")
	press(t, a, "1")
	assert.Nil(t, a.Form)

	press(t, a, "4")
	assert.Equal(t, "", a.Form.Value("name"))
}

func TestApp_HelpOverlay(t *testing.T) {
	a := newTestApp(t)
	press(t, a, "?")
	require.Equal(t, 1, a.Overlays.Len())
	assert.Contains(t, a.View(), "Keys")

	// Keys go to the overlay, not the page.
	press(t, a, "2")
	assert.Equal(t, site.ViewHome, kind(a))

	press(t, a, "esc")
	assert.Equal(t, 0, a.Overlays.Len())

	press(t, a, "?")
	press(t, a, "?")
	assert.Equal(t, 0, a.Overlays.Len())
}

func TestApp_CopyArticle(t *testing.T) {
	a := newTestApp(t)
	var copied string
	a.Clipboard = func(s string) error {
		copied = s
		return nil
	}
	a.Update(NavigateMsg{Target: "article-3"})
	press(t, a, "y")

	art, _ := catalog.Default().Lookup(3)
	assert.Equal(t, art.Title+"\n\n"+art.Content, copied)
	assert.Contains(t, a.Status(), "Copied")
	assert.Contains(t, a.View(), "Copied")
}

func TestApp_CopyArticleFailure(t *testing.T) {
	a := newTestApp(t)
	a.Clipboard = func(string) error { return errors.New("no clipboard") }
	a.Update(NavigateMsg{Target: "article-1"})
	press(t, a, " ")
	press(t, a, "y")

	assert.Contains(t, a.Status(), "no clipboard")
}

func TestApp_CopyOnlyOnArticle(t *testing.T) {
	a := newTestApp(t)
	called := false
	a.Clipboard = func(string) error {
		called = true
		return nil
	}
	press(t, a, "y")
	press(t, a, " ")
	press(t, a, "y")
	assert.False(t, called)
}

func TestApp_QuitKeys(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	press(t, a, "4")
	press(t, a, "tab")
	_, cmd = a.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_ScrollKeepsFocusVisible(t *testing.T) {
	a := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 40, Height: 16})
	a.View()

	for i := 0; i < 4; i++ {
		press(t, a, "j")
	}
	focused := a.Focus.Current
	require.Equal(t, cardControlID(3), focused)
	a.View()
	r, ok := a.zones.find(focused)
	require.True(t, ok, "focused card should be on screen")
	assert.GreaterOrEqual(t, r.Y, 2)
	assert.Greater(t, a.scroll, 0)

	click(t, a, focused)
	assert.Equal(t, nav.Article(3), a.State.Current())
	assert.Equal(t, 0, a.scroll)
}

func TestApp_StateSharedWithCaller(t *testing.T) {
	state := nav.NewState()
	var seen []string
	state.OnChange = func(_, to nav.Page) { seen = append(seen, to.Tag()) }

	a := &appModelAdapter{AppModel: NewAppModel(state, catalog.Default())}
	a.Update(NavigateMsg{Target: "about"})
	click(t, a, navControlID("contact"))

	assert.Equal(t, []string{"about", "contact"}, seen)
}
