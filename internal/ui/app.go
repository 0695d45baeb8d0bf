package ui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"techsphere/internal/catalog"
	"techsphere/internal/nav"
	"techsphere/internal/site"
)

// Control IDs that are not derived from content.
const wheelStep = 3

const (
	ctrlLogo   = "logo"
	ctrlCTA    = "cta"
	ctrlSubmit = "submit"
)

func navControlID(tag string) string { return "nav-" + tag }
func cardControlID(id int) string { return "card-" + strconv.Itoa(id) }
func linkControlID(i int) string { return "link-" + strconv.Itoa(i) }
func fieldControlID(name string) string { return "field-" + name }

// control is something the user can click or focus. Target is the page it
// navigates to; form controls have no target.
type control struct {
	id     string
	target string
}

// AppModel is the root model. It owns the navigation state and renders
// whatever site.Resolve returns for the current page.
type AppModel struct {
	State      *nav.State
	Catalog    *catalog.Catalog
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Focus      FocusManager
	Form       *ContactForm // set only on the contact page

	// Clipboard writes text to the system clipboard.
	Clipboard func(string) error

	content     site.Content
	controls    map[string]control
	detail      viewport.Model
	zones       zoneMap
	width       int
	height      int
	scroll      int    // first visible page row
	scrolledFor string // focus ID the scroll was last adjusted for
	status      string
	failed      bool // status reports an error
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model showing the state's current page.
// A nil state starts a fresh one at home.
func NewAppModel(state *nav.State, cat *catalog.Catalog) *AppModel {
	if state == nil {
		state = nav.NewState()
	}
	a := &AppModel{
		State:      state,
		Catalog:    cat,
		KeyHandler: NewKeyHandler(newRegistry()),
		Clipboard:  clipboard.WriteAll,
		detail:     viewport.New(0, 0),
	}
	a.Focus.OnChange = func(from, to string) {
		a.status, a.failed = "", false
	}
	a.resetPage()
	return a
}

func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	toggleHelp := func() tea.Msg { return ToggleHelpMsg{} }

	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("?", toggleHelp, "Help")
	leaderKeys := map[string]string{
		nav.TagHome:     "h",
		nav.TagArticles: "a",
		nav.TagAbout:    "b",
		nav.TagContact:  "c",
	}
	for i, tag := range nav.BarTags {
		desc := strings.ToUpper(tag[:1]) + tag[1:]
		reg.BindWithDesc(strconv.Itoa(i+1), navigateCmd(tag), desc)
		reg.BindWithDesc("SPC "+leaderKeys[tag], navigateCmd(tag), desc)
	}
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC ?", toggleHelp, "Help")
	reg.BindWithDescForViews("SPC y", func() tea.Msg { return CopyArticleMsg{} }, "Copy article",
		[]site.ViewKind{site.ViewArticle})
	return reg
}

func navigateCmd(target string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Target: target} }
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Content returns the content of the page being shown.
func (a *AppModel) Content() site.Content {
	return a.content
}

// Status returns the transient status line, if any.
func (a *AppModel) Status() string {
	return a.status
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if a.Form != nil {
		return a.Form.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resizeDetail()
		return a, nil
	case NavigateMsg:
		return a, a.navigate(msg.Target)
	case ToggleHelpMsg:
		if _, ok := a.Overlays.Pop(); !ok {
			a.Overlays.Push(Overlay{
				View:    NewHelpOverlay(NewKeyMap(a.KeyHandler.Registry, a.content.Kind)),
				Dismiss: "esc",
			})
		}
		return a, nil
	case DismissOverlayMsg:
		a.Overlays.Pop()
		return a, nil
	case CopyArticleMsg:
		return a, a.copyArticle()
	case copyResultMsg:
		if msg.Err != nil {
			slog.Warn("clipboard write failed", "error", msg.Err)
			a.setStatus(fmt.Sprintf("Copy failed: %v", msg.Err), true)
		} else {
			slog.Debug("article copied", "title", msg.Title)
			a.setStatus(fmt.Sprintf("Copied “%s” to clipboard", msg.Title), false)
		}
		return a, nil
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	if a.Form != nil {
		_, cmd := a.Form.Update(msg)
		return a, cmd
	}
	return a, nil
}

// navigate makes target the current page and rebuilds page-local state.
func (a *AppModel) navigate(target string) tea.Cmd {
	a.State.Navigate(target)
	a.resetPage()
	if a.Form != nil {
		return a.Form.Init()
	}
	return nil
}

// resetPage resolves the current page and rebuilds its controls, focus
// order, form and article viewport.
func (a *AppModel) resetPage() {
	a.content = site.Resolve(a.State.Current(), a.Catalog)
	a.controls = make(map[string]control)
	var order []string
	add := func(id, target string, focusable bool) {
		a.controls[id] = control{id: id, target: target}
		if focusable {
			order = append(order, id)
		}
	}

	add(ctrlLogo, nav.TagHome, false)
	for _, tag := range nav.BarTags {
		add(navControlID(tag), tag, false)
	}
	if h := a.content.Hero; h != nil {
		add(ctrlCTA, h.Action.Target, true)
	}
	for _, card := range a.content.Cards {
		add(cardControlID(card.ID), card.Target, true)
	}
	a.Form = nil
	if f := a.content.Form; f != nil {
		a.Form = NewContactForm(*f)
		for _, field := range f.Fields {
			add(fieldControlID(field.Name), "", true)
		}
		add(ctrlSubmit, "", true)
	}
	for i, l := range a.content.Links {
		add(linkControlID(i), l.Target, true)
	}

	a.Focus.Reset(order)
	a.Overlays = OverlayStack{}
	a.scroll, a.scrolledFor = 0, ""
	a.status, a.failed = "", false
	a.resizeDetail()
	a.detail.GotoTop()
}

func (a *AppModel) setStatus(s string, failed bool) {
	a.status, a.failed = s, failed
}

// activate performs a control's action: navigate, or focus a form control.
// The submit button has no action.
func (a *AppModel) activate(id string) tea.Cmd {
	c, ok := a.controls[id]
	if !ok {
		return nil
	}
	if c.target != "" {
		return a.navigate(c.target)
	}
	a.Focus.SetFocus(id)
	return a.syncForm()
}

// syncForm moves form editing to the focused field, or ends it.
func (a *AppModel) syncForm() tea.Cmd {
	if a.Form == nil {
		return nil
	}
	name, ok := strings.CutPrefix(a.Focus.Current, "field-")
	if !ok {
		a.Form.Blur()
		return nil
	}
	if a.Form.Focused() == name {
		return nil
	}
	return a.Form.Focus(name)
}

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if s == "ctrl+c" {
		return tea.Quit
	}

	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(s) {
			a.Overlays.Pop()
			return nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}

	if a.Form != nil && a.Form.Editing() {
		return a.handleFormKey(msg)
	}

	if consumed, cmd := a.KeyHandler.Handle(msg, a.content.Kind); consumed {
		return cmd
	}
	return a.handlePageKey(msg)
}

// handleFormKey routes keys while a contact field is being edited. Only
// focus movement and esc are intercepted; everything else is typed.
func (a *AppModel) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		a.Focus.Next()
		return a.syncForm()
	case "shift+tab":
		a.Focus.Prev()
		return a.syncForm()
	case "esc":
		a.Focus.Clear()
		return a.syncForm()
	case "enter":
		if !a.Form.Multiline() {
			a.Focus.Next()
			return a.syncForm()
		}
	}
	_, cmd := a.Form.Update(msg)
	return cmd
}

func (a *AppModel) handlePageKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	switch s {
	case "tab":
		a.Focus.Next()
		return a.syncForm()
	case "shift+tab":
		a.Focus.Prev()
		return a.syncForm()
	case "enter":
		if a.Focus.Current != "" {
			return a.activate(a.Focus.Current)
		}
		return nil
	}

	if a.content.Kind == site.ViewArticle {
		switch s {
		case "esc", "backspace":
			return a.navigate(nav.TagArticles)
		case "y":
			return a.copyArticle()
		}
		var cmd tea.Cmd
		a.detail, cmd = a.detail.Update(msg)
		return cmd
	}

	switch s {
	case "j", "down":
		a.Focus.Next()
		return a.syncForm()
	case "k", "up":
		a.Focus.Prev()
		return a.syncForm()
	}
	return nil
}

func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	if a.Overlays.Len() > 0 {
		a.Overlays.Pop()
		return nil
	}
	if tea.MouseEvent(msg).IsWheel() {
		if a.content.Kind != site.ViewArticle {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				a.scroll = max(0, a.scroll-wheelStep)
			case tea.MouseButtonWheelDown:
				a.scroll += wheelStep
			}
			return nil
		}
		var cmd tea.Cmd
		a.detail, cmd = a.detail.Update(msg)
		return cmd
	}
	if msg.Button != tea.MouseButtonLeft {
		return nil
	}
	id, ok := a.zones.at(msg.X, msg.Y)
	if !ok {
		a.Focus.Clear()
		return a.syncForm()
	}
	return a.activate(id)
}

func (a *AppModel) copyArticle() tea.Cmd {
	art := a.content.Article
	if art == nil || a.Clipboard == nil {
		return nil
	}
	title, text := art.Title, art.Title+"\n\n"+art.Content
	write := a.Clipboard
	return func() tea.Msg {
		return copyResultMsg{Title: title, Err: write(text)}
	}
}

// size returns the terminal size, defaulting to 80x24 before the first
// WindowSizeMsg (and in tests).
func (a *AppModel) size() (int, int) {
	w, h := a.width, a.height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}
