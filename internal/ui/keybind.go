package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"techsphere/internal/site"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC h" for SPC then h.
// Single keys: "1", "q", "?", "ctrl+c".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	viewFilter   map[string][]site.ViewKind // nil/empty = applies to all views
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		viewFilter:   make(map[string][]site.ViewKind),
	}
}

// Bind registers a key sequence to a command.
// Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help view.
// The binding applies to every view.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForViews(seq, cmd, desc, nil)
}

// BindWithDescForViews registers a key sequence limited to the given views.
// If views is empty, the binding applies everywhere.
func (r *KeybindRegistry) BindWithDescForViews(seq string, cmd tea.Cmd, desc string, views []site.ViewKind) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(views) > 0 {
		r.viewFilter[n] = views
	}
}

// Lookup returns the command for a key sequence in the given view, or nil.
func (r *KeybindRegistry) Lookup(seq string, view site.ViewKind) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesToView(n, view) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix returns true if any binding starts with seq and a space (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints returns hints for the next key after currentSeq, filtered by view.
// With an empty currentSeq the first level after SPC is returned.
func (r *KeybindRegistry) LeaderHints(currentSeq string, view site.ViewKind) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) {
			continue
		}
		if !r.appliesToView(seq, view) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		parts := strings.Fields(rest)
		k := rest
		if len(parts) > 0 {
			k = parts[0]
		}
		if r.HasPrefix(strings.TrimSuffix(prefix, " ") + " " + k) {
			out[k] = k + "…"
			continue
		}
		if d, ok := r.descriptions[seq]; ok && d != "" {
			out[k] = d
		} else {
			out[k] = seq
		}
	}
	return out
}

// Bindings returns every described binding that applies to the view,
// as key.Binding values sorted by sequence.
func (r *KeybindRegistry) Bindings(view site.ViewKind) []key.Binding {
	seqs := make([]string, 0, len(r.descriptions))
	for seq := range r.descriptions {
		if r.bindings[seq] != nil && r.appliesToView(seq, view) {
			seqs = append(seqs, seq)
		}
	}
	sort.Strings(seqs)
	out := make([]key.Binding, 0, len(seqs))
	for _, seq := range seqs {
		out = append(out, key.NewBinding(key.WithKeys(seq), key.WithHelp(seq, r.descriptions[seq])))
	}
	return out
}

func (r *KeybindRegistry) appliesToView(seq string, view site.ViewKind) bool {
	views, ok := r.viewFilter[seq]
	if !ok || len(views) == 0 {
		return true
	}
	for _, v := range views {
		if v == view {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // " " (tea.KeyMsg.String() format)
	LeaderSeq     string   // "SPC" (our format)
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg for the given view. Returns (consumed, cmd).
// A consumed key must not be passed on to the page.
func (h *KeyHandler) Handle(msg tea.KeyMsg, view site.ViewKind) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")

		if c := h.Registry.Lookup(seq, view); c != nil {
			h.reset()
			return true, c
		}
		// Stay in leader mode if a longer binding exists.
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.reset()
		return true, nil
	}

	if c := h.Registry.Lookup(keyToSeqPart(s), view); c != nil {
		return true, c
	}
	return false, nil
}

// CurrentSeq returns the buffered leader sequence, or "" outside leader mode.
func (h *KeyHandler) CurrentSeq() string {
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyMap implements help.KeyMap over the registry for a single view.
type KeyMap struct {
	registry *KeybindRegistry
	view     site.ViewKind
}

// NewKeyMap creates a KeyMap for the given registry and view.
func NewKeyMap(registry *KeybindRegistry, view site.ViewKind) help.KeyMap {
	return &KeyMap{registry: registry, view: view}
}

// ShortHelp returns the single-key bindings.
func (km *KeyMap) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range km.registry.Bindings(km.view) {
		if !strings.HasPrefix(b.Help().Key, "SPC") {
			out = append(out, b)
		}
	}
	return out
}

// FullHelp returns single keys, leader sequences and page keys as columns.
func (km *KeyMap) FullHelp() [][]key.Binding {
	var leader []key.Binding
	for _, b := range km.registry.Bindings(km.view) {
		if strings.HasPrefix(b.Help().Key, "SPC") {
			leader = append(leader, b)
		}
	}
	return [][]key.Binding{km.ShortHelp(), leader, pageBindings(km.view)}
}

// pageBindings describes keys handled by the page rather than the registry.
func pageBindings(view site.ViewKind) []key.Binding {
	out := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab/shift+tab", "focus")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
	switch view {
	case site.ViewArticle:
		out = append(out,
			key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "scroll")),
			key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy article")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to articles")),
		)
	case site.ViewContact:
		out = append(out, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop editing")))
	default:
		out = append(out, key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "next/prev")))
	}
	return out
}
