package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"techsphere/internal/site"
)

// RenderKeybindHelp produces the transient hint bar shown after SPC.
// When the handler holds a partial sequence (e.g. "SPC g" in a registry with nested sequences), the next level is shown.
func RenderKeybindHelp(keyHandler *KeyHandler, view site.ViewKind) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	currentSeq := keyHandler.CurrentSeq()
	hints := keyHandler.Registry.LeaderHints(currentSeq, view)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)

	return boxStyle.Render(Styles.Hint.Render(currentSeq) + " " + newHelpModel().ShortHelpView(bindings))
}

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = Styles.Hint
	h.Styles.FullSeparator = Styles.Hint
	return h
}
