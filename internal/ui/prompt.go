package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pathPrompt is the ":" go-to-path dialog.
type pathPrompt struct {
	input textinput.Model
}

func newPathPrompt(current string) *pathPrompt {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = RouteSalesAnalytics
	ti.CharLimit = 256
	ti.Width = 40
	ti.SetValue(current)
	ti.CursorEnd()
	ti.Focus()
	return &pathPrompt{input: ti}
}

// Update implements Modal. Enter closes the prompt and navigates; esc
// closes it without navigating.
func (p *pathPrompt) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Escape):
			return p, nil, true
		case key.Matches(keyMsg, keys.Confirm):
			path := strings.TrimSpace(p.input.Value())
			if path == "" {
				return p, nil, true
			}
			return p, navigateCmd(path), true
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd, false
}

// View implements Modal.
func (p *pathPrompt) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Go to path"))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter go · esc cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(50).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
