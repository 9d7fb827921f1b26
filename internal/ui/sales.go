package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/studioboard/internal/studio"
)

const (
	rosterTitle     = "Client Roster"
	rosterEmptyText = "No client data yet"
)

// salesState is the Sales Analytics panel's roster cursor.
type salesState struct {
	selected int
}

func renderSalesPanel(m Model, width, height int) string {
	return m.renderRoster(width, height)
}

// renderRoster lists the latest client records, one row per client.
func (m Model) renderRoster(width, height int) string {
	styles := m.theme.Styles()
	clients := m.snapshot.Clients

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(fmt.Sprintf("%s (%d)", rosterTitle, len(clients))))
	b.WriteString("\n")

	if len(clients) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(rosterEmptyText))
		return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	}

	b.WriteString(styles.FaintText.Render(m.rosterHeaderLine()))
	b.WriteString("\n")

	rows := visibleRows(height)
	start, end := rosterWindow(m.sales.selected, len(clients), rows)
	for i := start; i < end; i++ {
		line := m.rosterLine(clients[i])
		if i == m.sales.selected {
			line = styles.Selected.Render(ansi.Strip(line))
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if end-start < len(clients) {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(clients))))
	}

	content := b.String()
	if width > 0 {
		content = lipgloss.NewStyle().MaxWidth(width).Render(content)
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

func (m Model) rosterHeaderLine() string {
	return padRight("Client", rosterNameWidth) + " " +
		padRight("Conversion", rosterBadgeWidth) + " " +
		padRight("Retention", rosterBadgeWidth) + " " +
		"Lifetime Value"
}

func (m Model) rosterLine(c studio.ClientRecord) string {
	name := c.FullName()
	if name == "" {
		name = unknownLabel
	}
	conv := ParseConversionStatus(c.ConversionStatus)
	ret := ParseRetentionStatus(c.RetentionStatus)

	convBadge := m.renderBadge(conv.Label(), conv.Tone())
	retBadge := m.renderBadge(ret.Label(), ret.Tone())

	return padRight(truncate(name, rosterNameWidth), rosterNameWidth) + " " +
		padVisible(convBadge, rosterBadgeWidth) + " " +
		padVisible(retBadge, rosterBadgeWidth) + " " +
		fmt.Sprintf("%*s", rosterLTVWidth, m.formatter.Currency(c.LTV))
}

// visibleRows is how many roster rows fit under the title, header and padding.
func visibleRows(height int) int {
	rows := height - 6
	if rows < rosterMinRowCount {
		return rosterMinRowCount
	}
	return rows
}

// rosterWindow returns the slice of rows to draw so that selected is the
// last visible row once the list is longer than rows.
func rosterWindow(selected, total, rows int) (int, int) {
	start := 0
	if selected >= rows {
		start = selected - rows + 1
	}
	end := start + rows
	if end > total {
		end = total
	}
	return start, end
}

// clampSelection keeps the roster cursor inside the current client list.
func (m *Model) clampSelection() {
	n := len(m.snapshot.Clients)
	if m.sales.selected >= n {
		m.sales.selected = n - 1
	}
	if m.sales.selected < 0 {
		m.sales.selected = 0
	}
}

// selectedClient returns a copy of the highlighted record, or nil when the
// roster is empty.
func (m Model) selectedClient() *studio.ClientRecord {
	clients := m.snapshot.Clients
	if m.sales.selected < 0 || m.sales.selected >= len(clients) {
		return nil
	}
	rec := clients[m.sales.selected]
	return &rec
}

func padVisible(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
