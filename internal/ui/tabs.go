package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Tab identifiers.
const (
	TabSales      = "sales"
	TabFunnel     = "funnel"
	TabConversion = "conversion"
	TabTrainer    = "trainer"
	TabAttendance = "attendance"
	TabPromotions = "promotions"
	TabExecutive  = "executive"
)

const comingSoonText = "Coming Soon"

// tabDescriptor pairs a stable identifier with its label, icon and panel.
// A nil panel means the tab is declared but not built yet.
type tabDescriptor struct {
	ID         string
	Label      string
	ShortLabel string
	Icon       string
	Panel      panelFunc
}

// panelFunc draws a panel's body into the given content area.
type panelFunc func(m Model, width, height int) string

// dashboardTabs returns the dashboard's tabs in display order.
func dashboardTabs() []tabDescriptor {
	return []tabDescriptor{
		{ID: TabSales, Label: "Sales Analytics", ShortLabel: "Sales", Icon: "▤", Panel: renderSalesPanel},
		{ID: TabFunnel, Label: "Funnel & Lead Performance", ShortLabel: "Funnel", Icon: "↗"},
		{ID: TabConversion, Label: "New Client Conversion & Retention", ShortLabel: "Conversion", Icon: "◉"},
		{ID: TabTrainer, Label: "Trainer Performance & Analytics", ShortLabel: "Trainers", Icon: "◎"},
		{ID: TabAttendance, Label: "Class Attendance", ShortLabel: "Attendance", Icon: "◉"},
		{ID: TabPromotions, Label: "Discounts & Promotions", ShortLabel: "Promotions", Icon: "✦"},
		{ID: TabExecutive, Label: "Executive Summary", ShortLabel: "Executive", Icon: "▦"},
	}
}

// tabContent is what the dashboard shows for the active tab. It is sealed:
// readyPanel and comingSoon are the only variants.
type tabContent interface {
	isTabContent()
}

type readyPanel struct {
	id     string
	render panelFunc
}

type comingSoon struct {
	id string
}

func (readyPanel) isTabContent() {}
func (comingSoon) isTabContent() {}

// resolvePanel looks id up in tabs. Unknown ids and tabs without a panel both
// resolve to comingSoon.
func resolvePanel(tabs []tabDescriptor, id string) tabContent {
	for _, tab := range tabs {
		if tab.ID != id {
			continue
		}
		if tab.Panel == nil {
			return comingSoon{id: id}
		}
		return readyPanel{id: id, render: tab.Panel}
	}
	return comingSoon{id: id}
}

func tabIndex(tabs []tabDescriptor, id string) int {
	for i, tab := range tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// selectTab activates the tab at offset delta from the current one, wrapping
// at both ends. An active id that is not in the list moves to the first tab.
func (m *Model) selectTab(delta int) {
	if len(m.tabs) == 0 {
		return
	}
	idx := tabIndex(m.tabs, m.activeTab)
	if idx < 0 {
		m.setActiveTab(m.tabs[0].ID)
		return
	}
	n := len(m.tabs)
	m.setActiveTab(m.tabs[((idx+delta)%n+n)%n].ID)
}

// selectTabNumber activates the 1-based tab n; out-of-range numbers are ignored.
func (m *Model) selectTabNumber(n int) {
	if n < 1 || n > len(m.tabs) {
		return
	}
	m.setActiveTab(m.tabs[n-1].ID)
}

func (m *Model) setActiveTab(id string) {
	if id == m.activeTab {
		return
	}
	m.logger.Debug("tab selected", "from", m.activeTab, "to", id)
	m.activeTab = id
}

// renderDashboard renders header, tab strip, the active panel and the footer.
func (m Model) renderDashboard() string {
	header := m.renderHeader()
	strip := m.renderTabStrip()
	footer := m.renderFooter()

	used := lipgloss.Height(header) + lipgloss.Height(strip) + lipgloss.Height(footer)
	bodyHeight := m.height - used
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	body := m.renderTabContent(resolvePanel(m.tabs, m.activeTab), m.width, bodyHeight)
	body = lipgloss.NewStyle().Width(m.width).Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, strip, body, footer)
}

func (m Model) renderTabContent(content tabContent, width, height int) string {
	switch c := content.(type) {
	case readyPanel:
		return c.render(m, width, height)
	case comingSoon:
		return m.renderComingSoon(width, height)
	}
	return m.renderComingSoon(width, height)
}

func (m Model) renderComingSoon(width, height int) string {
	styles := m.theme.Styles()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		styles.MutedText.Render(comingSoonText))
}

// renderHeader renders the branded header line with the live-data indicator.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sty := styles.WithBackground(m.theme.Surface)

	badge := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Accent)).
		Foreground(lipgloss.Color(m.theme.Background)).
		Bold(true).
		Padding(0, 1).
		Render("P57")

	left := badge + bg.Space() +
		bg.Render("Physique 57 India", sty.Text.Bold(true)) +
		bg.Spaces(2) +
		bg.Render("Advanced Analytics Dashboard", sty.MutedText)

	right := m.renderLiveIndicator(bg, sty)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := left + bg.Spaces(gap) + right
	if m.width > 2 {
		line = bg.FillLine(line, m.width-2)
	}
	return styles.Header.Render(line)
}

func (m Model) renderLiveIndicator(bg BgStyle, sty Styles) string {
	switch {
	case m.snapshot.IsOffline():
		return bg.Render("● Offline", sty.DangerText)
	case m.snapshot.LastError != nil:
		return bg.Render("● Live Data", sty.FaintText)
	default:
		return bg.Render("● Live Data", sty.SuccessText)
	}
}

// renderTabStrip renders every tab label; the active one is highlighted.
func (m Model) renderTabStrip() string {
	styles := m.theme.Styles()
	compact := m.width > 0 && m.width < LayoutCompactWidth

	active := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Accent)).
		Bold(true).
		Underline(true)
	inactive := styles.MutedText

	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		label := tab.Label
		if compact && tab.ShortLabel != "" {
			label = tab.ShortLabel
		}
		text := strings.Join([]string{numberLabel(i + 1), tab.Icon, label}, " ")
		if tab.ID == m.activeTab {
			parts = append(parts, active.Render(text))
		} else {
			parts = append(parts, inactive.Render(text))
		}
	}
	line := strings.Join(parts, styles.FaintText.Render("  │  "))
	if m.width > 0 {
		line = ansi.Truncate(line, m.width-2, "…")
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(line)
}

func numberLabel(n int) string {
	if n < 1 || n > 9 {
		return " "
	}
	return string(rune('0' + n))
}

// renderFooter renders the short key help for the current screen.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	m.help.Width = m.width
	return styles.Footer.Width(m.width).Render(m.help.View(m.keys))
}
