package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// pageAction is a button on a static page.
type pageAction struct {
	Label string
	Icon  string
	Path  string
}

type featureCard struct {
	title string
	icon  string
	body  string
}

var landingActions = []pageAction{
	{Label: "View Analytics Dashboard", Icon: "▤", Path: RouteSalesAnalytics},
}

var notFoundActions = []pageAction{
	{Label: "Go to Homepage", Icon: "⌂", Path: RouteHome},
	{Label: "Sales Dashboard", Icon: "▤", Path: RouteSalesAnalytics},
}

var landingFeatures = []featureCard{
	{
		title: "Revenue Analytics",
		icon:  "₹",
		body:  "Track total revenue, net revenue, VAT collections, and revenue trends across different time periods",
	},
	{
		title: "Performance Metrics",
		icon:  "▤",
		body:  "Monitor ATV, AUV, ASV, UPT and other key performance indicators with interactive charts",
	},
	{
		title: "Customer Insights",
		icon:  "◉",
		body:  "Analyze customer behavior, spending patterns, and sales associate performance",
	},
}

const (
	landingEyebrow  = "Sales Analytics Dashboard"
	landingHeadline = "Sales Analytics"
	landingTagline  = "Comprehensive sales performance analysis, revenue insights, and customer analytics to drive business growth"
	featuresTitle   = "Powerful Sales Insights"
	featuresTagline = "Get deep insights into your sales performance with advanced analytics and visualizations"
	footerText      = "© Physique 57 India · Sales Analytics"

	notFoundCode  = "404"
	notFoundTitle = "Page Not Found"
	notFoundBody  = "The page you're looking for doesn't exist. Return to the sales analytics dashboard to continue exploring your data."
)

// pageActions returns the buttons of the current static screen.
func (m Model) pageActions() []pageAction {
	switch m.screen {
	case screenLanding:
		return landingActions
	case screenNotFound:
		return notFoundActions
	default:
		return nil
	}
}

// movePageFocus shifts the focused button, wrapping at both ends.
func (m *Model) movePageFocus(delta int) {
	n := len(m.pageActions())
	if n == 0 {
		m.pageFocus = 0
		return
	}
	m.pageFocus = ((m.pageFocus+delta)%n + n) % n
}

// activatePageAction returns the path of the focused button, if any.
func (m Model) activatePageAction() (string, bool) {
	actions := m.pageActions()
	if m.pageFocus < 0 || m.pageFocus >= len(actions) {
		return "", false
	}
	return actions[m.pageFocus].Path, true
}

func (m Model) renderLanding() string {
	styles := m.theme.Styles()
	width := m.contentWidth()

	eyebrow := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Accent)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderMuted)).
		Padding(0, 1).
		Render("↗ " + landingEyebrow)
	headline := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Accent)).
		Bold(true).
		Render(landingHeadline)
	tagline := styles.MutedText.Width(min(width, 72)).Align(lipgloss.Center).Render(landingTagline)

	hero := lipgloss.JoinVertical(lipgloss.Center,
		eyebrow,
		"",
		headline,
		"",
		tagline,
		"",
		m.renderPageButtons(landingActions),
	)

	section := lipgloss.JoinVertical(lipgloss.Center,
		styles.Text.Bold(true).Render(featuresTitle),
		styles.MutedText.Width(min(width, 72)).Align(lipgloss.Center).Render(featuresTagline),
		"",
		m.renderFeatureCards(width),
	)

	footer := styles.FaintText.Render(footerText)
	help := styles.FaintText.Render("←/→ focus · enter open · : go to path · q quit")

	page := lipgloss.JoinVertical(lipgloss.Center, hero, "", "", section, "", footer, help)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, page)
}

func (m Model) renderFeatureCards(width int) string {
	styles := m.theme.Styles()
	cardWidth := 30
	horizontal := width >= 3*(cardWidth+4)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Width(cardWidth)

	cards := make([]string, 0, len(landingFeatures))
	for _, f := range landingFeatures {
		body := styles.AccentText.Render(f.icon) + " " + styles.Text.Bold(true).Render(f.title) +
			"\n\n" + styles.MutedText.Render(f.body)
		cards = append(cards, card.Render(body))
	}
	if horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(cards, "  ")...)
	}
	return lipgloss.JoinVertical(lipgloss.Center, cards...)
}

func (m Model) renderNotFound() string {
	styles := m.theme.Styles()

	code := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Danger)).
		Bold(true).
		Render(notFoundCode)
	body := styles.MutedText.Width(52).Align(lipgloss.Center).Render(notFoundBody)

	content := lipgloss.JoinVertical(lipgloss.Center,
		code,
		"",
		styles.Text.Bold(true).Render(notFoundTitle),
		"",
		body,
		"",
		m.renderPageButtons(notFoundActions),
	)
	if m.route != "" {
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", styles.FaintText.Render(m.route))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(1, 3).
		Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderPageButtons draws actions in a row; the focused one is filled.
func (m Model) renderPageButtons(actions []pageAction) string {
	focused := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SelectionBg)).
		Foreground(lipgloss.Color(m.theme.SelectionText)).
		Bold(true).
		Padding(0, 2)
	plain := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Padding(0, 2)

	buttons := make([]string, 0, len(actions))
	for i, a := range actions {
		label := strings.TrimSpace(a.Icon + " " + a.Label)
		if i == m.pageFocus {
			buttons = append(buttons, focused.Render(label))
		} else {
			buttons = append(buttons, plain.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, joinWithGap(buttons, "  ")...)
}

func joinWithGap(items []string, gap string) []string {
	if len(items) < 2 {
		return items
	}
	out := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, item)
	}
	return out
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}
