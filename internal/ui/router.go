package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Routes the dashboard knows about. Every other path is not found.
const (
	RouteHome           = "/"
	RouteSalesAnalytics = "/sales-analytics"
)

// screen is the top-level page a route resolves to.
type screen int

const (
	screenLanding screen = iota
	screenDashboard
	screenNotFound
)

func (s screen) String() string {
	switch s {
	case screenLanding:
		return "landing"
	case screenDashboard:
		return "dashboard"
	default:
		return "not-found"
	}
}

// NormalizePath trims whitespace, drops any query or fragment, ensures a
// leading slash and strips trailing slashes.
func NormalizePath(path string) string {
	p := strings.TrimSpace(path)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return RouteHome
	}
	return p
}

// screenForPath resolves a normalized path. It never fails; unknown paths
// land on the not-found screen.
func screenForPath(path string) screen {
	switch path {
	case RouteHome:
		return screenLanding
	case RouteSalesAnalytics:
		return screenDashboard
	default:
		return screenNotFound
	}
}

// navigateMsg asks the model to switch to path.
type navigateMsg string

func navigateCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg(path)
	}
}

// navigate switches screens. Entering the dashboard from another screen
// starts on the default tab with the roster cursor at the top.
func (m *Model) navigate(path string) {
	route := NormalizePath(path)
	next := screenForPath(route)
	m.logger.Debug("navigate", "path", path, "route", route, "screen", next.String())

	if next == screenDashboard && m.screen != screenDashboard {
		m.activeTab = m.defaultTab
		m.sales = salesState{}
	}
	if next != m.screen || route != m.route {
		m.pageFocus = 0
	}
	m.route = route
	m.screen = next
	m.modal = nil
}
