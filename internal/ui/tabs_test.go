package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardTabs_OrderAndPanels(t *testing.T) {
	tabs := dashboardTabs()
	ids := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		ids = append(ids, tab.ID)
	}
	assert.Equal(t, []string{
		TabSales, TabFunnel, TabConversion, TabTrainer, TabAttendance, TabPromotions, TabExecutive,
	}, ids)

	assert.Equal(t, "Sales Analytics", tabs[0].Label)
	assert.Equal(t, "New Client Conversion & Retention", tabs[2].Label)
	assert.NotNil(t, tabs[0].Panel)
	for _, tab := range tabs[1:] {
		assert.Nil(t, tab.Panel, "tab %s should not have a panel yet", tab.ID)
	}
}

func TestResolvePanel(t *testing.T) {
	tabs := dashboardTabs()

	_, ok := resolvePanel(tabs, TabSales).(readyPanel)
	assert.True(t, ok, "sales should resolve to a ready panel")

	for _, id := range []string{TabFunnel, TabExecutive, "", "SALES", "reports"} {
		got, ok := resolvePanel(tabs, id).(comingSoon)
		require.True(t, ok, "id %q should resolve to comingSoon", id)
		assert.Equal(t, id, got.id)
	}
	_, ok = resolvePanel(nil, TabSales).(comingSoon)
	assert.True(t, ok, "empty tab list resolves to comingSoon")
}

func TestDashboard_UnknownTabRendersPlaceholderOnce(t *testing.T) {
	for _, id := range []string{"reports", "", "Sales", "funnel "} {
		m := newTestModel(t, RouteSalesAnalytics, sampleClients()...)
		m.activeTab = id
		view := m.View()
		assert.Equal(t, 1, countOf(view, comingSoonText), "id %q", id)
		assert.Zero(t, countOf(view, rosterTitle), "id %q rendered the roster", id)
	}
}

func TestDashboard_ReadyPanelRendersExactlyOnce(t *testing.T) {
	m := newTestModel(t, RouteSalesAnalytics)
	m.tabs = []tabDescriptor{
		{ID: "alpha", Label: "Alpha", Panel: func(Model, int, int) string { return "ALPHA-PANEL" }},
		{ID: "beta", Label: "Beta", Panel: func(Model, int, int) string { return "BETA-PANEL" }},
	}
	m.activeTab = "beta"

	view := m.View()
	assert.Equal(t, 1, countOf(view, "BETA-PANEL"))
	assert.Zero(t, countOf(view, "ALPHA-PANEL"))
	assert.Zero(t, countOf(view, comingSoonText))
}

func TestDashboard_SelectingTabWithoutPanelShowsComingSoon(t *testing.T) {
	m := newTestModel(t, RouteSalesAnalytics, sampleClients()...)
	m.tabs = []tabDescriptor{
		{ID: TabSales, Label: "Sales Analytics", Panel: renderSalesPanel},
		{ID: TabFunnel, Label: "Funnel & Lead Performance"},
	}
	require.Equal(t, TabSales, m.activeTab)
	assert.Equal(t, 1, countOf(m.View(), rosterTitle))

	m = press(m, "]")
	require.Equal(t, TabFunnel, m.activeTab)

	view := m.View()
	assert.Equal(t, 1, countOf(view, comingSoonText))
	assert.Zero(t, countOf(view, rosterTitle))
}

func TestDashboard_TabKeys(t *testing.T) {
	m := newTestModel(t, RouteSalesAnalytics)
	require.Equal(t, TabSales, m.activeTab)

	m = press(m, "right")
	assert.Equal(t, TabFunnel, m.activeTab)

	m = press(m, "left", "left")
	assert.Equal(t, TabExecutive, m.activeTab, "left wraps to the last tab")

	m = press(m, "]")
	assert.Equal(t, TabSales, m.activeTab, "] wraps to the first tab")

	m = press(m, "[")
	assert.Equal(t, TabExecutive, m.activeTab)

	m = press(m, "3")
	assert.Equal(t, TabConversion, m.activeTab)

	m = press(m, "9")
	assert.Equal(t, TabConversion, m.activeTab, "out of range number is ignored")
}

func TestDashboard_UnknownActiveTabMovesToFirstOnSelect(t *testing.T) {
	m := newTestModel(t, RouteSalesAnalytics)
	m.activeTab = "reports"
	m = press(m, "]")
	assert.Equal(t, TabSales, m.activeTab)
}

func TestDashboard_HeaderAndStrip(t *testing.T) {
	m := newTestModel(t, RouteSalesAnalytics)
	m = step(m, windowSize(400, 40))

	view := plain(m.View())
	for _, want := range []string{
		"P57", "Physique 57 India", "Advanced Analytics Dashboard", "● Live Data",
		"Sales Analytics", "Funnel & Lead Performance", "Executive Summary",
	} {
		assert.Contains(t, view, want)
	}
}

func TestDashboard_CompactStripUsesShortLabels(t *testing.T) {
	m := newTestModel(t, RouteSalesAnalytics)
	m = step(m, windowSize(90, 40))
	strip := plain(m.renderTabStrip())
	assert.Contains(t, strip, "Sales")
	assert.NotContains(t, strip, "Funnel & Lead Performance")
}

func TestDashboard_DefaultTabFromConfig(t *testing.T) {
	m := newTestModel(t, RouteSalesAnalytics)
	m.defaultTab = TabTrainer
	m = press(m, "2")
	require.Equal(t, TabFunnel, m.activeTab)

	m.navigate(RouteHome)
	require.Equal(t, screenLanding, m.screen)
	m.navigate(RouteSalesAnalytics)
	assert.Equal(t, TabTrainer, m.activeTab, "entering the dashboard starts on the default tab")

	m = press(m, "1")
	m.navigate(RouteSalesAnalytics)
	assert.Equal(t, TabSales, m.activeTab, "re-navigating within the dashboard keeps the tab")
}
