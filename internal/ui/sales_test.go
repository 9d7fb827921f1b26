package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/studioboard/internal/state"
	"github.com/five82/studioboard/internal/studio"
)

func TestRoster_ListsClients(t *testing.T) {
	m := newTestModel(t, RouteSalesAnalytics, sampleClients()...)
	view := plain(m.View())

	assert.Contains(t, view, "Client Roster (2)")
	assert.Contains(t, view, "Priya Shah")
	assert.Contains(t, view, "Rohan Mehta")
	assert.Contains(t, view, "₹45,250")
	assert.Contains(t, view, "Not Converted")
	assert.Contains(t, view, "At Risk")
}

func TestRoster_EmptyState(t *testing.T) {
	m := newTestModel(t, RouteSalesAnalytics)
	view := plain(m.View())
	assert.Contains(t, view, "Client Roster (0)")
	assert.Contains(t, view, rosterEmptyText)
}

func TestRoster_CursorMovesAndClamps(t *testing.T) {
	m := newTestModel(t, RouteSalesAnalytics, sampleClients()...)

	m = press(m, "down", "down", "down")
	assert.Equal(t, 1, m.sales.selected)
	m = press(m, "g")
	assert.Equal(t, 0, m.sales.selected)
	m = press(m, "G")
	assert.Equal(t, 1, m.sales.selected)

	m = step(m, snapshotMsg(state.Snapshot{Clients: sampleClients()[:1], HasData: true}))
	assert.Equal(t, 0, m.sales.selected)

	m = step(m, snapshotMsg(state.Snapshot{}))
	assert.Equal(t, 0, m.sales.selected)
	assert.Nil(t, m.selectedClient())
}

func TestRoster_KeysIgnoredOnOtherTabs(t *testing.T) {
	m := newTestModel(t, RouteSalesAnalytics, sampleClients()...)
	m = press(m, "2", "j", "enter")
	assert.Equal(t, 0, m.sales.selected)
	assert.Nil(t, m.modal)
}

func TestRoster_ScrollsToSelection(t *testing.T) {
	clients := make([]studio.ClientRecord, 30)
	for i := range clients {
		clients[i] = studio.ClientRecord{FirstName: "Client", LastName: string(rune('A' + i%26))}
	}
	m := newTestModel(t, RouteSalesAnalytics, clients...)
	m = step(m, windowSize(160, 16))
	m = press(m, "G")

	view := plain(m.View())
	assert.Contains(t, view, "24-30 of 30")

	start, end := rosterWindow(3, 30, 7)
	assert.Equal(t, 0, start)
	assert.Equal(t, 7, end)
	start, end = rosterWindow(0, 2, 7)
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)
}

func TestHeader_LiveIndicatorReflectsErrors(t *testing.T) {
	m := newTestModel(t, RouteSalesAnalytics)
	require.Contains(t, plain(m.renderHeader()), "● Live Data")

	m = step(m, snapshotMsg(state.Snapshot{LastError: errors.New("boom"), ConsecutiveFailures: 1}))
	assert.Contains(t, plain(m.renderHeader()), "● Live Data")

	m = step(m, snapshotMsg(state.Snapshot{LastError: errors.New("boom"), ConsecutiveFailures: 2}))
	assert.Contains(t, plain(m.renderHeader()), "● Offline")
}
