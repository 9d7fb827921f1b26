package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/studioboard/internal/config"
	"github.com/five82/studioboard/internal/state"
	"github.com/five82/studioboard/internal/studio"
)

// newTestModel returns a sized model on route with clients loaded.
func newTestModel(t *testing.T, route string, clients ...studio.ClientRecord) Model {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfg := config.Default()
	cfg.StartRoute = route
	m := New(Options{
		Config:    &cfg,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m = step(m, tea.WindowSizeMsg{Width: 160, Height: 48})
	if len(clients) > 0 {
		m = step(m, snapshotMsg(state.Snapshot{Clients: clients, HasData: true}))
	}
	return m
}

func windowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

func step(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

// press sends a key and, when the key produced a command, feeds the
// resulting message back in, the way the runtime would.
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, cmd := m.Update(keyMsg(k))
		m = next.(Model)
		if cmd == nil {
			continue
		}
		if msg, ok := cmd().(navigateMsg); ok {
			m = step(m, msg)
		}
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m = step(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func plain(s string) string {
	return ansi.Strip(s)
}

func countOf(haystack, needle string) int {
	return strings.Count(plain(haystack), needle)
}

func sampleClients() []studio.ClientRecord {
	return []studio.ClientRecord{
		{
			MemberID:                   "M-100",
			FirstName:                  "Priya",
			LastName:                   "Shah",
			Email:                      "priya@example.com",
			PhoneNumber:                "+91 98200 00000",
			HomeLocation:               "Kwality House, Kemps Corner",
			FirstVisitDate:             "2024-01-15",
			FirstVisitLocation:         "Kemps Corner",
			FirstVisitType:             "Trial",
			LTV:                        45250,
			VisitsPostTrial:            18,
			ConversionSpan:             45,
			PurchaseCountPostTrial:     3,
			MembershipsBoughtPostTrial: 2,
			ConversionStatus:           "Converted",
			RetentionStatus:            "Retained",
			IsNew:                      "New",
			TrainerName:                "Anisha Shah",
			FirstPurchase:              "Studio 8 Class Package",
			MembershipUsed:             "Studio 12 Class Package",
			PaymentMethod:              "Card",
			ClassNo:                    12,
			Period:                     "2024-02",
		},
		{
			MemberID:         "M-101",
			FirstName:        "Rohan",
			LastName:         "Mehta",
			ConversionStatus: "Not Converted",
			RetentionStatus:  "At Risk",
		},
	}
}
