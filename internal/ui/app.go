package ui

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/studioboard/internal/config"
	"github.com/five82/studioboard/internal/format"
	"github.com/five82/studioboard/internal/prefs"
	"github.com/five82/studioboard/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Config    *config.Config
	Logger    *slog.Logger
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	logger    *slog.Logger
	prefsPath string
	pollTick  time.Duration
	formatter format.Formatter
	keys      keyMap
	help      help.Model

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Data state
	snapshot state.Snapshot

	// Navigation
	route     string
	screen    screen
	pageFocus int

	// Dashboard
	tabs       []tabDescriptor
	defaultTab string
	activeTab  string
	sales      salesState

	// Overlays
	modal    Modal
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Slate"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:        ctx,
		store:      opts.Store,
		logger:     logger,
		prefsPath:  prefsPath,
		pollTick:   pollTick,
		formatter:  format.New(cfg.CurrencySymbol),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		theme:      GetTheme(themeName),
		tabs:       dashboardTabs(),
		defaultTab: cfg.DefaultTab,
		activeTab:  cfg.DefaultTab,
		screen:     screenLanding,
	}
	m.navigate(cfg.StartRoute)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.clampSelection()
		return m, nil

	case navigateMsg:
		m.navigate(string(msg))
		return m, nil
	}

	if m.modal != nil {
		return m.updateModal(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		if view := m.modal.View(m.theme, m.width, m.height); view != "" {
			return view
		}
	}

	switch m.screen {
	case screenDashboard:
		return m.renderDashboard()
	case screenNotFound:
		return m.renderNotFound()
	default:
		return m.renderLanding()
	}
}

// handleKey routes a key press: help overlay first, then the open modal,
// then global bindings, then the current screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		return m.updateModal(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.GoTo):
		m.modal = newPathPrompt(m.route)
		return m, nil
	}

	switch m.screen {
	case screenDashboard:
		return m.handleDashboardKey(msg)
	default:
		return m.handlePageKey(msg)
	}
}

func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd, closed := m.modal.Update(msg, m.keys)
	if closed {
		m.logger.Debug("modal closed")
		m.modal = nil
	} else {
		m.modal = next
	}
	return m, cmd
}

// handleDashboardKey switches tabs and drives the roster on the sales tab.
func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.PrevTab):
		m.selectTab(-1)
		return m, nil
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.NextTab):
		m.selectTab(1)
		return m, nil
	case key.Matches(msg, m.keys.JumpTab):
		m.selectTabNumber(int(msg.String()[0] - '0'))
		return m, nil
	}

	if m.activeTab != TabSales {
		return m, nil
	}
	return m.handleRosterKey(msg)
}

// handleRosterKey moves the roster cursor and opens the drill-down.
func (m Model) handleRosterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.snapshot.Clients)
	if count == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.sales.selected < count-1 {
			m.sales.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.sales.selected > 0 {
			m.sales.selected--
		}
	case key.Matches(msg, m.keys.Top):
		m.sales.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.sales.selected = count - 1
	case key.Matches(msg, m.keys.Confirm):
		m.openDrillDown()
	}

	return m, nil
}

func (m *Model) openDrillDown() {
	client := m.selectedClient()
	drill := NewDrillDown(m.formatter)
	drill.Open(client)
	if client != nil {
		m.logger.Debug("drill-down opened", "client", client.Key())
	}
	m.modal = drill
}

// handlePageKey moves focus between a static page's buttons.
func (m Model) handlePageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.PrevPane):
		m.movePageFocus(-1)
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.NextPane):
		m.movePageFocus(1)
	case key.Matches(msg, m.keys.Confirm):
		if path, ok := m.activatePageAction(); ok {
			m.navigate(path)
		}
	}
	return m, nil
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Fetch latest snapshot
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}

	// Schedule next tick
	cmds = append(cmds, tickCmd(m.pollTick))

	return m, tea.Batch(cmds...)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
