// Package ui provides the studioboard terminal dashboard.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds every piece of UI state and
// all transitions happen synchronously inside Update; nothing in this
// package blocks or runs concurrently. Data arrives as state.Snapshot
// values read from the store on each tick.
//
// # Screens
//
// A route string selects one of three screens:
//
//   - "/": landing page with a call to action into the dashboard
//   - "/sales-analytics": the tabbed dashboard
//   - anything else: a not-found page with links back
//
// Press ":" anywhere to type a path.
//
// # Dashboard Tabs
//
// Tabs are a fixed, ordered list of descriptors. Exactly one is active.
// resolvePanel maps the active id to either a readyPanel or comingSoon;
// unknown ids and tabs without a panel render a single "Coming Soon"
// placeholder. Only Sales Analytics has a panel: a client roster.
//
// # Client Profile
//
// Enter on a roster row opens a DrillDown modal with overview, journey and
// financials sections. Every absent field renders a fixed placeholder and
// status strings are parsed into closed enums (ConversionStatus,
// RetentionStatus) whose Tone picks the badge color.
//
// # Key Bindings
//
//   - ←/→ or [/]: Previous/next tab
//   - 1-7: Jump to tab
//   - j/k, g/G: Move through the roster
//   - enter: Open client profile / activate button
//   - tab, o/j/f: Switch profile section
//   - esc: Close dialog
//   - T: Cycle theme
//   - ?: Toggle help
//   - q or Ctrl+C: Exit
package ui
