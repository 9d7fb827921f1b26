// Package app is the composition root for studioboard.
//
// # Overview
//
// Run wires configuration, logging, the client source, the shared
// state.Store, the background poller and the UI together, then blocks in
// the UI until the user exits or the context is cancelled.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        Read config.toml, apply flag overrides
//	       ├─────> openLogger()         slog text records to the log file
//	       ├─────> prefs.Load()         Theme preference
//	       ├─────> newSource()          Data file or HTTP API
//	       ├─────> StartPoller()        Background refresh
//	       └─────> ui.Run()             Start TUI (blocks)
//
// # Polling Behavior
//
// The poller refreshes immediately and then every poll interval (default 5
// seconds). Each consecutive failure doubles the wait, capped at 30
// seconds; the first success resets it. Failures keep the last good roster
// in the store and are logged at warn level.
//
// # Error Handling
//
// Only startup problems are returned from Run: an unreadable config, a log
// file that cannot be opened, or an invalid source address. Everything after
// that is recorded in the store and shown in the dashboard header.
package app
