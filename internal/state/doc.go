// Package state provides thread-safe state management for studioboard.
//
// # Overview
//
// Store is the hand-off point between the background poller and the UI.
// The poller writes the latest client roster; the UI reads a Snapshot on
// every tick and renders from that copy alone.
//
//	Producer (poller):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ FetchClients() │            │ tick            │
//	│      ↓         │            │      ↓          │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	└────────────────┘  (mutex)   └─────────────────┘
//
// # Update Semantics
//
//	// Success: replace the roster
//	store.Update(clients, nil)
//	→ snapshot.Clients = clients (copied)
//	→ snapshot.HasData = true
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//
//	// Failure: keep the last good roster, record the error
//	store.Update(nil, err)
//	→ snapshot.Clients = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// The header turns its live-data indicator off while LastError is set, and
// reports the source offline once IsOffline is true.
//
// # Copying
//
// Update and Snapshot both copy the client slice and Snapshot re-wraps the
// error, so neither side can mutate what the other is holding. A zero Store
// is ready to use.
package state
