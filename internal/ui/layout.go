package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which tab labels are shortened.
	LayoutCompactWidth = 100

	// LayoutCardsWideWidth is the minimum width to lay stat cards out in one row.
	LayoutCardsWideWidth = 88

	// LayoutModalMaxWidth caps the drill-down dialog width.
	LayoutModalMaxWidth = 96
)

// Roster column widths.
const (
	rosterNameWidth   = 24
	rosterLTVWidth    = 14
	rosterBadgeWidth  = 16
	rosterMinRowCount = 3
)

// Timing constants.
const (
	// DefaultUIInterval is the default UI refresh interval.
	DefaultUIInterval = time.Second
)
