package ui

// Tone is the semantic color family of a badge or journey step.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneSuccess
	ToneFailure
	ToneInfo
	ToneWarning
	ToneCaution
)

// String returns the theme key for the tone.
func (t Tone) String() string {
	switch t {
	case ToneSuccess:
		return "success"
	case ToneFailure:
		return "failure"
	case ToneInfo:
		return "info"
	case ToneWarning:
		return "warning"
	case ToneCaution:
		return "caution"
	default:
		return "neutral"
	}
}

// unknownLabel is the badge text for any status outside the known literals.
const unknownLabel = "Unknown"

// ConversionStatus is the closed set of conversion states the dashboard
// distinguishes. Upstream sends free text; anything that is not an exact
// known literal is ConversionUnknown.
type ConversionStatus int

const (
	ConversionUnknown ConversionStatus = iota
	ConversionConverted
	ConversionNotConverted
)

// ParseConversionStatus maps the upstream literal onto the closed set.
func ParseConversionStatus(raw string) ConversionStatus {
	switch raw {
	case "Converted":
		return ConversionConverted
	case "Not Converted":
		return ConversionNotConverted
	default:
		return ConversionUnknown
	}
}

// Label returns the badge text.
func (s ConversionStatus) Label() string {
	switch s {
	case ConversionConverted:
		return "Converted"
	case ConversionNotConverted:
		return "Not Converted"
	case ConversionUnknown:
		return unknownLabel
	}
	return unknownLabel
}

// Tone returns the badge color family.
func (s ConversionStatus) Tone() Tone {
	switch s {
	case ConversionConverted:
		return ToneSuccess
	case ConversionNotConverted:
		return ToneFailure
	case ConversionUnknown:
		return ToneNeutral
	}
	return ToneNeutral
}

// RetentionStatus is the closed set of retention states.
type RetentionStatus int

const (
	RetentionUnknown RetentionStatus = iota
	RetentionRetained
	RetentionNotRetained
	RetentionAtRisk
)

// ParseRetentionStatus maps the upstream literal onto the closed set.
func ParseRetentionStatus(raw string) RetentionStatus {
	switch raw {
	case "Retained":
		return RetentionRetained
	case "Not Retained":
		return RetentionNotRetained
	case "At Risk":
		return RetentionAtRisk
	default:
		return RetentionUnknown
	}
}

// Label returns the badge text.
func (s RetentionStatus) Label() string {
	switch s {
	case RetentionRetained:
		return "Retained"
	case RetentionNotRetained:
		return "Not Retained"
	case RetentionAtRisk:
		return "At Risk"
	case RetentionUnknown:
		return unknownLabel
	}
	return unknownLabel
}

// Tone returns the badge color family.
func (s RetentionStatus) Tone() Tone {
	switch s {
	case RetentionRetained:
		return ToneInfo
	case RetentionNotRetained:
		return ToneWarning
	case RetentionAtRisk:
		return ToneCaution
	case RetentionUnknown:
		return ToneNeutral
	}
	return ToneNeutral
}

// renderBadge draws a filled, padded label in the tone's color.
func (m Model) renderBadge(label string, tone Tone) string {
	return m.theme.Styles().BadgeStyle(tone).Render(label)
}

