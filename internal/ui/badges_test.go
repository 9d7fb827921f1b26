package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversionStatus(t *testing.T) {
	cases := []struct {
		raw   string
		want  ConversionStatus
		label string
		tone  Tone
	}{
		{"Converted", ConversionConverted, "Converted", ToneSuccess},
		{"Not Converted", ConversionNotConverted, "Not Converted", ToneFailure},
		{"", ConversionUnknown, "Unknown", ToneNeutral},
		{"converted", ConversionUnknown, "Unknown", ToneNeutral},
		{" Converted ", ConversionUnknown, "Unknown", ToneNeutral},
		{"Pending", ConversionUnknown, "Unknown", ToneNeutral},
	}
	for _, tc := range cases {
		got := ParseConversionStatus(tc.raw)
		assert.Equal(t, tc.want, got, "ParseConversionStatus(%q)", tc.raw)
		assert.Equal(t, tc.label, got.Label(), "label for %q", tc.raw)
		assert.Equal(t, tc.tone, got.Tone(), "tone for %q", tc.raw)
	}
}

func TestRetentionStatus(t *testing.T) {
	cases := []struct {
		raw   string
		want  RetentionStatus
		label string
		tone  Tone
	}{
		{"Retained", RetentionRetained, "Retained", ToneInfo},
		{"Not Retained", RetentionNotRetained, "Not Retained", ToneWarning},
		{"At Risk", RetentionAtRisk, "At Risk", ToneCaution},
		{"", RetentionUnknown, "Unknown", ToneNeutral},
		{"at risk", RetentionUnknown, "Unknown", ToneNeutral},
		{"Churned", RetentionUnknown, "Unknown", ToneNeutral},
	}
	for _, tc := range cases {
		got := ParseRetentionStatus(tc.raw)
		assert.Equal(t, tc.want, got, "ParseRetentionStatus(%q)", tc.raw)
		assert.Equal(t, tc.label, got.Label(), "label for %q", tc.raw)
		assert.Equal(t, tc.tone, got.Tone(), "tone for %q", tc.raw)
	}
}

func TestToneString(t *testing.T) {
	assert.Equal(t, "success", ToneSuccess.String())
	assert.Equal(t, "failure", ToneFailure.String())
	assert.Equal(t, "info", ToneInfo.String())
	assert.Equal(t, "warning", ToneWarning.String())
	assert.Equal(t, "caution", ToneCaution.String())
	assert.Equal(t, "neutral", ToneNeutral.String())
	assert.Equal(t, "neutral", Tone(99).String())
}

func TestOutOfRangeStatusesAreUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", ConversionStatus(42).Label())
	assert.Equal(t, ToneNeutral, ConversionStatus(42).Tone())
	assert.Equal(t, "Unknown", RetentionStatus(42).Label())
	assert.Equal(t, ToneNeutral, RetentionStatus(42).Tone())
}
