package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanConversationalText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bold markers removed",
			in:   "I **love** this plan",
			want: "I love this plan",
		},
		{
			name: "bold italic removed",
			in:   "***Important*** note",
			want: "Important note",
		},
		{
			name: "single asterisk becomes bullet",
			in:   "* first\n* second",
			want: "• first\n• second",
		},
		{
			name: "blank runs squashed",
			in:   "para one\n\n\n\n\npara two",
			want: "para one\n\npara two",
		},
		{
			name: "surrounding whitespace trimmed",
			in:   "  \n hello \n  ",
			want: "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanConversationalText(tt.in))
		})
	}
}

func TestCleanConversationalText_PreservesSentinelMarkers(t *testing.T) {
	in := "Done! **Here** it is\n[JSON_START]{\"itinerary\":{}}[JSON_END]"

	out := CleanConversationalText(in)
	assert.Contains(t, out, PatchStartMarker)
	assert.Contains(t, out, PatchEndMarker)
}

func TestExtractSentinelPatch_NoMarkers(t *testing.T) {
	text, patch, err := ExtractSentinelPatch("  The Louvre opens at 9am.  ")
	require.NoError(t, err)
	assert.Equal(t, "The Louvre opens at 9am.", text)
	assert.Nil(t, patch)
}

func TestExtractSentinelPatch_WellFormedPatch(t *testing.T) {
	reply := "I swapped day 2 for museums.\n[JSON_START]{\"itinerary\":{\"day2\":[]}}[JSON_END]\ntrailing ignored"

	text, patch, err := ExtractSentinelPatch(reply)
	require.NoError(t, err)
	assert.Equal(t, "I swapped day 2 for museums.", text)
	require.NotNil(t, patch)
	assert.Contains(t, patch, "itinerary")
}

func TestExtractSentinelPatch_BrokenPatchDegradesToProse(t *testing.T) {
	reply := "Here is the change. [JSON_START]{oops not json[JSON_END] All set."

	text, patch, err := ExtractSentinelPatch(reply)
	assert.ErrorIs(t, err, ErrPatchParseFailure)
	assert.Nil(t, patch)
	// The marker span is stripped; the prose around it survives.
	assert.NotContains(t, text, PatchStartMarker)
	assert.NotContains(t, text, "oops")
	assert.Contains(t, text, "Here is the change.")
	assert.Contains(t, text, "All set.")
}

func TestExtractSentinelPatch_EndBeforeStart(t *testing.T) {
	reply := "[JSON_END] weird [JSON_START]"

	text, patch, err := ExtractSentinelPatch(reply)
	require.NoError(t, err)
	assert.Nil(t, patch)
	assert.Equal(t, reply, text)
}

func TestExtractSentinelPatch_NonObjectPayload(t *testing.T) {
	text, patch, err := ExtractSentinelPatch("ok [JSON_START]null[JSON_END]")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	require.NotNil(t, patch)
	assert.Empty(t, patch)
}
