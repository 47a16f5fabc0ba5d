package utils

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Sentinel markers of the chat patch protocol. The system prompt instructs
// the model to wrap any proposed itinerary change between these two tokens,
// each emitted verbatim exactly once, and to emit prose only when no change
// is warranted.
const (
	PatchStartMarker = "[JSON_START]"
	PatchEndMarker   = "[JSON_END]"
)

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// CleanConversationalText strips markdown emphasis from an assistant reply
// and squashes excess blank lines. Runs before sentinel scanning; the
// markers are plain bracketed tokens, not markdown, so they pass through
// unchanged.
func CleanConversationalText(s string) string {
	s = strings.ReplaceAll(s, "***", "")
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "*", "•")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// ExtractSentinelPatch splits a cleaned assistant reply into the prose shown
// to the user and the patch object embedded between the sentinel markers.
//
// No markers: the whole reply is prose, no patch. Markers present but the
// enclosed text is not valid JSON: the reply minus the marker span is
// returned together with ErrPatchParseFailure so the caller can log it, but
// the prose is still a valid conversational reply. On success the prose is
// only the text preceding the opening marker.
func ExtractSentinelPatch(reply string) (string, map[string]interface{}, error) {
	start := strings.Index(reply, PatchStartMarker)
	end := strings.Index(reply, PatchEndMarker)
	if start == -1 || end == -1 || end < start {
		return strings.TrimSpace(reply), nil, nil
	}

	enclosed := strings.TrimSpace(reply[start+len(PatchStartMarker) : end])

	var v interface{}
	if err := json.Unmarshal([]byte(enclosed), &v); err != nil {
		stripped := strings.TrimSpace(reply[:start] + " " + reply[end+len(PatchEndMarker):])
		return stripped, nil, ErrPatchParseFailure
	}

	patch, ok := v.(map[string]interface{})
	if !ok || patch == nil {
		patch = map[string]interface{}{}
	}
	return strings.TrimSpace(reply[:start]), patch, nil
}
