package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractItineraryJSON_FencedBlock(t *testing.T) {
	raw := "Here is your plan:\n```json\n{\"hotels\":[{\"hotelName\":\"Astoria\"}]}\n```\nEnjoy!"

	obj, err := ExtractItineraryJSON(raw)
	require.NoError(t, err)
	require.Contains(t, obj, "hotels")

	hotels, ok := obj["hotels"].([]interface{})
	require.True(t, ok)
	assert.Len(t, hotels, 1)
}

func TestExtractItineraryJSON_FencedBlockWithoutTag(t *testing.T) {
	raw := "```\n{\"itinerary\":{}}\n```"

	obj, err := ExtractItineraryJSON(raw)
	require.NoError(t, err)
	assert.Contains(t, obj, "itinerary")
}

func TestExtractItineraryJSON_FencedBlockWithControlChars(t *testing.T) {
	// Raw tab and newline inside a string literal; the plain fenced parse
	// fails, the cleaned retry succeeds.
	raw := "```json\n{\"hotels\":[{\"hotelName\":\"Grand\tPalace\nHotel\"}]}\n```"

	obj, err := ExtractItineraryJSON(raw)
	require.NoError(t, err)
	assert.Contains(t, obj, "hotels")
}

func TestExtractItineraryJSON_BrokenFenceDoesNotFallThrough(t *testing.T) {
	// The fence contains garbage but a valid object sits in the prose after
	// it. The fence wins: extraction must fail rather than scan the prose.
	raw := "```json\n{not valid json at all\n```\nBut look: {\"hotels\":[]} is fine."

	obj, err := ExtractItineraryJSON(raw)
	assert.Nil(t, obj)
	assert.ErrorIs(t, err, ErrNoValidJSON)
}

func TestExtractItineraryJSON_WholeResponse(t *testing.T) {
	obj, err := ExtractItineraryJSON(`{"transportation":{"estimatedDailyCost":"$20"}}`)
	require.NoError(t, err)
	assert.Contains(t, obj, "transportation")
}

func TestExtractItineraryJSON_EmbeddedObject(t *testing.T) {
	raw := `Sure! Here you go: {"hotels":[],"itinerary":{"day1":[]}} Let me know.`

	obj, err := ExtractItineraryJSON(raw)
	require.NoError(t, err)
	assert.Contains(t, obj, "itinerary")
}

func TestExtractItineraryJSON_EmbeddedObjectWithControlChars(t *testing.T) {
	raw := "The plan: {\"hotels\":[{\"hotelName\":\"Sea\tView\"}]} done."

	obj, err := ExtractItineraryJSON(raw)
	require.NoError(t, err)
	assert.Contains(t, obj, "hotels")
}

func TestExtractItineraryJSON_NonObjectPayloads(t *testing.T) {
	// null, scalars, arrays and the empty object all succeed as an empty
	// itinerary; the normalizer handles the rest.
	for _, raw := range []string{"null", "42", `"just a string"`, `[1,2,3]`, "{}"} {
		obj, err := ExtractItineraryJSON(raw)
		require.NoError(t, err, "payload %q", raw)
		assert.Empty(t, obj, "payload %q", raw)
	}
}

func TestExtractItineraryJSON_NoJSONAnywhere(t *testing.T) {
	obj, err := ExtractItineraryJSON("I'm sorry, I can't help with that request.")
	assert.Nil(t, obj)
	assert.ErrorIs(t, err, ErrNoValidJSON)
}

func TestExtractItineraryJSON_Empty(t *testing.T) {
	_, err := ExtractItineraryJSON("")
	assert.ErrorIs(t, err, ErrNoValidJSON)
}

func TestFirstFencedBlock_FirstClosingFenceWins(t *testing.T) {
	raw := "```json\n{\"a\":1}\n```\nmore\n```json\n{\"b\":2}\n```"

	enclosed, found := firstFencedBlock(raw)
	require.True(t, found)
	assert.Equal(t, "{\"a\":1}\n", enclosed)
}

func TestFirstFencedBlock_UnclosedFence(t *testing.T) {
	_, found := firstFencedBlock("```json\n{\"a\":1}")
	assert.False(t, found)
}

func TestStripControlChars(t *testing.T) {
	assert.Equal(t, "ab", StripControlChars("a\x00\x01\t\nb"))
	assert.Equal(t, "résumé", StripControlChars("résumé"))
}
