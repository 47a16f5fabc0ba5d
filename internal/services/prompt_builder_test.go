package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripwise/internal/models/request_models"
	"tripwise/pkg/utils"
)

func validTripRequest() request_models.CreateTripRequest {
	return request_models.CreateTripRequest{
		Location:     "Lisbon",
		DurationDays: 3,
		PartySize:    "couple",
		BudgetTier:   "moderate",
	}
}

func TestValidateTripRequest(t *testing.T) {
	assert.NoError(t, ValidateTripRequest(validTripRequest()))

	tests := []struct {
		name   string
		mutate func(*request_models.CreateTripRequest)
	}{
		{"empty location", func(r *request_models.CreateTripRequest) { r.Location = "  " }},
		{"zero days", func(r *request_models.CreateTripRequest) { r.DurationDays = 0 }},
		{"six days", func(r *request_models.CreateTripRequest) { r.DurationDays = 6 }},
		{"empty party", func(r *request_models.CreateTripRequest) { r.PartySize = "" }},
		{"unknown budget", func(r *request_models.CreateTripRequest) { r.BudgetTier = "lavish" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTripRequest()
			tt.mutate(&req)
			assert.ErrorIs(t, ValidateTripRequest(req), utils.ErrInvalidInput)
		})
	}
}

func TestBuildItineraryPrompt(t *testing.T) {
	req := validTripRequest()
	prompt := BuildItineraryPrompt(req)

	assert.Contains(t, prompt, "Lisbon")
	assert.Contains(t, prompt, "3 day(s)")
	assert.Contains(t, prompt, "couple")
	assert.Contains(t, prompt, "moderate")
	assert.Contains(t, prompt, "```json")

	// One sample day key per requested day, none beyond.
	for _, key := range []string{`"day1"`, `"day2"`, `"day3"`} {
		assert.Contains(t, prompt, key)
	}
	assert.NotContains(t, prompt, `"day4"`)
}

func TestBuildItineraryPrompt_IsPure(t *testing.T) {
	req := validTripRequest()
	assert.Equal(t, BuildItineraryPrompt(req), BuildItineraryPrompt(req))
}

func TestBuildChatPrompt(t *testing.T) {
	itinerary := NormalizeItinerary(mustParse(t, `{"itinerary":{"day1":[{"placeName":"Belem Tower"}]}}`), 1)
	history := []string{"user: make day 1 cheaper", "assistant: sure, done"}

	prompt := BuildChatPrompt(itinerary, history, "add a dinner spot")

	assert.Contains(t, prompt, "Belem Tower")
	assert.Contains(t, prompt, "make day 1 cheaper")
	assert.Contains(t, prompt, "add a dinner spot")
	require.Contains(t, prompt, utils.PatchStartMarker)
	require.Contains(t, prompt, utils.PatchEndMarker)
	// Markers appear as instructions exactly once each.
	assert.Equal(t, 1, strings.Count(prompt, utils.PatchStartMarker))
	assert.Equal(t, 1, strings.Count(prompt, utils.PatchEndMarker))
}

func TestBuildChatPrompt_NoHistory(t *testing.T) {
	prompt := BuildChatPrompt(NormalizeItinerary(nil, 0), nil, "hello")
	assert.NotContains(t, prompt, "Conversation so far")
	assert.Contains(t, prompt, "hello")
}
