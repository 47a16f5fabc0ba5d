package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"tripwise/internal/models/request_models"
	resp "tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

var budgetTiers = map[string]bool{
	"budget":   true,
	"moderate": true,
	"luxury":   true,
}

// ValidateTripRequest rejects a submission before anything is sent to the
// model. All four parameters are required; trips run 1-5 days.
func ValidateTripRequest(req request_models.CreateTripRequest) error {
	if strings.TrimSpace(req.Location) == "" {
		return utils.ErrInvalidInput
	}
	if req.DurationDays < 1 || req.DurationDays > 5 {
		return utils.ErrInvalidInput
	}
	if strings.TrimSpace(req.PartySize) == "" {
		return utils.ErrInvalidInput
	}
	if !budgetTiers[req.BudgetTier] {
		return utils.ErrInvalidInput
	}
	return nil
}

// BuildItineraryPrompt assembles the generation instruction. Pure function;
// the schema sample asks for the day-keyed map shape, which is what the
// model most reliably produces, and the normalizer reconciles either shape
// anyway.
func BuildItineraryPrompt(req request_models.CreateTripRequest) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf(
		"Generate a travel plan for %s, for %d day(s), for %s, with a %s budget.\n\n",
		req.Location, req.DurationDays, req.PartySize, req.BudgetTier))

	prompt.WriteString("Return **JSON only**, inside a ```json fenced block, matching this schema exactly:\n")
	prompt.WriteString("```json\n")
	prompt.WriteString(`{
  "hotels": [
    {"hotelName":"...","address":"...","pricePerNight":"...","imageUrl":"...","starRating":"4","amenities":["..."],"reviewSummary":"..."}
  ],
  "itinerary": {
`)
	for i := 1; i <= req.DurationDays; i++ {
		prompt.WriteString(fmt.Sprintf(`    "day%d": [
      {"placeName":"...","description":"...","placeType":"...","entryPrice":"...","openingTime":"09:00","closingTime":"18:00","rating":"4.5","bestTimeToVisit":"..."}
    ]`, i))
		if i < req.DurationDays {
			prompt.WriteString(",")
		}
		prompt.WriteString("\n")
	}
	prompt.WriteString(`  },
  "transportation": {"localOptions":["..."],"estimatedDailyCost":"...","airportTransfer":"..."},
  "weather": {"perDayForecast":["..."],"averageTemperature":"...","itemsToCarry":["..."]},
  "safety": {"precautions":["..."],"emergencyNumbers":["..."],"safeHours":"..."}
}
`)
	prompt.WriteString("```\n\n")

	prompt.WriteString("Hard constraints:\n")
	prompt.WriteString(fmt.Sprintf("- Exactly %d day keys (day1..day%d), 2-4 places per day.\n", req.DurationDays, req.DurationDays))
	prompt.WriteString("- Up to 2 dining recommendations per day may be included as a \"dining\" list alongside each day's places.\n")
	prompt.WriteString("- All prices and times are display strings, no currency conversion.\n")
	prompt.WriteString("- No prose outside the fenced block.\n")

	return prompt.String()
}

// BuildChatPrompt assembles the modify-my-trip instruction for one
// conversational turn. The sentinel-marker contract is the one wire
// protocol this system owns: the model must wrap any proposed change
// between the two markers and emit prose only when nothing should change.
func BuildChatPrompt(itinerary resp.Itinerary, history []string, message string) string {
	var prompt strings.Builder

	prompt.WriteString("You are a travel assistant helping modify an existing trip itinerary.\n\n")

	current, _ := json.Marshal(itinerary)
	prompt.WriteString("Current itinerary JSON:\n")
	prompt.Write(current)
	prompt.WriteString("\n\n")

	if len(history) > 0 {
		prompt.WriteString("Conversation so far:\n")
		for _, turn := range history {
			prompt.WriteString(turn)
			prompt.WriteString("\n")
		}
		prompt.WriteString("\n")
	}

	prompt.WriteString("User request: ")
	prompt.WriteString(message)
	prompt.WriteString("\n\n")

	prompt.WriteString("If the request changes the itinerary, explain the change briefly in plain text, then emit the updated itinerary JSON between the literal markers ")
	prompt.WriteString(utils.PatchStartMarker)
	prompt.WriteString(" and ")
	prompt.WriteString(utils.PatchEndMarker)
	prompt.WriteString(", each exactly once. The JSON must use the same schema as the current itinerary and may contain only the sections that changed.\n")
	prompt.WriteString("If the request does not change the itinerary, answer in plain text with no markers.\n")

	return prompt.String()
}
