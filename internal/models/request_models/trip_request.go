package request_models

// CreateTripRequest carries the four trip parameters the planner needs. All
// four are required before a submission is accepted; durations outside 1-5
// days are rejected up front rather than sent to the model.
//
// ClientRequestID is optional. When set, the trip ID is derived from it
// deterministically, so a double-submitted form overwrites its own document
// instead of creating a duplicate.
type CreateTripRequest struct {
	Location        string `json:"location" binding:"required"`
	DurationDays    int    `json:"duration_days" binding:"required,min=1,max=5"`
	PartySize       string `json:"party_size" binding:"required"`
	BudgetTier      string `json:"budget_tier" binding:"required,oneof=budget moderate luxury"`
	ClientRequestID string `json:"client_request_id"`
}

type SetVisibilityRequest struct {
	IsPublic *bool `json:"is_public" binding:"required"`
}
