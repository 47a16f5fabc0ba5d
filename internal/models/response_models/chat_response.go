package response_models

// ChatReply is what the trip-chat endpoint returns to the client. Patch is
// only present when the assistant proposed an itinerary change and the
// embedded JSON parsed cleanly; it is applied only after an explicit
// apply-changes call.
type ChatReply struct {
	Message string                 `json:"message"`
	Patch   map[string]interface{} `json:"patch,omitempty"`
}
