package request_models

type TripChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ApplyPatchRequest carries the patch object the assistant proposed and the
// user accepted. Absent fields in the patch mean "unchanged".
type ApplyPatchRequest struct {
	Patch map[string]interface{} `json:"patch" binding:"required"`
}
