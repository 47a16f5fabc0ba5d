package db_models

// Comment lives in its own collection; the parent trip only carries the
// counter.
type Comment struct {
	CommentID string `json:"commentId" bson:"commentId"`
	TripID    string `json:"tripId" bson:"tripId"`
	UserID    string `json:"userId" bson:"userId"`
	Text      string `json:"text" bson:"text"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}

const (
	FollowStatusAccepted = "accepted"
	FollowStatusPending  = "pending"
)

// Follow is one follower->followee edge. Status is pending until the
// followee accepts when their account is private, accepted immediately
// otherwise.
type Follow struct {
	FollowerID string `json:"followerId" bson:"followerId"`
	FolloweeID string `json:"followeeId" bson:"followeeId"`
	Status     string `json:"status" bson:"status"`
	CreatedAt  int64  `json:"createdAt" bson:"createdAt"`
}

// ChatMessage is one turn of a trip's modification conversation.
type ChatMessage struct {
	MessageID string `json:"messageId" bson:"messageId"`
	TripID    string `json:"tripId" bson:"tripId"`
	UserID    string `json:"userId" bson:"userId"`
	Role      string `json:"role" bson:"role"` // "user" or "assistant"
	Text      string `json:"text" bson:"text"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}
