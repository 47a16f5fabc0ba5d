package db_models

import (
	"tripwise/internal/models/response_models"
)

// TripSelection is the user's original trip parameters, copied verbatim onto
// the document at creation time. It is never rewritten afterwards, even when
// the generated itinerary disagrees with it (e.g. fewer days than requested).
type TripSelection struct {
	Location     string `json:"location" bson:"location"`
	DurationDays int    `json:"durationDays" bson:"durationDays"`
	PartySize    string `json:"partySize" bson:"partySize"`
	BudgetTier   string `json:"budgetTier" bson:"budgetTier"`
}

// TripDocument is the durable trip record in the trips collection.
type TripDocument struct {
	TripID        string                    `json:"tripId" bson:"tripId"`
	OwnerID       string                    `json:"ownerId" bson:"ownerId"`
	UserSelection TripSelection             `json:"userSelection" bson:"userSelection"`
	Itinerary     response_models.Itinerary `json:"itinerary" bson:"itinerary"`
	IsPublic      bool                      `json:"isPublic" bson:"isPublic"`
	LikesCount    int                       `json:"likesCount" bson:"likesCount"`
	CommentCount  int                       `json:"commentCount" bson:"commentCount"`
	LikedBy       []string                  `json:"likedBy,omitempty" bson:"likedBy,omitempty"`
	CreatedAt     int64                     `json:"createdAt" bson:"createdAt"`
}
