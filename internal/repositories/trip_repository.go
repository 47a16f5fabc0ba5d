// internal/repositories/trip_repo.go
package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"tripwise/internal/models/db_models"
	resp "tripwise/internal/models/response_models"
)

type TripRepository interface {
	SaveTrip(ctx context.Context, trip *db_models.TripDocument) error
	GetTripByID(ctx context.Context, tripID string) (*db_models.TripDocument, error)
	ListTripsByOwner(ctx context.Context, page int, pageSize int, ownerID string) ([]db_models.TripDocument, error)
	ListPublicTrips(ctx context.Context, page int, pageSize int) ([]db_models.TripDocument, error)
	DeleteTrip(ctx context.Context, tripID string) error
	SetVisibility(ctx context.Context, tripID string, isPublic bool) error
	ReplaceItineraryDays(ctx context.Context, tripID string, days []resp.DayPlan) error
	ToggleLike(ctx context.Context, tripID string, userID string) (bool, error)
	IncCommentCount(ctx context.Context, tripID string, delta int) error
}

type tripRepository struct {
	trips *mongo.Collection
}

func NewTripRepository(db *mongo.Database) TripRepository {
	return &tripRepository{
		trips: db.Collection("trips"),
	}
}

// SaveTrip upserts by trip ID, so a deterministic ID (client request ID
// supplied) makes a duplicate submission overwrite itself.
func (r *tripRepository) SaveTrip(ctx context.Context, trip *db_models.TripDocument) error {
	_, err := r.trips.ReplaceOne(ctx,
		bson.M{"tripId": trip.TripID},
		trip,
		options.Replace().SetUpsert(true))
	return err
}

func (r *tripRepository) GetTripByID(ctx context.Context, tripID string) (*db_models.TripDocument, error) {
	var trip db_models.TripDocument
	err := r.trips.FindOne(ctx, bson.M{"tripId": tripID}).Decode(&trip)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListTripsByOwner(ctx context.Context, page int, pageSize int, ownerID string) ([]db_models.TripDocument, error) {
	return r.list(ctx, bson.M{"ownerId": ownerID}, page, pageSize)
}

func (r *tripRepository) ListPublicTrips(ctx context.Context, page int, pageSize int) ([]db_models.TripDocument, error) {
	return r.list(ctx, bson.M{"isPublic": true}, page, pageSize)
}

func (r *tripRepository) list(ctx context.Context, filter bson.M, page int, pageSize int) ([]db_models.TripDocument, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.trips.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	trips := []db_models.TripDocument{}
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	_, err := r.trips.DeleteOne(ctx, bson.M{"tripId": tripID})
	return err
}

func (r *tripRepository) SetVisibility(ctx context.Context, tripID string, isPublic bool) error {
	_, err := r.trips.UpdateOne(ctx,
		bson.M{"tripId": tripID},
		bson.M{"$set": bson.M{"isPublic": isPublic}})
	return err
}

func (r *tripRepository) ReplaceItineraryDays(ctx context.Context, tripID string, days []resp.DayPlan) error {
	res, err := r.trips.UpdateOne(ctx,
		bson.M{"tripId": tripID},
		bson.M{"$set": bson.M{"itinerary.days": days}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ToggleLike flips the caller's like in one round trip per direction. Both
// updates filter on the current likedBy membership, so the counter and the
// set always move together even under concurrent toggles.
func (r *tripRepository) ToggleLike(ctx context.Context, tripID string, userID string) (bool, error) {
	res, err := r.trips.UpdateOne(ctx,
		bson.M{"tripId": tripID, "likedBy": userID},
		bson.M{
			"$pull": bson.M{"likedBy": userID},
			"$inc":  bson.M{"likesCount": -1},
		})
	if err != nil {
		return false, err
	}
	if res.ModifiedCount > 0 {
		return false, nil
	}

	res, err = r.trips.UpdateOne(ctx,
		bson.M{"tripId": tripID, "likedBy": bson.M{"$ne": userID}},
		bson.M{
			"$addToSet": bson.M{"likedBy": userID},
			"$inc":      bson.M{"likesCount": 1},
		})
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		return false, mongo.ErrNoDocuments
	}
	return true, nil
}

func (r *tripRepository) IncCommentCount(ctx context.Context, tripID string, delta int) error {
	_, err := r.trips.UpdateOne(ctx,
		bson.M{"tripId": tripID},
		bson.M{"$inc": bson.M{"commentCount": delta}})
	return err
}
