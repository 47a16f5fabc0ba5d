package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"tripwise/internal/models/db_models"
)

type SocialRepository interface {
	InsertComment(ctx context.Context, comment *db_models.Comment) error
	ListComments(ctx context.Context, tripID string, page int, pageSize int) ([]db_models.Comment, error)
	UpsertFollow(ctx context.Context, follow *db_models.Follow) error
	DeleteFollow(ctx context.Context, followerID string, followeeID string) error
	GetFollow(ctx context.Context, followerID string, followeeID string) (*db_models.Follow, error)
	ListPendingRequests(ctx context.Context, followeeID string) ([]db_models.Follow, error)
	AcceptFollow(ctx context.Context, followerID string, followeeID string) (bool, error)
}

type socialRepository struct {
	comments *mongo.Collection
	follows  *mongo.Collection
}

func NewSocialRepository(db *mongo.Database) SocialRepository {
	return &socialRepository{
		comments: db.Collection("comments"),
		follows:  db.Collection("follows"),
	}
}

func (r *socialRepository) InsertComment(ctx context.Context, comment *db_models.Comment) error {
	_, err := r.comments.InsertOne(ctx, comment)
	return err
}

func (r *socialRepository) ListComments(ctx context.Context, tripID string, page int, pageSize int) ([]db_models.Comment, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.comments.Find(ctx, bson.M{"tripId": tripID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []db_models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *socialRepository) UpsertFollow(ctx context.Context, follow *db_models.Follow) error {
	_, err := r.follows.ReplaceOne(ctx,
		bson.M{"followerId": follow.FollowerID, "followeeId": follow.FolloweeID},
		follow,
		options.Replace().SetUpsert(true))
	return err
}

func (r *socialRepository) DeleteFollow(ctx context.Context, followerID string, followeeID string) error {
	_, err := r.follows.DeleteOne(ctx,
		bson.M{"followerId": followerID, "followeeId": followeeID})
	return err
}

func (r *socialRepository) GetFollow(ctx context.Context, followerID string, followeeID string) (*db_models.Follow, error) {
	var follow db_models.Follow
	err := r.follows.FindOne(ctx,
		bson.M{"followerId": followerID, "followeeId": followeeID}).Decode(&follow)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &follow, nil
}

func (r *socialRepository) ListPendingRequests(ctx context.Context, followeeID string) ([]db_models.Follow, error) {
	cursor, err := r.follows.Find(ctx,
		bson.M{"followeeId": followeeID, "status": db_models.FollowStatusPending})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []db_models.Follow{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *socialRepository) AcceptFollow(ctx context.Context, followerID string, followeeID string) (bool, error) {
	res, err := r.follows.UpdateOne(ctx,
		bson.M{"followerId": followerID, "followeeId": followeeID, "status": db_models.FollowStatusPending},
		bson.M{"$set": bson.M{"status": db_models.FollowStatusAccepted}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
