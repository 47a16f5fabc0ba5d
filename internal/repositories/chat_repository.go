package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"tripwise/internal/models/db_models"
)

type ChatRepository interface {
	InsertMessage(ctx context.Context, msg *db_models.ChatMessage) error
	ListMessages(ctx context.Context, tripID string, limit int) ([]db_models.ChatMessage, error)
}

type chatRepository struct {
	messages *mongo.Collection
}

func NewChatRepository(db *mongo.Database) ChatRepository {
	return &chatRepository{
		messages: db.Collection("chat_messages"),
	}
}

func (r *chatRepository) InsertMessage(ctx context.Context, msg *db_models.ChatMessage) error {
	_, err := r.messages.InsertOne(ctx, msg)
	return err
}

// ListMessages returns the most recent messages in chronological order.
func (r *chatRepository) ListMessages(ctx context.Context, tripID string, limit int) ([]db_models.ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(int64(limit))

	cursor, err := r.messages.Find(ctx, bson.M{"tripId": tripID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	msgs := []db_models.ChatMessage{}
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, err
	}

	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
