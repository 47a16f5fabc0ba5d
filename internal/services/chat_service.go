package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"tripwise/internal/models/db_models"
	resp "tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

// Appended to the assistant reply whenever a patch was extracted, so the
// user always sees a confirmation even when the model emitted markers with
// no surrounding prose.
const patchConfirmationSuffix = "I've updated your itinerary with these changes."

const chatHistoryLimit = 20

type ChatServiceInterface interface {
	SendMessage(ctx context.Context, tripID string, userID string, message string) (*resp.ChatReply, error)
	ApplyPatch(ctx context.Context, tripID string, userID string, patch map[string]interface{}) (*db_models.TripDocument, error)
	GetHistory(ctx context.Context, tripID string, userID string) ([]db_models.ChatMessage, error)
}

type ChatService struct {
	aiClient utils.AIClientInterface
	tripRepo repositories.TripRepository
	chatRepo repositories.ChatRepository
}

func NewChatService(
	aiClient utils.AIClientInterface,
	tripRepo repositories.TripRepository,
	chatRepo repositories.ChatRepository,
) ChatServiceInterface {
	return &ChatService{
		aiClient: aiClient,
		tripRepo: tripRepo,
		chatRepo: chatRepo,
	}
}

// SendMessage runs one conversational turn against a trip. A reply that
// carries a well-formed patch returns both cleaned prose and the patch; a
// reply whose patch fails to parse degrades to prose-only rather than
// failing the turn.
func (c *ChatService) SendMessage(ctx context.Context, tripID string, userID string, message string) (*resp.ChatReply, error) {
	trip, err := c.requireOwnedTrip(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	history, err := c.chatRepo.ListMessages(ctx, tripID, chatHistoryLimit)
	if err != nil {
		log.Printf("failed to load chat history for trip %s: %v", tripID, err)
		history = nil
	}

	turns := make([]string, 0, len(history))
	for _, msg := range history {
		turns = append(turns, fmt.Sprintf("%s: %s", msg.Role, msg.Text))
	}

	prompt := BuildChatPrompt(trip.Itinerary, turns, message)
	raw, err := c.aiClient.GenerateText(ctx, prompt, utils.GenerationConfig{
		Temperature:     0.6,
		MaxOutputTokens: 8192,
	})
	if err != nil {
		log.Printf("chat model invocation failed: %v", err)
		return nil, utils.ErrModelUnavailable
	}

	cleaned := utils.CleanConversationalText(raw)
	text, patch, err := utils.ExtractSentinelPatch(cleaned)
	if err != nil {
		if errors.Is(err, utils.ErrPatchParseFailure) {
			log.Printf("patch parse failure on trip %s, degrading to prose", tripID)
		}
		patch = nil
	}

	if patch != nil && text == "" {
		text = patchConfirmationSuffix
	} else if patch != nil {
		text = text + "\n\n" + patchConfirmationSuffix
	}

	c.persistTurn(ctx, tripID, userID, message, text)

	return &resp.ChatReply{
		Message: text,
		Patch:   patch,
	}, nil
}

// persistTurn stores both sides of the exchange. History is advisory
// context for later turns, so persistence failures are logged, not raised.
func (c *ChatService) persistTurn(ctx context.Context, tripID string, userID string, userText string, assistantText string) {
	now := utils.NowUnixSeconds()
	userMsg := &db_models.ChatMessage{
		MessageID: uuid.New().String(),
		TripID:    tripID,
		UserID:    userID,
		Role:      "user",
		Text:      userText,
		CreatedAt: now,
	}
	assistantMsg := &db_models.ChatMessage{
		MessageID: uuid.New().String(),
		TripID:    tripID,
		UserID:    userID,
		Role:      "assistant",
		Text:      assistantText,
		CreatedAt: now,
	}
	if err := c.chatRepo.InsertMessage(ctx, userMsg); err != nil {
		log.Printf("failed to persist user message for trip %s: %v", tripID, err)
		return
	}
	if err := c.chatRepo.InsertMessage(ctx, assistantMsg); err != nil {
		log.Printf("failed to persist assistant message for trip %s: %v", tripID, err)
	}
}

// ApplyPatch normalizes the accepted patch and replaces the trip's day
// plan wholesale. Partial day merges are not attempted; the patch carries
// the full replacement for whatever sections it names.
func (c *ChatService) ApplyPatch(ctx context.Context, tripID string, userID string, patch map[string]interface{}) (*db_models.TripDocument, error) {
	if len(patch) == 0 {
		return nil, utils.ErrInvalidInput
	}

	trip, err := c.requireOwnedTrip(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	normalized := NormalizeItinerary(patch, trip.UserSelection.DurationDays)
	if len(normalized.Days) == 0 {
		return nil, utils.ErrInvalidInput
	}

	if err := c.tripRepo.ReplaceItineraryDays(ctx, tripID, normalized.Days); err != nil {
		log.Printf("failed to apply patch to trip %s: %v", tripID, err)
		return nil, utils.ErrDatabaseError
	}

	trip.Itinerary.Days = normalized.Days
	return trip, nil
}

func (c *ChatService) GetHistory(ctx context.Context, tripID string, userID string) ([]db_models.ChatMessage, error) {
	if _, err := c.requireOwnedTrip(ctx, tripID, userID); err != nil {
		return nil, err
	}
	msgs, err := c.chatRepo.ListMessages(ctx, tripID, chatHistoryLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return msgs, nil
}

func (c *ChatService) requireOwnedTrip(ctx context.Context, tripID string, userID string) (*db_models.TripDocument, error) {
	trip, err := c.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.OwnerID != userID {
		return nil, utils.ErrForbidden
	}
	return trip, nil
}
