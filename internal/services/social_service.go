package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"tripwise/internal/models/db_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type SocialServiceInterface interface {
	ToggleLike(ctx context.Context, tripID string, userID string) (bool, error)
	AddComment(ctx context.Context, tripID string, userID string, text string) (*db_models.Comment, error)
	ListComments(ctx context.Context, tripID string, page int, pageSize int) ([]db_models.Comment, error)
	Follow(ctx context.Context, followerID string, followeeID string) (string, error)
	Unfollow(ctx context.Context, followerID string, followeeID string) error
	ListFollowRequests(ctx context.Context, userID string) ([]db_models.Follow, error)
	AcceptFollowRequest(ctx context.Context, userID string, followerID string) error
}

type SocialService struct {
	socialRepo  repositories.SocialRepository
	tripRepo    repositories.TripRepository
	accountRepo repositories.AccountRepository
}

func NewSocialService(
	socialRepo repositories.SocialRepository,
	tripRepo repositories.TripRepository,
	accountRepo repositories.AccountRepository,
) SocialServiceInterface {
	return &SocialService{
		socialRepo:  socialRepo,
		tripRepo:    tripRepo,
		accountRepo: accountRepo,
	}
}

// ToggleLike flips the caller's like on a trip and reports the new state.
func (s *SocialService) ToggleLike(ctx context.Context, tripID string, userID string) (bool, error) {
	liked, err := s.tripRepo.ToggleLike(ctx, tripID, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, utils.ErrTripNotFound
		}
		log.Printf("failed to toggle like on trip %s: %v", tripID, err)
		return false, utils.ErrDatabaseError
	}
	return liked, nil
}

func (s *SocialService) AddComment(ctx context.Context, tripID string, userID string, text string) (*db_models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > 2000 {
		return nil, utils.ErrInvalidInput
	}

	trip, err := s.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if !trip.IsPublic && trip.OwnerID != userID {
		return nil, utils.ErrForbidden
	}

	comment := &db_models.Comment{
		CommentID: uuid.New().String(),
		TripID:    tripID,
		UserID:    userID,
		Text:      text,
		CreatedAt: utils.NowUnixSeconds(),
	}
	if err := s.socialRepo.InsertComment(ctx, comment); err != nil {
		log.Printf("failed to insert comment on trip %s: %v", tripID, err)
		return nil, utils.ErrDatabaseError
	}

	// The counter is denormalized onto the trip for cheap listing. A failed
	// bump leaves the count stale by one, which the list endpoint tolerates.
	if err := s.tripRepo.IncCommentCount(ctx, tripID, 1); err != nil {
		log.Printf("failed to bump comment count on trip %s: %v", tripID, err)
	}

	return comment, nil
}

func (s *SocialService) ListComments(ctx context.Context, tripID string, page int, pageSize int) ([]db_models.Comment, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	comments, err := s.socialRepo.ListComments(ctx, tripID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return comments, nil
}

// Follow creates the relationship, pending when the followee's account is
// private. Returns the resulting status.
func (s *SocialService) Follow(ctx context.Context, followerID string, followeeID string) (string, error) {
	if followerID == followeeID {
		return "", utils.ErrInvalidInput
	}

	followee, err := s.accountRepo.FindById(ctx, followeeID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if followee == nil {
		return "", utils.ErrAccountNotFound
	}

	status := db_models.FollowStatusAccepted
	if followee.IsPrivate {
		status = db_models.FollowStatusPending
	}

	// Re-following never downgrades an accepted relationship.
	if existing, err := s.socialRepo.GetFollow(ctx, followerID, followeeID); err == nil && existing != nil {
		if existing.Status == db_models.FollowStatusAccepted {
			return existing.Status, nil
		}
	}

	follow := &db_models.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		Status:     status,
		CreatedAt:  utils.NowUnixSeconds(),
	}
	if err := s.socialRepo.UpsertFollow(ctx, follow); err != nil {
		log.Printf("failed to upsert follow %s -> %s: %v", followerID, followeeID, err)
		return "", utils.ErrDatabaseError
	}
	return status, nil
}

func (s *SocialService) Unfollow(ctx context.Context, followerID string, followeeID string) error {
	if err := s.socialRepo.DeleteFollow(ctx, followerID, followeeID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SocialService) ListFollowRequests(ctx context.Context, userID string) ([]db_models.Follow, error) {
	requests, err := s.socialRepo.ListPendingRequests(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return requests, nil
}

func (s *SocialService) AcceptFollowRequest(ctx context.Context, userID string, followerID string) error {
	accepted, err := s.socialRepo.AcceptFollow(ctx, followerID, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !accepted {
		return utils.ErrInvalidInput
	}
	return nil
}
