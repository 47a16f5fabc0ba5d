package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	resp "tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/memcache"
	"tripwise/pkg/utils"
)

// Failure text shown in place of a generated plan. The trip page renders
// normally around it; there is no error screen for a failed generation.
const generationFailedMessage = "Could not generate a detailed plan, please try again."

// Raw model output is truncated to this many bytes when kept on a fallback
// document for diagnosis.
const rawExcerptLimit = 300

// Namespace for deriving deterministic trip IDs from client request IDs.
var tripIDNamespace = uuid.MustParse("9a1c5c1e-33d2-4c70-9b4e-6a27d04f27b1")

type PlanServiceInterface interface {
	GenerateTrip(ctx context.Context, ownerID string, req request_models.CreateTripRequest) (*db_models.TripDocument, error)
	GetTripByID(ctx context.Context, tripID string, requesterID string) (*db_models.TripDocument, error)
	ListTripsByOwner(ctx context.Context, page int, pageSize int, ownerID string) ([]db_models.TripDocument, error)
	ListPublicTrips(ctx context.Context, page int, pageSize int) ([]db_models.TripDocument, error)
	DeleteTrip(ctx context.Context, tripID string, requesterID string) error
	SetTripVisibility(ctx context.Context, tripID string, requesterID string, isPublic bool) error
}

type PlanService struct {
	aiClient  utils.AIClientInterface
	tripRepo  repositories.TripRepository
	planCache memcache.PlanCache
}

func NewPlanService(
	aiClient utils.AIClientInterface,
	tripRepo repositories.TripRepository,
	planCache memcache.PlanCache,
) PlanServiceInterface {
	return &PlanService{
		aiClient:  aiClient,
		tripRepo:  tripRepo,
		planCache: planCache,
	}
}

// GenerateTrip runs the whole pipeline: prompt, model call, extraction,
// normalization, persistence. Extraction and invocation failures do not
// fail the request; they produce a placeholder itinerary on a normally
// persisted document, distinguished only by its generationFailed flag.
func (p *PlanService) GenerateTrip(ctx context.Context, ownerID string, req request_models.CreateTripRequest) (*db_models.TripDocument, error) {
	if err := ValidateTripRequest(req); err != nil {
		return nil, err
	}

	itinerary := p.buildItinerary(ctx, req)

	doc := &db_models.TripDocument{
		TripID:  p.tripID(ownerID, req),
		OwnerID: ownerID,
		UserSelection: db_models.TripSelection{
			Location:     req.Location,
			DurationDays: req.DurationDays,
			PartySize:    req.PartySize,
			BudgetTier:   req.BudgetTier,
		},
		Itinerary: itinerary,
		LikedBy:   []string{},
		CreatedAt: utils.NowUnixSeconds(),
	}

	if err := p.tripRepo.SaveTrip(ctx, doc); err != nil {
		log.Printf("failed to persist trip %s: %v", doc.TripID, err)
		return nil, utils.ErrDatabaseError
	}

	return doc, nil
}

// tripID is random unless the client supplied a request ID, in which case
// it is derived deterministically so resubmissions upsert the same document.
func (p *PlanService) tripID(ownerID string, req request_models.CreateTripRequest) string {
	if req.ClientRequestID != "" {
		return uuid.NewSHA1(tripIDNamespace, []byte(ownerID+":"+req.ClientRequestID)).String()
	}
	return uuid.New().String()
}

func (p *PlanService) buildItinerary(ctx context.Context, req request_models.CreateTripRequest) resp.Itinerary {
	cacheKey := memcache.PlanCacheKey(req.Location, req.DurationDays, req.PartySize, req.BudgetTier)
	if cached, found := p.planCache.Get(ctx, cacheKey); found {
		var itinerary resp.Itinerary
		if err := json.Unmarshal([]byte(cached), &itinerary); err == nil {
			log.Printf("plan cache hit for %s/%dd", req.Location, req.DurationDays)
			return itinerary
		}
	}

	prompt := BuildItineraryPrompt(req)
	raw, err := p.aiClient.GenerateText(ctx, prompt, utils.GenerationConfig{
		Temperature:     0.4,
		TopK:            20,
		MaxOutputTokens: 8192,
	})
	if err != nil {
		log.Printf("model invocation failed: %v", err)
		return fallbackItinerary("", utils.ErrModelUnavailable)
	}

	obj, err := utils.ExtractItineraryJSON(raw)
	if err != nil {
		log.Printf("no valid json in model response (%d bytes)", len(raw))
		return fallbackItinerary(raw, utils.ErrNoValidJSON)
	}

	itinerary := NormalizeItinerary(obj, req.DurationDays)

	if payload, err := json.Marshal(itinerary); err == nil {
		p.planCache.Set(ctx, cacheKey, string(payload), memcache.DefaultPlanTTL)
	}

	return itinerary
}

// fallbackItinerary is the placeholder used when generation fails. Same
// shape as a successful empty itinerary; the UI tells them apart by the
// flag, never by a thrown error.
func fallbackItinerary(raw string, cause error) resp.Itinerary {
	excerpt := raw
	if len(excerpt) > rawExcerptLimit {
		excerpt = excerpt[:rawExcerptLimit]
	}
	return resp.Itinerary{
		GenerationFailed: true,
		FailureMessage:   generationFailedMessage,
		RawExcerpt:       excerpt,
	}
}

func (p *PlanService) GetTripByID(ctx context.Context, tripID string, requesterID string) (*db_models.TripDocument, error) {
	trip, err := p.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if !trip.IsPublic && trip.OwnerID != requesterID {
		return nil, utils.ErrForbidden
	}
	return trip, nil
}

func (p *PlanService) ListTripsByOwner(ctx context.Context, page int, pageSize int, ownerID string) ([]db_models.TripDocument, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	trips, err := p.tripRepo.ListTripsByOwner(ctx, page, pageSize, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func (p *PlanService) ListPublicTrips(ctx context.Context, page int, pageSize int) ([]db_models.TripDocument, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	trips, err := p.tripRepo.ListPublicTrips(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func (p *PlanService) DeleteTrip(ctx context.Context, tripID string, requesterID string) error {
	if err := p.requireOwner(ctx, tripID, requesterID); err != nil {
		return err
	}
	if err := p.tripRepo.DeleteTrip(ctx, tripID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PlanService) SetTripVisibility(ctx context.Context, tripID string, requesterID string, isPublic bool) error {
	if err := p.requireOwner(ctx, tripID, requesterID); err != nil {
		return err
	}
	if err := p.tripRepo.SetVisibility(ctx, tripID, isPublic); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PlanService) requireOwner(ctx context.Context, tripID string, requesterID string) error {
	trip, err := p.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	if trip.OwnerID != requesterID {
		return utils.ErrForbidden
	}
	return nil
}
