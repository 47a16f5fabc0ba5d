package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"tripwise/internal/models/db_models"
	resp "tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

// ==========================
// Fakes
// ==========================

type fakeAIClient struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeAIClient) GenerateText(ctx context.Context, prompt string, cfg utils.GenerationConfig) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeAIClient) Close() error { return nil }

type fakeTripRepo struct {
	trips   map[string]*db_models.TripDocument
	saveErr error
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: map[string]*db_models.TripDocument{}}
}

func (f *fakeTripRepo) SaveTrip(ctx context.Context, trip *db_models.TripDocument) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *trip
	f.trips[trip.TripID] = &copied
	return nil
}

func (f *fakeTripRepo) GetTripByID(ctx context.Context, tripID string) (*db_models.TripDocument, error) {
	trip, ok := f.trips[tripID]
	if !ok {
		return nil, nil
	}
	copied := *trip
	return &copied, nil
}

func (f *fakeTripRepo) ListTripsByOwner(ctx context.Context, page, pageSize int, ownerID string) ([]db_models.TripDocument, error) {
	var out []db_models.TripDocument
	for _, trip := range f.trips {
		if trip.OwnerID == ownerID {
			out = append(out, *trip)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) ListPublicTrips(ctx context.Context, page, pageSize int) ([]db_models.TripDocument, error) {
	var out []db_models.TripDocument
	for _, trip := range f.trips {
		if trip.IsPublic {
			out = append(out, *trip)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) DeleteTrip(ctx context.Context, tripID string) error {
	delete(f.trips, tripID)
	return nil
}

func (f *fakeTripRepo) SetVisibility(ctx context.Context, tripID string, isPublic bool) error {
	if trip, ok := f.trips[tripID]; ok {
		trip.IsPublic = isPublic
	}
	return nil
}

func (f *fakeTripRepo) ReplaceItineraryDays(ctx context.Context, tripID string, days []resp.DayPlan) error {
	trip, ok := f.trips[tripID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	trip.Itinerary.Days = days
	return nil
}

func (f *fakeTripRepo) ToggleLike(ctx context.Context, tripID, userID string) (bool, error) {
	trip, ok := f.trips[tripID]
	if !ok {
		return false, mongo.ErrNoDocuments
	}
	for i, id := range trip.LikedBy {
		if id == userID {
			trip.LikedBy = append(trip.LikedBy[:i], trip.LikedBy[i+1:]...)
			trip.LikesCount--
			return false, nil
		}
	}
	trip.LikedBy = append(trip.LikedBy, userID)
	trip.LikesCount++
	return true, nil
}

func (f *fakeTripRepo) IncCommentCount(ctx context.Context, tripID string, delta int) error {
	if trip, ok := f.trips[tripID]; ok {
		trip.CommentCount += delta
	}
	return nil
}

type fakePlanCache struct {
	store map[string]string
	gets  int
	hits  int
}

func newFakePlanCache() *fakePlanCache {
	return &fakePlanCache{store: map[string]string{}}
}

func (f *fakePlanCache) Get(ctx context.Context, key string) (string, bool) {
	f.gets++
	val, ok := f.store[key]
	if ok {
		f.hits++
	}
	return val, ok
}

func (f *fakePlanCache) Set(ctx context.Context, key, payload string, ttl time.Duration) {
	f.store[key] = payload
}

// ==========================
// GenerateTrip
// ==========================

const lisbonResponse = "Here is your Lisbon plan!\n```json\n{\n" +
	`  "hotels": [{"hotelName":"Hotel Avenida","pricePerNight":"EUR 140","starRating":"4"}],` + "\n" +
	`  "itinerary": {` + "\n" +
	`    "day1": [{"placeName":"Belem Tower","entryPrice":"EUR 8","openingTime":"09:30"}],` + "\n" +
	`    "day2": [{"placeName":"Alfama","entryPrice":"free"}],` + "\n" +
	`    "day3": [{"placeName":"LX Factory"}]` + "\n" +
	`  },` + "\n" +
	`  "transportation": {"localOptions":["tram 28","metro"],"estimatedDailyCost":"EUR 12"},` + "\n" +
	`  "weather": {"averageTemperature":"24C","itemsToCarry":["sunscreen"]},` + "\n" +
	`  "safety": {"emergencyNumbers":["112"],"safeHours":"until midnight"}` + "\n" +
	"}\n```\nEnjoy your trip!"

func newPlanService(ai *fakeAIClient, repo *fakeTripRepo, cache *fakePlanCache) PlanServiceInterface {
	return NewPlanService(ai, repo, cache)
}

func TestGenerateTrip_FullPipeline(t *testing.T) {
	ai := &fakeAIClient{response: lisbonResponse}
	repo := newFakeTripRepo()
	svc := newPlanService(ai, repo, newFakePlanCache())

	req := validTripRequest()
	trip, err := svc.GenerateTrip(context.Background(), "owner-1", req)
	require.NoError(t, err)

	assert.Equal(t, "owner-1", trip.OwnerID)
	assert.Equal(t, "Lisbon", trip.UserSelection.Location)
	assert.False(t, trip.Itinerary.GenerationFailed)

	require.Len(t, trip.Itinerary.Hotels, 1)
	assert.Equal(t, "Hotel Avenida", trip.Itinerary.Hotels[0].Name)

	require.Len(t, trip.Itinerary.Days, 3)
	assert.Equal(t, "Belem Tower", trip.Itinerary.Days[0].Places[0].PlaceName)
	assert.Equal(t, "EUR 12", trip.Itinerary.Transport.EstimatedDailyCost)
	assert.Equal(t, "until midnight", trip.Itinerary.Safety.SafeHours)

	// Persisted, not just returned.
	stored, err := repo.GetTripByID(context.Background(), trip.TripID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, trip.TripID, stored.TripID)
}

func TestGenerateTrip_ShortItineraryKeptShort(t *testing.T) {
	// The model delivered only two days for a three-day request. The trip
	// keeps the two days it got, ordered, with the user's selection intact.
	ai := &fakeAIClient{response: "```json\n" +
		`{"itinerary":{"day2":[{"placeName":"Alfama"}],"day1":[{"placeName":"Belem Tower"}]}}` +
		"\n```"}
	svc := newPlanService(ai, newFakeTripRepo(), newFakePlanCache())

	trip, err := svc.GenerateTrip(context.Background(), "owner-1", validTripRequest())
	require.NoError(t, err)

	assert.False(t, trip.Itinerary.GenerationFailed)
	require.Len(t, trip.Itinerary.Days, 2)
	assert.Equal(t, 1, trip.Itinerary.Days[0].Day)
	assert.Equal(t, 2, trip.Itinerary.Days[1].Day)
	assert.False(t, trip.Itinerary.Days[1].Unexpected)
	assert.Equal(t, 3, trip.UserSelection.DurationDays)
	assert.Equal(t, "moderate", trip.UserSelection.BudgetTier)
}

func TestGenerateTrip_InvalidRequest(t *testing.T) {
	ai := &fakeAIClient{response: lisbonResponse}
	svc := newPlanService(ai, newFakeTripRepo(), newFakePlanCache())

	req := validTripRequest()
	req.DurationDays = 9

	_, err := svc.GenerateTrip(context.Background(), "owner-1", req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Zero(t, ai.calls)
}

func TestGenerateTrip_ModelDownProducesFallbackTrip(t *testing.T) {
	ai := &fakeAIClient{err: errors.New("upstream 503")}
	repo := newFakeTripRepo()
	svc := newPlanService(ai, repo, newFakePlanCache())

	trip, err := svc.GenerateTrip(context.Background(), "owner-1", validTripRequest())
	require.NoError(t, err)

	assert.True(t, trip.Itinerary.GenerationFailed)
	assert.NotEmpty(t, trip.Itinerary.FailureMessage)
	assert.Empty(t, trip.Itinerary.Days)

	// The fallback document is persisted like any other.
	stored, err := repo.GetTripByID(context.Background(), trip.TripID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Itinerary.GenerationFailed)
}

func TestGenerateTrip_GarbageResponseProducesFallbackWithExcerpt(t *testing.T) {
	long := "I cannot produce JSON today, sorry. " + string(make([]byte, 400))
	ai := &fakeAIClient{response: long}
	svc := newPlanService(ai, newFakeTripRepo(), newFakePlanCache())

	trip, err := svc.GenerateTrip(context.Background(), "owner-1", validTripRequest())
	require.NoError(t, err)

	assert.True(t, trip.Itinerary.GenerationFailed)
	assert.Len(t, trip.Itinerary.RawExcerpt, 300)
}

func TestGenerateTrip_CacheHitSkipsModel(t *testing.T) {
	ai := &fakeAIClient{response: lisbonResponse}
	cache := newFakePlanCache()
	svc := newPlanService(ai, newFakeTripRepo(), cache)

	_, err := svc.GenerateTrip(context.Background(), "owner-1", validTripRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, ai.calls)

	// Identical parameters from another user reuse the cached plan.
	trip, err := svc.GenerateTrip(context.Background(), "owner-2", validTripRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, ai.calls)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, "Hotel Avenida", trip.Itinerary.Hotels[0].Name)
}

func TestGenerateTrip_FailedGenerationIsNotCached(t *testing.T) {
	ai := &fakeAIClient{response: "no json here"}
	cache := newFakePlanCache()
	svc := newPlanService(ai, newFakeTripRepo(), cache)

	_, err := svc.GenerateTrip(context.Background(), "owner-1", validTripRequest())
	require.NoError(t, err)
	assert.Empty(t, cache.store)
}

func TestGenerateTrip_ClientRequestIDIsIdempotent(t *testing.T) {
	ai := &fakeAIClient{response: lisbonResponse}
	repo := newFakeTripRepo()
	svc := newPlanService(ai, repo, newFakePlanCache())

	req := validTripRequest()
	req.ClientRequestID = "form-submit-42"

	first, err := svc.GenerateTrip(context.Background(), "owner-1", req)
	require.NoError(t, err)
	second, err := svc.GenerateTrip(context.Background(), "owner-1", req)
	require.NoError(t, err)

	assert.Equal(t, first.TripID, second.TripID)
	assert.Len(t, repo.trips, 1)

	// A different owner with the same request ID gets a different trip.
	other, err := svc.GenerateTrip(context.Background(), "owner-2", req)
	require.NoError(t, err)
	assert.NotEqual(t, first.TripID, other.TripID)
}

// ==========================
// Access control
// ==========================

func seedTrip(repo *fakeTripRepo, tripID, ownerID string, isPublic bool) {
	repo.trips[tripID] = &db_models.TripDocument{
		TripID:   tripID,
		OwnerID:  ownerID,
		IsPublic: isPublic,
		UserSelection: db_models.TripSelection{
			Location:     "Lisbon",
			DurationDays: 3,
		},
	}
}

func TestGetTripByID_Visibility(t *testing.T) {
	repo := newFakeTripRepo()
	seedTrip(repo, "trip-private", "owner-1", false)
	seedTrip(repo, "trip-public", "owner-1", true)
	svc := newPlanService(&fakeAIClient{}, repo, newFakePlanCache())

	ctx := context.Background()

	_, err := svc.GetTripByID(ctx, "trip-private", "owner-1")
	assert.NoError(t, err)

	_, err = svc.GetTripByID(ctx, "trip-private", "stranger")
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = svc.GetTripByID(ctx, "trip-public", "stranger")
	assert.NoError(t, err)

	_, err = svc.GetTripByID(ctx, "trip-missing", "owner-1")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestDeleteTrip_OwnerOnly(t *testing.T) {
	repo := newFakeTripRepo()
	seedTrip(repo, "trip-1", "owner-1", true)
	svc := newPlanService(&fakeAIClient{}, repo, newFakePlanCache())

	ctx := context.Background()

	err := svc.DeleteTrip(ctx, "trip-1", "stranger")
	assert.ErrorIs(t, err, utils.ErrForbidden)

	err = svc.DeleteTrip(ctx, "trip-1", "owner-1")
	assert.NoError(t, err)
	assert.Empty(t, repo.trips)
}

func TestSetTripVisibility(t *testing.T) {
	repo := newFakeTripRepo()
	seedTrip(repo, "trip-1", "owner-1", false)
	svc := newPlanService(&fakeAIClient{}, repo, newFakePlanCache())

	err := svc.SetTripVisibility(context.Background(), "trip-1", "owner-1", true)
	require.NoError(t, err)
	assert.True(t, repo.trips["trip-1"].IsPublic)

	err = svc.SetTripVisibility(context.Background(), "trip-1", "stranger", false)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestListTrips_PagingValidation(t *testing.T) {
	svc := newPlanService(&fakeAIClient{}, newFakeTripRepo(), newFakePlanCache())
	ctx := context.Background()

	_, err := svc.ListTripsByOwner(ctx, 0, 5, "owner-1")
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = svc.ListTripsByOwner(ctx, 1, 101, "owner-1")
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	_, err = svc.ListPublicTrips(ctx, 1, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}
