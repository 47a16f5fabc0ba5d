package trip_fx

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"tripwise/internal/repositories"
	"tripwise/internal/services"
	mem "tripwise/pkg/memcache"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(
	providePlanService, provideTripRepo)

func provideTripRepo(db *mongo.Database) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func providePlanService(
	aiClient utils.AIClientInterface,
	tripRepo repositories.TripRepository,
	planCache mem.PlanCache,
) services.PlanServiceInterface {
	return services.NewPlanService(aiClient, tripRepo, planCache)
}
