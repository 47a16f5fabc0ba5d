package social_fx

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"tripwise/internal/repositories"
	"tripwise/internal/services"
)

var Module = fx.Provide(
	provideSocialService, provideSocialRepo)

func provideSocialRepo(db *mongo.Database) repositories.SocialRepository {
	return repositories.NewSocialRepository(db)
}

func provideSocialService(
	socialRepo repositories.SocialRepository,
	tripRepo repositories.TripRepository,
	accountRepo repositories.AccountRepository,
) services.SocialServiceInterface {
	return services.NewSocialService(socialRepo, tripRepo, accountRepo)
}
