package chat_fx

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"tripwise/internal/repositories"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(
	provideChatService, provideChatRepo)

func provideChatRepo(db *mongo.Database) repositories.ChatRepository {
	return repositories.NewChatRepository(db)
}

func provideChatService(
	aiClient utils.AIClientInterface,
	tripRepo repositories.TripRepository,
	chatRepo repositories.ChatRepository,
) services.ChatServiceInterface {
	return services.NewChatService(aiClient, tripRepo, chatRepo)
}
