package ai_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(
	provideAIClient)

func provideAIClient() utils.AIClientInterface {
	client, err := utils.NewAIClient(
		os.Getenv("AI_PROVIDER"),
		os.Getenv("AI_API_KEY"),
		os.Getenv("AI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to create AI client: %v", err)
	}
	return client
}
