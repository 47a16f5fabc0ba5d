package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"tripwise/cmd/fx/account_fx"
	"tripwise/cmd/fx/ai_fx"
	"tripwise/cmd/fx/chat_fx"
	"tripwise/cmd/fx/controllers_fx"
	"tripwise/cmd/fx/db_fx"
	"tripwise/cmd/fx/memcache_fx"
	"tripwise/cmd/fx/social_fx"
	"tripwise/cmd/fx/trip_fx"
	"tripwise/internal/api/controllers"
	"tripwise/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		ai_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		chat_fx.Module,
		social_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	chatController *controllers.ChatController,
	socialController *controllers.SocialController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, tripController, chatController, socialController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	chatController *controllers.ChatController,
	socialController *controllers.SocialController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)

	accountsAuth := r.Group("/accounts")
	accountsAuth.Use(middleware.JWTAuthMiddleware())
	accountsAuth.GET("/:accountId", accountController.GetProfile)
	accountsAuth.POST("/:accountId/follow", socialController.Follow)
	accountsAuth.DELETE("/:accountId/follow", socialController.Unfollow)

	trips := r.Group("/trips")
	trips.GET("/public", tripController.GetPublicTrips)
	trips.GET("/:tripId/comments", socialController.ListComments)

	tripsAuth := r.Group("/trips")
	tripsAuth.Use(middleware.JWTAuthMiddleware())
	tripsAuth.POST("/generate", tripController.GenerateTrip)
	tripsAuth.GET("/mine", tripController.GetMyTrips)
	tripsAuth.GET("/:tripId", tripController.GetTripById)
	tripsAuth.DELETE("/:tripId", tripController.DeleteTrip)
	tripsAuth.PUT("/:tripId/visibility", tripController.SetVisibility)
	tripsAuth.POST("/:tripId/like", socialController.ToggleLike)
	tripsAuth.POST("/:tripId/comments", socialController.AddComment)
	tripsAuth.POST("/:tripId/chat", chatController.SendMessage)
	tripsAuth.GET("/:tripId/chat", chatController.GetHistory)
	tripsAuth.POST("/:tripId/chat/apply", chatController.ApplyPatch)

	followRequests := r.Group("/follow-requests")
	followRequests.Use(middleware.JWTAuthMiddleware())
	followRequests.GET("", socialController.ListFollowRequests)
	followRequests.POST("/:accountId/accept", socialController.AcceptFollowRequest)
}
