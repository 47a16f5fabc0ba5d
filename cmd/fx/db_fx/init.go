package db_fx

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripwise/internal/infra"
)

var Module = fx.Provide(
	provideDB, provideMongo)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}

func provideMongo() *mongo.Database {
	return infra.InitMongo()
}
