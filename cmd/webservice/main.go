package main

import (
	"os"
	"os/signal"
	"syscall"

	_ "time/tzdata"

	"github.com/alimikegami/e-commerce/storefront-service/config"
	"github.com/alimikegami/e-commerce/storefront-service/internal/app"
	"github.com/alimikegami/e-commerce/storefront-service/internal/infrastructure/database/mongodb"
	"github.com/alimikegami/e-commerce/storefront-service/internal/infrastructure/database/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

func main() {
	config := config.CreateNewConfig()

	mongoDB, err := mongodb.ConnectToMongoDB(config.MongoDBConfig.URI, config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	var ledgerDB *sqlx.DB
	if config.PostgreSQLConfig.Enabled() {
		ledgerDB, err = postgres.GetDBInstance(config.PostgreSQLConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to the notification ledger database")
		}
	}

	server := app.App{
		MongoDB:  mongoDB,
		LedgerDB: ledgerDB,
		Config:   config,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		if err := server.StopServer(); err != nil {
			log.Error().Err(err).Msg("Failed to stop server")
		}
	}()

	server.Start()
}
