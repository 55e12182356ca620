package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimikegami/content-service/config"
	"github.com/alimikegami/content-service/internal/app"
	"github.com/alimikegami/content-service/internal/infrastructure/database/mongodb"
	"github.com/alimikegami/content-service/internal/infrastructure/media/cloudinary"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config := config.CreateNewConfig()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = logger

	db, err := mongodb.ConnectToMongoDB(config.MongoDBConfig.URI, config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = mongodb.EnsureIndexes(ctx, db)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	uploader, err := cloudinary.CreateCloudinaryClient(config.CloudinaryConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create the Cloudinary client")
	}

	server := app.App{
		DB:       db,
		Config:   config,
		Uploader: uploader,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server stopped unexpectedly")
	}

	if err := db.Client().Disconnect(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect from the database")
	}
}
