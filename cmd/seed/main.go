package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"pawbody/internal/catalog"
	"pawbody/internal/config"
	"pawbody/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	questions := catalog.Questions()
	if err := catalog.Validate(questions); err != nil {
		log.Fatalf("Catalog validation failed: %v", err)
	}

	repo := repository.NewQuestionRepo(client.Database(cfg.MongoDB))
	if err := repo.ReplaceAll(ctx, questions); err != nil {
		log.Fatalf("Failed to seed questions: %v", err)
	}

	fmt.Printf("Successfully seeded %d survey questions\n", len(questions))
}
