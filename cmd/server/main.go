package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawbody/internal/cache"
	"pawbody/internal/config"
	"pawbody/internal/repository"
	"pawbody/internal/service"
	"pawbody/internal/survey"
	"pawbody/internal/transport/rest"
	"pawbody/internal/transport/ws"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := cfg.RedisAddr
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	petRepo := repository.NewPetRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	reportRepo := repository.NewReportRepo(db)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb)
	snapshotCache := cache.NewSnapshotCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	petSvc := service.NewPetService(petRepo, sessionCache, snapshotCache, nil, nil)
	surveySvc := service.NewSurveyService(questionRepo, petSvc, sessionCache, snapshotCache, survey.NewSelector(nil), nil)
	reportSvc := service.NewReportService(reportRepo, petSvc, nil)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	petSvc.SetBroadcaster(wsHub)
	surveySvc.SetBroadcaster(wsHub)
	reportSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:   authSvc,
		PetService:    petSvc,
		SurveyService: surveySvc,
		ReportService: reportSvc,
		WSHub:         wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/register")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET/POST /v1/pets")
		log.Println("  POST /v1/pets/{petId}/surveys")
		log.Println("  POST /v1/pets/{petId}/surveys/answers")
		log.Println("  POST /v1/pets/{petId}/surveys/complete")
		log.Println("  GET  /v1/pets/{petId}/reports/latest")
		log.Println("  GET/POST /v1/pets/{petId}/reports/ai")
		log.Println("  WS   /v1/ws")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
