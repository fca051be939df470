package rest

import (
	"net/http"
	"os"

	"pawbody/internal/service"
	"pawbody/internal/transport/rest/handler"
	"pawbody/internal/transport/rest/middleware"
	"pawbody/internal/transport/ws"

	"github.com/gorilla/mux"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService   *service.AuthService
	PetService    *service.PetService
	SurveyService *service.SurveyService
	ReportService *service.ReportService
	WSHub         *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	petHandler := handler.NewPetHandler(c.PetService)
	surveyHandler := handler.NewSurveyHandler(c.SurveyService)
	reportHandler := handler.NewReportHandler(c.ReportService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws", wsHandler.UserWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/pets", petHandler.Create).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/pets", petHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/pets/{petId}", petHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/pets/{petId}", petHandler.Update).Methods("PUT", "OPTIONS")
	userRoutes.HandleFunc("/pets/{petId}", petHandler.Delete).Methods("DELETE", "OPTIONS")

	userRoutes.HandleFunc("/pets/{petId}/weights", petHandler.AddWeight).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/pets/{petId}/weights", petHandler.ListWeights).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/pets/{petId}/notes", petHandler.AddNote).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/pets/{petId}/notes", petHandler.ListNotes).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/pets/{petId}/heats", petHandler.AddHeatCycle).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/pets/{petId}/heats", petHandler.ListHeatCycles).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/pets/{petId}/missions/{index}/toggle", petHandler.ToggleMission).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/pets/{petId}/missions/reroll", petHandler.RerollMissions).Methods("POST", "OPTIONS")

	userRoutes.HandleFunc("/pets/{petId}/surveys", surveyHandler.Start).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/pets/{petId}/surveys/answers", surveyHandler.Answer).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/pets/{petId}/surveys/complete", surveyHandler.Complete).Methods("POST", "OPTIONS")

	userRoutes.HandleFunc("/pets/{petId}/reports/latest", surveyHandler.Latest).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/pets/{petId}/reports/ai", reportHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/pets/{petId}/reports/ai", reportHandler.Trigger).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
