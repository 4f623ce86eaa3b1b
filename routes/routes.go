package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/pollamundial/backend/handlers"
	"github.com/pollamundial/backend/middleware"
	"github.com/pollamundial/backend/models"
)

func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	matchHandler *handlers.MatchHandler,
	predictionHandler *handlers.PredictionHandler,
	rankingHandler *handlers.RankingHandler,
	bracketHandler *handlers.BracketHandler,
	paymentHandler *handlers.PaymentHandler,
	adminHandler *handlers.AdminHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate([]byte(jwtSecret))
	adminOnly := middleware.Authorize(models.RoleAdmin)

	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)

	// Public tournament data
	router.Get("/matches", matchHandler.List)
	router.Get("/groups/standings", matchHandler.GroupStandings)
	router.Get("/bracket/round32", bracketHandler.LiveRoundOf32)
	router.Get("/ranking", rankingHandler.Leaderboard)
	router.Get("/ranking/{userID}", rankingHandler.Breakdown)

	// Authenticated pool members
	router.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Put("/predictions/{phase}", predictionHandler.Submit)
		r.Get("/predictions/{phase}", predictionHandler.GetOwn)
		r.Get("/community/{phase}", predictionHandler.Community)
		r.Get("/bracket/round32/predicted", bracketHandler.PredictedRoundOf32)
		r.Post("/payments/receipt", paymentHandler.UploadReceipt)
	})

	// Admin panel
	router.Route("/admin", func(r chi.Router) {
		r.Use(authenticate)
		r.Use(adminOnly)

		r.Get("/payments", paymentHandler.List)
		r.Put("/payments/{id}", paymentHandler.Review)
		r.Post("/matches", matchHandler.SeedFixtures)
		r.Post("/matches/{id}/result", matchHandler.RecordResult)
		r.Post("/recalculate", adminHandler.Recalculate)
	})

	router.Get("/ws/ranking", webSocketHandler.Serve)
	router.Get("/swagger/*", httpSwagger.WrapHandler)
}
