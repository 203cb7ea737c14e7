package main

import (
	"context"
	"log"
	"net/http"

	"github.com/venudinesh/food-sub000/internal/cache"
	"github.com/venudinesh/food-sub000/internal/config"
	"github.com/venudinesh/food-sub000/internal/db"
	"github.com/venudinesh/food-sub000/internal/engine"
	"github.com/venudinesh/food-sub000/internal/handler"
	"github.com/venudinesh/food-sub000/internal/repository"
	"github.com/venudinesh/food-sub000/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// @title Food Recommender API
// @version 1.0
// @description API de recomendación híbrida de comidas (contenido + colaborativo, Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	foodRepo := repository.NewFoodRepository()
	ratingRepo := repository.NewRatingRepository()
	recRepo := repository.NewRecommendationRepository()

	// motor de recomendación (modelo inmutable con swap atómico)
	eng := engine.New(cfg.CollabWeight, cfg.ContentWeight)

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	foodSvc := service.NewFoodService(foodRepo)
	ratingSvc := service.NewRatingService(ratingRepo, foodRepo)
	modelSvc := service.NewModelService(eng, foodRepo, userRepo, ratingRepo, cfg.SnapshotPath)
	recSvc := service.NewRecommendService(eng, ratingRepo, foodRepo, recRepo)

	// ============================
	// Bootstrap del modelo
	// ============================
	// Primero intenta el snapshot en disco (validado contra el catálogo
	// vivo); si no sirve, entrena desde Mongo; si tampoco hay datos, el
	// API arranca igual y responde 503 en recomendaciones hasta entrenar.
	ctx := context.Background()
	if err := modelSvc.LoadSnapshot(ctx); err != nil {
		log.Printf("snapshot no disponible (%v), entrenando desde Mongo…", err)
		if _, err := modelSvc.TrainAll(ctx); err != nil {
			log.Printf("sin modelo inicial (%v), el API arranca sin entrenar", err)
		}
	}

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	foodH := handler.NewFoodHandler(foodSvc)
	ratingH := handler.NewRatingHandler(ratingSvc)
	recH := handler.NewRecommendHandler(recSvc)
	modelH := handler.NewModelHandler(modelSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Comidas (públicas)
	r.Get("/foods/search", foodH.Search)
	r.Get("/foods/top", foodH.Top)
	r.Get("/foods/{id}", foodH.GetFood)
	r.Get("/foods/{id}/similar", recH.GetSimilarFoods)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Endpoints /me (USER normal) ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/ratings", ratingH.GetMyRatings)
			r.Post("/ratings", ratingH.PostMyRating)
			r.Get("/recommendations", recH.GetMyRecommendations)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			// edición de usuario
			r.Put("/users/{id}/update", authH.UpdateUser)

			// gestión del catálogo
			r.Post("/admin/foods", foodH.CreateFood)
			r.Put("/admin/foods/{id}", foodH.UpdateFood)
			r.Get("/users", authH.ListUsers)

			// ratings y recomendaciones de cualquier usuario
			r.Route("/users/{id}", func(r chi.Router) {
				// obtener info del usuario por id
				r.Get("/", authH.GetUserByID)

				r.Get("/ratings", ratingH.GetRatings)
				r.Post("/ratings", ratingH.PostRating)

				// HTTP normal
				r.Get("/recommendations", recH.GetRecommendations)
				r.Get("/recommendations/history", recH.GetHistory)
				r.Get("/predictions", recH.GetPredictions)

				// WebSocket
				r.Get("/ws/recommendations", recH.GetRecommendationsWS)
			})

			// --- ciclo de vida del modelo ---
			handler.MountModelRoutes(r, modelH)
		})
	})

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
