package main

import (
	"context"
	"log"
	"time"

	"github.com/venudinesh/food-sub000/internal/config"
	"github.com/venudinesh/food-sub000/internal/db"
	"github.com/venudinesh/food-sub000/internal/engine"
	"github.com/venudinesh/food-sub000/internal/repository"
	"github.com/venudinesh/food-sub000/internal/service"
)

// Entrenador batch: lee todo de Mongo, entrena el modelo y deja el
// snapshot en disco para que el API lo levante al arrancar. Pensado
// para correr por cron o a mano.
func main() {
	cfg := config.Load()
	db.InitMongo(cfg)

	userRepo := repository.NewUserRepository()
	foodRepo := repository.NewFoodRepository()
	ratingRepo := repository.NewRatingRepository()

	eng := engine.New(cfg.CollabWeight, cfg.ContentWeight)
	modelSvc := service.NewModelService(eng, foodRepo, userRepo, ratingRepo, cfg.SnapshotPath)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := modelSvc.TrainAll(ctx)
	if err != nil {
		log.Fatalf("entrenamiento falló: %v", err)
	}
	log.Printf("[trainer] modelo listo: %d usuarios, %d comidas, %d ratings (%s)",
		res.Users, res.Foods, res.Ratings, res.TrainedIn)

	if err := modelSvc.SaveSnapshot(); err != nil {
		log.Fatalf("no se pudo guardar el snapshot: %v", err)
	}
	log.Printf("[trainer] snapshot escrito en %s", cfg.SnapshotPath)
}
