package service

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/venudinesh/food-sub000/internal/engine"
	"github.com/venudinesh/food-sub000/internal/models"
	"github.com/venudinesh/food-sub000/internal/repository"
)

// ModelService orquesta el ciclo de vida del modelo: entrenamiento batch
// desde Mongo y snapshot en disco. El motor publica el modelo con swap
// atómico, así que acá no hace falta lock para las consultas.
type ModelService struct {
	eng          *engine.Engine
	foods        *repository.FoodRepository
	users        *repository.UserRepository
	ratings      *repository.RatingRepository
	snapshotPath string
}

func NewModelService(
	eng *engine.Engine,
	foods *repository.FoodRepository,
	users *repository.UserRepository,
	ratings *repository.RatingRepository,
	snapshotPath string,
) *ModelService {
	return &ModelService{
		eng:          eng,
		foods:        foods,
		users:        users,
		ratings:      ratings,
		snapshotPath: snapshotPath,
	}
}

// toEngineFood mapea el documento Mongo al tipo plano del motor.
func toEngineFood(f models.FoodDoc) engine.Food {
	return engine.Food{
		FoodID:      f.FoodID,
		Name:        f.Name,
		Category:    f.Category,
		Cuisine:     f.Cuisine,
		Price:       f.Price,
		Spiciness:   f.SpicinessLevel,
		PrepMinutes: f.PreparationTime,
		Vegetarian:  f.IsVegetarian,
		Ingredients: f.Ingredients,
	}
}

func toEngineRating(r models.RatingDoc) engine.Rating {
	return engine.Rating{
		UserID:    r.UserID,
		FoodID:    r.FoodID,
		Rating:    r.Rating,
		Timestamp: r.Timestamp,
	}
}

// TrainResult resumen que devuelve /admin/model/train.
type TrainResult struct {
	Users     int           `json:"users"`
	Foods     int           `json:"foods"`
	Ratings   int           `json:"ratings"`
	TrainedIn time.Duration `json:"trainedInNs"`
}

// TrainAll entrena desde el estado actual de Mongo. Si el motor falla
// (p.ej. catálogo o ratings vacíos) el modelo previo queda publicado.
func (s *ModelService) TrainAll(ctx context.Context) (*TrainResult, error) {
	foodDocs, err := s.foods.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	ratingDocs, err := s.ratings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	userIDs, err := s.users.AllUserIDs(ctx)
	if err != nil {
		return nil, err
	}

	foods := make([]engine.Food, len(foodDocs))
	for i, f := range foodDocs {
		foods[i] = toEngineFood(f)
	}
	ratings := make([]engine.Rating, len(ratingDocs))
	for i, r := range ratingDocs {
		ratings[i] = toEngineRating(r)
	}

	start := time.Now()
	if err := s.eng.TrainAll(userIDs, foods, ratings); err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	log.Printf("[model] entrenado: %d usuarios, %d comidas, %d ratings en %s",
		len(userIDs), len(foods), len(ratings), elapsed)

	return &TrainResult{
		Users:     len(userIDs),
		Foods:     len(foods),
		Ratings:   len(ratings),
		TrainedIn: elapsed,
	}, nil
}

// SaveSnapshot persiste el modelo publicado como una sola unidad atómica.
func (s *ModelService) SaveSnapshot() error {
	if err := os.MkdirAll(filepath.Dir(s.snapshotPath), 0o755); err != nil {
		return err
	}
	if err := s.eng.SaveFile(s.snapshotPath); err != nil {
		return err
	}
	log.Printf("[model] snapshot guardado en %s", s.snapshotPath)
	return nil
}

// LoadSnapshot carga el snapshot validándolo contra el catálogo vivo:
// un snapshot de otro catálogo se rechaza en vez de servir columnas
// desalineadas.
func (s *ModelService) LoadSnapshot(ctx context.Context) error {
	foodDocs, err := s.foods.GetAll(ctx)
	if err != nil {
		return err
	}
	liveIDs := make([]int, len(foodDocs))
	for i, f := range foodDocs {
		liveIDs[i] = f.FoodID
	}

	if err := s.eng.LoadFile(s.snapshotPath, liveIDs); err != nil {
		return err
	}
	log.Printf("[model] snapshot cargado desde %s", s.snapshotPath)
	return nil
}

func (s *ModelService) Stats() engine.Stats {
	return s.eng.Stats()
}
