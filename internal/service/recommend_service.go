package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/venudinesh/food-sub000/internal/cache"
	"github.com/venudinesh/food-sub000/internal/engine"
	"github.com/venudinesh/food-sub000/internal/models"
	"github.com/venudinesh/food-sub000/internal/repository"
)

const (
	DefaultK = 10
	MaxK     = 50 // por seguridad, no deja pedir 1000 ítems

	// cuántos ítems recientes del historial de ratings alimentan la
	// señal de contenido cuando el request no trae los suyos
	recentFromHistory = 3

	// razón fija del fallback por popularidad (arranque en frío)
	popularReason = "Entre los platos más pedidos del catálogo"
)

type RecommendService struct {
	eng     *engine.Engine
	ratings *repository.RatingRepository
	foods   *repository.FoodRepository
	recRepo *repository.RecommendationRepository
}

func NewRecommendService(
	eng *engine.Engine,
	ratings *repository.RatingRepository,
	foods *repository.FoodRepository,
	recRepo *repository.RecommendationRepository,
) *RecommendService {
	return &RecommendService{
		eng:     eng,
		ratings: ratings,
		foods:   foods,
		recRepo: recRepo,
	}
}

// ====== Petición de recomendaciones ======

type RecRequest struct {
	UserID  int
	K       int
	Recent  []int // foodIds recientes, del más nuevo al más viejo (opcional)
	Refresh bool
}

// cacheKey incluye el instante de entrenamiento: un reentrenamiento
// invalida el cache solo, sin barrer claves.
func (s *RecommendService) cacheKey(req RecRequest) string {
	trainedAt := s.eng.Stats().TrainedAt.Unix()
	return fmt.Sprintf("rec:user:%d:k:%d:m:%d", req.UserID, req.K, trainedAt)
}

// Recommend corre el híbrido sobre el modelo publicado. El arranque en
// frío (lista vacía definida del motor) cae a popularidad de catálogo.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.RecItem, error) {
	// defaults y límites para K
	if req.K <= 0 {
		req.K = DefaultK
	} else if req.K > MaxK {
		req.K = MaxK
	}

	// 1) Cache Redis (solo si refresh = false y sin recientes explícitos)
	useCache := !req.Refresh && len(req.Recent) == 0
	var cached []models.RecItem
	if useCache {
		if ok, err := cache.GetJSON(ctx, s.cacheKey(req), &cached); err == nil && ok {
			return cached, nil
		}
	}

	// 2) Seeds de contenido: o vienen en el request o salen del
	// historial de ratings del usuario
	recent := req.Recent
	if len(recent) == 0 {
		var err error
		recent, err = s.ratings.RecentFoodIDs(ctx, req.UserID, recentFromHistory)
		if err != nil {
			return nil, err
		}
	}

	// 3) Híbrido
	recs, err := s.eng.RecommendForUser(req.UserID, recent, req.K)
	if err != nil {
		return nil, err // NotFound / Untrained los traduce el handler
	}

	algo := "hybrid"
	items := make([]models.RecItem, 0, len(recs))
	for _, r := range recs {
		items = append(items, models.RecItem{
			FoodID:   r.FoodID,
			Name:     r.Name,
			Category: r.Category,
			Cuisine:  r.Cuisine,
			Price:    r.Price,
			Score:    r.Score,
			Reason:   r.Reason,
		})
	}

	// 4) Arranque en frío: usuario sin historia -> top de popularidad
	if len(items) == 0 {
		algo = "popular-fallback"
		items, err = s.popularFallback(ctx, req.K)
		if err != nil {
			return nil, err
		}
	}

	// 5) Guardar historial en Mongo (no rompemos la respuesta si falla)
	if s.recRepo != nil {
		hist := &models.Recommendation{
			UserID: req.UserID,
			Algo:   algo,
			Params: map[string]any{
				"k":      req.K,
				"recent": recent,
			},
			Items:     items,
			CreatedAt: time.Now(),
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("error guardando recomendación en Mongo: %v", err)
		}
	}

	// 6) Cachear en Redis (1 hora)
	if useCache {
		if err := cache.SetJSON(ctx, s.cacheKey(req), items, 60*60); err != nil {
			log.Printf("error cacheando recomendación en Redis: %v", err)
		}
	}

	return items, nil
}

func (s *RecommendService) popularFallback(ctx context.Context, k int) ([]models.RecItem, error) {
	top, err := s.foods.Top(ctx, "popular", k)
	if err != nil {
		return nil, err
	}
	items := make([]models.RecItem, 0, len(top))
	for _, f := range top {
		var score float64
		if f.RatingStats != nil {
			score = f.RatingStats.Average
		}
		items = append(items, models.RecItem{
			FoodID:   f.FoodID,
			Name:     f.Name,
			Category: f.Category,
			Cuisine:  f.Cuisine,
			Price:    f.Price,
			Score:    score,
			Reason:   popularReason,
		})
	}
	return items, nil
}

// History devuelve las últimas recomendaciones servidas al usuario.
func (s *RecommendService) History(ctx context.Context, userID, limit int) ([]models.Recommendation, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.recRepo.FindByUser(ctx, userID, int64(limit))
}

// ====== Similares por contenido ======

// SimilarFoods vecinos por atributos de una comida del catálogo entrenado.
func (s *RecommendService) SimilarFoods(ctx context.Context, foodID, topN int) ([]models.SimilarFood, error) {
	if topN <= 0 {
		topN = DefaultK
	} else if topN > MaxK {
		topN = MaxK
	}

	neighbors, err := s.eng.SimilarItems(foodID, topN)
	if err != nil {
		return nil, err
	}

	out := make([]models.SimilarFood, 0, len(neighbors))
	for _, n := range neighbors {
		sf := models.SimilarFood{FoodID: n.FoodID, Score: n.Score}
		if f, err := s.foods.GetByID(ctx, n.FoodID); err == nil && f != nil {
			sf.Name = f.Name
			sf.Category = f.Category
		}
		out = append(out, sf)
	}
	return out, nil
}

// ====== Predicciones colaborativas puras ======

func (s *RecommendService) PredictRatings(_ context.Context, userID int) ([]models.PredictedRating, error) {
	preds, err := s.eng.PredictRatings(userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.PredictedRating, 0, len(preds))
	for _, p := range preds {
		out = append(out, models.PredictedRating{FoodID: p.FoodID, PredictedRating: p.Rating})
	}
	return out, nil
}
