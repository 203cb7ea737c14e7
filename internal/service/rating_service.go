package service

import (
	"context"
	"fmt"
	"time"

	"github.com/venudinesh/food-sub000/internal/models"
	"github.com/venudinesh/food-sub000/internal/repository"
)

type RatingService struct {
	ratings *repository.RatingRepository
	foods   *repository.FoodRepository
}

func NewRatingService(r *repository.RatingRepository, f *repository.FoodRepository) *RatingService {
	return &RatingService{
		ratings: r,
		foods:   f,
	}
}

func (s *RatingService) AddOrUpdate(ctx context.Context, userID, foodID int, rating float64) error {
	// la escala excluye el 0: en la matriz de interacción el 0 significa
	// "sin señal"
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating debe estar entre 1 y 5")
	}

	// 1) Ver si ya existía un rating previo
	prev, err := s.ratings.GetOne(ctx, userID, foodID)
	if err != nil {
		return err
	}
	existedBefore := prev != nil

	// 2) Upsert del rating (guarda timestamp como epoch)
	if err := s.ratings.UpsertRating(ctx, userID, foodID, rating); err != nil {
		return err
	}

	// 3) Actualizar stats de la comida
	food, err := s.foods.GetByID(ctx, foodID)
	if err != nil {
		return err
	}
	if food == nil {
		return fmt.Errorf("comida %d no encontrada", foodID)
	}

	if food.RatingStats == nil {
		food.RatingStats = &models.RatingStats{}
	}
	rs := food.RatingStats

	if !existedBefore {
		// Nuevo rating
		total := rs.Average*float64(rs.Count) + rating
		rs.Count++
		if rs.Count > 0 {
			rs.Average = total / float64(rs.Count)
		}
	} else {
		// Update de rating existente
		total := rs.Average*float64(rs.Count) - prev.Rating + rating
		if rs.Count > 0 {
			rs.Average = total / float64(rs.Count)
		}
		// rs.Count no cambia
	}

	nowStr := time.Now().Format(time.RFC3339)
	rs.LastRatedAt = nowStr
	food.UpdatedAt = nowStr

	return s.foods.Update(ctx, food)
}

func (s *RatingService) GetByUser(ctx context.Context, userID, limit, offset int) ([]models.RatingDoc, error) {
	return s.ratings.GetByUser(ctx, userID, limit, offset)
}
