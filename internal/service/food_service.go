package service

import (
	"context"
	"fmt"
	"time"

	"github.com/venudinesh/food-sub000/internal/models"
	"github.com/venudinesh/food-sub000/internal/repository"
)

type FoodService struct {
	foods *repository.FoodRepository
}

func NewFoodService(foods *repository.FoodRepository) *FoodService {
	return &FoodService{foods: foods}
}

func (s *FoodService) GetByID(ctx context.Context, foodID int) (*models.FoodDoc, error) {
	return s.foods.GetByID(ctx, foodID)
}

func (s *FoodService) Search(ctx context.Context, q, category, cuisine string, vegetarian *bool, limit, offset int) ([]models.FoodDoc, error) {
	return s.foods.Search(ctx, q, category, cuisine, vegetarian, limit, offset)
}

func (s *FoodService) Top(ctx context.Context, metric string, limit int) ([]models.FoodDoc, error) {
	return s.foods.Top(ctx, metric, limit)
}

// Create valida y da de alta una comida nueva. El catálogo que ve el motor
// cambia recién en el próximo entrenamiento.
func (s *FoodService) Create(ctx context.Context, req models.FoodCreateRequest) (*models.FoodDoc, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name es obligatorio")
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price no puede ser negativo")
	}
	if req.SpicinessLevel < 1 || req.SpicinessLevel > 5 {
		return nil, fmt.Errorf("spicinessLevel debe estar entre 1 y 5")
	}
	if req.PreparationTime <= 0 {
		return nil, fmt.Errorf("preparationTime debe ser positivo")
	}

	nextID, err := s.foods.GetNextFoodID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	f := &models.FoodDoc{
		FoodID:          nextID,
		Name:            req.Name,
		Category:        req.Category,
		Cuisine:         req.Cuisine,
		Price:           req.Price,
		SpicinessLevel:  req.SpicinessLevel,
		PreparationTime: req.PreparationTime,
		IsVegetarian:    req.IsVegetarian,
		Ingredients:     req.Ingredients,
		RestaurantID:    req.RestaurantID,
		RatingStats:     &models.RatingStats{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.foods.Insert(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// UpdateFood actualización parcial.
func (s *FoodService) UpdateFood(ctx context.Context, foodID int, req models.FoodUpdateRequest) (*models.FoodDoc, error) {
	f, err := s.foods.GetByID(ctx, foodID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("comida %d no encontrada", foodID)
	}

	if req.Name != nil {
		f.Name = *req.Name
	}
	if req.Category != nil {
		f.Category = *req.Category
	}
	if req.Cuisine != nil {
		f.Cuisine = *req.Cuisine
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("price no puede ser negativo")
		}
		f.Price = *req.Price
	}
	if req.SpicinessLevel != nil {
		if *req.SpicinessLevel < 1 || *req.SpicinessLevel > 5 {
			return nil, fmt.Errorf("spicinessLevel debe estar entre 1 y 5")
		}
		f.SpicinessLevel = *req.SpicinessLevel
	}
	if req.PreparationTime != nil {
		if *req.PreparationTime <= 0 {
			return nil, fmt.Errorf("preparationTime debe ser positivo")
		}
		f.PreparationTime = *req.PreparationTime
	}
	if req.IsVegetarian != nil {
		f.IsVegetarian = *req.IsVegetarian
	}
	if req.Ingredients != nil {
		f.Ingredients = *req.Ingredients
	}
	if req.RestaurantID != nil {
		f.RestaurantID = *req.RestaurantID
	}

	f.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.foods.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}
