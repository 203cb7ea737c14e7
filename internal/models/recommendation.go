package models

import "time"

// RecItem un ítem del ranking final que se devuelve por API.
type RecItem struct {
	FoodID   int     `bson:"foodId" json:"foodId"`
	Name     string  `bson:"name" json:"name"`
	Category string  `bson:"category" json:"category"`
	Cuisine  string  `bson:"cuisine" json:"cuisine"`
	Price    float64 `bson:"price" json:"price"`
	Score    float64 `bson:"score" json:"score"`
	Reason   string  `bson:"reason" json:"reason"`
}

// Recommendation historial persistido de una respuesta de recomendación.
type Recommendation struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    int       `bson:"userId" json:"userId"`
	Algo      string    `bson:"algo" json:"algo"`
	Params    any       `bson:"params" json:"params"`
	Items     []RecItem `bson:"items" json:"items"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// SimilarFood vecino por contenido para /foods/{id}/similar.
type SimilarFood struct {
	FoodID   int     `json:"foodId"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// PredictedRating para /users/{id}/predictions.
type PredictedRating struct {
	FoodID          int     `json:"foodId"`
	PredictedRating float64 `json:"predictedRating"`
}
