package models

// RatingStats agregados que se mantienen al vuelo sobre la comida.
type RatingStats struct {
	Average     float64 `json:"average" bson:"average"`
	Count       int     `json:"count" bson:"count"`
	LastRatedAt string  `json:"lastRatedAt,omitempty" bson:"lastRatedAt,omitempty"`
}

// FoodDoc es el documento de la colección foods. Los atributos alimentan
// directamente el encoder del motor: categoría, cocina, precio, picante,
// tiempo de preparación, flag vegetariano e ingredientes.
type FoodDoc struct {
	FoodID          int          `json:"foodId" bson:"foodId"`
	Name            string       `json:"name" bson:"name"`
	Category        string       `json:"category" bson:"category"`
	Cuisine         string       `json:"cuisine" bson:"cuisine"`
	Price           float64      `json:"price" bson:"price"`
	SpicinessLevel  int          `json:"spicinessLevel" bson:"spicinessLevel"`   // 1-5
	PreparationTime int          `json:"preparationTime" bson:"preparationTime"` // minutos
	IsVegetarian    bool         `json:"isVegetarian" bson:"isVegetarian"`
	Ingredients     []string     `json:"ingredients" bson:"ingredients"`
	RestaurantID    int          `json:"restaurantId,omitempty" bson:"restaurantId,omitempty"`
	RatingStats     *RatingStats `json:"ratingStats,omitempty" bson:"ratingStats,omitempty"`
	CreatedAt       string       `json:"createdAt" bson:"createdAt"`
	UpdatedAt       string       `json:"updatedAt" bson:"updatedAt"`
}

// Payload para crear una comida (API admin).
type FoodCreateRequest struct {
	Name            string   `json:"name"` // obligatorio
	Category        string   `json:"category"`
	Cuisine         string   `json:"cuisine"`
	Price           float64  `json:"price"`
	SpicinessLevel  int      `json:"spicinessLevel"`
	PreparationTime int      `json:"preparationTime"`
	IsVegetarian    bool     `json:"isVegetarian"`
	Ingredients     []string `json:"ingredients"`
	RestaurantID    int      `json:"restaurantId,omitempty"`
}

// Payload para actualización parcial de comida.
type FoodUpdateRequest struct {
	Name            *string   `json:"name,omitempty"`
	Category        *string   `json:"category,omitempty"`
	Cuisine         *string   `json:"cuisine,omitempty"`
	Price           *float64  `json:"price,omitempty"`
	SpicinessLevel  *int      `json:"spicinessLevel,omitempty"`
	PreparationTime *int      `json:"preparationTime,omitempty"`
	IsVegetarian    *bool     `json:"isVegetarian,omitempty"`
	Ingredients     *[]string `json:"ingredients,omitempty"`
	RestaurantID    *int      `json:"restaurantId,omitempty"`
}
