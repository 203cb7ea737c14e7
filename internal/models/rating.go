package models

// RatingDoc evento de rating en Mongo. Rating va en 1-5; el 0 está
// reservado como centinela de "sin señal" en el motor.
type RatingDoc struct {
	UserID    int     `json:"userId" bson:"userId"`
	FoodID    int     `json:"foodId" bson:"foodId"`
	Rating    float64 `json:"rating" bson:"rating"`
	Timestamp int64   `json:"timestamp" bson:"timestamp"`
}
