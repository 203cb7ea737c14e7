package engine

import (
	"sync/atomic"
	"time"
)

// Pesos por defecto del modelo híbrido.
const (
	DefaultCollaborativeWeight = 0.6
	DefaultContentWeight       = 0.4
)

// Food es el ítem de catálogo tal como lo consume el motor.
// El service layer mapea desde models.FoodDoc; el motor no conoce Mongo.
type Food struct {
	FoodID      int      `json:"foodId"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Cuisine     string   `json:"cuisine"`
	Price       float64  `json:"price"`
	Spiciness   int      `json:"spiciness"`   // escala 1-5
	PrepMinutes int      `json:"prepMinutes"` // minutos
	Vegetarian  bool     `json:"vegetarian"`
	Ingredients []string `json:"ingredients"`
}

// Rating es un evento de rating observado. Rating va en 1-5: el 0 queda
// reservado como centinela de "sin señal" en la matriz de interacción.
type Rating struct {
	UserID    int     `json:"userId"`
	FoodID    int     `json:"foodId"`
	Rating    float64 `json:"rating"`
	Timestamp int64   `json:"timestamp"`
}

// ScoredItem es un vecino por contenido: (comida, similitud coseno).
type ScoredItem struct {
	FoodID int     `json:"foodId"`
	Score  float64 `json:"score"`
}

// Prediction es un rating predicho por filtrado colaborativo.
type Prediction struct {
	FoodID int     `json:"foodId"`
	Rating float64 `json:"predictedRating"`
}

// Recommendation es el resultado final del híbrido, efímero por request.
type Recommendation struct {
	FoodID   int     `json:"foodId"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Cuisine  string  `json:"cuisine"`
	Price    float64 `json:"price"`
	Score    float64 `json:"score"`
	Reason   string  `json:"reason"`
}

// Stats resume el estado del modelo publicado (para /admin/model/stats).
type Stats struct {
	Trained         bool      `json:"trained"`
	TrainedAt       time.Time `json:"trainedAt,omitempty"`
	SnapshotVersion int       `json:"snapshotVersion"`
	Users           int       `json:"users"`
	Foods           int       `json:"foods"`
	Ratings         int       `json:"ratings"`
	FeatureDim      int       `json:"featureDim"`
}

// Engine publica el último modelo entrenado. Las consultas leen el puntero
// atómico y trabajan sobre ese valor inmutable, así un reentrenamiento en
// curso nunca pisa lo que están leyendo los requests en vuelo.
type Engine struct {
	model atomic.Pointer[model]

	collabWeight  float64
	contentWeight float64
}

// New crea un motor sin entrenar. Pesos <= 0 toman el default 0.6/0.4.
// Los pesos no se renormalizan: el caller es dueño de que sumen lo que
// espera.
func New(collabWeight, contentWeight float64) *Engine {
	if collabWeight <= 0 {
		collabWeight = DefaultCollaborativeWeight
	}
	if contentWeight <= 0 {
		contentWeight = DefaultContentWeight
	}
	return &Engine{
		collabWeight:  collabWeight,
		contentWeight: contentWeight,
	}
}

// current devuelve el modelo publicado o ErrUntrained.
func (e *Engine) current() (*model, error) {
	m := e.model.Load()
	if m == nil {
		return nil, ErrUntrained
	}
	return m, nil
}

// TrainAll entrena todo en orden de dependencias: encoder → matriz de
// interacción → las dos matrices de similitud. Es batch, bloqueante y
// mono-hilo. Si falla, el modelo previamente publicado queda intacto
// (swap al final, nunca mutación en sitio).
func (e *Engine) TrainAll(userIDs []int, foods []Food, ratings []Rating) error {
	m, err := trainModel(userIDs, foods, ratings)
	if err != nil {
		return err
	}
	e.model.Store(m)
	return nil
}

// SimilarItems devuelve las topN comidas más parecidas por atributos.
func (e *Engine) SimilarItems(foodID, topN int) ([]ScoredItem, error) {
	m, err := e.current()
	if err != nil {
		return nil, err
	}
	return m.similarItems(foodID, topN)
}

// PredictRatings predice ratings para todo lo que el usuario no calificó.
func (e *Engine) PredictRatings(userID int) ([]Prediction, error) {
	m, err := e.current()
	if err != nil {
		return nil, err
	}
	return m.predictRatings(userID)
}

// RecommendForUser combina señal colaborativa y de contenido en un solo
// ranking. recentFoodIDs va ordenado del más reciente al más antiguo.
func (e *Engine) RecommendForUser(userID int, recentFoodIDs []int, topN int) ([]Recommendation, error) {
	m, err := e.current()
	if err != nil {
		return nil, err
	}
	return m.recommendForUser(userID, recentFoodIDs, topN, e.collabWeight, e.contentWeight)
}

// Stats del modelo publicado. Un motor sin entrenar devuelve Trained=false.
func (e *Engine) Stats() Stats {
	m := e.model.Load()
	if m == nil {
		return Stats{SnapshotVersion: snapshotVersion}
	}
	rated := 0
	for _, row := range m.ratingMat {
		for _, v := range row {
			if v != 0 {
				rated++
			}
		}
	}
	dim := 0
	if len(m.features) > 0 {
		dim = len(m.features[0])
	}
	return Stats{
		Trained:         true,
		TrainedAt:       m.trainedAt,
		SnapshotVersion: snapshotVersion,
		Users:           len(m.userIDs),
		Foods:           len(m.foods),
		Ratings:         rated,
		FeatureDim:      dim,
	}
}
