package engine

import (
	"errors"
	"math"
	"testing"
)

// catálogo neutro: acá solo importa la matriz de interacción
func twoFoods() []Food {
	return []Food{
		{FoodID: 1, Category: "A", Cuisine: "X", Price: 1, Spiciness: 1, PrepMinutes: 1},
		{FoodID: 2, Category: "B", Cuisine: "Y", Price: 2, Spiciness: 2, PrepMinutes: 2},
	}
}

func TestPredictRatingsUnknownUser(t *testing.T) {
	e := New(0, 0)
	if err := e.TrainAll([]int{1}, twoFoods(), []Rating{{UserID: 1, FoodID: 1, Rating: 5, Timestamp: 1}}); err != nil {
		t.Fatalf("TrainAll() error = %v", err)
	}
	if _, err := e.PredictRatings(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

// usuario sin ratings: su fila es nula, similitud 0 contra todos,
// resultado lista vacía, no error.
func TestPredictRatingsUserWithoutRatings(t *testing.T) {
	e := New(0, 0)
	ratings := []Rating{
		{UserID: 1, FoodID: 1, Rating: 5, Timestamp: 1},
		{UserID: 1, FoodID: 2, Rating: 4, Timestamp: 2},
	}
	if err := e.TrainAll([]int{1, 2}, twoFoods(), ratings); err != nil {
		t.Fatalf("TrainAll() error = %v", err)
	}

	preds, err := e.PredictRatings(2)
	if err != nil {
		t.Fatalf("PredictRatings() error = %v", err)
	}
	if len(preds) != 0 {
		t.Errorf("preds = %v, want []", preds)
	}
}

// verifica el promedio ponderado contra el cálculo a mano:
// A=[5,0], B=[5,4], C=[5,2]
// pred(A, comida 2) = (sim(A,B)*4 + sim(A,C)*2) / (sim(A,B) + sim(A,C))
func TestPredictRatingsWeightedAverage(t *testing.T) {
	e := New(0, 0)
	ratings := []Rating{
		{UserID: 1, FoodID: 1, Rating: 5, Timestamp: 1},
		{UserID: 2, FoodID: 1, Rating: 5, Timestamp: 2},
		{UserID: 2, FoodID: 2, Rating: 4, Timestamp: 3},
		{UserID: 3, FoodID: 1, Rating: 5, Timestamp: 4},
		{UserID: 3, FoodID: 2, Rating: 2, Timestamp: 5},
	}
	if err := e.TrainAll([]int{1, 2, 3}, twoFoods(), ratings); err != nil {
		t.Fatalf("TrainAll() error = %v", err)
	}

	simAB := 25 / (5 * math.Sqrt(25+16))
	simAC := 25 / (5 * math.Sqrt(25+4))
	want := (simAB*4 + simAC*2) / (simAB + simAC)

	preds, err := e.PredictRatings(1)
	if err != nil {
		t.Fatalf("PredictRatings() error = %v", err)
	}
	if len(preds) != 1 || preds[0].FoodID != 2 {
		t.Fatalf("preds = %v, want una predicción para la comida 2", preds)
	}
	if math.Abs(preds[0].Rating-want) > 1e-9 {
		t.Errorf("predicción = %f, want %f", preds[0].Rating, want)
	}
}

// empate exacto de predicciones: desempate por id ascendente
func TestPredictRatingsTieBreak(t *testing.T) {
	foods := []Food{
		{FoodID: 1, Category: "A", Cuisine: "X", Price: 1, Spiciness: 1, PrepMinutes: 1},
		{FoodID: 7, Category: "B", Cuisine: "Y", Price: 2, Spiciness: 2, PrepMinutes: 2},
		{FoodID: 4, Category: "C", Cuisine: "Z", Price: 3, Spiciness: 3, PrepMinutes: 3},
	}
	ratings := []Rating{
		{UserID: 1, FoodID: 1, Rating: 5, Timestamp: 1},
		{UserID: 2, FoodID: 1, Rating: 4, Timestamp: 2},
		{UserID: 2, FoodID: 4, Rating: 3, Timestamp: 3},
		{UserID: 2, FoodID: 7, Rating: 3, Timestamp: 4},
	}
	e := New(0, 0)
	if err := e.TrainAll([]int{1, 2}, foods, ratings); err != nil {
		t.Fatalf("TrainAll() error = %v", err)
	}

	preds, err := e.PredictRatings(1)
	if err != nil {
		t.Fatalf("PredictRatings() error = %v", err)
	}
	if len(preds) != 2 {
		t.Fatalf("preds = %v, want 2 predicciones", preds)
	}
	// un solo rater: ambas predicciones valen exactamente 3
	if preds[0].Rating != preds[1].Rating {
		t.Fatalf("se esperaba empate, ratings %f y %f", preds[0].Rating, preds[1].Rating)
	}
	if preds[0].FoodID != 4 || preds[1].FoodID != 7 {
		t.Errorf("desempate por id asc: got [%d %d], want [4 7]", preds[0].FoodID, preds[1].FoodID)
	}
}
