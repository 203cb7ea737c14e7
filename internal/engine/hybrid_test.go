package engine

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// la aritmética de pesos del híbrido, aislada del resto del pipeline:
// predicción 4 con peso 0.6 más similitud 0.5 con peso 0.4 = 2.6
func TestHybridScoresWeighting(t *testing.T) {
	preds := []Prediction{{FoodID: 10, Rating: 4}}
	content := []ScoredItem{{FoodID: 10, Score: 0.5}}

	scores := hybridScores(preds, content, 0.6, 0.4)

	want := 4*0.6 + 0.5*0.4
	if got := scores[10]; math.Abs(got-want) > 1e-12 {
		t.Errorf("score híbrido = %f, want %f", got, want)
	}
}

func TestHybridScoresAccumulateAcrossSeeds(t *testing.T) {
	content := []ScoredItem{
		{FoodID: 10, Score: 0.5},
		{FoodID: 10, Score: 0.3}, // mismo ítem desde otro seed: se acumula
		{FoodID: 20, Score: 0.9},
	}
	scores := hybridScores(nil, content, 0.6, 0.4)

	if got, want := scores[10], 0.8*0.4; math.Abs(got-want) > 1e-12 {
		t.Errorf("score acumulado = %f, want %f", got, want)
	}
	if got, want := scores[20], 0.9*0.4; math.Abs(got-want) > 1e-12 {
		t.Errorf("score simple = %f, want %f", got, want)
	}
}

func TestRecommendForUserUnknownUser(t *testing.T) {
	e := trainedEngine(t)
	if _, err := e.RecommendForUser(999, nil, 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

// arranque en frío: usuario conocido, sin ratings, sin recientes -> lista
// vacía definida, no error
func TestRecommendForUserColdStart(t *testing.T) {
	e := New(0, 0)
	ratings := []Rating{
		{UserID: 1, FoodID: 1, Rating: 5, Timestamp: 1},
	}
	if err := e.TrainAll([]int{1, 2}, twoFoods(), ratings); err != nil {
		t.Fatalf("TrainAll() error = %v", err)
	}

	recs, err := e.RecommendForUser(2, nil, 5)
	if err != nil {
		t.Fatalf("RecommendForUser() error = %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("recs = %v, want []", recs)
	}
}

func TestRecommendForUserTopNZero(t *testing.T) {
	e := trainedEngine(t)
	recs, err := e.RecommendForUser(1, []int{1}, 0)
	if err != nil {
		t.Fatalf("RecommendForUser() error = %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("recs = %v, want [] con topN=0", recs)
	}
}

func TestRecommendForUserContentOnly(t *testing.T) {
	e := New(0, 0)
	// el usuario 3 no comparte ratings con nadie: solo señal de contenido
	ratings := []Rating{
		{UserID: 1, FoodID: 1, Rating: 5, Timestamp: 1},
		{UserID: 3, FoodID: 2, Rating: 4, Timestamp: 2},
	}
	if err := e.TrainAll([]int{1, 3}, sampleFoods(), ratings); err != nil {
		t.Fatalf("TrainAll() error = %v", err)
	}

	recs, err := e.RecommendForUser(3, []int{1}, 5)
	if err != nil {
		t.Fatalf("RecommendForUser() error = %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("sin recomendaciones con un seed reciente válido")
	}
	for _, r := range recs {
		if r.FoodID == 1 {
			t.Error("el seed aparece recomendado contra sí mismo")
		}
		if r.Name == "" || r.Reason == "" {
			t.Errorf("recomendación incompleta: %+v", r)
		}
	}
	for i := 1; i < len(recs); i++ {
		if recs[i-1].Score < recs[i].Score {
			t.Errorf("ranking desordenado en %d", i)
		}
	}
}

// seeds desconocidos no tumban el request, solo no aportan señal
func TestRecommendForUserIgnoresUnknownSeeds(t *testing.T) {
	e := trainedEngine(t)

	recs, err := e.RecommendForUser(1, []int{999, 1}, 5)
	if err != nil {
		t.Fatalf("RecommendForUser() error = %v", err)
	}
	if len(recs) == 0 {
		t.Error("el seed válido debería seguir aportando señal")
	}
}

func TestReasonForDeterministic(t *testing.T) {
	f := Food{Category: "Pizza", Cuisine: "Italian"}

	if reasonFor(f, 2.6) != reasonFor(f, 2.6) {
		t.Error("la razón cambió entre llamadas con el mismo score")
	}

	// int(2.6*10) % 4 == 26 % 4 == 2 -> plantilla de popularidad
	if got := reasonFor(f, 2.6); got != recReasons[2] {
		t.Errorf("reasonFor(2.6) = %q, want %q", got, recReasons[2])
	}

	// plantilla 0 interpola la categoría
	if got := reasonFor(f, 0.05); !strings.Contains(got, "Pizza") {
		t.Errorf("reasonFor(0.05) = %q, debería mencionar la categoría", got)
	}

	// score negativo no debe indexar fuera de rango
	_ = reasonFor(f, -1.3)
}
