package engine

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSaveUntrained(t *testing.T) {
	e := New(0, 0)
	if _, err := e.Save(); !errors.Is(err, ErrUntrained) {
		t.Errorf("Save() sin entrenar: err = %v, want ErrUntrained", err)
	}
}

// guardar y cargar en un motor nuevo reproduce exactamente las mismas
// respuestas para las mismas consultas
func TestSnapshotRoundTrip(t *testing.T) {
	e1 := trainedEngine(t)
	data, err := e1.Save()
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	e2 := New(0, 0)
	if err := e2.Load(data, nil); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	for _, foodID := range []int{1, 2, 3, 4} {
		s1, err1 := e1.SimilarItems(foodID, 10)
		s2, err2 := e2.SimilarItems(foodID, 10)
		if err1 != nil || err2 != nil {
			t.Fatalf("SimilarItems(%d): errs %v / %v", foodID, err1, err2)
		}
		if !reflect.DeepEqual(s1, s2) {
			t.Errorf("SimilarItems(%d) difiere tras round-trip", foodID)
		}
	}
	for _, userID := range []int{1, 2, 3} {
		p1, err1 := e1.PredictRatings(userID)
		p2, err2 := e2.PredictRatings(userID)
		if err1 != nil || err2 != nil {
			t.Fatalf("PredictRatings(%d): errs %v / %v", userID, err1, err2)
		}
		if !reflect.DeepEqual(p1, p2) {
			t.Errorf("PredictRatings(%d) difiere tras round-trip", userID)
		}
	}
}

func TestSnapshotFileRoundTrip(t *testing.T) {
	e1 := trainedEngine(t)
	path := filepath.Join(t.TempDir(), "model.json")

	if err := e1.SaveFile(path); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	e2 := New(0, 0)
	if err := e2.LoadFile(path, []int{1, 2, 3, 4}); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if !e2.Stats().Trained {
		t.Error("el motor cargado no quedó entrenado")
	}
}

func TestLoadVersionMismatch(t *testing.T) {
	e := trainedEngine(t)
	data, err := e.Save()
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	s.Version = 99
	bad, _ := json.Marshal(s)

	e2 := New(0, 0)
	if err := e2.Load(bad, nil); !errors.Is(err, ErrSnapshotMismatch) {
		t.Errorf("Load() con versión ajena: err = %v, want ErrSnapshotMismatch", err)
	}
	if e2.Stats().Trained {
		t.Error("un load rechazado no debe publicar modelo")
	}
}

func TestLoadDimensionMismatch(t *testing.T) {
	e := trainedEngine(t)
	data, _ := e.Save()

	tests := []struct {
		name   string
		mutate func(s *snapshot)
	}{
		{
			name:   "contentSim con filas de menos",
			mutate: func(s *snapshot) { s.ContentSim = s.ContentSim[:1] },
		},
		{
			name:   "userSim con fila angosta",
			mutate: func(s *snapshot) { s.UserSim[0] = s.UserSim[0][:1] },
		},
		{
			name:   "vocabulario TF-IDF sin sus pesos",
			mutate: func(s *snapshot) { s.Encoder.IDF = s.Encoder.IDF[:0] },
		},
		{
			name:   "features desalineadas del encoder",
			mutate: func(s *snapshot) { s.Features[0] = append(s.Features[0], 1) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s snapshot
			if err := json.Unmarshal(data, &s); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			tt.mutate(&s)
			bad, _ := json.Marshal(s)

			e2 := New(0, 0)
			if err := e2.Load(bad, nil); !errors.Is(err, ErrSnapshotMismatch) {
				t.Errorf("err = %v, want ErrSnapshotMismatch", err)
			}
		})
	}
}

// el snapshot no alinea con el catálogo vivo: se rechaza, nunca se opera
// con columnas corridas
func TestLoadCatalogMismatch(t *testing.T) {
	e := trainedEngine(t)
	data, _ := e.Save()

	tests := []struct {
		name string
		live []int
	}{
		{name: "catálogo vivo más grande", live: []int{1, 2, 3, 4, 5}},
		{name: "catálogo vivo más chico", live: []int{1, 2}},
		{name: "mismo tamaño, ids distintos", live: []int{1, 2, 3, 99}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e2 := New(0, 0)
			if err := e2.Load(data, tt.live); !errors.Is(err, ErrSnapshotMismatch) {
				t.Errorf("err = %v, want ErrSnapshotMismatch", err)
			}
		})
	}
}

func TestLoadMatchingCatalog(t *testing.T) {
	e := trainedEngine(t)
	data, _ := e.Save()

	e2 := New(0, 0)
	if err := e2.Load(data, []int{4, 3, 2, 1}); err != nil {
		t.Errorf("Load() con catálogo equivalente: err = %v", err)
	}
}
