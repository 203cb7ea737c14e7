package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// snapshotVersion se chequea en la carga; un snapshot de otra versión se
// rechaza, no se coerciona.
const snapshotVersion = 1

// snapshot es el bundle serializado: parámetros del encoder, las matrices
// derivadas y sus órdenes de filas/columnas. Una sola unidad atómica.
type snapshot struct {
	Version   int       `json:"version"`
	TrainedAt time.Time `json:"trainedAt"`

	Foods   []Food `json:"foods"`
	UserIDs []int  `json:"userIds"`

	Encoder  encoderParams `json:"encoder"`
	Features [][]float64   `json:"features"`

	RatingMatrix [][]float64 `json:"ratingMatrix"`
	ContentSim   [][]float64 `json:"contentSim"`
	UserSim      [][]float64 `json:"userSim"`
}

// Save serializa el modelo publicado. ErrUntrained si no hay modelo.
func (e *Engine) Save() ([]byte, error) {
	m, err := e.current()
	if err != nil {
		return nil, err
	}
	s := snapshot{
		Version:      snapshotVersion,
		TrainedAt:    m.trainedAt,
		Foods:        m.foods,
		UserIDs:      m.userIDs,
		Encoder:      m.params,
		Features:     m.features,
		RatingMatrix: m.ratingMat,
		ContentSim:   m.contentSim,
		UserSim:      m.userSim,
	}
	return json.Marshal(s)
}

// SaveFile escribe el snapshot a disco: archivo temporal + rename, así un
// proceso que muere a mitad de escritura no deja un snapshot corrupto.
func (e *Engine) SaveFile(path string) error {
	data, err := e.Save()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load deserializa un snapshot y lo publica. liveFoodIDs (opcional) es el
// catálogo vivo: si el conjunto de ids del snapshot no coincide se rechaza
// con ErrSnapshotMismatch antes de publicar nada — operar con columnas
// desalineadas es una clase de bug que acá se corta de raíz.
func (e *Engine) Load(data []byte, liveFoodIDs []int) error {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshotMismatch, err)
	}
	if s.Version != snapshotVersion {
		return fmt.Errorf("%w: version %d, se esperaba %d", ErrSnapshotMismatch, s.Version, snapshotVersion)
	}
	if err := s.validateDims(); err != nil {
		return err
	}
	if liveFoodIDs != nil {
		if err := s.validateCatalog(liveFoodIDs); err != nil {
			return err
		}
	}

	m := &model{
		foods:      s.Foods,
		userIDs:    s.UserIDs,
		params:     s.Encoder,
		features:   s.Features,
		ratingMat:  s.RatingMatrix,
		contentSim: s.ContentSim,
		userSim:    s.UserSim,
		trainedAt:  s.TrainedAt,
	}
	m.foodIdx = make(map[int]int, len(m.foods))
	for i, f := range m.foods {
		m.foodIdx[f.FoodID] = i
	}
	m.userIdx = make(map[int]int, len(m.userIDs))
	for i, id := range m.userIDs {
		m.userIdx[id] = i
	}

	e.model.Store(m)
	return nil
}

// LoadFile lee y publica un snapshot desde disco.
func (e *Engine) LoadFile(path string, liveFoodIDs []int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return e.Load(data, liveFoodIDs)
}

// validateDims verifica la coherencia interna: cada matriz con las
// dimensiones que dictan los órdenes de ids y el vocabulario del encoder.
func (s *snapshot) validateDims() error {
	nf, nu := len(s.Foods), len(s.UserIDs)
	if nf == 0 || nu == 0 {
		return fmt.Errorf("%w: snapshot sin comidas o sin usuarios", ErrSnapshotMismatch)
	}
	if len(s.Encoder.IDF) != len(s.Encoder.Terms) {
		return fmt.Errorf("%w: vocabulario TF-IDF inconsistente", ErrSnapshotMismatch)
	}
	if len(s.Encoder.NumMeans) != 3 || len(s.Encoder.NumStds) != 3 {
		return fmt.Errorf("%w: parámetros del escalador inconsistentes", ErrSnapshotMismatch)
	}

	dim := s.Encoder.featureDim()
	if err := checkMatrix("features", s.Features, nf, dim); err != nil {
		return err
	}
	if err := checkMatrix("ratingMatrix", s.RatingMatrix, nu, nf); err != nil {
		return err
	}
	if err := checkMatrix("contentSim", s.ContentSim, nf, nf); err != nil {
		return err
	}
	return checkMatrix("userSim", s.UserSim, nu, nu)
}

func checkMatrix(name string, m [][]float64, rows, cols int) error {
	if len(m) != rows {
		return fmt.Errorf("%w: %s tiene %d filas, se esperaban %d", ErrSnapshotMismatch, name, len(m), rows)
	}
	for _, r := range m {
		if len(r) != cols {
			return fmt.Errorf("%w: %s tiene fila de ancho %d, se esperaba %d", ErrSnapshotMismatch, name, len(r), cols)
		}
	}
	return nil
}

// validateCatalog compara el conjunto de ids del snapshot contra el
// catálogo vivo.
func (s *snapshot) validateCatalog(liveFoodIDs []int) error {
	if len(liveFoodIDs) != len(s.Foods) {
		return fmt.Errorf("%w: snapshot con %d comidas, catálogo vivo con %d",
			ErrSnapshotMismatch, len(s.Foods), len(liveFoodIDs))
	}
	inSnap := make(map[int]bool, len(s.Foods))
	for _, f := range s.Foods {
		inSnap[f.FoodID] = true
	}
	for _, id := range liveFoodIDs {
		if !inSnap[id] {
			return fmt.Errorf("%w: la comida %d del catálogo vivo no está en el snapshot",
				ErrSnapshotMismatch, id)
		}
	}
	return nil
}
