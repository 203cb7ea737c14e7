package engine

import (
	"sort"
	"time"
)

// model es un modelo entrenado completo e inmutable. Reentrenar construye
// uno nuevo desde cero; nada de esto se muta después de trainModel.
type model struct {
	foods   []Food // orden de columnas: FoodID asc
	foodIdx map[int]int

	userIDs []int // orden de filas: UserID asc
	userIdx map[int]int

	params   encoderParams
	features [][]float64

	ratingMat  [][]float64 // usuarios × comidas
	contentSim [][]float64 // comidas × comidas
	userSim    [][]float64 // usuarios × usuarios

	trainedAt time.Time
}

// trainModel corre el pipeline completo: encoder → matriz de interacción →
// similitud de contenido y colaborativa. Falla rápido con ErrEmptyInput si
// no hay catálogo o no hay ratings, antes de construir nada.
func trainModel(userIDs []int, foods []Food, ratings []Rating) (*model, error) {
	if len(foods) == 0 || len(ratings) == 0 {
		return nil, ErrEmptyInput
	}

	m := &model{trainedAt: time.Now().UTC()}

	m.foods = make([]Food, len(foods))
	copy(m.foods, foods)
	sort.Slice(m.foods, func(i, j int) bool { return m.foods[i].FoodID < m.foods[j].FoodID })

	m.foodIdx = make(map[int]int, len(m.foods))
	for i, f := range m.foods {
		m.foodIdx[f.FoodID] = i
	}

	// universo de usuarios = ids conocidos ∪ ids que aparecen en el log
	userSet := make(map[int]bool, len(userIDs))
	for _, id := range userIDs {
		userSet[id] = true
	}
	for _, r := range ratings {
		userSet[r.UserID] = true
	}
	m.userIDs = make([]int, 0, len(userSet))
	for id := range userSet {
		m.userIDs = append(m.userIDs, id)
	}
	sort.Ints(m.userIDs)

	m.userIdx = make(map[int]int, len(m.userIDs))
	for i, id := range m.userIDs {
		m.userIdx[id] = i
	}

	m.params = fitEncoder(m.foods)
	m.features = m.params.encode(m.foods)

	m.ratingMat = buildInteractionMatrix(m.userIdx, m.foodIdx, ratings)

	m.contentSim = similarityMatrix(m.features)
	m.userSim = similarityMatrix(m.ratingMat)

	return m, nil
}

// similarItems topN vecinas por contenido, excluyendo la comida misma.
// Orden estricto: score desc, empates por FoodID asc.
func (m *model) similarItems(foodID, topN int) ([]ScoredItem, error) {
	idx, ok := m.foodIdx[foodID]
	if !ok {
		return nil, ErrNotFound
	}
	if topN <= 0 {
		return []ScoredItem{}, nil
	}

	out := make([]ScoredItem, 0, len(m.foods)-1)
	for j, f := range m.foods {
		if j == idx {
			continue
		}
		out = append(out, ScoredItem{FoodID: f.FoodID, Score: m.contentSim[idx][j]})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].FoodID < out[j].FoodID
	})

	if len(out) > topN {
		out = out[:topN]
	}
	return out, nil
}
