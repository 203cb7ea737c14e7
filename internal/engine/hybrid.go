package engine

import (
	"fmt"
	"sort"
)

const (
	// maxRecentSeeds cuántos ítems recientes alimentan la señal de
	// contenido; los más viejos se descartan.
	maxRecentSeeds = 3

	// contentFanOut vecinos por contenido que aporta cada seed.
	contentFanOut = 5
)

// recReasons plantillas de explicación. La elección es determinística:
// se indexa por una función del score, nunca al azar.
var recReasons = [...]string{
	"Basado en tus preferencias de platos de %s",
	"Parecido a la cocina %s que te podría gustar",
	"Elección popular entre usuarios con gustos similares",
	"Recomendado según tu historial de ratings",
}

// hybridScores combina predicciones colaborativas y similitudes de
// contenido en un score acumulado por comida. Separado del ranking para
// poder verificar la aritmética de pesos de forma aislada.
func hybridScores(preds []Prediction, contentRecs []ScoredItem, collabW, contentW float64) map[int]float64 {
	scores := make(map[int]float64, len(preds)+len(contentRecs))
	for _, p := range preds {
		scores[p.FoodID] += p.Rating * collabW
	}
	for _, s := range contentRecs {
		scores[s.FoodID] += s.Score * contentW
	}
	return scores
}

// recommendForUser combina las dos señales en un solo ranking.
//
// Arranque en frío: un usuario conocido sin ratings y sin recientes recibe
// lista vacía (resultado definido, no error); el fallback por popularidad
// es responsabilidad del caller.
func (m *model) recommendForUser(userID int, recentFoodIDs []int, topN int, collabW, contentW float64) ([]Recommendation, error) {
	if _, ok := m.userIdx[userID]; !ok {
		return nil, ErrNotFound
	}
	if topN <= 0 {
		return []Recommendation{}, nil
	}

	preds, err := m.predictRatings(userID)
	if err != nil {
		return nil, err
	}

	if len(recentFoodIDs) > maxRecentSeeds {
		recentFoodIDs = recentFoodIDs[:maxRecentSeeds]
	}
	var contentRecs []ScoredItem
	for _, seed := range recentFoodIDs {
		neighbors, err := m.similarItems(seed, contentFanOut)
		if err != nil {
			// seed desconocido: se ignora, no tumba el request
			continue
		}
		contentRecs = append(contentRecs, neighbors...)
	}

	scores := hybridScores(preds, contentRecs, collabW, contentW)

	ranked := make([]ScoredItem, 0, len(scores))
	for id, s := range scores {
		ranked = append(ranked, ScoredItem{FoodID: id, Score: s})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].FoodID < ranked[j].FoodID
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	out := make([]Recommendation, 0, len(ranked))
	for _, r := range ranked {
		f := m.foods[m.foodIdx[r.FoodID]]
		out = append(out, Recommendation{
			FoodID:   f.FoodID,
			Name:     f.Name,
			Category: f.Category,
			Cuisine:  f.Cuisine,
			Price:    f.Price,
			Score:    r.Score,
			Reason:   reasonFor(f, r.Score),
		})
	}
	return out, nil
}

// reasonFor elige la plantilla con int(score*10) mod len, igual para el
// mismo score siempre.
func reasonFor(f Food, score float64) string {
	n := int(score*10) % len(recReasons)
	if n < 0 {
		n += len(recReasons)
	}
	switch n {
	case 0:
		return fmt.Sprintf(recReasons[0], f.Category)
	case 1:
		return fmt.Sprintf(recReasons[1], f.Cuisine)
	default:
		return recReasons[n]
	}
}
