package engine

import "sort"

// predictRatings predice, para cada comida que el usuario no calificó, el
// promedio ponderado por similitud de los ratings de otros usuarios:
//
//	pred = Σ(sim(u,v) · rating(v, comida)) / Σ sim(u,v)
//
// restringido a usuarios v con sim > 0 que sí calificaron la comida. Una
// comida sin raters calificados se omite por completo: el 0 está reservado
// para "sin opinión", no para "pésima".
func (m *model) predictRatings(userID int) ([]Prediction, error) {
	u, ok := m.userIdx[userID]
	if !ok {
		return nil, ErrNotFound
	}

	out := []Prediction{}
	for f, foodCol := range m.foods {
		if m.ratingMat[u][f] != 0 {
			continue // ya la calificó
		}

		var num, den float64
		for v := range m.userIDs {
			if v == u {
				continue
			}
			sim := m.userSim[u][v]
			if sim <= 0 {
				continue
			}
			r := m.ratingMat[v][f]
			if r == 0 {
				continue
			}
			num += sim * r
			den += sim
		}
		if den == 0 {
			continue
		}
		out = append(out, Prediction{FoodID: foodCol.FoodID, Rating: num / den})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].FoodID < out[j].FoodID
	})

	return out, nil
}
