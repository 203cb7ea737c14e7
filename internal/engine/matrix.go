package engine

// buildInteractionMatrix arma la matriz densa usuarios×comidas a partir del
// log de ratings. Celda = rating, 0 = sin señal. Usuarios o comidas sin
// actividad igual reciben su fila/columna de ceros: las dimensiones son
// siempre el universo completo conocido.
//
// Política de duplicados (last-write-wins): para un mismo (usuario, comida)
// gana el evento con timestamp más alto; a igual timestamp gana el que
// aparece más tarde en el log.
func buildInteractionMatrix(userIdx, foodIdx map[int]int, ratings []Rating) [][]float64 {
	mat := make([][]float64, len(userIdx))
	ts := make([][]int64, len(userIdx))
	for i := range mat {
		mat[i] = make([]float64, len(foodIdx))
		ts[i] = make([]int64, len(foodIdx))
	}

	for _, r := range ratings {
		u, okU := userIdx[r.UserID]
		f, okF := foodIdx[r.FoodID]
		if !okU || !okF {
			// rating contra algo fuera del universo conocido: se descarta
			continue
		}
		if mat[u][f] != 0 && r.Timestamp < ts[u][f] {
			continue
		}
		mat[u][f] = r.Rating
		ts[u][f] = r.Timestamp
	}

	return mat
}
