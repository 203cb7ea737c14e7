package engine

import "testing"

func TestBuildInteractionMatrix(t *testing.T) {
	userIdx := map[int]int{10: 0, 20: 1, 30: 2}
	foodIdx := map[int]int{1: 0, 2: 1}

	tests := []struct {
		name    string
		ratings []Rating
		verify  func(t *testing.T, mat [][]float64)
	}{
		{
			name: "celdas sin rating quedan en 0",
			ratings: []Rating{
				{UserID: 10, FoodID: 1, Rating: 5, Timestamp: 100},
			},
			verify: func(t *testing.T, mat [][]float64) {
				if mat[0][0] != 5 {
					t.Errorf("mat[10][1] = %f, want 5", mat[0][0])
				}
				if mat[0][1] != 0 || mat[1][0] != 0 || mat[2][1] != 0 {
					t.Error("celdas sin señal deberían ser 0")
				}
			},
		},
		{
			name: "last-write-wins por timestamp",
			ratings: []Rating{
				{UserID: 10, FoodID: 1, Rating: 2, Timestamp: 200},
				{UserID: 10, FoodID: 1, Rating: 5, Timestamp: 100}, // más viejo, pierde
			},
			verify: func(t *testing.T, mat [][]float64) {
				if mat[0][0] != 2 {
					t.Errorf("mat[10][1] = %f, want 2 (timestamp más reciente)", mat[0][0])
				}
			},
		},
		{
			name: "a igual timestamp gana el último del log",
			ratings: []Rating{
				{UserID: 10, FoodID: 1, Rating: 3, Timestamp: 100},
				{UserID: 10, FoodID: 1, Rating: 4, Timestamp: 100},
			},
			verify: func(t *testing.T, mat [][]float64) {
				if mat[0][0] != 4 {
					t.Errorf("mat[10][1] = %f, want 4", mat[0][0])
				}
			},
		},
		{
			name: "ratings fuera del universo se descartan",
			ratings: []Rating{
				{UserID: 99, FoodID: 1, Rating: 5, Timestamp: 100},
				{UserID: 10, FoodID: 99, Rating: 5, Timestamp: 100},
			},
			verify: func(t *testing.T, mat [][]float64) {
				for u := range mat {
					for f := range mat[u] {
						if mat[u][f] != 0 {
							t.Errorf("mat[%d][%d] = %f, want 0", u, f, mat[u][f])
						}
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mat := buildInteractionMatrix(userIdx, foodIdx, tt.ratings)
			if len(mat) != 3 || len(mat[0]) != 2 {
				t.Fatalf("dimensiones %dx%d, want 3x2", len(mat), len(mat[0]))
			}
			tt.verify(t, mat)
		})
	}
}
