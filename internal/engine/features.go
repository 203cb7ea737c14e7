package engine

import (
	"math"
	"sort"
	"strings"
)

// encoderParams son los parámetros "fiteados" del encoder: vocabularios de
// categoría/cocina, vocabulario TF-IDF con su IDF, y media/desviación de las
// columnas numéricas. Se capturan en el entrenamiento y viajan en el
// snapshot, porque la alineación de columnas depende de ellos.
type encoderParams struct {
	Categories []string  `json:"categories"`
	Cuisines   []string  `json:"cuisines"`
	Terms      []string  `json:"terms"`
	IDF        []float64 `json:"idf"`

	// orden fijo: price, spiciness, prepMinutes
	NumMeans []float64 `json:"numMeans"`
	NumStds  []float64 `json:"numStds"`
}

// featureDim ancho total del vector por comida.
func (p encoderParams) featureDim() int {
	return len(p.Categories) + len(p.Cuisines) + len(p.Terms) + len(p.NumMeans) + 1
}

// tokenize baja a minúsculas y separa por espacios; un ingrediente tipo
// "spicy mayo" aporta dos tokens.
func tokenize(ingredients []string) []string {
	var toks []string
	for _, ing := range ingredients {
		toks = append(toks, strings.Fields(strings.ToLower(ing))...)
	}
	return toks
}

// fitEncoder captura vocabularios y escaladores sobre el catálogo completo.
// Para un mismo catálogo es determinístico: vocabularios ordenados asc.
func fitEncoder(foods []Food) encoderParams {
	p := encoderParams{
		NumMeans: make([]float64, 3),
		NumStds:  make([]float64, 3),
	}
	if len(foods) == 0 {
		return p
	}

	catSet := map[string]bool{}
	cuiSet := map[string]bool{}
	df := map[string]int{} // en cuántas comidas aparece cada token

	for _, f := range foods {
		catSet[f.Category] = true
		cuiSet[f.Cuisine] = true

		seen := map[string]bool{}
		for _, t := range tokenize(f.Ingredients) {
			if !seen[t] {
				seen[t] = true
				df[t]++
			}
		}
	}

	p.Categories = sortedKeys(catSet)
	p.Cuisines = sortedKeys(cuiSet)

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	p.Terms = terms

	n := float64(len(foods))
	p.IDF = make([]float64, len(terms))
	for i, t := range terms {
		p.IDF[i] = math.Log(n / float64(df[t]))
	}

	// media y desviación estándar por columna numérica (z-score)
	nums := numericColumns(foods)
	for c := 0; c < 3; c++ {
		var sum float64
		for _, v := range nums[c] {
			sum += v
		}
		mean := sum / n

		var varSum float64
		for _, v := range nums[c] {
			d := v - mean
			varSum += d * d
		}
		p.NumMeans[c] = mean
		p.NumStds[c] = math.Sqrt(varSum / n)
	}

	return p
}

// encode produce una fila por comida, todas del mismo ancho y alineadas al
// mismo orden de columnas: one-hots de categoría, one-hots de cocina,
// columnas TF-IDF, numéricas escaladas y el flag vegetariano al final.
func (p encoderParams) encode(foods []Food) [][]float64 {
	rows := make([][]float64, len(foods))

	termIdx := make(map[string]int, len(p.Terms))
	for i, t := range p.Terms {
		termIdx[t] = i
	}

	catOff := 0
	cuiOff := len(p.Categories)
	termOff := cuiOff + len(p.Cuisines)
	numOff := termOff + len(p.Terms)
	vegOff := numOff + len(p.NumMeans)

	for i, f := range foods {
		row := make([]float64, p.featureDim())

		for j, c := range p.Categories {
			if f.Category == c {
				row[catOff+j] = 1
			}
		}
		for j, c := range p.Cuisines {
			if f.Cuisine == c {
				row[cuiOff+j] = 1
			}
		}

		// TF crudo por token del ítem, pesado por el IDF del catálogo
		for _, t := range tokenize(f.Ingredients) {
			if j, ok := termIdx[t]; ok {
				row[termOff+j] += p.IDF[j]
			}
		}

		raw := [3]float64{f.Price, float64(f.Spiciness), float64(f.PrepMinutes)}
		for c := 0; c < 3; c++ {
			if p.NumStds[c] > 0 {
				row[numOff+c] = (raw[c] - p.NumMeans[c]) / p.NumStds[c]
			}
			// columna constante en el catálogo: queda en 0
		}

		if f.Vegetarian {
			row[vegOff] = 1
		}

		rows[i] = row
	}

	return rows
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// numericColumns extrae las tres columnas numéricas en orden fijo.
func numericColumns(foods []Food) [3][]float64 {
	var cols [3][]float64
	for c := range cols {
		cols[c] = make([]float64, len(foods))
	}
	for i, f := range foods {
		cols[0][i] = f.Price
		cols[1][i] = float64(f.Spiciness)
		cols[2][i] = float64(f.PrepMinutes)
	}
	return cols
}
