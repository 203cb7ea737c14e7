package engine

import (
	"math"
	"reflect"
	"testing"
)

// catálogo de prueba chico pero con todas las señales: categorías y
// cocinas repetidas, ingredientes compartidos, numéricos distintos.
func sampleFoods() []Food {
	return []Food{
		{FoodID: 1, Name: "Margherita Pizza", Category: "Pizza", Cuisine: "Italian", Price: 12.99, Spiciness: 1, PrepMinutes: 15, Vegetarian: true, Ingredients: []string{"cheese", "tomato", "basil"}},
		{FoodID: 2, Name: "Chicken Burger", Category: "Burger", Cuisine: "American", Price: 8.99, Spiciness: 2, PrepMinutes: 10, Vegetarian: false, Ingredients: []string{"chicken", "lettuce", "bun"}},
		{FoodID: 3, Name: "Pepperoni Pizza", Category: "Pizza", Cuisine: "Italian", Price: 14.99, Spiciness: 2, PrepMinutes: 15, Vegetarian: false, Ingredients: []string{"pepperoni", "cheese", "tomato"}},
		{FoodID: 4, Name: "Butter Chicken", Category: "Curry", Cuisine: "Indian", Price: 13.99, Spiciness: 3, PrepMinutes: 20, Vegetarian: false, Ingredients: []string{"chicken", "butter", "spices"}},
	}
}

func TestFitEncoderVocabularies(t *testing.T) {
	p := fitEncoder(sampleFoods())

	wantCats := []string{"Burger", "Curry", "Pizza"}
	if !reflect.DeepEqual(p.Categories, wantCats) {
		t.Errorf("Categories = %v, want %v", p.Categories, wantCats)
	}
	wantCuis := []string{"American", "Indian", "Italian"}
	if !reflect.DeepEqual(p.Cuisines, wantCuis) {
		t.Errorf("Cuisines = %v, want %v", p.Cuisines, wantCuis)
	}

	// vocabulario TF-IDF ordenado y con un IDF por término
	if len(p.Terms) == 0 || len(p.IDF) != len(p.Terms) {
		t.Fatalf("Terms/IDF inconsistentes: %d terms, %d idf", len(p.Terms), len(p.IDF))
	}
	for i := 1; i < len(p.Terms); i++ {
		if p.Terms[i-1] >= p.Terms[i] {
			t.Errorf("Terms no está ordenado: %q >= %q", p.Terms[i-1], p.Terms[i])
		}
	}

	// "cheese" aparece en 2 de 4 comidas -> idf = ln(4/2)
	idx := -1
	for i, term := range p.Terms {
		if term == "cheese" {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatal("falta el término cheese en el vocabulario")
	}
	want := math.Log(2)
	if math.Abs(p.IDF[idx]-want) > 1e-12 {
		t.Errorf("IDF(cheese) = %f, want %f", p.IDF[idx], want)
	}
}

func TestEncodeShapeAndFlags(t *testing.T) {
	foods := sampleFoods()
	p := fitEncoder(foods)
	rows := p.encode(foods)

	if len(rows) != len(foods) {
		t.Fatalf("filas = %d, want %d", len(rows), len(foods))
	}
	dim := p.featureDim()
	for i, row := range rows {
		if len(row) != dim {
			t.Errorf("fila %d con ancho %d, want %d", i, len(row), dim)
		}
	}

	// flag vegetariano en la última columna
	if got := rows[0][dim-1]; got != 1 {
		t.Errorf("veg(Margherita) = %f, want 1", got)
	}
	if got := rows[1][dim-1]; got != 0 {
		t.Errorf("veg(Chicken Burger) = %f, want 0", got)
	}

	// one-hot de categoría: exactamente un 1 por fila en ese bloque
	for i, row := range rows {
		ones := 0
		for _, v := range row[:len(p.Categories)] {
			if v == 1 {
				ones++
			}
		}
		if ones != 1 {
			t.Errorf("fila %d: %d unos en el bloque de categoría, want 1", i, ones)
		}
	}
}

func TestEncodeZScore(t *testing.T) {
	foods := sampleFoods()
	p := fitEncoder(foods)
	rows := p.encode(foods)

	// las columnas escaladas tienen media 0 en todo el catálogo
	numOff := len(p.Categories) + len(p.Cuisines) + len(p.Terms)
	for c := 0; c < 3; c++ {
		var sum float64
		for _, row := range rows {
			sum += row[numOff+c]
		}
		if math.Abs(sum) > 1e-9 {
			t.Errorf("columna numérica %d: suma %f, want ~0", c, sum)
		}
	}
}

func TestEncodeConstantNumericColumn(t *testing.T) {
	foods := []Food{
		{FoodID: 1, Category: "A", Cuisine: "X", Price: 10, Spiciness: 2, PrepMinutes: 5},
		{FoodID: 2, Category: "B", Cuisine: "Y", Price: 10, Spiciness: 3, PrepMinutes: 8},
	}
	p := fitEncoder(foods)
	rows := p.encode(foods)

	// precio constante: desviación 0, la columna queda en 0 en vez de NaN
	numOff := len(p.Categories) + len(p.Cuisines) + len(p.Terms)
	for i, row := range rows {
		if row[numOff] != 0 {
			t.Errorf("fila %d: columna de precio constante = %f, want 0", i, row[numOff])
		}
		if math.IsNaN(row[numOff]) {
			t.Errorf("fila %d: NaN en columna constante", i)
		}
	}
}

func TestEncoderIdempotent(t *testing.T) {
	foods := sampleFoods()

	p1 := fitEncoder(foods)
	p2 := fitEncoder(foods)
	if !reflect.DeepEqual(p1, p2) {
		t.Error("fitEncoder no es determinístico para el mismo catálogo")
	}

	r1 := p1.encode(foods)
	r2 := p2.encode(foods)
	if !reflect.DeepEqual(r1, r2) {
		t.Error("encode no es determinístico para el mismo catálogo")
	}
}

func TestEncoderEmptyCatalog(t *testing.T) {
	p := fitEncoder(nil)
	rows := p.encode(nil)
	if len(rows) != 0 {
		t.Errorf("encode(catálogo vacío) = %d filas, want 0", len(rows))
	}
	if sim := similarityMatrix(rows); len(sim) != 0 {
		t.Errorf("similarityMatrix vacía = %d filas, want 0", len(sim))
	}
}
