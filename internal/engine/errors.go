package engine

import "errors"

// Errores del motor. Todos son recuperables: el handler decide el status.
var (
	// ErrNotFound el usuario o la comida no existe en el modelo entrenado.
	ErrNotFound = errors.New("not found in trained model")

	// ErrUntrained se consultó el motor antes de entrenar o cargar un snapshot.
	ErrUntrained = errors.New("model not trained yet")

	// ErrEmptyInput se intentó entrenar sin catálogo o sin ratings.
	ErrEmptyInput = errors.New("empty catalog or rating log")

	// ErrSnapshotMismatch el snapshot no coincide en versión, dimensiones
	// o vocabulario con el catálogo vivo. Nunca se corrige en silencio.
	ErrSnapshotMismatch = errors.New("snapshot mismatch")
)
