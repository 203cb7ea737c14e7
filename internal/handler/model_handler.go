package handler

import (
	"encoding/json"
	"net/http"

	"github.com/venudinesh/food-sub000/internal/service"

	"github.com/go-chi/chi/v5"
)

// ModelHandler expone el ciclo de vida del modelo para admins.
type ModelHandler struct {
	svc *service.ModelService
}

func NewModelHandler(svc *service.ModelService) *ModelHandler {
	return &ModelHandler{svc: svc}
}

// @Summary Reentrenar el modelo desde Mongo
// @Description Entrena con el estado actual de foods/users/ratings y publica el modelo nuevo. Si falla, el modelo previo sigue sirviendo.
// @Tags admin-model
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.TrainResult
// @Failure 400 {string} string "datos de entrenamiento vacíos"
// @Router /admin/model/train [post]
func (h *ModelHandler) PostTrain(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.TrainAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// @Summary Guardar snapshot del modelo publicado
// @Tags admin-model
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {string} string "modelo sin entrenar"
// @Router /admin/model/snapshot/save [post]
func (h *ModelHandler) PostSnapshotSave(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SaveSnapshot(); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"saved": true})
}

// @Summary Cargar snapshot desde disco
// @Description Valida el snapshot contra el catálogo vivo antes de publicarlo. Un snapshot de otro catálogo se rechaza con 409.
// @Tags admin-model
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 409 {string} string "snapshot incompatible con el catálogo"
// @Router /admin/model/snapshot/load [post]
func (h *ModelHandler) PostSnapshotLoad(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.LoadSnapshot(r.Context()); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"loaded": true})
}

// @Summary Estado del modelo publicado
// @Tags admin-model
// @Security BearerAuth
// @Produce json
// @Success 200 {object} engine.Stats
// @Router /admin/model/stats [get]
func (h *ModelHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Stats())
}

// Utilidad pequeña para respuestas JSON.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Helper para montar rutas en main.go
func MountModelRoutes(r chi.Router, h *ModelHandler) {
	r.Route("/admin/model", func(r chi.Router) {
		r.Post("/train", h.PostTrain)
		r.Post("/snapshot/save", h.PostSnapshotSave)
		r.Post("/snapshot/load", h.PostSnapshotLoad)
		r.Get("/stats", h.GetStats)
	})
}
