package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/venudinesh/food-sub000/internal/models"
	"github.com/venudinesh/food-sub000/internal/service"

	"github.com/go-chi/chi/v5"
)

type FoodHandler struct {
	svc *service.FoodService
}

func NewFoodHandler(s *service.FoodService) *FoodHandler { return &FoodHandler{svc: s} }

// @Summary Get food
// @Tags foods
// @Produce json
// @Param id path int true "foodId"
// @Success 200 {object} models.FoodDoc
// @Router /foods/{id} [get]
func (h *FoodHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	f, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if f == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(f)
}

// @Summary Buscar / listar comidas (paginado)
// @Tags foods
// @Produce json
// @Param q query string false "búsqueda por nombre"
// @Param category query string false "filtrar por categoría"
// @Param cuisine query string false "filtrar por cocina"
// @Param vegetarian query bool false "solo vegetarianas (true|false)"
// @Param limit query int false "límite"
// @Param offset query int false "offset"
// @Success 200 {array} models.FoodDoc
// @Router /foods/search [get]
func (h *FoodHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	cuisine := r.URL.Query().Get("cuisine")

	var vegetarian *bool
	if v := r.URL.Query().Get("vegetarian"); v != "" {
		b := v == "true"
		vegetarian = &b
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	foods, err := h.svc.Search(r.Context(), q, category, cuisine, vegetarian, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(foods)
}

// @Summary Top comidas (popularidad o rating)
// @Tags foods
// @Produce json
// @Param metric query string false "popular|rating (default: popular)"
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} models.FoodDoc
// @Router /foods/top [get]
func (h *FoodHandler) Top(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = "popular"
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 20
	}

	foods, err := h.svc.Top(r.Context(), metric, limit)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(foods)
}

// ====== ADMIN: crear / actualizar comidas ======

// @Summary Crear nueva comida
// @Tags foods
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.FoodCreateRequest true "Datos de la comida"
// @Success 201 {object} models.FoodDoc
// @Router /admin/foods [post]
func (h *FoodHandler) CreateFood(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.FoodCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "body inválido (name requerido)", http.StatusBadRequest)
		return
	}

	food, err := h.svc.Create(r.Context(), req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(food)
}

// @Summary Actualizar comida existente
// @Tags foods
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "foodId"
// @Param body body models.FoodUpdateRequest true "Campos a actualizar"
// @Success 200 {object} models.FoodDoc
// @Router /admin/foods/{id} [put]
func (h *FoodHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req models.FoodUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}

	food, err := h.svc.UpdateFood(r.Context(), id, req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(food)
}
