package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"nutriflow/internal/domain"
)

func (a *App) ListIngredients(w http.ResponseWriter, r *http.Request) {
	items, err := a.Ingredients.List(r.Context())
	if err != nil {
		a.fail(w, r, err, "ingredient")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (a *App) GetIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "ingredientId")
	if !ok {
		return
	}
	item, err := a.Ingredients.GetByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "ingredient")
		return
	}
	a.json(w, http.StatusOK, item)
}

func (a *App) SearchIngredients(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "q is required")
		return
	}
	items, err := a.Ingredients.SearchByName(r.Context(), q)
	if err != nil {
		a.fail(w, r, err, "ingredient")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (a *App) IngredientsByCategory(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(chi.URLParam(r, "category"))
	items, err := a.Ingredients.ListByCategory(r.Context(), category)
	if err != nil {
		a.fail(w, r, err, "ingredient")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

// IngredientByName matches the whole name case-insensitively.
func (a *App) IngredientByName(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if name == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name is required")
		return
	}
	item, err := a.Ingredients.GetByName(r.Context(), name)
	if err != nil {
		a.fail(w, r, err, "ingredient")
		return
	}
	a.json(w, http.StatusOK, item)
}

// CalculateNutrition scales an ingredient to ?amount= grams.
func (a *App) CalculateNutrition(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := strings.TrimSpace(q.Get("name"))
	if name == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name is required")
		return
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(q.Get("amount")), 64)
	if err != nil || amount <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "amount must be a positive number of grams")
		return
	}
	item, err := a.Ingredients.GetByName(r.Context(), name)
	if err != nil {
		a.fail(w, r, err, "ingredient")
		return
	}
	a.json(w, http.StatusOK, domain.ScaleNutrition(*item, amount))
}

type ingredientRequest struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	CaloriesPer100g *float64 `json:"caloriesPer100g"`
	ProteinPer100g  *float64 `json:"proteinPer100g"`
	CarbsPer100g    *float64 `json:"carbsPer100g"`
	FatPer100g      *float64 `json:"fatPer100g"`
	FiberPer100g    *float64 `json:"fiberPer100g"`
	IsVerified      bool     `json:"isVerified"`
}

func (a *App) CreateIngredient(w http.ResponseWriter, r *http.Request) {
	var req ingredientRequest
	if !a.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name is required")
		return
	}
	item := domain.Ingredient{
		Name:            strings.TrimSpace(req.Name),
		Category:        req.Category,
		CaloriesPer100g: req.CaloriesPer100g,
		ProteinPer100g:  req.ProteinPer100g,
		CarbsPer100g:    req.CarbsPer100g,
		FatPer100g:      req.FatPer100g,
		FiberPer100g:    req.FiberPer100g,
		Verified:        req.IsVerified,
	}
	if err := a.Ingredients.Create(r.Context(), &item); err != nil {
		a.fail(w, r, err, "ingredient")
		return
	}
	a.json(w, http.StatusCreated, item)
}

func (a *App) DeleteIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "ingredientId")
	if !ok {
		return
	}
	if err := a.Ingredients.Delete(r.Context(), id); err != nil {
		a.fail(w, r, err, "ingredient")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type ingredientUpdateRequest struct {
	Name            *string  `json:"name"`
	Category        *string  `json:"category"`
	CaloriesPer100g *float64 `json:"caloriesPer100g"`
	ProteinPer100g  *float64 `json:"proteinPer100g"`
	CarbsPer100g    *float64 `json:"carbsPer100g"`
	FatPer100g      *float64 `json:"fatPer100g"`
	FiberPer100g    *float64 `json:"fiberPer100g"`
	IsVerified      *bool    `json:"isVerified"`
}

// UpdateIngredient applies the fields present in the body.
func (a *App) UpdateIngredient(w http.ResponseWriter, r *http.Request) {
	var req ingredientUpdateRequest
	a.updateIngredient(w, r, &req, func(ing *domain.Ingredient) {
		if req.Name != nil {
			ing.Name = strings.TrimSpace(*req.Name)
		}
		if req.Category != nil {
			ing.Category = *req.Category
		}
		setIfPresent(&ing.CaloriesPer100g, req.CaloriesPer100g)
		setIfPresent(&ing.ProteinPer100g, req.ProteinPer100g)
		setIfPresent(&ing.CarbsPer100g, req.CarbsPer100g)
		setIfPresent(&ing.FatPer100g, req.FatPer100g)
		setIfPresent(&ing.FiberPer100g, req.FiberPer100g)
		if req.IsVerified != nil {
			ing.Verified = *req.IsVerified
		}
	})
}

type nutritionUpdateRequest struct {
	Calories      *float64 `json:"calories"`
	Protein       *float64 `json:"protein"`
	Carbohydrates *float64 `json:"carbohydrates"`
	Fat           *float64 `json:"fat"`
	Fiber         *float64 `json:"fiber"`
}

// UpdateIngredientNutrition replaces the per-100 g values present in the body.
func (a *App) UpdateIngredientNutrition(w http.ResponseWriter, r *http.Request) {
	var req nutritionUpdateRequest
	a.updateIngredient(w, r, &req, func(ing *domain.Ingredient) {
		setIfPresent(&ing.CaloriesPer100g, req.Calories)
		setIfPresent(&ing.ProteinPer100g, req.Protein)
		setIfPresent(&ing.CarbsPer100g, req.Carbohydrates)
		setIfPresent(&ing.FatPer100g, req.Fat)
		setIfPresent(&ing.FiberPer100g, req.Fiber)
	})
}

// updateIngredient decodes req, loads the ingredient, applies req and stores
// the result.
func (a *App) updateIngredient(w http.ResponseWriter, r *http.Request, req any, apply func(*domain.Ingredient)) {
	id, ok := a.pathID(w, r, "ingredientId")
	if !ok {
		return
	}
	if !a.decode(w, r, req) {
		return
	}
	item, err := a.Ingredients.GetByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "ingredient")
		return
	}
	apply(item)
	if msg := validateIngredient(item); msg != "" {
		a.error(w, http.StatusBadRequest, "bad_request", msg)
		return
	}
	if err := a.Ingredients.Update(r.Context(), item); err != nil {
		a.fail(w, r, err, "ingredient")
		return
	}
	a.json(w, http.StatusOK, item)
}

func validateIngredient(ing *domain.Ingredient) string {
	if ing.Name == "" {
		return "name is required"
	}
	for _, v := range []*float64{ing.CaloriesPer100g, ing.ProteinPer100g, ing.CarbsPer100g, ing.FatPer100g, ing.FiberPer100g} {
		if v != nil && *v < 0 {
			return "nutrition values must not be negative"
		}
	}
	return ""
}

func setIfPresent(dst **float64, v *float64) {
	if v != nil {
		*dst = v
	}
}
