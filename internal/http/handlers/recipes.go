package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"nutriflow/internal/domain"
)

const defaultPopularLimit = 5

func (a *App) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := a.Recipes.List(r.Context())
	if err != nil {
		a.fail(w, r, err, "recipe")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": recipes, "count": len(recipes)})
}

func (a *App) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "recipeId")
	if !ok {
		return
	}
	recipe, err := a.Recipes.GetByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "recipe")
		return
	}
	a.json(w, http.StatusOK, recipe)
}

func (a *App) PopularRecipes(w http.ResponseWriter, r *http.Request) {
	limit := defaultPopularLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			a.error(w, http.StatusBadRequest, "bad_request", "limit must be between 1 and 100")
			return
		}
		limit = n
	}
	recipes, err := a.Recipes.ListPopular(r.Context(), limit)
	if err != nil {
		a.fail(w, r, err, "recipe")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": recipes, "count": len(recipes)})
}

func (a *App) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "q is required")
		return
	}
	recipes, err := a.Recipes.SearchByTitle(r.Context(), q)
	if err != nil {
		a.fail(w, r, err, "recipe")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": recipes, "count": len(recipes)})
}

type recipeRequest struct {
	Title           string          `json:"title"`
	CookTime        *int            `json:"cookTime"`
	Cuisines        []string        `json:"cuisines"`
	Tags            []string        `json:"tags"`
	Ingredients     json.RawMessage `json:"ingredients"`
	Calories        *float64        `json:"calories"`
	Protein         *float64        `json:"protein"`
	Carbohydrates   *float64        `json:"carbohydrates"`
	Fat             *float64        `json:"fat"`
	Fiber           *float64        `json:"fiber"`
	PopularityScore int             `json:"popularityScore"`
}

func (a *App) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req recipeRequest
	if !a.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "title is required")
		return
	}
	if req.CookTime != nil && *req.CookTime < 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "cookTime must not be negative")
		return
	}
	for _, v := range []*float64{req.Calories, req.Protein, req.Carbohydrates, req.Fat, req.Fiber} {
		if v != nil && *v < 0 {
			a.error(w, http.StatusBadRequest, "bad_request", "nutrients must not be negative")
			return
		}
	}
	recipe := domain.Recipe{
		Title:           strings.TrimSpace(req.Title),
		PrepTime:        req.CookTime,
		Cuisines:        req.Cuisines,
		Tags:            req.Tags,
		Ingredients:     req.Ingredients,
		Calories:        req.Calories,
		Protein:         req.Protein,
		Carbs:           req.Carbohydrates,
		Fat:             req.Fat,
		Fiber:           req.Fiber,
		PopularityScore: req.PopularityScore,
	}
	if err := a.Recipes.Create(r.Context(), &recipe); err != nil {
		a.fail(w, r, err, "recipe")
		return
	}
	a.json(w, http.StatusCreated, recipe)
}
