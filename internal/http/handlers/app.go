package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"nutriflow/internal/domain"
	"nutriflow/internal/mealplan"
)

// Planner is the meal-plan engine as seen by the HTTP layer.
type Planner interface {
	Generate(ctx context.Context, req mealplan.GenerateRequest) (*mealplan.PlanResult, error)
	RequestAlternative(ctx context.Context, req mealplan.AlternativeRequest) (*mealplan.PlanResult, error)
}

type App struct {
	Logger      zerolog.Logger
	Users       domain.UserRepository
	Targets     domain.UserTargetRepository
	History     domain.HealthHistoryRepository
	Recipes     domain.RecipeRepository
	Favorites   domain.FavoriteRepository
	Ingredients domain.IngredientRepository
	Pantry      domain.PantryRepository
	Plans       domain.MealPlanRepository
	Planner     Planner
	// Ping reports database reachability for the health endpoint.
	Ping func(ctx context.Context) error
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, msg string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": msg},
	})
}

// readJSON decodes a body of at most 1 MiB into dst, rejecting unknown fields.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// decode reads a JSON body and answers 400 in the error envelope on failure.
func (a *App) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := readJSON(w, r, dst); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return false
	}
	return true
}

// pathID parses a positive integer URL parameter.
func (a *App) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid "+name)
		return 0, false
	}
	return id, true
}

// fail maps repository errors onto HTTP responses.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error, what string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", what+" not found")
	case errors.Is(err, domain.ErrInvalidInput):
		a.error(w, http.StatusBadRequest, "bad_request", strings.TrimSpace(err.Error()))
	case errors.Is(err, domain.ErrConflict):
		a.error(w, http.StatusConflict, "conflict", what+" already exists")
	default:
		a.log(r).Error().Err(err).Str("resource", what).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

// log prefers the request-scoped logger installed by the access log middleware.
func (a *App) log(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &a.Logger
}
