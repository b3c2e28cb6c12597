package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"nutriflow/internal/domain"
	"nutriflow/internal/mealplan"
)

const msgPlanError = "Error generating meal plan"

type generateRequest struct {
	UserID            int64    `json:"userId"`
	StartDate         string   `json:"startDate"`
	NumberOfDays      int      `json:"numberOfDays"`
	MealsPerDay       int      `json:"mealsPerDay"`
	TargetCalories    *float64 `json:"targetCalories"`
	TargetProtein     *float64 `json:"targetProtein"`
	TargetCarbs       *float64 `json:"targetCarbs"`
	TargetFat         *float64 `json:"targetFat"`
	MaxPrepTime       *int     `json:"maxPrepTime"`
	Tags              []string `json:"tags"`
	PreferredCuisines []string `json:"preferredCuisines"`

	// Sent by existing clients; the engine does not use them.
	AvailableIngredients []string `json:"availableIngredients"`
	UseAIGeneration      bool     `json:"useAiGeneration"`
	ClientID             string   `json:"clientId"`
}

type alternativeRequest struct {
	PlanID               int64    `json:"planId"`
	MealIDToReplace      int64    `json:"mealIdToReplace"`
	DislikedRecipeID     int64    `json:"dislikedRecipeId"`
	ExcludeRecipeIDs     []int64  `json:"excludeRecipeIds"`
	MaintainMealType     bool     `json:"maintainMealType"`
	MaxCalorieDifference *float64 `json:"maxCalorieDifference"`

	// The plan already identifies the user; both are accepted and ignored.
	UserID        int64  `json:"userId"`
	DislikeReason string `json:"dislikeReason"`
}

// planFailure writes the engine's {success,message} shape.
func (a *App) planFailure(w http.ResponseWriter, status int, msg string) {
	a.json(w, status, map[string]any{"success": false, "message": msg})
}

// decodePlan is decode for the engine endpoints, whose clients expect the
// {success,message} shape on every failure.
func (a *App) decodePlan(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := readJSON(w, r, dst); err != nil {
		a.planFailure(w, http.StatusBadRequest, "invalid payload")
		return false
	}
	return true
}

// planResponse writes an engine result: 200 on success, 400 on an expected
// failure and a generic 500 otherwise.
func (a *App) planResponse(w http.ResponseWriter, r *http.Request, res *mealplan.PlanResult, err error) {
	if err != nil {
		a.log(r).Error().Err(err).Msg("meal plan request failed")
		a.planFailure(w, http.StatusInternalServerError, msgPlanError)
		return
	}
	if !res.Success {
		a.json(w, http.StatusBadRequest, res)
		return
	}
	a.json(w, http.StatusOK, res)
}

func (a *App) GenerateMealPlan(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !a.decodePlan(w, r, &req) {
		return
	}
	var start time.Time
	if s := strings.TrimSpace(req.StartDate); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			a.planFailure(w, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
			return
		}
		start = t
	}

	res, err := a.Planner.Generate(r.Context(), mealplan.GenerateRequest{
		UserID:       req.UserID,
		StartDate:    start,
		NumberOfDays: req.NumberOfDays,
		MealsPerDay:  req.MealsPerDay,
		Targets: mealplan.TargetOverrides{
			Calories: req.TargetCalories,
			Protein:  req.TargetProtein,
			Carbs:    req.TargetCarbs,
			Fat:      req.TargetFat,
		},
		MaxPrepTime: req.MaxPrepTime,
		Tags:        req.Tags,
		Cuisines:    req.PreferredCuisines,
	})
	a.planResponse(w, r, res, err)
}

func (a *App) RequestAlternative(w http.ResponseWriter, r *http.Request) {
	var req alternativeRequest
	if !a.decodePlan(w, r, &req) {
		return
	}
	if req.PlanID <= 0 || req.MealIDToReplace <= 0 {
		a.planFailure(w, http.StatusBadRequest, "planId and mealIdToReplace are required")
		return
	}
	res, err := a.Planner.RequestAlternative(r.Context(), mealplan.AlternativeRequest{
		PlanID:               req.PlanID,
		MealID:               req.MealIDToReplace,
		DislikedRecipeID:     req.DislikedRecipeID,
		ExcludeRecipeIDs:     req.ExcludeRecipeIDs,
		MaintainMealType:     req.MaintainMealType,
		MaxCalorieDifference: req.MaxCalorieDifference,
	})
	a.planResponse(w, r, res, err)
}

// ListMealPlans returns the user's daily and weekly plans, optionally bounded
// by startDate/endDate (inclusive) and status.
func (a *App) ListMealPlans(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.pathID(w, r, "userId")
	if !ok {
		return
	}
	filter := domain.PlanFilter{UserID: userID}
	q := r.URL.Query()
	bounds := []struct {
		key string
		dst **time.Time
	}{{"startDate", &filter.From}, {"endDate", &filter.To}}
	for _, b := range bounds {
		key, dst := b.key, b.dst
		raw := strings.TrimSpace(q.Get(key))
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", key+" must be YYYY-MM-DD")
			return
		}
		*dst = &t
	}
	if raw := strings.TrimSpace(q.Get("status")); raw != "" {
		filter.Status = domain.PlanStatus(strings.ToLower(raw))
		if !filter.Status.Valid() {
			a.error(w, http.StatusBadRequest, "bad_request", "status must be active, completed or archived")
			return
		}
	}

	daily, err := a.Plans.ListDaily(r.Context(), filter)
	if err != nil {
		a.fail(w, r, err, "meal plan")
		return
	}
	weekly, err := a.Plans.ListWeekly(r.Context(), filter)
	if err != nil {
		a.fail(w, r, err, "meal plan")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"success":     true,
		"count":       len(daily),
		"mealPlans":   daily,
		"weeklyPlans": weekly,
	})
}

// GetMealPlan looks the id up as a daily plan first, then as a weekly plan.
func (a *App) GetMealPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "planId")
	if !ok {
		return
	}
	daily, err := a.Plans.GetDailyByID(r.Context(), id)
	if err == nil {
		a.json(w, http.StatusOK, map[string]any{"success": true, "type": "daily", "mealPlan": daily})
		return
	}
	if !errors.Is(err, domain.ErrNotFound) {
		a.fail(w, r, err, "meal plan")
		return
	}
	weekly, err := a.Plans.GetWeeklyByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "meal plan")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "type": "weekly", "mealPlan": weekly})
}

func (a *App) UpdateMealPlanStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "planId")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if !a.decode(w, r, &req) {
		return
	}
	status := domain.PlanStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if !status.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "status must be active, completed or archived")
		return
	}

	err := a.Plans.UpdateDailyStatus(r.Context(), id, status)
	if errors.Is(err, domain.ErrNotFound) {
		err = a.Plans.UpdateWeeklyStatus(r.Context(), id, status)
	}
	if err != nil {
		a.fail(w, r, err, "meal plan")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "message": "Meal plan status updated successfully"})
}

func (a *App) DeleteMealPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "planId")
	if !ok {
		return
	}
	err := a.Plans.DeleteDaily(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		err = a.Plans.DeleteWeekly(r.Context(), id)
	}
	if err != nil {
		a.fail(w, r, err, "meal plan")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "message": "Meal plan deleted successfully"})
}
