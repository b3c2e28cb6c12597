package handlers

import (
	"errors"
	"net/http"
	"strings"

	"nutriflow/internal/domain"
)

type userRequest struct {
	Name              *string   `json:"name"`
	Height            *float64  `json:"height"`
	Weight            *float64  `json:"weight"`
	Age               *int      `json:"age"`
	Sex               *string   `json:"sex"`
	Allergies         *[]string `json:"allergies"`
	Dislikes          *[]string `json:"dislikes"`
	CookingSkillLevel *string   `json:"cookingSkillLevel"`
	Equipments        *[]string `json:"equipments"`
}

// apply copies the set fields of req onto u and validates the result.
func (req userRequest) apply(u *domain.User) error {
	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Height != nil {
		u.Height = req.Height
	}
	if req.Weight != nil {
		u.Weight = req.Weight
	}
	if req.Age != nil {
		u.Age = req.Age
	}
	if req.Sex != nil {
		u.Sex = domain.Sex(strings.ToUpper(strings.TrimSpace(*req.Sex)))
	}
	if req.Allergies != nil {
		u.Allergies = *req.Allergies
	}
	if req.Dislikes != nil {
		u.Dislikes = *req.Dislikes
	}
	if req.CookingSkillLevel != nil {
		u.CookingSkillLevel = domain.CookingSkillLevel(strings.ToUpper(strings.TrimSpace(*req.CookingSkillLevel)))
	}
	if req.Equipments != nil {
		u.Equipments = *req.Equipments
	}

	switch {
	case u.Name == "":
		return errors.New("name is required")
	case u.Height != nil && *u.Height <= 0:
		return errors.New("height must be positive")
	case u.Weight != nil && *u.Weight <= 0:
		return errors.New("weight must be positive")
	case u.Age != nil && (*u.Age < 0 || *u.Age > 150):
		return errors.New("age is out of range")
	case !u.Sex.Valid():
		return errors.New("sex must be MALE, FEMALE or OTHER")
	case !u.CookingSkillLevel.Valid():
		return errors.New("cookingSkillLevel must be BEGINNER, INTERMEDIATE or ADVANCED")
	}
	return nil
}

func (a *App) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if !a.decode(w, r, &req) {
		return
	}
	var user domain.User
	if err := req.apply(&user); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if err := a.Users.Create(r.Context(), &user); err != nil {
		a.fail(w, r, err, "user")
		return
	}
	a.json(w, http.StatusCreated, user)
}

func (a *App) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "userId")
	if !ok {
		return
	}
	user, err := a.Users.GetByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "user")
		return
	}
	a.json(w, http.StatusOK, user)
}

// UpdateUser applies a partial update; omitted fields keep their values.
func (a *App) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "userId")
	if !ok {
		return
	}
	var req userRequest
	if !a.decode(w, r, &req) {
		return
	}
	user, err := a.Users.GetByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "user")
		return
	}
	if err := req.apply(user); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if err := a.Users.Update(r.Context(), user); err != nil {
		a.fail(w, r, err, "user")
		return
	}
	a.json(w, http.StatusOK, user)
}

func (a *App) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "userId")
	if !ok {
		return
	}
	if err := a.Users.Delete(r.Context(), id); err != nil {
		a.fail(w, r, err, "user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) UserHealthStatistics(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "userId")
	if !ok {
		return
	}
	user, err := a.Users.GetByID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "user")
		return
	}
	history, err := a.History.ListByUser(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "health history")
		return
	}
	stats := domain.ComputeHealthStatistics(*user)
	stats.History = history
	a.json(w, http.StatusOK, stats)
}

type targetRequest struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
	Fiber    *float64 `json:"fiber"`
}

func (a *App) GetUserTargets(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "userId")
	if !ok {
		return
	}
	if _, err := a.Users.GetByID(r.Context(), id); err != nil {
		a.fail(w, r, err, "user")
		return
	}
	target, err := a.Targets.GetByUserID(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "target")
		return
	}
	a.json(w, http.StatusOK, target)
}

// PutUserTargets merges the supplied nutrients into the stored row.
func (a *App) PutUserTargets(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "userId")
	if !ok {
		return
	}
	var req targetRequest
	if !a.decode(w, r, &req) {
		return
	}
	for _, v := range []*float64{req.Calories, req.Protein, req.Carbs, req.Fat, req.Fiber} {
		if v != nil && *v < 0 {
			a.error(w, http.StatusBadRequest, "bad_request", "targets must not be negative")
			return
		}
	}
	if _, err := a.Users.GetByID(r.Context(), id); err != nil {
		a.fail(w, r, err, "user")
		return
	}

	target, err := a.Targets.GetByUserID(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		target = &domain.UserTarget{UserID: id}
	case err != nil:
		a.fail(w, r, err, "target")
		return
	}
	target.Merge(domain.UserTarget{Calories: req.Calories, Protein: req.Protein, Carbs: req.Carbs, Fat: req.Fat, Fiber: req.Fiber})
	if err := a.Targets.Upsert(r.Context(), target); err != nil {
		a.fail(w, r, err, "target")
		return
	}
	a.json(w, http.StatusOK, target)
}
