package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"nutriflow/internal/domain"
	"nutriflow/internal/mealplan"
)

type fakeUsers struct {
	byID   map[int64]*domain.User
	nextID int64
	err    error
}

func newFakeUsers(users ...domain.User) *fakeUsers {
	f := &fakeUsers{byID: map[int64]*domain.User{}, nextID: 100}
	for i := range users {
		u := users[i]
		f.byID[u.ID] = &u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, u *domain.User) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	u.ID = f.nextID
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) Update(_ context.Context, u *domain.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeTargets struct {
	byUser map[int64]*domain.UserTarget
}

func (f *fakeTargets) GetByUserID(_ context.Context, userID int64) (*domain.UserTarget, error) {
	t, ok := f.byUser[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTargets) Upsert(_ context.Context, t *domain.UserTarget) error {
	cp := *t
	f.byUser[t.UserID] = &cp
	return nil
}

type fakeRecipes struct {
	recipes   []domain.Recipe
	lastLimit int
}

func (f *fakeRecipes) List(context.Context) ([]domain.Recipe, error) { return f.recipes, nil }

func (f *fakeRecipes) GetByID(_ context.Context, id int64) (*domain.Recipe, error) {
	for i := range f.recipes {
		if f.recipes[i].ID == id {
			return &f.recipes[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRecipes) Create(_ context.Context, r *domain.Recipe) error {
	r.ID = int64(len(f.recipes) + 1)
	f.recipes = append(f.recipes, *r)
	return nil
}

func (f *fakeRecipes) ListPopular(_ context.Context, limit int) ([]domain.Recipe, error) {
	f.lastLimit = limit
	if limit > len(f.recipes) {
		limit = len(f.recipes)
	}
	return f.recipes[:limit], nil
}

func (f *fakeRecipes) SearchByTitle(_ context.Context, q string) ([]domain.Recipe, error) {
	var out []domain.Recipe
	for _, r := range f.recipes {
		if strings.Contains(strings.ToLower(r.Title), strings.ToLower(q)) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakePlans struct {
	daily   map[int64]*domain.DailyMealPlan
	weekly  map[int64]*domain.WeeklyMealPlan
	filter  domain.PlanFilter
	deleted []string
	err     error
}

func (f *fakePlans) ListDaily(_ context.Context, filter domain.PlanFilter) ([]domain.DailyMealPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.filter = filter
	var out []domain.DailyMealPlan
	for _, p := range f.daily {
		if p.UserID == filter.UserID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePlans) ListWeekly(_ context.Context, filter domain.PlanFilter) ([]domain.WeeklyMealPlan, error) {
	var out []domain.WeeklyMealPlan
	for _, p := range f.weekly {
		if p.UserID == filter.UserID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePlans) GetDailyByID(_ context.Context, id int64) (*domain.DailyMealPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.daily[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakePlans) GetWeeklyByID(_ context.Context, id int64) (*domain.WeeklyMealPlan, error) {
	if p, ok := f.weekly[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakePlans) UpdateDailyStatus(_ context.Context, id int64, s domain.PlanStatus) error {
	p, ok := f.daily[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = s
	return nil
}

func (f *fakePlans) UpdateWeeklyStatus(_ context.Context, id int64, s domain.PlanStatus) error {
	p, ok := f.weekly[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = s
	return nil
}

func (f *fakePlans) DeleteDaily(_ context.Context, id int64) error {
	if _, ok := f.daily[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.daily, id)
	f.deleted = append(f.deleted, "daily")
	return nil
}

func (f *fakePlans) DeleteWeekly(_ context.Context, id int64) error {
	if _, ok := f.weekly[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.weekly, id)
	f.deleted = append(f.deleted, "weekly")
	return nil
}

type fakePlanner struct {
	result *mealplan.PlanResult
	err    error
	gen    mealplan.GenerateRequest
	alt    mealplan.AlternativeRequest
	calls  int
}

func (f *fakePlanner) Generate(_ context.Context, req mealplan.GenerateRequest) (*mealplan.PlanResult, error) {
	f.calls++
	f.gen = req
	return f.result, f.err
}

func (f *fakePlanner) RequestAlternative(_ context.Context, req mealplan.AlternativeRequest) (*mealplan.PlanResult, error) {
	f.calls++
	f.alt = req
	return f.result, f.err
}

type favoriteKey struct{ user, recipe int64 }

type fakeFavorites struct {
	saved   map[favoriteKey]bool
	recipes *fakeRecipes
	removed []favoriteKey
}

func newFakeFavorites(recipes *fakeRecipes) *fakeFavorites {
	return &fakeFavorites{saved: map[favoriteKey]bool{}, recipes: recipes}
}

func (f *fakeFavorites) ListRecipes(_ context.Context, userID int64) ([]domain.Recipe, error) {
	out := make([]domain.Recipe, 0)
	for _, r := range f.recipes.recipes {
		if f.saved[favoriteKey{userID, r.ID}] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeFavorites) Add(_ context.Context, fav *domain.FavoriteRecipe) error {
	k := favoriteKey{fav.UserID, fav.RecipeID}
	if f.saved[k] {
		return fmt.Errorf("%w: favorite_recipes_user_recipe_key", domain.ErrConflict)
	}
	f.saved[k] = true
	fav.ID = int64(len(f.saved))
	return nil
}

func (f *fakeFavorites) Remove(_ context.Context, userID, recipeID int64) error {
	k := favoriteKey{userID, recipeID}
	delete(f.saved, k)
	f.removed = append(f.removed, k)
	return nil
}

type fakeHistory struct {
	records map[int64][]domain.HealthRecord
	err     error
}

func (f *fakeHistory) ListByUser(_ context.Context, userID int64) ([]domain.HealthRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := f.records[userID]
	if out == nil {
		out = []domain.HealthRecord{}
	}
	return out, nil
}

var errStore = errors.New("connection reset")

func newTestApp() *App {
	return &App{Logger: zerolog.Nop()}
}

// serve runs h with the given chi URL params.
func serve(h http.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func f64(v float64) *float64 { return &v }

type fakePantry struct {
	items    []domain.PantryItem
	replaced []domain.PantryItem
}

func (f *fakePantry) ListByUser(_ context.Context, userID int64) ([]domain.PantryItem, error) {
	var out []domain.PantryItem
	for _, it := range f.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakePantry) Create(_ context.Context, item *domain.PantryItem) error {
	item.ID = int64(len(f.items) + 1)
	f.items = append(f.items, *item)
	return nil
}

func (f *fakePantry) ReplaceForUser(_ context.Context, userID int64, items []domain.PantryItem) ([]domain.PantryItem, error) {
	f.replaced = f.replaced[:0]
	for i, it := range items {
		it.ID = int64(i + 1)
		it.UserID = userID
		f.replaced = append(f.replaced, it)
	}
	return f.replaced, nil
}

func (f *fakePantry) Delete(_ context.Context, id int64) error {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeIngredients struct {
	items        map[int64]*domain.Ingredient
	lastCategory string
	createErr    error
	updateErr    error
	updates      int
}

func (f *fakeIngredients) List(context.Context) ([]domain.Ingredient, error) { return nil, nil }

func (f *fakeIngredients) GetByID(_ context.Context, id int64) (*domain.Ingredient, error) {
	ing, ok := f.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *ing
	return &cp, nil
}

func (f *fakeIngredients) GetByName(_ context.Context, name string) (*domain.Ingredient, error) {
	for _, ing := range f.items {
		if strings.EqualFold(ing.Name, name) {
			cp := *ing
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeIngredients) SearchByName(context.Context, string) ([]domain.Ingredient, error) {
	return nil, nil
}

func (f *fakeIngredients) ListByCategory(_ context.Context, category string) ([]domain.Ingredient, error) {
	f.lastCategory = category
	return []domain.Ingredient{{ID: 1, Name: "Oats", Category: "Grains"}}, nil
}

func (f *fakeIngredients) Create(_ context.Context, ing *domain.Ingredient) error {
	if f.createErr != nil {
		return f.createErr
	}
	ing.ID = 1
	return nil
}

func (f *fakeIngredients) Update(_ context.Context, ing *domain.Ingredient) error {
	f.updates++
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.items[ing.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *ing
	f.items[ing.ID] = &cp
	return nil
}

func (f *fakeIngredients) Delete(context.Context, int64) error { return domain.ErrNotFound }
