package mealplan

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"nutriflow/internal/domain"
)

// memStore is an in-memory Store for engine tests.
type memStore struct {
	mu      sync.Mutex
	nextID  int64
	users   map[int64]domain.User
	targets map[int64]domain.UserTarget
	recipes []domain.Recipe
	meals   map[int64]domain.Meal
	daily   map[int64]domain.DailyMealPlan
	weekly  []domain.WeeklyMealPlan

	recipesErr error
	txCount    int

	// failSaveMealAt makes the n-th SaveMeal call (1-based) fail.
	failSaveMealAt int
	saveMealCalls  int
}

var errSaveMeal = errors.New("insert meal: connection reset")

type memSnapshot struct {
	nextID  int64
	users   map[int64]domain.User
	targets map[int64]domain.UserTarget
	meals   map[int64]domain.Meal
	daily   map[int64]domain.DailyMealPlan
	weekly  []domain.WeeklyMealPlan
}

func (m *memStore) snapshot() memSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return memSnapshot{
		nextID:  m.nextID,
		users:   maps.Clone(m.users),
		targets: maps.Clone(m.targets),
		meals:   maps.Clone(m.meals),
		daily:   maps.Clone(m.daily),
		weekly:  slices.Clone(m.weekly),
	}
}

func (m *memStore) restore(s memSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID = s.nextID
	m.users = s.users
	m.targets = s.targets
	m.meals = s.meals
	m.daily = s.daily
	m.weekly = s.weekly
}

func newMemStore() *memStore {
	return &memStore{
		nextID:  100,
		users:   map[int64]domain.User{},
		targets: map[int64]domain.UserTarget{},
		meals:   map[int64]domain.Meal{},
		daily:   map[int64]domain.DailyMealPlan{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) FindUserByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (m *memStore) FindUserTarget(_ context.Context, userID int64) (*domain.UserTarget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.targets[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (m *memStore) FindAllRecipes(context.Context) ([]domain.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recipesErr != nil {
		return nil, m.recipesErr
	}
	return slices.Clone(m.recipes), nil
}

func (m *memStore) FindRecipeByID(_ context.Context, id int64) (*domain.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.recipes {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memStore) FindDailyPlan(_ context.Context, userID int64, date time.Time) (*domain.DailyMealPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.daily {
		if p.UserID == userID && p.PlanDate.Equal(date) {
			p.MealIDs = slices.Clone(p.MealIDs)
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memStore) FindDailyPlanByID(_ context.Context, id int64) (*domain.DailyMealPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.daily[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.MealIDs = slices.Clone(p.MealIDs)
	return &p, nil
}

func (m *memStore) SaveDailyPlan(_ context.Context, plan *domain.DailyMealPlan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if plan.ID == 0 {
		for id, p := range m.daily {
			if p.UserID == plan.UserID && p.PlanDate.Equal(plan.PlanDate) {
				plan.ID = id
			}
		}
	}
	if plan.ID == 0 {
		plan.ID = m.id()
		plan.CreatedAt = time.Now()
	} else if _, ok := m.daily[plan.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *plan
	stored.MealIDs = slices.Clone(plan.MealIDs)
	m.daily[plan.ID] = stored
	return nil
}

func (m *memStore) SaveWeeklyPlan(_ context.Context, plan *domain.WeeklyMealPlan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	plan.ID = m.id()
	m.weekly = append(m.weekly, *plan)
	return nil
}

func (m *memStore) SaveMeal(_ context.Context, meal *domain.Meal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveMealCalls++
	if m.failSaveMealAt > 0 && m.saveMealCalls == m.failSaveMealAt {
		return errSaveMeal
	}
	if meal.ID == 0 {
		meal.ID = m.id()
		meal.CreatedAt = time.Now()
	} else if _, ok := m.meals[meal.ID]; !ok {
		return domain.ErrNotFound
	}
	m.meals[meal.ID] = *meal
	return nil
}

func (m *memStore) FindMealByID(_ context.Context, id int64) (*domain.Meal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	meal, ok := m.meals[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &meal, nil
}

func (m *memStore) DeleteMealsByIDs(_ context.Context, ids []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		delete(m.meals, id)
	}
	return nil
}

// InTx rolls every change made by fn back when fn fails.
func (m *memStore) InTx(_ context.Context, fn func(Store) error) error {
	m.mu.Lock()
	m.txCount++
	m.mu.Unlock()
	snap := m.snapshot()
	if err := fn(m); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

func (m *memStore) mealCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.meals)
}

func (m *memStore) plansFor(userID int64) []domain.DailyMealPlan {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.DailyMealPlan
	for _, p := range m.daily {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

func f64(v float64) *float64 { return &v }

func intp(v int) *int { return &v }

func recipe(id int64, calories, protein float64) domain.Recipe {
	return domain.Recipe{ID: id, Title: "recipe", Calories: f64(calories), Protein: f64(protein)}
}
