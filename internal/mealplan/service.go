package mealplan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"nutriflow/internal/domain"
	"nutriflow/internal/infra/keylock"
)

const (
	msgUserIDRequired   = "User ID is required"
	msgUserNotFound     = "User not found"
	msgDailyGenerated   = "Daily meal plan generated successfully"
	msgPlanGenerated    = "Meal plan generated successfully"
	msgPlanNotFound     = "Meal plan not found"
	msgMealNotFound     = "Meal not found"
	msgRecipeNotFound   = "Original recipe not found"
	msgNoAlternative    = "No suitable alternative found"
	msgAlternativeFound = "Alternative meal selected successfully"
)

// GenerateRequest asks for meal plans covering NumberOfDays consecutive dates.
// Zero values take the configured defaults.
type GenerateRequest struct {
	UserID       int64
	StartDate    time.Time
	NumberOfDays int
	MealsPerDay  int
	Targets      TargetOverrides
	MaxPrepTime  *int
	Tags         []string
	Cuisines     []string
}

// AlternativeRequest asks to replace one meal of an existing daily plan.
// MaintainMealType and MaxCalorieDifference are accepted but do not affect
// selection.
type AlternativeRequest struct {
	PlanID               int64
	MealID               int64
	DislikedRecipeID     int64
	ExcludeRecipeIDs     []int64
	MaintainMealType     bool
	MaxCalorieDifference *float64
}

// PlanResult is returned by every engine operation. Success=false with a nil
// error is an expected failure such as a missing user.
type PlanResult struct {
	Success           bool                   `json:"success"`
	Message           string                 `json:"message,omitempty"`
	Targets           *MacroTargets          `json:"targets,omitempty"`
	DailyPlans        []DailyPlanDetail      `json:"dailyPlans,omitempty"`
	WeeklyPlan        *domain.WeeklyMealPlan `json:"weeklyPlan,omitempty"`
	TotalRecipesUsed  int                    `json:"totalRecipesUsed"`
	CalorieVariance   float64                `json:"calorieVariance"`
	ProteinVariance   float64                `json:"proteinVariance"`
	Plan              *domain.DailyMealPlan  `json:"plan,omitempty"`
	Meal              *domain.Meal           `json:"meal,omitempty"`
	AlternativeRecipe *domain.Recipe         `json:"alternativeRecipe,omitempty"`
}

func failed(msg string) *PlanResult {
	return &PlanResult{Success: false, Message: msg}
}

// Service generates and revises meal plans.
type Service struct {
	store  Store
	locker keylock.Locker
	cfg    Config
	logger zerolog.Logger
	now    func() time.Time
}

// NewService builds a Service. A nil locker falls back to an in-process one.
func NewService(store Store, locker keylock.Locker, cfg Config, logger zerolog.Logger) *Service {
	if locker == nil {
		locker = keylock.NewLocal()
	}
	return &Service{
		store:  store,
		locker: locker,
		cfg:    cfg,
		logger: logger.With().Str("component", "mealplan").Logger(),
		now:    time.Now,
	}
}

func (s *Service) selector() Selector {
	return Selector{CalorieWeight: s.cfg.CalorieWeight, ProteinWeight: s.cfg.ProteinWeight}
}

func (s *Service) lock(ctx context.Context, key string) (func(), error) {
	lockCtx := ctx
	if s.cfg.LockTimeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, s.cfg.LockTimeout)
		defer cancel()
	}
	unlock, err := s.locker.Lock(lockCtx, key)
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", key, err)
	}
	return unlock, nil
}

// Generate builds and persists one daily plan per requested day, plus a
// weekly summary when the horizon covers a full week.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*PlanResult, error) {
	if req.UserID == 0 {
		return failed(msgUserIDRequired), nil
	}
	mealsPerDay := req.MealsPerDay
	if mealsPerDay == 0 {
		mealsPerDay = s.cfg.DefaultMealsPerDay
	}
	if mealsPerDay < 1 || mealsPerDay > s.cfg.MaxMealsPerDay {
		return failed(fmt.Sprintf("Meals per day must be between 1 and %d", s.cfg.MaxMealsPerDay)), nil
	}
	days := req.NumberOfDays
	if days == 0 {
		days = s.cfg.DefaultDays
	}
	if days < 1 || days > s.cfg.MaxDays {
		return failed(fmt.Sprintf("Number of days must be between 1 and %d", s.cfg.MaxDays)), nil
	}
	if negative(req.Targets.Calories, req.Targets.Protein, req.Targets.Carbs, req.Targets.Fat) {
		return failed("Targets must not be negative"), nil
	}
	start := req.StartDate
	if start.IsZero() {
		start = s.now().UTC()
	}
	start = domain.DateOnly(start)

	log := s.logger.With().Int64("user_id", req.UserID).Int("days", days).Logger()
	log.Info().Msg("generating meal plan")

	user, err := s.store.FindUserByID(ctx, req.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return failed(msgUserNotFound), nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	var (
		stored  *domain.UserTarget
		catalog []domain.Recipe
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.store.FindUserTarget(gctx, user.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("find user target: %w", err)
		}
		stored = t
		return nil
	})
	g.Go(func() error {
		recipes, err := s.store.FindAllRecipes(gctx)
		if err != nil {
			return fmt.Errorf("load recipes: %w", err)
		}
		catalog = recipes
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		log.Warn().Msg("recipe catalog is empty")
	}

	targets := ResolveTargets(req.Targets, stored, s.cfg.Defaults)
	filters := PoolFilters{MaxPrepTime: req.MaxPrepTime, Tags: req.Tags, Cuisines: req.Cuisines}

	result := &PlanResult{Success: true, Targets: &targets, DailyPlans: make([]DailyPlanDetail, 0, days)}
	unfilled := 0
	for day := 0; day < days; day++ {
		date := start.AddDate(0, 0, day)
		draft := s.draftDay(catalog, targets, mealsPerDay, date, filters)
		detail, err := s.commitDay(ctx, user.ID, draft, req.MaxPrepTime)
		if err != nil {
			return nil, fmt.Errorf("commit plan for %s: %w", date.Format(time.DateOnly), err)
		}
		if len(detail.UnfilledSlots) > 0 {
			log.Warn().Time("date", date).Strs("slots", detail.UnfilledSlots).Msg("meal slots left unfilled")
		}
		unfilled += len(detail.UnfilledSlots)
		result.TotalRecipesUsed += len(detail.Meals)
		result.DailyPlans = append(result.DailyPlans, *detail)
	}

	var avgCalories, avgProtein float64
	for _, d := range result.DailyPlans {
		avgCalories += d.Totals.Calories
		avgProtein += d.Totals.Protein
	}
	avgCalories /= float64(len(result.DailyPlans))
	avgProtein /= float64(len(result.DailyPlans))
	result.CalorieVariance = Variance(avgCalories, targets.Calories)
	result.ProteinVariance = Variance(avgProtein, targets.Protein)

	if days >= s.cfg.WeekLength {
		weekly := AggregateWeek(user.ID, start, s.cfg.WeekLength, result.DailyPlans)
		if err := s.store.SaveWeeklyPlan(ctx, weekly); err != nil {
			return nil, fmt.Errorf("save weekly plan: %w", err)
		}
		result.WeeklyPlan = weekly
	}

	result.Message = msgPlanGenerated
	if days == 1 {
		result.Message = msgDailyGenerated
	}
	if unfilled > 0 {
		result.Message += fmt.Sprintf("; %d meal slot(s) could not be filled", unfilled)
	}

	log.Info().Int("recipes_used", result.TotalRecipesUsed).Msg("meal plan generated")
	return result, nil
}

// Variance is the percentage by which actual deviates from target, or 0 when
// target is 0.
func Variance(actual, target float64) float64 {
	if target == 0 {
		return 0
	}
	return (actual - target) / target * 100
}

func negative(values ...*float64) bool {
	for _, v := range values {
		if v != nil && *v < 0 {
			return true
		}
	}
	return false
}
