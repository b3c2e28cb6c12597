package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"nutriflow/internal/adapter/repo"
	"nutriflow/internal/domain"
	"nutriflow/internal/infra"
	"nutriflow/internal/middleware"
)

// optionalFloat is a flag that records whether it was set.
type optionalFloat struct {
	value *float64
}

func (o *optionalFloat) String() string {
	if o.value == nil {
		return ""
	}
	return strconv.FormatFloat(*o.value, 'f', -1, 64)
}

func (o *optionalFloat) Set(raw string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return err
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	o.value = &v
	return nil
}

func main() {
	_ = godotenv.Load()

	var (
		userFlag int64
		tokenTTL time.Duration
		calories optionalFloat
		protein  optionalFloat
		carbs    optionalFloat
		fat      optionalFloat
		fiber    optionalFloat
	)

	flag.Int64Var(&userFlag, "user", 0, "user ID whose targets to update")
	flag.Var(&calories, "calories", "daily calorie target (kcal)")
	flag.Var(&protein, "protein", "daily protein target (g)")
	flag.Var(&carbs, "carbs", "daily carbohydrate target (g)")
	flag.Var(&fat, "fat", "daily fat target (g)")
	flag.Var(&fiber, "fiber", "daily fiber target (g)")
	flag.DurationVar(&tokenTTL, "token-ttl", 0, "also print a bearer token for the user valid for this long (requires JWT_SECRET)")
	flag.Parse()

	if userFlag <= 0 {
		exitWithError(errors.New("-user is required"))
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "usertarget").Logger()
	runner := infra.NewSQLRunner(pool, logger)
	users := repo.NewUserRepository(runner)
	targets := repo.NewUserTargetRepository(runner)

	user, err := users.GetByID(ctx, userFlag)
	if err != nil {
		exitWithError(fmt.Errorf("failed to load user %d: %w", userFlag, err))
	}

	target, err := targets.GetByUserID(ctx, user.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		target = &domain.UserTarget{UserID: user.ID}
	case err != nil:
		exitWithError(fmt.Errorf("failed to load targets: %w", err))
	}
	target.Merge(domain.UserTarget{
		Calories: calories.value,
		Protein:  protein.value,
		Carbs:    carbs.value,
		Fat:      fat.value,
		Fiber:    fiber.value,
	})
	if err := targets.Upsert(ctx, target); err != nil {
		exitWithError(fmt.Errorf("failed to save targets: %w", err))
	}

	fmt.Printf("Targets for user %d (%s) saved\n", user.ID, user.Name)
	for _, line := range []struct {
		name  string
		value *float64
	}{
		{"calories", target.Calories},
		{"protein", target.Protein},
		{"carbs", target.Carbs},
		{"fat", target.Fat},
		{"fiber", target.Fiber},
	} {
		if line.value != nil {
			fmt.Printf("%s=%v\n", line.name, *line.value)
		}
	}

	if tokenTTL > 0 {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			exitWithError(errors.New("JWT_SECRET is required for -token-ttl"))
		}
		token, err := middleware.SignToken(secret, strconv.FormatInt(user.ID, 10), tokenTTL)
		if err != nil {
			exitWithError(fmt.Errorf("failed to sign token: %w", err))
		}
		fmt.Printf("token=%s\n", token)
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
