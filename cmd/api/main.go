package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"nutriflow/internal/adapter/repo"
	"nutriflow/internal/http/handlers"
	httpapi "nutriflow/internal/http/httpapi"
	"nutriflow/internal/infra"
	"nutriflow/internal/infra/keylock"
	"nutriflow/internal/mealplan"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	if cfg.MigrateOnStart {
		if err := infra.RunMigrations(ctx, dbpool, logger); err != nil {
			logger.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	var locker keylock.Locker
	if cfg.RedisURL != "" {
		redisLock, err := keylock.NewRedisFromURL(ctx, cfg.RedisURL, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect redis")
		}
		defer redisLock.Close()
		locker = redisLock
		logger.Info().Msg("using redis plan locks")
	}

	runner := infra.NewSQLRunner(dbpool, logger)
	planner := mealplan.NewService(
		repo.NewMealPlanStore(runner),
		locker,
		mealplan.ConfigFromSettings(cfg.MealPlan),
		logger,
	)

	app := &handlers.App{
		Logger:      logger,
		Users:       repo.NewUserRepository(runner),
		Targets:     repo.NewUserTargetRepository(runner),
		History:     repo.NewHealthHistoryRepository(runner),
		Recipes:     repo.NewRecipeRepository(runner),
		Favorites:   repo.NewFavoriteRepository(runner),
		Ingredients: repo.NewIngredientRepository(runner),
		Pantry:      repo.NewPantryRepository(runner),
		Plans:       repo.NewMealPlanRepository(runner),
		Planner:     planner,
		Ping:        dbpool.Ping,
	}

	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
