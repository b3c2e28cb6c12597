package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"nutriflow/internal/http/handlers"
	"nutriflow/internal/infra"
	"nutriflow/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(logger),
		chimw.Recoverer,
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get(handlers.OpenAPIPath, app.OpenAPIJSON)
	r.Get(handlers.DocsPath, app.OpenAPIDocs)

	r.Route("/api", func(r chi.Router) {
		if cfg.JWTSecret != "" {
			r.Use(middleware.AuthJWT(cfg.JWTSecret))
		} else {
			logger.Warn().Msg("JWT_SECRET not set, /api routes are unauthenticated")
		}

		r.Route("/users", func(r chi.Router) {
			r.Post("/", app.CreateUser)
			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", app.GetUser)
				r.Put("/", app.UpdateUser)
				r.Delete("/", app.DeleteUser)
				r.Get("/targets", app.GetUserTargets)
				r.Put("/targets", app.PutUserTargets)
				r.Get("/health_statistics", app.UserHealthStatistics)
			})
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", app.ListRecipes)
			r.Post("/", app.CreateRecipe)
			r.Get("/popular", app.PopularRecipes)
			r.Get("/search", app.SearchRecipes)
			r.Route("/favorites", func(r chi.Router) {
				r.Post("/", app.AddFavorite)
				r.Get("/{userId}", app.ListFavorites)
				r.Post("/{userId}/{recipeId}", app.AddFavoriteByPath)
				r.Delete("/{userId}/{recipeId}", app.RemoveFavorite)
			})
			r.Get("/{recipeId}", app.GetRecipe)
		})

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", app.ListIngredients)
			r.Post("/", app.CreateIngredient)
			r.Get("/search", app.SearchIngredients)
			r.Get("/category/{category}", app.IngredientsByCategory)
			r.Get("/name/{name}", app.IngredientByName)
			r.Get("/calculate", app.CalculateNutrition)
			r.Get("/{ingredientId}", app.GetIngredient)
			r.Put("/{ingredientId}", app.UpdateIngredient)
			r.Put("/{ingredientId}/nutrition", app.UpdateIngredientNutrition)
			r.Delete("/{ingredientId}", app.DeleteIngredient)
		})

		r.Route("/pantry", func(r chi.Router) {
			r.Post("/", app.AddPantryItem)
			r.Get("/user/{userId}", app.ListPantry)
			r.Put("/user/{userId}", app.ReplacePantry)
			r.Delete("/{itemId}", app.DeletePantryItem)
		})

		r.Route("/meal-plans", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				// Generation writes several rows per call.
				if cfg.RateLimitPerMin > 0 {
					r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))
				}
				r.Post("/generate", app.GenerateMealPlan)
				r.Post("/alternative", app.RequestAlternative)
			})
			r.Get("/user/{userId}", app.ListMealPlans)
			r.Get("/{planId}", app.GetMealPlan)
			r.Put("/{planId}/status", app.UpdateMealPlanStatus)
			r.Delete("/{planId}", app.DeleteMealPlan)
		})
	})

	return r
}
