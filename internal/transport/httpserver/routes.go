package httpserver

import (
	"net/http"
	"time"

	"mealpoll-go/internal/config"
	"mealpoll-go/internal/transport/httpserver/handler"
	authmw "mealpoll-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, auth *authmw.SessionAuth) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORS.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		// Public surface: landing list, sign-up form data, submission.
		r.Get("/meals/open", handlers.ListOpenMeals)
		r.Get("/meals/{meal_id}/choices", handlers.GetMealChoices)
		r.Get("/foods/{food_id}/sides", handlers.GetFoodSides)
		r.Post("/meals/{meal_id}/responses", handlers.SubmitResponse)

		r.Post("/auth/login", handlers.Login)
		r.Post("/auth/logout", handlers.Logout)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.AuthMe)

			r.Get("/meals", handlers.ListMeals)
			r.Post("/meals", handlers.CreateMeal)
			r.Get("/meals/{meal_id}", handlers.GetMeal)
			r.Put("/meals/{meal_id}", handlers.UpdateMeal)
			r.Delete("/meals/{meal_id}", handlers.DeleteMeal)

			r.Get("/meals/{meal_id}/responses", handlers.ListMealResponses)
			r.Get("/meals/{meal_id}/responses.csv", handlers.ExportMealResponses)

			r.Get("/catalog/{kind}", handlers.ListCatalog)
			r.Post("/catalog/{kind}", handlers.CreateCatalogItem)
			r.Put("/catalog/{kind}/{item_id}", handlers.UpdateCatalogItem)
			r.Delete("/catalog/{kind}/{item_id}", handlers.DeleteCatalogItem)
		})
	})

	return r
}
