package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	// --- Global middlewares ---
	// Cross-origin requests are accepted only from the fixed allow-list.
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{
			"https://mis-safeli.github.io",
			"http://localhost:3000",
			"https://safeli-app.onrender.com",
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	mux.Use(app.Logger)

	// --- Liveness and store-connectivity probes ---
	mux.Get("/", app.Root)
	mux.Get("/health", app.Health)

	// --- Sales ---
	mux.Route("/sales", func(r chi.Router) {
		r.Get("/", app.Handlers.Sale.ListSales)
		r.Post("/", app.Handlers.Sale.AddSale)
		r.Put("/{order_no}", app.Handlers.Sale.UpdateSale)
		r.Delete("/{order_no}", app.Handlers.Sale.DeleteSale)
	})

	// --- Clients ---
	mux.Route("/clients", func(r chi.Router) {
		r.Get("/", app.Handlers.Client.ListClients)
		r.Post("/", app.Handlers.Client.AddClient)
		r.Get("/search/{query}", app.Handlers.Client.SearchClients)
		r.Get("/{dealer_id}", app.Handlers.Client.GetClient)
		r.Put("/{dealer_id}", app.Handlers.Client.UpdateClient)
		r.Delete("/{dealer_id}", app.Handlers.Client.DeleteClient)
	})

	// --- Users ---
	mux.Route("/api/users", func(r chi.Router) {
		r.Get("/", app.Handlers.User.ListUsers)
		r.Post("/", app.Handlers.User.AddUser)
		r.Get("/search/{query}", app.Handlers.User.SearchUsers)
		r.Get("/{user_id}", app.Handlers.User.GetUser)
		r.Put("/{user_id}", app.Handlers.User.UpdateUser)
		r.Delete("/{user_id}", app.Handlers.User.DeleteUser)
	})

	// --- Auth ---
	mux.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", app.Handlers.Auth.Login)
		r.Get("/check", app.Handlers.Auth.Check)
		r.Post("/logout", app.Handlers.Auth.Logout)
	})

	// --- Dashboard ---
	mux.Get("/api/dashboard", app.Handlers.Dashboard.GetDashboard)

	return mux
}
