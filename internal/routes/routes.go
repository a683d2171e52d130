package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/auralabs/aura-backend/internal/handlers"
	"github.com/auralabs/aura-backend/internal/middleware"
)

func SetupRoutes(r *chi.Mux) {
	// Auth routes
	r.Post("/api/auth/signup", handlers.Signup)
	r.Post("/api/auth/signin", handlers.Signin)
	r.Post("/api/auth/signout", handlers.Signout)

	// Everything below requires a valid session
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(handlers.Sessions))

		r.Get("/api/auth/me", handlers.Me)

		// Daily tracker
		r.Get("/api/tracker", handlers.GetTracker)
		r.Post("/api/tracker/habits/toggle", handlers.ToggleHabit)
		r.Put("/api/tracker/water", handlers.UpdateWater)
		r.Put("/api/tracker/vibe", handlers.UpdateVibe)
		r.Get("/api/tracker/motivation", handlers.Motivation)

		// Generated plans
		r.Get("/api/plans/diet", handlers.DietPlan)
		r.Get("/api/plans/workout", handlers.WorkoutPlan)
		r.Post("/api/style", handlers.StyleAdvice)

		// Meal scanner
		r.Post("/api/meals/scan", handlers.ScanMeal)

		// Coach chat
		r.Post("/api/chat", handlers.PostChat)
		r.Get("/api/chat/history", handlers.GetChatHistory)

		// Profile
		r.Post("/api/profile/picture", handlers.UploadProfilePicture)
	})

	// WebSocket endpoint for realtime coach chat (auth via token)
	r.Get("/ws/chat", handlers.ChatWebSocket)
}
