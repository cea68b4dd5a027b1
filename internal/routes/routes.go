package routes

import (
	"github.com/MGaul6/SkillExchange/internal/config"
	"github.com/MGaul6/SkillExchange/internal/handlers"
	"github.com/MGaul6/SkillExchange/internal/middleware"
	"github.com/MGaul6/SkillExchange/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, store services.Store) error {
	var jitter services.Jitter = services.RandomJitter{}
	if cfg.MatchJitter == config.MatchJitterNone {
		jitter = services.NoJitter{}
	}
	policy := services.TransitionPolicy{Strict: cfg.StrictTransitions}

	userService := services.NewUserService(store)
	feedbackService := services.NewFeedbackService(store)
	requestService := services.NewRequestService(store, policy)
	sessionService := services.NewSessionService(store, policy)
	matchmakingService := services.NewMatchmakingService(store, jitter)

	authHandler := handlers.NewAuthHandler(userService, cfg.JWTSecret)
	userHandler := handlers.NewUserHandler(userService, feedbackService)
	requestHandler := handlers.NewRequestHandler(requestService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	matchHandler := handlers.NewMatchHandler(matchmakingService)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	api.Get("/auth/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	users := api.Group("/users")
	users.Post("/register", authHandler.Register)
	users.Post("/login", authHandler.Login)
	users.Get("/:id", userHandler.GetUser)
	users.Get("/:id/profile", userHandler.GetProfile)
	users.Put("/:id/profile", userHandler.UpdateProfile)
	users.Get("/:id/skills", userHandler.ListSkills)
	users.Post("/:id/skills", userHandler.AddSkill)
	users.Get("/:id/learning-interests", userHandler.ListInterests)
	users.Post("/:id/learning-interests", userHandler.AddInterest)
	users.Get("/:id/skill-requests", requestHandler.ListForUser)
	users.Get("/:id/learning-sessions", sessionHandler.ListForUser)
	users.Get("/:id/received-feedback", feedbackHandler.ListReceived)
	users.Get("/:id/matches", matchHandler.SuggestMatches)

	requests := api.Group("/skill-requests")
	requests.Post("", requestHandler.CreateRequest)
	requests.Put("/:id/status", requestHandler.UpdateStatus)

	sessions := api.Group("/learning-sessions")
	sessions.Post("", sessionHandler.ScheduleSession)
	sessions.Get("/:id", sessionHandler.GetSession)
	sessions.Put("/:id/status", sessionHandler.UpdateStatus)

	api.Post("/session-feedback", feedbackHandler.RecordFeedback)

	return registerDocsRoutes(app, cfg)
}
