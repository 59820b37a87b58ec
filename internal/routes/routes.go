package routes

import (
	"github.com/YunalDC/VitaRogueBack/internal/config"
	"github.com/YunalDC/VitaRogueBack/internal/handlers"
	"github.com/YunalDC/VitaRogueBack/internal/middleware"
	"github.com/YunalDC/VitaRogueBack/internal/repository"
	"github.com/YunalDC/VitaRogueBack/internal/services"
	chatws "github.com/YunalDC/VitaRogueBack/internal/websocket"
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	userProfileRepo := repository.NewUserProfileRepository(db)
	trainerProfileRepo := repository.NewTrainerProfileRepository(db)
	chatRepo := repository.NewChatRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)

	var storageService services.StorageService
	if cfg.SupabaseURL != "" && cfg.SupabaseBucket != "" && cfg.SupabaseServiceKey != "" {
		storageService = services.NewSupabaseStorageService(cfg.SupabaseURL, cfg.SupabaseBucket, cfg.SupabaseServiceKey)
	}

	authHandler := handlers.NewAuthHandler(
		db,
		userRepo,
		userProfileRepo,
		trainerProfileRepo,
		cfg.JWTSecret,
	)
	onboardingHandler := handlers.NewOnboardingHandler(userProfileRepo, trainerProfileRepo)
	profileService := services.NewProfileService(userProfileRepo, trainerProfileRepo)
	profileHandler := handlers.NewProfileHandler(profileService, userProfileRepo, trainerProfileRepo, storageService)
	trainerService := services.NewTrainerService(trainerProfileRepo)
	trainerHandler := handlers.NewTrainerHandler(trainerService, trainerProfileRepo, userProfileRepo)
	dashboardHandler := handlers.NewDashboardHandler(userProfileRepo)
	workoutHandler := handlers.NewWorkoutHandler(workoutRepo)

	chatHub := chatws.NewHub()
	go chatHub.Run()
	chatService := services.NewChatService(db, chatRepo, messageRepo, userRepo)
	chatHandler := handlers.NewChatHandler(chatService, chatHub, cfg.JWTSecret)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	users := authProtected.Group("/users")
	users.Post("/onboarding", onboardingHandler.UserOnboarding)
	users.Get("/profile", profileHandler.GetUserProfile)
	users.Put("/profile", profileHandler.UpdateUserProfile)
	users.Post("/profile/avatar", profileHandler.UploadUserAvatar)

	trainers := authProtected.Group("/trainers")
	trainers.Get("", trainerHandler.ListTrainers)
	trainers.Post("/onboarding", onboardingHandler.TrainerOnboarding)
	trainers.Get("/profile", profileHandler.GetTrainerProfile)
	trainers.Put("/profile", profileHandler.UpdateTrainerProfile)
	trainers.Post("/profile/avatar", profileHandler.UploadTrainerAvatar)
	trainers.Get("/recommended", trainerHandler.GetRecommendedTrainers)
	trainers.Get("/:id", trainerHandler.GetTrainerDetail)

	chats := authProtected.Group("/chats")
	chats.Post("/provision", chatHandler.ProvisionChat)
	chats.Get("", chatHandler.ListChats)
	chats.Get("/:id/messages", chatHandler.GetMessages)
	chats.Post("/:id/messages", chatHandler.SendMessage)

	dashboard := authProtected.Group("/dashboard")
	dashboard.Get("/nutrition", dashboardHandler.GetNutritionTargets)

	authProtected.Get("/workouts", workoutHandler.ListWorkouts)

	// The BMI calculator works without a stored profile.
	api.Post("/v1/tools/bmi", dashboardHandler.CalcBMI)

	api.Use("/v1/ws", chatHandler.WebSocketAuth)
	api.Get("/v1/ws", websocket.New(chatHandler.HandleWebSocket))
}
