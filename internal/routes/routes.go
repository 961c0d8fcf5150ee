package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sarmadkhalid1/fithabs-backend/internal/config"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/handlers"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/logger"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/middleware"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/repository"
	"github.com/Sarmadkhalid1/fithabs-backend/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool, log *logger.Logger) error {
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	coachRepo := repository.NewCoachRepository(db)
	clinicRepo := repository.NewClinicRepository(db)
	therapistRepo := repository.NewTherapistRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)
	goalRepo := repository.NewUserGoalRepository(db)
	preferenceRepo := repository.NewUserPreferenceRepository(db)
	progressRepo := repository.NewUserProgressRepository(db)
	activityRepo := repository.NewDailyActivityRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	userWorkoutRepo := repository.NewUserWorkoutRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	mealPlanRepo := repository.NewMealPlanRepository(db)
	planRecipeRepo := repository.NewMealPlanRecipeRepository(db)
	userMealPlanRepo := repository.NewUserMealPlanRepository(db)
	educationRepo := repository.NewEducationRepository(db)
	chatRepo := repository.NewChatRepository(db)
	chatMessageRepo := repository.NewChatMessageRepository(db)
	aiChatRepo := repository.NewAiChatRepository(db)
	aiChatMessageRepo := repository.NewAiChatMessageRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	searchLogRepo := repository.NewSearchLogRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	imageRepo := repository.NewImageRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	var mailer services.Mailer
	if cfg.SMTPHost != "" {
		mailer = services.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	} else {
		mailer = services.NewLogMailer(log)
	}
	var storageService services.StorageService
	if cfg.SupabaseURL != "" && cfg.SupabaseBucket != "" && cfg.SupabaseServiceKey != "" {
		storageService = services.NewSupabaseStorageService(cfg.SupabaseURL, cfg.SupabaseBucket, cfg.SupabaseServiceKey)
	}

	authService := services.NewAuthService(
		userRepo, adminRepo, coachRepo, clinicRepo, therapistRepo,
		tokenRepo, resetRepo, mailer, cfg.JWTSecret, log,
	)
	workoutService := services.NewWorkoutService(db, workoutRepo, exerciseRepo, userWorkoutRepo)
	recipeService := services.NewRecipeService(recipeRepo, preferenceRepo, searchLogRepo, log)
	mealPlanService := services.NewMealPlanService(db, mealPlanRepo, planRecipeRepo, userMealPlanRepo, preferenceRepo)
	chatService := services.NewChatService(chatRepo, chatMessageRepo, coachRepo, clinicRepo, therapistRepo)
	aiClient := services.NewGeminiClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey)
	aiChatService := services.NewAiChatService(aiChatRepo, aiChatMessageRepo, aiClient, log)
	mediaService := services.NewMediaService(imageRepo, videoRepo, storageService)
	homeService := services.NewHomeService(userRepo, activityRepo, workoutRepo, educationRepo, recipeService)

	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(userRepo)
	userStateHandler := handlers.NewUserStateHandler(goalRepo, preferenceRepo, progressRepo, activityRepo)
	workoutHandler := handlers.NewWorkoutHandler(workoutRepo, exerciseRepo, workoutService)
	userWorkoutHandler := handlers.NewUserWorkoutHandler(workoutService)
	recipeHandler := handlers.NewRecipeHandler(recipeRepo, recipeService)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanRepo, planRecipeRepo, mealPlanService)
	educationHandler := handlers.NewEducationHandler(educationRepo)
	chatHandler := handlers.NewChatHandler(chatService)
	aiChatHandler := handlers.NewAiChatHandler(aiChatService)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	achievementHandler := handlers.NewAchievementHandler(achievementRepo)
	mediaHandler := handlers.NewMediaHandler(imageRepo, videoRepo, mediaService)
	adminHandler := handlers.NewAdminHandler(adminRepo, userRepo, dashboardRepo)
	professionalHandler := handlers.NewProfessionalHandler(coachRepo, clinicRepo, therapistRepo)
	homeHandler := handlers.NewHomeHandler(homeService)
	searchHandler := handlers.NewSearchHandler(searchLogRepo)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteRepo)
	settingHandler := handlers.NewSettingHandler(settingRepo)

	authRequired := middleware.AuthRequired(authService)
	userOnly := middleware.RequireKind(services.PrincipalUser)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/admin/login", authHandler.AdminLogin)
	auth.Post("/coach/login", authHandler.CoachLogin)
	auth.Post("/clinic/login", authHandler.ClinicLogin)
	auth.Post("/therapist/login", authHandler.TherapistLogin)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/logout", authRequired, authHandler.Logout)
	auth.Post("/logout-all", authRequired, authHandler.LogoutAll)

	v1 := api.Group("/v1", authRequired)

	users := v1.Group("/users", userOnly)
	users.Get("/me", profileHandler.Me)
	users.Put("/me", profileHandler.Update)
	users.Put("/me/password", profileHandler.ChangePassword)
	users.Delete("/me", profileHandler.DeleteAccount)
	users.Get("/goals", userStateHandler.GetGoals)
	users.Put("/goals", userStateHandler.UpsertGoals)
	users.Get("/preferences", userStateHandler.GetPreferences)
	users.Put("/preferences", userStateHandler.UpsertPreferences)
	users.Post("/progress", userStateHandler.UpsertProgress)
	users.Get("/progress", userStateHandler.ListProgress)
	users.Post("/activities", userStateHandler.UpsertActivity)
	users.Get("/activities/today", userStateHandler.TodayActivity)
	users.Get("/activities", userStateHandler.ListActivity)
	users.Get("/achievements", achievementHandler.List)
	users.Get("/favorites", favoriteHandler.List)
	users.Post("/favorites", favoriteHandler.Create)
	users.Get("/favorites/:id", favoriteHandler.Get)
	users.Delete("/favorites/:id", favoriteHandler.Delete)
	users.Get("/settings", settingHandler.List)
	users.Post("/settings", settingHandler.Create)
	users.Get("/settings/:id", settingHandler.Get)
	users.Put("/settings/:id", settingHandler.Update)
	users.Delete("/settings/:id", settingHandler.Delete)

	v1.Get("/home", userOnly, homeHandler.Summary)

	workouts := v1.Group("/workouts")
	workouts.Get("", workoutHandler.List)
	workouts.Get("/:id", workoutHandler.Get)
	workouts.Get("/:id/exercises", workoutHandler.ListExercises)
	workouts.Post("/:id/start", userOnly, userWorkoutHandler.Start)

	sessions := v1.Group("/user-workouts", userOnly)
	sessions.Get("", userWorkoutHandler.List)
	sessions.Get("/:id", userWorkoutHandler.Get)
	sessions.Put("/:id/progress", userWorkoutHandler.UpdateProgress)
	sessions.Post("/:id/complete", userWorkoutHandler.Complete)

	recipes := v1.Group("/recipes")
	recipes.Get("", recipeHandler.List)
	recipes.Get("/of-the-day", recipeHandler.RecipeOfTheDay)
	recipes.Get("/recommendations", userOnly, recipeHandler.Recommendations)
	recipes.Get("/:id", recipeHandler.Get)
	recipes.Get("/:id/nutrition", recipeHandler.Nutrition)

	mealPlans := v1.Group("/meal-plans")
	mealPlans.Get("", mealPlanHandler.List)
	mealPlans.Get("/personalized", userOnly, mealPlanHandler.Personalized)
	mealPlans.Get("/active", userOnly, mealPlanHandler.Active)
	mealPlans.Get("/active/recipes", userOnly, mealPlanHandler.DayRecipes)
	mealPlans.Delete("/active", userOnly, mealPlanHandler.Deactivate)
	mealPlans.Get("/:id", mealPlanHandler.Get)
	mealPlans.Post("/:id/activate", userOnly, mealPlanHandler.Activate)

	education := v1.Group("/education")
	education.Get("", educationHandler.List)
	education.Get("/featured", educationHandler.Featured)
	education.Get("/:id", educationHandler.Get)

	coaches := v1.Group("/coaches")
	coaches.Get("", professionalHandler.ListCoaches)
	coaches.Get("/:id", professionalHandler.GetCoach)

	clinics := v1.Group("/clinics")
	clinics.Get("", professionalHandler.ListClinics)
	clinics.Get("/:id", professionalHandler.GetClinic)
	clinics.Get("/:id/therapists", professionalHandler.ListClinicTherapists)

	therapists := v1.Group("/therapists")
	therapists.Get("", professionalHandler.ListTherapists)
	therapists.Get("/:id", professionalHandler.GetTherapist)

	chats := v1.Group("/chats")
	chats.Post("", userOnly, chatHandler.Start)
	chats.Get("", chatHandler.List)
	chats.Get("/:id", chatHandler.Get)
	chats.Get("/:id/messages", chatHandler.ListMessages)
	chats.Post("/:id/messages", chatHandler.SendMessage)
	chats.Post("/:id/read", chatHandler.MarkRead)
	chats.Post("/:id/close", chatHandler.Close)

	aiChats := v1.Group("/ai-chats", userOnly)
	aiChats.Get("", aiChatHandler.List)
	aiChats.Post("/messages", aiChatHandler.SendMessage)
	aiChats.Get("/:id", aiChatHandler.Get)
	aiChats.Put("/:id", aiChatHandler.Rename)
	aiChats.Delete("/:id", aiChatHandler.Delete)

	notifications := v1.Group("/notifications", userOnly)
	notifications.Get("", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Post("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)

	search := v1.Group("/search", userOnly)
	search.Get("/recent", searchHandler.Recent)
	search.Get("/popular", searchHandler.Popular)

	media := v1.Group("/media")
	media.Get("/images", mediaHandler.ListImages)
	media.Get("/images/:id", mediaHandler.GetImage)
	media.Get("/videos", mediaHandler.ListVideos)
	media.Get("/videos/:id", mediaHandler.GetVideo)

	admin := v1.Group("/admin", middleware.AdminRequired())
	admin.Get("/dashboard", adminHandler.Dashboard)

	admin.Post("/admins", adminHandler.Create)
	admin.Get("/admins", adminHandler.List)
	admin.Get("/admins/:id", adminHandler.Get)
	admin.Put("/admins/:id", adminHandler.Update)
	admin.Delete("/admins/:id", adminHandler.Delete)

	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/users/:id", adminHandler.GetUser)
	admin.Delete("/users/:id", adminHandler.DeleteUser)

	admin.Post("/workouts", workoutHandler.Create)
	admin.Put("/workouts/:id", workoutHandler.Update)
	admin.Delete("/workouts/:id", workoutHandler.Delete)
	admin.Post("/workouts/:id/exercises", workoutHandler.CreateExercise)
	admin.Put("/exercises/:exerciseId", workoutHandler.UpdateExercise)
	admin.Delete("/exercises/:exerciseId", workoutHandler.DeleteExercise)

	admin.Post("/recipes", recipeHandler.Create)
	admin.Put("/recipes/:id", recipeHandler.Update)
	admin.Delete("/recipes/:id", recipeHandler.Delete)

	admin.Post("/meal-plans", mealPlanHandler.Create)
	admin.Put("/meal-plans/:id", mealPlanHandler.Update)
	admin.Delete("/meal-plans/:id", mealPlanHandler.Delete)
	admin.Post("/meal-plans/:id/recipes", mealPlanHandler.AddRecipe)
	admin.Put("/meal-plans/:id/recipes/:recipeId", mealPlanHandler.UpdateRecipe)
	admin.Delete("/meal-plans/:id/recipes/:recipeId", mealPlanHandler.RemoveRecipe)

	admin.Post("/education", educationHandler.Create)
	admin.Put("/education/:id", educationHandler.Update)
	admin.Delete("/education/:id", educationHandler.Delete)

	admin.Post("/coaches", professionalHandler.CreateCoach)
	admin.Put("/coaches/:id", professionalHandler.UpdateCoach)
	admin.Delete("/coaches/:id", professionalHandler.DeleteCoach)
	admin.Post("/clinics", professionalHandler.CreateClinic)
	admin.Put("/clinics/:id", professionalHandler.UpdateClinic)
	admin.Delete("/clinics/:id", professionalHandler.DeleteClinic)
	admin.Post("/therapists", professionalHandler.CreateTherapist)
	admin.Put("/therapists/:id", professionalHandler.UpdateTherapist)
	admin.Delete("/therapists/:id", professionalHandler.DeleteTherapist)

	admin.Post("/media/images", mediaHandler.UploadImage)
	admin.Put("/media/images/:id", mediaHandler.UpdateImage)
	admin.Delete("/media/images/:id", mediaHandler.DeleteImage)
	admin.Get("/media/images/:id/signed-url", mediaHandler.SignedImageURL)
	admin.Post("/media/videos", mediaHandler.UploadVideo)
	admin.Put("/media/videos/:id", mediaHandler.UpdateVideo)
	admin.Delete("/media/videos/:id", mediaHandler.DeleteVideo)
	admin.Get("/media/videos/:id/signed-url", mediaHandler.SignedVideoURL)

	admin.Get("/search-logs", searchHandler.ListLogs)

	admin.Post("/notifications", notificationHandler.Create)
	admin.Post("/achievements", achievementHandler.Create)
	admin.Delete("/achievements/:id", achievementHandler.Delete)

	return registerDocsRoutes(app, cfg)
}
