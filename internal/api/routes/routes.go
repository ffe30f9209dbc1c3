package routes

import (
	"taskask-backend/internal/api/handlers"
	"taskask-backend/internal/api/middleware"
	"taskask-backend/internal/auth"
	"taskask-backend/internal/config"
	"taskask-backend/internal/database/models"
	"taskask-backend/internal/repository"
	"taskask-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	teamMemberRepo := repository.NewTeamMemberRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize services
	hasher := auth.NewBcryptHasher()
	userService := service.NewUserService(userRepo, hasher, validate)
	notificationService := service.NewNotificationService(notificationRepo)
	taskService := service.NewTaskService(taskRepo, userRepo, notificationService, validate)
	teamService := service.NewTeamService(teamRepo, teamMemberRepo, userRepo, validate)
	performanceService := service.NewPerformanceService(taskRepo)

	// Initialize auth
	authService := auth.NewAuthService(userRepo, hasher, cfg.JWTSecret, cfg.JWTExpiryHours)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	teamHandler := handlers.NewTeamHandler(teamService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	performanceHandler := handlers.NewPerformanceHandler(performanceService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/users", userHandler.CreateUser)

	// Authenticated routes, gated per the allowed-caller-roles table
	authed := api.Group("")
	authed.Use(authMiddleware.RequireAuth())

	taskWriters := authMiddleware.RequireRoles(models.RoleManager, models.RoleAdmin, models.RoleTeamLead)
	anyRole := authMiddleware.RequireRoles(models.RoleManager, models.RoleAdmin, models.RoleTeamLead, models.RoleEmployee)
	leadOnly := authMiddleware.RequireRoles(models.RoleTeamLead)
	adminOnly := authMiddleware.RequireRoles(models.RoleAdmin)

	authed.GET("/employees", authMiddleware.RequireRoles(models.RoleManager, models.RoleAdmin), userHandler.ListEmployees)

	authed.POST("/tasks", taskWriters, taskHandler.CreateTask)
	authed.GET("/tasks/assigned/:userId", anyRole, taskHandler.GetTasksForAssignee)
	authed.GET("/tasks/created/:userId", taskWriters, taskHandler.GetTasksCreatedBy)
	authed.PATCH("/tasks/:taskId/status", anyRole, taskHandler.UpdateTask)
	authed.DELETE("/tasks/:taskId", authMiddleware.RequireRoles(models.RoleManager, models.RoleAdmin), taskHandler.DeleteTask)

	authed.POST("/teams", leadOnly, teamHandler.CreateTeam)
	authed.POST("/teams/:teamId/members", leadOnly, teamHandler.AddMember)
	authed.GET("/teams/mine", leadOnly, teamHandler.GetMyTeam)
	authed.GET("/teams/mine/members", leadOnly, teamHandler.GetMyTeamMembers)

	authed.GET("/notifications", anyRole, notificationHandler.GetMyNotifications)
	authed.GET("/notifications/unread-count", anyRole, notificationHandler.GetUnreadCount)
	authed.POST("/notifications/mark-read", anyRole, notificationHandler.MarkAllRead)

	admin := authed.Group("/admin")
	admin.Use(adminOnly)
	admin.GET("/tasks", taskHandler.GetAllTasks)
	admin.GET("/users", userHandler.ListAllUsers)
	admin.GET("/teams", teamHandler.GetAllTeams)
	admin.GET("/performance", performanceHandler.GetPerformanceSummary)

	return router
}
