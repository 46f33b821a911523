package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/gustavovieirarodrigues/taxi-management/internal/config"
	"github.com/gustavovieirarodrigues/taxi-management/internal/handlers"
	infraRepo "github.com/gustavovieirarodrigues/taxi-management/internal/infra/repository"
	"github.com/gustavovieirarodrigues/taxi-management/internal/middleware"
	"github.com/gustavovieirarodrigues/taxi-management/internal/models"
	"github.com/gustavovieirarodrigues/taxi-management/internal/notify"
	ucRide "github.com/gustavovieirarodrigues/taxi-management/internal/usecase/ride"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	rideRepo := infraRepo.NewRideGormRepository(db)

	notifyStore := notify.NewStore(db)
	notifyDispatcher := notify.NewDispatcher(notifyStore, rdb)

	// ======================================================
	// USE CASES — RIDES
	// ======================================================
	createRideUC := ucRide.NewCreateRide(rideRepo, notifyDispatcher, cfg.Timezone)
	assignDriverUC := ucRide.NewAssignDriver(rideRepo, notifyDispatcher)
	completeRideUC := ucRide.NewCompleteRide(rideRepo, cfg.Timezone)
	cancelRideUC := ucRide.NewCancelRide(rideRepo)
	refuseRideUC := ucRide.NewRefuseRide(rideRepo)
	deleteRideUC := ucRide.NewDeleteRide(rideRepo)
	listByDateUC := ucRide.NewListRidesByDate(rideRepo, cfg.Timezone)
	listByMonthUC := ucRide.NewListRidesByMonth(rideRepo, cfg.Timezone)
	monthGridUC := ucRide.NewMonthGrid(rideRepo, cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	carHandler := handlers.NewCarHandler(db)
	userHandler := handlers.NewUserHandler(db)
	notificationHandler := handlers.NewNotificationHandler(notifyStore)

	rideHandler := handlers.NewRideHandler(
		createRideUC,
		assignDriverUC,
		completeRideUC,
		cancelRideUC,
		refuseRideUC,
		deleteRideUC,
		listByDateUC,
		listByMonthUC,
		monthGridUC,
		cfg.Timezone,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			manager := secured.Group("/")
			manager.Use(middleware.RequireRole(models.RoleManager))

			// ------------------------------
			// RIDES
			// ------------------------------
			manager.POST("/rides", rideHandler.Create)
			manager.PATCH("/rides/:id/assign", rideHandler.Assign)
			manager.DELETE("/rides/:id", rideHandler.Delete)

			secured.GET("/rides", rideHandler.ListByDate)
			secured.GET("/rides/statuses", rideHandler.Statuses)
			secured.GET("/rides/month", rideHandler.ListByMonth)
			secured.GET("/rides/calendar", rideHandler.Calendar)
			secured.PATCH("/rides/:id/complete", middleware.RequireRole(models.RoleDriver), rideHandler.Complete)
			secured.PATCH("/rides/:id/refuse", middleware.RequireRole(models.RoleDriver), rideHandler.Refuse)
			secured.PATCH("/rides/:id/cancel", rideHandler.Cancel)

			// ------------------------------
			// CLIENTS / CARS / PEOPLE
			// ------------------------------
			manager.GET("/clients", clientHandler.List)
			manager.POST("/clients", clientHandler.Create)

			secured.GET("/cars", carHandler.List)
			manager.POST("/cars", carHandler.Create)
			manager.PATCH("/cars/:id/status", carHandler.UpdateStatus)

			secured.GET("/drivers", userHandler.ListDrivers)
			manager.POST("/users", userHandler.Create)
			manager.PATCH("/users/:id/active", userHandler.SetActive)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/notifications", notificationHandler.ListUnread)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
			secured.POST("/notifications/clear", notificationHandler.Clear)
		}
	}
}
