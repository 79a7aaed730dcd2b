package routes

import (
	"github.com/JavaChrist/in-shape/config"
	"github.com/JavaChrist/in-shape/controllers"
	"github.com/JavaChrist/in-shape/middlewares"
	"github.com/JavaChrist/in-shape/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub, push *services.PushService) *gin.Engine {
	r := gin.Default()

	measurements := controllers.NewMeasurementController(services.NewMeasurementService(config.DB))
	weights := controllers.NewWeightController(services.NewWeightService(config.DB))
	weeks := controllers.NewWeeklyLogController(services.NewWeeklyLogService(config.DB))
	habits := controllers.NewHabitController(services.NewHabitService(config.DB))
	exchangeSvc := services.NewExchangeService(config.DB)
	exchanges := controllers.NewExchangeController(exchangeSvc)
	coach := controllers.NewCoachController(services.NewCoachService(config.DB), exchangeSvc)
	realtime := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)
		api.GET("/user/mission", controllers.GetMission)
		api.PUT("/user/mission", controllers.UpdateMission)
		api.POST("/user/notifications/toggle", controllers.ToggleNotifications)

		api.GET("/measurements", measurements.List)
		api.POST("/measurements", measurements.Create)
		api.PUT("/measurements/:id", measurements.Update)
		api.DELETE("/measurements/:id", measurements.Delete)

		api.GET("/weights", weights.List)
		api.POST("/weights", weights.Append)
		api.PUT("/weights/:id", weights.Update)
		api.DELETE("/weights/:id", weights.Remove)

		api.GET("/weeks/:week", weeks.GetWeek)
		api.GET("/weeks/:week/summary", weeks.GetWeekSummary)
		api.PUT("/weeks/:week/days/:day", weeks.UpdateDay)

		api.GET("/habits", habits.Catalogue)
		api.GET("/habits/weeks/:week", habits.WeekCompletions)
		api.PUT("/habits/:id/weeks/:week", habits.SetCompletion)

		api.GET("/exchanges", exchanges.List)
		api.POST("/exchanges", exchanges.Add)

		api.GET("/alerts", controllers.ListAlerts)
		api.GET("/ws/alerts", realtime.AlertsWS)

		if push != nil {
			devices := controllers.NewDeviceController(push)
			api.POST("/devices", devices.Register)
		}
	}

	// Coach-only routes
	coachGroup := r.Group("/coach")
	coachGroup.Use(middlewares.AuthMiddleware(), middlewares.CoachOnly())
	{
		coachGroup.GET("/code", coach.JoinCode)
		coachGroup.GET("/students", coach.Students)
		coachGroup.GET("/students/:id/overview", coach.StudentOverview)
		coachGroup.POST("/students/:id/exchanges/:exchangeId/comment", coach.AnnotateExchange)
	}

	return r
}
