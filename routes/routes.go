package routes

import (
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type Deps struct {
	DB         *gorm.DB
	Auth       *services.AuthService
	Users      *services.UserService
	Sleep      *services.SleepService
	Journal    *services.JournalService
	Moods      *services.MoodService
	Activities *services.ActivityService
	Goals      *services.GoalService
	Streaks    *services.StreakService
	Stats      *services.StatsService
	Alerts     *services.AlertBus
	Hub        *services.RealtimeHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authCtl := controllers.NewAuthController(d.Auth)
	userCtl := controllers.NewUserController(d.Users)
	sleepCtl := controllers.NewSleepController(d.Sleep)
	journalCtl := controllers.NewJournalController(d.Journal)
	moodCtl := controllers.NewMoodController(d.Moods)
	activityCtl := controllers.NewActivityController(d.Activities)
	goalCtl := controllers.NewGoalController(d.Goals)
	streakCtl := controllers.NewStreakController(d.Streaks)
	statsCtl := controllers.NewStatsController(d.Stats, d.Activities, d.Streaks, d.Goals)
	alertCtl := controllers.NewAlertController(d.Alerts)
	realtimeCtl := controllers.NewRealtimeController(d.Hub)
	devCtl := controllers.NewDevController(d.Users)

	limiter := middlewares.NewRateLimiter()

	// Public auth routes
	auth := r.Group("/auth")
	auth.Use(limiter.Middleware())
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/verify-mfa", authCtl.VerifyMFA)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password", authCtl.ResetPassword)
	}

	// Everything below requires a resolved identity
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(d.DB))
	{
		user := api.Group("/user")
		{
			user.GET("/profile", userCtl.GetProfile)
			user.PUT("/profile", userCtl.UpdateProfile)
			user.DELETE("/data", userCtl.ClearData)
			user.DELETE("", userCtl.DeleteAccount)
		}

		sleep := api.Group("/sleep")
		{
			sleep.POST("", sleepCtl.Add)
			sleep.GET("", sleepCtl.List)
			sleep.PUT("/:id", sleepCtl.Update)
			sleep.DELETE("/:id", sleepCtl.Delete)
		}

		journal := api.Group("/journal")
		{
			journal.POST("", journalCtl.Add)
			journal.GET("", journalCtl.List)
			journal.PUT("/:id", journalCtl.Update)
			journal.DELETE("/:id", journalCtl.Delete)
		}

		moods := api.Group("/moods")
		{
			moods.POST("", moodCtl.Add)
			moods.GET("", moodCtl.List)
			moods.PUT("/:id", moodCtl.Update)
			moods.DELETE("/:id", moodCtl.Delete)
		}

		activities := api.Group("/activities")
		{
			activities.POST("", activityCtl.Add)
			activities.GET("", activityCtl.List)
			activities.PUT("/:id", activityCtl.Update)
			activities.DELETE("/:id", activityCtl.Delete)
		}

		api.PUT("/goals/:category", goalCtl.Upsert)
		api.GET("/goals", goalCtl.Progress)
		api.GET("/streaks", streakCtl.List)
		api.GET("/stats/summary", statsCtl.Summary)
		api.GET("/stats/session-score", statsCtl.SessionScore)
		api.GET("/alerts", alertCtl.Recent)
		api.GET("/ws/events", realtimeCtl.EventsWS)

		api.POST("/dev/reset", devCtl.ResetData)
	}

	return r
}
