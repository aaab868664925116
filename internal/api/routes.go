package api

import (
	"net/http"
	"sync"

	"alcyxob/fittrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes registers every endpoint on router.
//
// All mutating handlers share one mutex: the workout store and account
// directory rewrite their whole record on each change and rely on a single
// writer at a time.
func SetupRoutes(
	router *gin.Engine,
	tokens *TokenIssuer,
	accounts service.AccountDirectory,
	sessions service.SessionHolder,
	workouts service.WorkoutStore,
	statsOpts StatsOptions,
) {
	writes := &sync.Mutex{}

	authHandler := NewAuthHandler(accounts, sessions, tokens, writes)
	workoutHandler := NewWorkoutHandler(workouts, writes)
	statsHandler := NewStatsHandler(workouts, statsOpts)

	authMiddleware := AuthMiddleware(tokens, sessions)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authMiddleware, authHandler.Logout)
		}
		apiV1.GET("/session", authMiddleware, authHandler.Session)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.POST("", workoutHandler.AddWorkout)
			workoutGroup.DELETE("/:workoutId", workoutHandler.DeleteWorkout)
		}

		protected.GET("/stats", statsHandler.Summary)
		protected.GET("/stats/top", statsHandler.TopExercises)
		protected.GET("/achievements", statsHandler.Achievements)
		protected.GET("/progress", statsHandler.Progress)
	}
}
