package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"fittrack/database"
	"fittrack/internal/cache"
	"fittrack/internal/controllers"
	"fittrack/internal/openrouter"
	"fittrack/internal/repository"
	"fittrack/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	profileRepo := repository.NewUserProfileRepository(database.DB)
	workoutRepo := repository.NewWorkoutRepository(database.DB)
	goalRepo := repository.NewGoalRepository(database.DB)
	dietPlanRepo := repository.NewDietPlanRepository(database.DB)
	personalizedWorkoutRepo := repository.NewPersonalizedWorkoutRepository(database.DB)

	routeStore, err := cache.NewRedisRouteStore()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer routeStore.Close()

	aiClient, err := openrouter.NewClient()
	if err != nil {
		log.Fatalf("Failed to create OpenRouter client: %v", err)
	}

	// Initialize controllers
	authController := controllers.NewAuthController(userRepo)
	profileController := controllers.NewUserProfileController(profileRepo)
	workoutController := controllers.NewWorkoutController(workoutRepo)
	goalController := controllers.NewGoalController(goalRepo)
	dietPlanController := controllers.NewDietPlanController(dietPlanRepo)
	personalizedWorkoutController := controllers.NewPersonalizedWorkoutController(personalizedWorkoutRepo)
	insightController := controllers.NewInsightController()
	analysisController := controllers.NewAnalysisController()
	aiController := controllers.NewAIController(aiClient)
	routeController := controllers.NewRouteController(routeStore)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "FitTrack API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	router.GET("/api/health", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			c.JSON(500, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"status": "healthy"})
	})

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterUserProfileRoutes(router, profileController)
	routes.RegisterWorkoutRoutes(router, workoutController)
	routes.RegisterGoalRoutes(router, goalController)
	routes.RegisterDietPlanRoutes(router, dietPlanController)
	routes.RegisterPersonalizedWorkoutRoutes(router, personalizedWorkoutController)
	routes.RegisterInsightRoutes(router, insightController)
	routes.RegisterAnalysisRoutes(router, analysisController)
	routes.RegisterAIRoutes(router, aiController)
	routes.RegisterRouteRoutes(router, routeController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
