package main

import (
	"context"
	"log"
	"net/http"

	"movie-discovery-backend/config"
	"movie-discovery-backend/controllers"
	"movie-discovery-backend/data_access"
	"movie-discovery-backend/middleware"
	"movie-discovery-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("configuration loaded", zap.String("env", cfg.Env))

	// Initialize MongoDB connection
	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongodb.Close(context.Background())

	if err := mongodb.EnsureIndexes(context.Background()); err != nil {
		logger.Fatal("failed to create indexes", zap.Error(err))
	}

	// Initialize repositories and clients
	userRepo := data_access.NewUserRepository(mongodb)
	tmdbClient := data_access.NewTMDBClient(cfg.TMDBAPIKey, cfg.TMDBBaseURL)

	// Initialize services
	tokenManager := services.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	authService := services.NewAuthService(userRepo, tokenManager)
	userService := services.NewUserService(userRepo)
	movieService := services.NewMovieService(tmdbClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	movieController := controllers.NewMovieController(movieService)

	// Setup Gin router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RateLimit(10, 20))

	// Health check endpoint
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Public routes
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.POST("/logout", authController.Logout)
			auth.GET("/me", middleware.AuthMiddleware(tokenManager), authController.Me)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(tokenManager))
		{
			movies := protected.Group("/movies")
			{
				movies.GET("/search", movieController.Search)
				movies.GET("/:id", movieController.GetMovie)
				movies.GET("/:id/recommendations", movieController.GetRecommendations)
				movies.GET("/:id/trailers", movieController.GetTrailers)
			}

			users := protected.Group("/users")
			{
				users.GET("/favorites", userController.ListFavorites)
				users.POST("/favorites", userController.AddFavorite)
				users.DELETE("/favorites/:movieID", userController.RemoveFavorite)

				users.GET("/watchlist", userController.ListWatchlist)
				users.POST("/watchlist", userController.AddToWatchlist)
				users.DELETE("/watchlist/:movieID", userController.RemoveFromWatchlist)

				users.GET("/ratings", userController.ListRatings)
				users.POST("/ratings", userController.RateMovie)
				users.DELETE("/ratings/:movieID", userController.RemoveRating)

				users.GET("/following", userController.ListFollowing)
				users.GET("/followers", userController.ListFollowers)
				users.POST("/:id/follow", userController.Follow)
				users.DELETE("/:id/follow", userController.Unfollow)

				users.GET("/:id", userController.GetProfile)
				users.DELETE("/me", userController.DeleteAccount)
			}
		}
	}

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
