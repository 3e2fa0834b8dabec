package main

import (
	"net/http"
	"os"

	"manuscript-review/config"
	"manuscript-review/handlers"
	"manuscript-review/logger"
	"manuscript-review/middleware"
	"manuscript-review/models"
	"manuscript-review/repositories"
	"manuscript-review/services"
	"manuscript-review/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables; .env is optional outside local runs.
	_ = godotenv.Load()

	log := logger.New()
	defer log.Sync()

	// Initialize database
	db := config.InitDB()

	// Initialize blob store
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	fileStore, err := storage.NewDiskStore(uploadDir)
	if err != nil {
		log.Fatal("Failed to initialize file store", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	assignmentRepo := repositories.NewAssignmentRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo, assignmentRepo)
	lifecycleService := services.NewLifecycleService(db, articleRepo, assignmentRepo, log)
	editorService := services.NewEditorService(userRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo, articleRepo)
	statsService := services.NewStatsService(statsRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService, authService, fileStore)
	editorHandler := handlers.NewEditorHandler(articleService, lifecycleService, authService, fileStore)
	adminHandler := handlers.NewAdminHandler(articleService, lifecycleService, editorService, statsService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", authHandler.UpdateProfile)

			// Articles
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/my", articleHandler.GetMyArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.GET("/:id/download", articleHandler.DownloadArticle)
			}

			// Editor workflow
			editor := protected.Group("/editor")
			editor.Use(middleware.RequireRole(models.RoleEditor))
			{
				editor.GET("/articles/available", editorHandler.GetAvailableArticles)
				editor.GET("/articles/assigned", editorHandler.GetAssignedArticles)
				editor.POST("/articles/:id/take", editorHandler.TakeArticle)
				editor.POST("/articles/:id/submit", editorHandler.SubmitArticle)
			}

			// Admin gate
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/articles/pending", adminHandler.GetPendingArticles)
				admin.POST("/articles/:id/approve", adminHandler.ApproveArticle)
				admin.POST("/articles/:id/reject", adminHandler.RejectArticle)
				admin.POST("/editors", adminHandler.CreateEditor)
				admin.GET("/editors", adminHandler.GetEditors)
				admin.GET("/statistics", adminHandler.GetStatistics)
			}

			// Feedback
			feedbacks := protected.Group("/feedbacks")
			{
				feedbacks.POST("", feedbackHandler.CreateFeedback)
				feedbacks.GET("", feedbackHandler.GetFeedbacks)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("Server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}
