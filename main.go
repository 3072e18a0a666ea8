package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
		"REDIS_URL",
		"TOKENIZER_URL",
		"PORT",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
	utils.InitRedisClient()

	services.GlobalSessionCache = services.NewSessionCache(utils.RedisClient)
	services.TokenBlacklist = services.NewTokenBlacklist(utils.RedisClient)

	if err := repository.SetupIndexes(utils.MongoClient.Database(
		utils.GetEnvAsString("MONGO_DB", "arthub"))); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())

	serverCfg := config.LoadServerConfig()
	tokenizerCfg := config.LoadTokenizerConfig()

	// Repositories
	userRepo := repository.GetUserRepo(utils.MongoClient)
	postsRepo := repository.GetPostsRepo(utils.MongoClient)
	tagsRepo := repository.GetTagsRepo(utils.MongoClient)
	foldersRepo := repository.GetFoldersRepo(utils.MongoClient)
	imagesRepo := repository.GetImagesRepo(utils.MongoClient)
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	postIndexRepo := repository.GetPostIndexRepo(utils.RedisClient)

	// Services
	searchService := &usecase.SearchService{
		Posts:     postsRepo,
		Index:     postIndexRepo,
		Tokenizer: services.NewTokenizerClient(tokenizerCfg.BaseURL),
	}
	postService := &usecase.PostService{
		Posts:   postsRepo,
		Index:   postIndexRepo,
		Tags:    tagsRepo,
		Users:   userRepo,
		Folders: foldersRepo,
		Images:  imagesRepo,
	}
	tagService := &usecase.TagService{
		Tags:   tagsRepo,
		Posts:  postsRepo,
		Search: searchService,
	}
	folderService := &usecase.FolderService{
		Folders: foldersRepo,
		Posts:   postsRepo,
		Users:   userRepo,
	}
	userService := &usecase.UserService{
		Users:     userRepo,
		Tags:      tagsRepo,
		PostSvc:   postService,
		FolderSvc: folderService,
	}
	recService := &usecase.RecommendationService{
		Posts: postsRepo,
	}
	statsHandler := handler.NewStatsHandler(userService, postService, folderService, tagService, sessionRepo)

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(serverCfg.MaxRequestSize))
	router.Use(middleware.SessionMiddleware(sessionRepo))

	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegisterHandler(c, userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, userService, sessionRepo, serverCfg.MaxActiveSessions)
			})
			auth.POST("/refresh", handler.RefreshHandler)
		}

		public.GET("/posts", func(c *gin.Context) {
			handler.GetPostsHandler(c, postService)
		})
		public.GET("/posts/:id", func(c *gin.Context) {
			handler.GetPostHandler(c, postService)
		})
		public.GET("/users/:userId/posts", func(c *gin.Context) {
			handler.GetPostsByUserHandler(c, postService)
		})
		public.POST("/posts/search", func(c *gin.Context) {
			handler.SearchPostsHandler(c, searchService)
		})

		public.GET("/tags", func(c *gin.Context) {
			handler.GetTagsHandler(c, tagService)
		})
		public.GET("/tags/:id", func(c *gin.Context) {
			handler.GetTagHandler(c, tagService)
		})

		public.GET("/folders", func(c *gin.Context) {
			handler.GetFoldersHandler(c, folderService)
		})
		public.GET("/folders/:id", func(c *gin.Context) {
			handler.GetFolderHandler(c, folderService)
		})
		public.GET("/users/:userId/folders", func(c *gin.Context) {
			handler.GetFoldersByUserHandler(c, folderService)
		})

		public.GET("/images/:id", func(c *gin.Context) {
			handler.GetImageHandler(c, imagesRepo)
		})

		public.GET("/recommendations/guest", func(c *gin.Context) {
			handler.GetGuestPostsHandler(c, recService)
		})
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/users")
		{
			user.GET("/account", func(c *gin.Context) {
				handler.GetAccountHandler(c, userService)
			})
			user.PUT("/account", func(c *gin.Context) {
				handler.UpdateUserHandler(c, userService)
			})
			user.DELETE("/account", func(c *gin.Context) {
				handler.DeleteUserHandler(c, userService, sessionRepo)
			})
			user.POST("/preferred-tags", func(c *gin.Context) {
				handler.AddPreferredTagsHandler(c, userService)
			})
			user.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, sessionRepo)
			})
			user.GET("/stats", statsHandler.GetUserStats)
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", func(c *gin.Context) {
				handler.GetActiveSessionsHandler(c, sessionRepo)
			})
			sessions.DELETE("/:id", func(c *gin.Context) {
				handler.EndSessionHandler(c, sessionRepo)
			})
			sessions.POST("/logout-all", func(c *gin.Context) {
				handler.LogoutAllSessionsHandler(c, sessionRepo)
			})
		}

		posts := protected.Group("/posts")
		{
			posts.POST("", func(c *gin.Context) {
				handler.CreatePostHandler(c, postService, userService)
			})
			posts.PUT("/:id", func(c *gin.Context) {
				handler.UpdatePostHandler(c, postService)
			})
			posts.DELETE("/:id", func(c *gin.Context) {
				handler.DeletePostHandler(c, postService, userService)
			})
			posts.POST("/reindex", func(c *gin.Context) {
				handler.ReindexPostsHandler(c, postService)
			})
		}

		tags := protected.Group("/tags")
		{
			tags.POST("", func(c *gin.Context) {
				handler.CreateTagHandler(c, tagService)
			})
			tags.POST("/from-prompt", func(c *gin.Context) {
				handler.CreateTagsFromPromptHandler(c, tagService)
			})
			tags.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteTagHandler(c, tagService)
			})
		}

		folders := protected.Group("/folders")
		{
			folders.POST("", func(c *gin.Context) {
				handler.CreateFolderHandler(c, folderService, userService)
			})
			folders.PUT("/:id", func(c *gin.Context) {
				handler.UpdateFolderHandler(c, folderService)
			})
			folders.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteFolderHandler(c, folderService, userService)
			})
		}

		protected.GET("/recommendations/posts", func(c *gin.Context) {
			handler.GetRecommendationsHandler(c, recService, userService)
		})
	}

	return router
}

func main() {
	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	defer func() {
		if utils.MongoClient != nil {
			utils.MongoClient.Disconnect(context.Background())
		}
		if utils.RedisClient != nil {
			utils.RedisClient.Close()
		}
	}()

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
