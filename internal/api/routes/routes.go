package routes

import (
	"time"

	"github.com/IBM/sarama"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pkjaknap/social-media-API/docs"
	"github.com/pkjaknap/social-media-API/internal/api/handlers"
	"github.com/pkjaknap/social-media-API/internal/api/middleware"
	"github.com/pkjaknap/social-media-API/internal/config"
	"github.com/pkjaknap/social-media-API/internal/repositories/mongodb"
	"github.com/pkjaknap/social-media-API/internal/services"
)

type Router struct {
	engine        *gin.Engine
	authHandler   *handlers.AuthHandler
	friendHandler *handlers.FriendHandler
	postHandler   *handlers.PostHandler
	feedHandler   *handlers.FeedHandler
	rateLimitMW   *middleware.RateLimitMiddleware
	authMW        *middleware.AuthMiddleware
}

func NewRouter(
	db *mongo.Database,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	// Add middlewares
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	engine.Use(middleware.LogApi())

	// Initialize repositories
	userRepo := mongodb.NewUserRepository(db)
	friendRequestRepo := mongodb.NewFriendRequestRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	// Initialize services
	eventService := services.NewEventService(producer, cfg.Kafka.Topic)
	redisService := services.NewRedisService(redisClient)
	authService := services.NewAuthService(userRepo, eventService, cfg.JWT.Secret, cfg.JWT.ExpirationTime)
	friendService := services.NewFriendService(userRepo, friendRequestRepo, eventService)
	postService := services.NewPostService(postRepo, eventService)
	feedService := services.NewFeedService(userRepo, postRepo)

	return &Router{
		engine:        engine,
		authHandler:   handlers.NewAuthHandler(authService),
		friendHandler: handlers.NewFriendHandler(friendService),
		postHandler:   handlers.NewPostHandler(postService),
		feedHandler:   handlers.NewFeedHandler(feedService),
		rateLimitMW:   middleware.NewRateLimitMiddleware(redisService),
		authMW:        middleware.NewAuthMiddleware(cfg.JWT.Secret),
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Use(r.rateLimitMW.RateLimitIP(20, time.Minute))
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
	}

	// Authenticated routes
	protected := api.Group("/")
	protected.Use(r.authMW.RequireAuth())
	protected.Use(r.rateLimitMW.RateLimit(100, time.Minute))
	{
		friends := protected.Group("/friends")
		{
			friends.POST("/request", r.friendHandler.SendRequest)
			friends.PUT("/request/:requestId", r.friendHandler.ResolveRequest)
			friends.GET("/requests", r.friendHandler.ListRequests)
		}

		posts := protected.Group("/posts")
		{
			posts.POST("", r.postHandler.CreatePost)
			posts.POST("/:postId/comments", r.postHandler.AddComment)
		}

		protected.GET("/feed", r.feedHandler.GetFeed)
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
