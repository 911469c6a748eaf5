package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"social-im/config"
	"social-im/internal/handler"
	"social-im/internal/model"
	"social-im/internal/repository"
	"social-im/internal/service"
	dbPkg "social-im/pkg/db"
	"social-im/pkg/jwt"
	"social-im/pkg/logger"
	"social-im/pkg/redis"
	"social-im/pkg/response"
	"social-im/pkg/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	cfg := config.LoadConfig()

	// 2. 初始化日志系统
	log, err := logger.InitLogger(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("=== social-im 启动 ===",
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("database_host", cfg.Database.Host),
		zap.String("database_name", cfg.Database.Database),
		zap.Duration("jwt_expire_time", cfg.JWT.ExpireTime),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 数据库
	orm, err := dbPkg.InitDB(cfg.Database, cfg.App.Env)
	if err != nil {
		log.Fatal("数据库连接失败", zap.Error(err))
	}
	defer func() {
		if err := dbPkg.CloseDB(); err != nil {
			log.Error("关闭数据库连接失败", zap.Error(err))
		}
	}()

	if err := dbPkg.AutoMigrate(
		&model.User{},
		&model.Friendship{},
		&model.Message{},
		&model.Conversation{},
		&model.Moment{},
		&model.Comment{},
	); err != nil {
		log.Fatal("自动迁移失败", zap.Error(err))
	}
	log.Info("自动迁移完成")

	// 4. Redis 可选，不可用时在线状态、未读缓存与限流降级
	if err := redis.InitRedis(cfg.Redis); err != nil {
		log.Warn("Redis不可用，以降级模式运行", zap.Error(err))
	} else {
		defer redis.Close()
		log.Info("Redis连接成功")
	}

	// 5. 依赖组装
	jwtSvc := jwt.NewJWTService(cfg.JWT)
	wsManager := websocket.NewManager()
	notifier := websocket.NewNotifier(wsManager)

	userRepo := repository.NewUserRepository(orm)
	messageRepo := repository.NewMessageRepository(orm)
	conversationRepo := repository.NewConversationRepository(orm)
	friendRepo := repository.NewFriendshipRepository(orm)
	momentRepo := repository.NewMomentRepository(orm)

	userHandler := handler.NewUserHandler(service.NewUserService(userRepo, jwtSvc))
	messageHandler := handler.NewMessageHandler(service.NewMessageService(messageRepo, conversationRepo, userRepo, notifier))
	conversationHandler := handler.NewConversationHandler(service.NewConversationService(conversationRepo))
	friendHandler := handler.NewFriendHandler(service.NewFriendService(friendRepo, userRepo, notifier))
	momentHandler := handler.NewMomentHandler(service.NewMomentService(momentRepo, notifier))
	wsHandler := websocket.NewHandler(jwtSvc, wsManager, notifier, userRepo, cfg.WebSocket)

	// 6. 路由
	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(corsMiddleware(cfg.Server.CORSOrigins))
	router.Use(logger.RequestLogger())
	router.Use(logger.Recovery())
	if cfg.RateLimit.Enabled {
		router.Use(redis.RateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window))
	}

	router.GET("/health", healthCheck)
	router.GET("/ws", wsHandler.Serve)

	auth := jwtSvc.AuthMiddleware()
	v1 := router.Group("/api/v1")
	{
		v1.GET("/contracts", handler.Contracts)

		users := v1.Group("/users")
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.GET("/profile", auth, userHandler.GetProfile)
		users.GET("/online", auth, userHandler.GetOnlineUsers)
		users.GET("/:user_id/online", auth, userHandler.CheckUserOnline)

		v1.POST("/messages", auth, messageHandler.SendMessage)

		conversations := v1.Group("/conversations", auth)
		conversations.GET("", conversationHandler.List)
		conversations.GET("/:user_id/messages", messageHandler.GetPrivateMessages)
		conversations.PUT("/:user_id/read", messageHandler.MarkRead)

		friends := v1.Group("/friends", auth)
		friends.GET("", friendHandler.List)
		friends.DELETE("/:friend_id", friendHandler.Remove)
		friends.POST("/requests", friendHandler.SendRequest)
		friends.GET("/requests", friendHandler.Incoming)
		friends.PUT("/requests/:request_id/accept", friendHandler.Accept)

		moments := v1.Group("/moments", auth)
		moments.POST("", momentHandler.CreateMoment)
		moments.GET("/:moment_id/comments", momentHandler.ListComments)
		moments.POST("/:moment_id/comments", momentHandler.AddComment)

		v1.DELETE("/comments/:comment_id", auth, momentHandler.DeleteComment)
	}

	// 7. HTTP服务器
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP服务器启动", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP服务器启动失败", zap.Error(err))
		}
	}()

	// 8. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("正在关闭服务器...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP服务器关闭失败", zap.Error(err))
	}
	log.Info("服务器已安全关闭")
}

// corsMiddleware 未配置或包含 * 时允许所有来源
func corsMiddleware(origins []string) gin.HandlerFunc {
	c := cors.DefaultConfig()
	c.AddAllowHeaders("Authorization")
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return cors.New(c)
}

func healthCheck(c *gin.Context) {
	status := gin.H{"database": "ok", "redis": "disabled"}
	code := http.StatusOK
	if err := dbPkg.HealthCheck(); err != nil {
		status["database"] = "down"
		code = http.StatusServiceUnavailable
	}
	if redis.Enabled() {
		status["redis"] = "ok"
		if err := redis.HealthCheck(); err != nil {
			status["redis"] = "down"
		}
	}
	status["time"] = time.Now().Format(time.RFC3339)
	if code != http.StatusOK {
		response.Error(c, code, "服务不可用")
		return
	}
	response.Success(c, status)
}
