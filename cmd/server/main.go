package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"social-system/config"
	"social-system/internal/handler"
	"social-system/internal/model"
	"social-system/internal/repository"
	"social-system/internal/service"
	dbPkg "social-system/pkg/db"
	"social-system/pkg/jwt"
	"social-system/pkg/logger"
	"social-system/pkg/password"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	cfg := config.LoadConfig()

	// 2. 初始化日志系统
	logger.InitLogger(cfg.Log)
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("配置校验失败", zap.Error(err))
	}

	logger.Info("=== 社交服务启动 ===")
	logger.Info("服务器配置信息",
		zap.String("port", cfg.Server.Port),
		zap.String("database_driver", cfg.Database.Driver),
		zap.String("database_host", cfg.Database.Host),
		zap.Int("database_port", cfg.Database.Port),
		zap.String("database_name", cfg.Database.Database),
		zap.Duration("jwt_expire_time", cfg.JWT.ExpireTime),
		zap.Int("bcrypt_cost", cfg.Password.BcryptCost),
		zap.String("log_level", cfg.Log.Level),
	)
	if cfg.JWT.ExpireTime == 0 {
		logger.Warn("JWT未设置过期时间，签发的令牌永久有效")
	}

	// 3. 初始化数据库连接
	db, err := dbPkg.Open(cfg.Database)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}
	defer func() {
		if err := dbPkg.Close(db); err != nil {
			logger.Error("关闭数据库连接失败", zap.Error(err))
		}
	}()
	logger.Info("数据库连接成功")

	// 3.1 自动迁移表结构
	if err := dbPkg.AutoMigrate(db, model.All()...); err != nil {
		logger.Fatal("自动迁移失败", zap.Error(err))
	}
	logger.Info("自动迁移完成")

	// 3.2 初始化业务服务
	jwtSvc := jwt.NewJWTService(cfg.JWT)
	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendshipRepository(db)
	postRepo := repository.NewPostRepository(db)

	userSvc := service.NewUserService(userRepo, password.NewHasher(cfg.Password.BcryptCost), jwtSvc)
	friendSvc := service.NewFriendshipService(friendRepo, userRepo)
	postSvc := service.NewPostService(postRepo, friendSvc)

	// 4. 设置Gin模式
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 5. 创建Gin路由
	router := handler.NewRouter(handler.Deps{
		Users:       userSvc,
		Friendships: friendSvc,
		Posts:       postSvc,
		Auth:        jwtSvc,
		HealthCheck: func() error { return dbPkg.HealthCheck(db) },
	})

	// 6. 创建HTTP服务器
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 7. 启动HTTP服务器
	go func() {
		logger.Info("HTTP服务器启动", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP服务器启动失败", zap.Error(err))
		}
	}()

	// 8. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("正在关闭服务器...")

	// 设置关闭超时
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 关闭HTTP服务器
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("HTTP服务器关闭失败", zap.Error(err))
	}

	logger.Info("服务器已安全关闭")
}
