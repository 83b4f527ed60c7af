package handler

import (
	"time"

	"social-system/pkg/jwt"
	"social-system/pkg/logger"
	"social-system/pkg/response"

	"github.com/gin-gonic/gin"
)

// Deps 路由依赖
type Deps struct {
	Users       UserService
	Friendships FriendshipService
	Posts       PostService
	Auth        *jwt.JWTService
	HealthCheck func() error
}

// NewRouter 创建Gin路由并绑定全部接口
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()

	// 使用中间件
	router.Use(logger.RequestLogger())         // 请求日志中间件
	router.Use(logger.ErrorLoggerMiddleware()) // panic恢复中间件

	userHandler := NewUserHandler(d.Users)
	friendHandler := NewFriendshipHandler(d.Friendships)
	postHandler := NewPostHandler(d.Posts)

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		if d.HealthCheck != nil {
			if err := d.HealthCheck(); err != nil {
				status = "db-down"
			}
		}
		response.Data(c, gin.H{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// 公开接口（无需认证）
	router.POST("/register", userHandler.Register)
	router.POST("/login", userHandler.Login)

	// 需要认证的接口
	auth := router.Group("")
	auth.Use(d.Auth.AuthMiddleware())
	{
		auth.GET("/profile", userHandler.Profile)

		auth.POST("/friend-request", friendHandler.SendRequest)
		auth.POST("/accept-friend-request", friendHandler.AcceptRequest)
		auth.GET("/friend-requests", friendHandler.PendingRequests)
		auth.GET("/friends", friendHandler.Friends)

		auth.POST("/posts", postHandler.CreatePost)
		auth.GET("/posts/user/:userId", postHandler.ListUserPosts)
	}

	return router
}
