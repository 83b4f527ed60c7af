package handler

import (
	"context"
	"errors"
	"net/http"

	"social-system/internal/model"
	"social-system/internal/service"
	"social-system/pkg/jwt"
	"social-system/pkg/logger"
	"social-system/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserService 用户相关业务
type UserService interface {
	Register(ctx context.Context, username, name, password string) (uint, error)
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	Profile(ctx context.Context, userID uint) (*model.User, error)
}

// FriendshipService 好友关系业务
type FriendshipService interface {
	SendRequest(ctx context.Context, requesterID, addresseeID uint) (uint, error)
	Accept(ctx context.Context, addresseeID, requesterID uint) error
	PendingRequests(ctx context.Context, addresseeID uint) ([]*model.Friendship, error)
	Friends(ctx context.Context, userID uint) ([]*model.User, error)
}

// PostService 帖子业务
type PostService interface {
	Create(ctx context.Context, authorID uint, content string) (uint, error)
	ListVisible(ctx context.Context, viewerID, subjectID uint) ([]*model.Post, error)
}

// statusFor 业务错误到HTTP状态码的映射，未知错误返回0
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, service.ErrPasswordTooLong),
		errors.Is(err, service.ErrDuplicateRequest),
		errors.Is(err, service.ErrSelfRequest),
		errors.Is(err, service.ErrNoSuchRequest),
		errors.Is(err, service.ErrEmptyContent):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAuthFailure):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return 0
	}
}

// writeError 输出错误响应
// 业务错误返回原始消息；其他错误记录日志，只返回通用消息
func writeError(c *gin.Context, err error, fallback string) {
	if status := statusFor(err); status != 0 {
		response.Error(c, status, err.Error())
		return
	}

	_ = c.Error(err)
	fields := map[string]interface{}{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}
	if identity, ok := jwt.GetIdentity(c); ok {
		fields["user_id"] = identity.UserID
	}
	logger.WithFields(fields).Error(fallback, zap.Error(err))
	response.InternalError(c, fallback)
}

// identityOf 读取认证中间件写入的身份，缺失时返回401
func identityOf(c *gin.Context) (*jwt.Identity, bool) {
	identity, ok := jwt.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "Invalid Access Token")
		c.Abort()
		return nil, false
	}
	return identity, true
}
