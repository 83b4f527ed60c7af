package handler

import (
	"net/http"

	"social-system/pkg/logger"
	"social-system/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler 用户处理器
type UserHandler struct {
	service UserService
}

// NewUserHandler 创建UserHandler实例
func NewUserHandler(s UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Register 用户注册
func (h *UserHandler) Register(c *gin.Context) {
	type req struct {
		Username string `json:"username" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, "username, name and password are required")
		return
	}

	id, err := h.service.Register(c.Request.Context(), r.Username, r.Name, r.Password)
	if err != nil {
		writeError(c, err, "Failed to register user")
		return
	}

	logger.Info("用户注册成功", zap.Uint("user_id", id), zap.String("username", r.Username))
	response.Created(c, "User registered successfully", id)
}

// Login 用户登录，返回访问令牌
func (h *UserHandler) Login(c *gin.Context) {
	type req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, "username and password are required")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), r.Username, r.Password)
	if err != nil {
		writeError(c, err, "Failed to login")
		return
	}

	c.JSON(http.StatusOK, response.Response{Message: "Login successful", ID: user.ID, Token: token})
}

// Profile 获取当前用户资料（需要JWT认证）
func (h *UserHandler) Profile(c *gin.Context) {
	identity, ok := identityOf(c)
	if !ok {
		return
	}

	user, err := h.service.Profile(c.Request.Context(), identity.UserID)
	if err != nil {
		writeError(c, err, "Failed to fetch profile")
		return
	}

	response.Data(c, gin.H{"user": response.FilterUserInfo(user)})
}
