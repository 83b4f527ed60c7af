package response

import (
	"net/http"
	"time"

	"social-system/internal/model"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Message string `json:"message,omitempty"` // 成功消息
	Error   string `json:"error,omitempty"`   // 错误消息（不包含内部细节）
	ID      uint   `json:"id,omitempty"`      // 新建记录ID
	Token   string `json:"token,omitempty"`   // 访问令牌（仅登录）
}

// Success 成功响应
func Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Message: message})
}

// Created 新建成功响应，附带记录ID
func Created(c *gin.Context, message string, id uint) {
	c.JSON(http.StatusOK, Response{Message: message, ID: id})
}

// Data 直接输出数据
func Data(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error 错误响应，使用真实HTTP状态码
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Error: message})
}

// BadRequest 400错误
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401错误，纯文本响应体
func Unauthorized(c *gin.Context, message string) {
	c.String(http.StatusUnauthorized, message)
}

// NotFound 404错误
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500错误
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

const timeLayout = time.RFC3339

// UserInfo 用户信息（隐藏敏感字段）
type UserInfo struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// FilterUserInfo 过滤用户信息，隐藏密码哈希
func FilterUserInfo(user *model.User) *UserInfo {
	if user == nil {
		return nil
	}

	return &UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(timeLayout),
	}
}

// FilterUsers 批量过滤用户信息
func FilterUsers(users []*model.User) []*UserInfo {
	out := make([]*UserInfo, 0, len(users))
	for _, u := range users {
		out = append(out, FilterUserInfo(u))
	}
	return out
}

// PostInfo 帖子响应
type PostInfo struct {
	ID        uint   `json:"id"`
	AuthorID  uint   `json:"authorId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// PostsResponse 帖子列表响应
type PostsResponse struct {
	Posts []*PostInfo `json:"posts"`
}

// FilterPosts 转换帖子列表，空列表输出 []
func FilterPosts(posts []*model.Post) *PostsResponse {
	out := make([]*PostInfo, 0, len(posts))
	for _, p := range posts {
		out = append(out, &PostInfo{
			ID:        p.ID,
			AuthorID:  p.AuthorID,
			Content:   p.Content,
			CreatedAt: p.CreatedAt.Format(timeLayout),
		})
	}
	return &PostsResponse{Posts: out}
}

// FriendRequestInfo 待处理好友请求
type FriendRequestInfo struct {
	ID        uint      `json:"id"`
	From      *UserInfo `json:"from"`
	Status    string    `json:"status"`
	CreatedAt string    `json:"createdAt"`
}

// FilterFriendRequests 转换好友请求列表
func FilterFriendRequests(requests []*model.Friendship) []*FriendRequestInfo {
	out := make([]*FriendRequestInfo, 0, len(requests))
	for _, r := range requests {
		out = append(out, &FriendRequestInfo{
			ID:        r.ID,
			From:      FilterUserInfo(r.Requester),
			Status:    string(r.Status),
			CreatedAt: r.CreatedAt.Format(timeLayout),
		})
	}
	return out
}
