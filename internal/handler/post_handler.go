package handler

import (
	"strconv"

	"social-system/pkg/response"

	"github.com/gin-gonic/gin"
)

// PostHandler 帖子处理器
type PostHandler struct {
	service PostService
}

// NewPostHandler 创建PostHandler实例
func NewPostHandler(s PostService) *PostHandler {
	return &PostHandler{service: s}
}

// CreatePost 发帖
func (h *PostHandler) CreatePost(c *gin.Context) {
	identity, ok := identityOf(c)
	if !ok {
		return
	}

	// content 不加 required，空内容交给业务层返回 ErrEmptyContent
	type req struct {
		Content string `json:"content"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	id, err := h.service.Create(c.Request.Context(), identity.UserID, r.Content)
	if err != nil {
		writeError(c, err, "Failed to create post")
		return
	}

	response.Created(c, "Post created successfully", id)
}

// ListUserPosts 获取 :userId 对当前用户可见的帖子
func (h *PostHandler) ListUserPosts(c *gin.Context) {
	identity, ok := identityOf(c)
	if !ok {
		return
	}

	subjectID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil || subjectID == 0 {
		response.BadRequest(c, "invalid userId")
		return
	}

	posts, err := h.service.ListVisible(c.Request.Context(), identity.UserID, uint(subjectID))
	if err != nil {
		writeError(c, err, "Failed to fetch user posts")
		return
	}

	response.Data(c, response.FilterPosts(posts))
}
