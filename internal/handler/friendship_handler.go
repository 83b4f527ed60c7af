package handler

import (
	"social-system/pkg/response"

	"github.com/gin-gonic/gin"
)

// FriendshipHandler 好友关系处理器
type FriendshipHandler struct {
	service FriendshipService
}

// NewFriendshipHandler 创建FriendshipHandler实例
func NewFriendshipHandler(s FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{service: s}
}

type friendReq struct {
	FriendID uint `json:"friendId" binding:"required"`
}

// SendRequest 向 friendId 发送好友请求，发起者取自令牌
func (h *FriendshipHandler) SendRequest(c *gin.Context) {
	identity, ok := identityOf(c)
	if !ok {
		return
	}

	var r friendReq
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, "friendId is required")
		return
	}

	id, err := h.service.SendRequest(c.Request.Context(), identity.UserID, r.FriendID)
	if err != nil {
		writeError(c, err, "Failed to send friend request")
		return
	}

	response.Created(c, "Friend request sent successfully", id)
}

// AcceptRequest 接受 friendId 发来的好友请求
func (h *FriendshipHandler) AcceptRequest(c *gin.Context) {
	identity, ok := identityOf(c)
	if !ok {
		return
	}

	var r friendReq
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, "friendId is required")
		return
	}

	if err := h.service.Accept(c.Request.Context(), identity.UserID, r.FriendID); err != nil {
		writeError(c, err, "Failed to accept friend request")
		return
	}

	response.Success(c, "Friend request accepted successfully")
}

// PendingRequests 发给当前用户的待处理请求
func (h *FriendshipHandler) PendingRequests(c *gin.Context) {
	identity, ok := identityOf(c)
	if !ok {
		return
	}

	requests, err := h.service.PendingRequests(c.Request.Context(), identity.UserID)
	if err != nil {
		writeError(c, err, "Failed to fetch friend requests")
		return
	}

	response.Data(c, gin.H{"requests": response.FilterFriendRequests(requests)})
}

// Friends 当前用户的好友列表
func (h *FriendshipHandler) Friends(c *gin.Context) {
	identity, ok := identityOf(c)
	if !ok {
		return
	}

	friends, err := h.service.Friends(c.Request.Context(), identity.UserID)
	if err != nil {
		writeError(c, err, "Failed to fetch friends")
		return
	}

	response.Data(c, gin.H{"friends": response.FilterUsers(friends)})
}
