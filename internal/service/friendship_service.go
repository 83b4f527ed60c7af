package service

import (
	"context"
	"errors"
	"fmt"

	"social-system/internal/model"
	"social-system/internal/repository"
)

// FriendshipService 好友关系服务
type FriendshipService struct {
	friendRepo *repository.FriendshipRepository
	userRepo   *repository.UserRepository
}

// NewFriendshipService 创建FriendshipService实例
func NewFriendshipService(friendRepo *repository.FriendshipRepository, userRepo *repository.UserRepository) *FriendshipService {
	return &FriendshipService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// SendRequest 发送好友请求 requester -> addressee
// 只检查同方向的记录，反向请求互不影响
func (s *FriendshipService) SendRequest(ctx context.Context, requesterID, addresseeID uint) (uint, error) {
	// 不能加自己
	if requesterID == addresseeID {
		return 0, ErrSelfRequest
	}

	// 检查接收者是否存在
	if _, err := s.userRepo.GetByID(ctx, addresseeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("get addressee: %w", err)
	}

	exists, err := s.friendRepo.Exists(ctx, requesterID, addresseeID)
	if err != nil {
		return 0, fmt.Errorf("check friend request: %w", err)
	}
	if exists {
		return 0, ErrDuplicateRequest
	}

	edge := &model.Friendship{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      model.FriendshipPending,
	}
	if err := s.friendRepo.Create(ctx, edge); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, ErrDuplicateRequest
		}
		return 0, fmt.Errorf("create friend request: %w", err)
	}
	return edge.ID, nil
}

// Accept 接收者 addressee 接受来自 requester 的请求
// 请求不存在或已被接受都返回 ErrNoSuchRequest
func (s *FriendshipService) Accept(ctx context.Context, addresseeID, requesterID uint) error {
	n, err := s.friendRepo.Accept(ctx, requesterID, addresseeID)
	if err != nil {
		return fmt.Errorf("accept friend request: %w", err)
	}
	if n == 0 {
		return ErrNoSuchRequest
	}
	return nil
}

// AreFriends 是否互为好友（已接受，任一方向）
func (s *FriendshipService) AreFriends(ctx context.Context, userID, otherUserID uint) (bool, error) {
	ok, err := s.friendRepo.AreFriends(ctx, userID, otherUserID)
	if err != nil {
		return false, fmt.Errorf("check friendship: %w", err)
	}
	return ok, nil
}

// PendingRequests 发给当前用户、尚未处理的好友请求
func (s *FriendshipService) PendingRequests(ctx context.Context, addresseeID uint) ([]*model.Friendship, error) {
	requests, err := s.friendRepo.ListPendingFor(ctx, addresseeID)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}
	return requests, nil
}

// Friends 当前用户的好友列表
func (s *FriendshipService) Friends(ctx context.Context, userID uint) ([]*model.User, error) {
	friends, err := s.friendRepo.ListFriends(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	return friends, nil
}
