package repository

import (
	"context"

	"social-system/internal/model"

	"gorm.io/gorm"
)

// FriendshipRepository 好友关系数据仓储
type FriendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository 创建FriendshipRepository实例
func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{db: db}
}

// Create 插入好友请求，同一有序对重复插入返回 ErrDuplicate
func (r *FriendshipRepository) Create(ctx context.Context, f *model.Friendship) error {
	return translate(r.db.WithContext(ctx).Create(f).Error)
}

// Exists 检查有序对 requester -> addressee 是否已有记录（不检查反向）
func (r *FriendshipRepository) Exists(ctx context.Context, requesterID, addresseeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Friendship{}).
		Where("requester_id = ? AND addressee_id = ?", requesterID, addresseeID).
		Count(&count).Error
	return count > 0, err
}

// Accept 将 requester -> addressee 的待处理请求置为已接受
// 单条 UPDATE 完成检查与修改，返回受影响行数
func (r *FriendshipRepository) Accept(ctx context.Context, requesterID, addresseeID uint) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Friendship{}).
		Where("requester_id = ? AND addressee_id = ? AND status = ?", requesterID, addresseeID, model.FriendshipPending).
		Update("status", model.FriendshipAccepted)
	return result.RowsAffected, result.Error
}

// AreFriends 两个用户之间是否存在已接受的关系（任一方向）
func (r *FriendshipRepository) AreFriends(ctx context.Context, userID, otherUserID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Friendship{}).
		Where("status = ?", model.FriendshipAccepted).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userID, otherUserID, otherUserID, userID).
		Count(&count).Error
	return count > 0, err
}

// ListPendingFor 获取发给 addressee 的待处理请求（附带请求者信息）
func (r *FriendshipRepository) ListPendingFor(ctx context.Context, addresseeID uint) ([]*model.Friendship, error) {
	var requests []*model.Friendship
	err := r.db.WithContext(ctx).
		Where("addressee_id = ? AND status = ?", addresseeID, model.FriendshipPending).
		Preload("Requester").
		Order("created_at DESC, id DESC").
		Find(&requests).Error
	return requests, err
}

// ListFriends 获取用户的全部好友（任一方向已接受）
func (r *FriendshipRepository) ListFriends(ctx context.Context, userID uint) ([]*model.User, error) {
	var edges []model.Friendship
	err := r.db.WithContext(ctx).
		Where("status = ? AND (requester_id = ? OR addressee_id = ?)", model.FriendshipAccepted, userID, userID).
		Find(&edges).Error
	if err != nil {
		return nil, err
	}

	friends := make([]*model.User, 0, len(edges))
	if len(edges) == 0 {
		return friends, nil
	}

	friendIDs := make([]uint, 0, len(edges))
	for _, e := range edges {
		if e.RequesterID == userID {
			friendIDs = append(friendIDs, e.AddresseeID)
		} else {
			friendIDs = append(friendIDs, e.RequesterID)
		}
	}

	err = r.db.WithContext(ctx).
		Where("id IN ?", friendIDs).
		Order("username ASC").
		Find(&friends).Error
	return friends, err
}
