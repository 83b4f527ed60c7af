package model

import (
	"time"
)

// FriendshipStatus 好友关系状态
type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
)

// Friendship 好友关系（有向边：Requester -> Addressee）
// 同一有序对 (RequesterID, AddresseeID) 只允许一条记录
// 接受请求只修改 Status，不会插入反向记录

type Friendship struct {
	ID          uint             `gorm:"primaryKey"`
	RequesterID uint             `gorm:"not null;uniqueIndex:idx_friendship_pair,priority:1;comment:请求发起者ID"`
	AddresseeID uint             `gorm:"not null;uniqueIndex:idx_friendship_pair,priority:2;index;comment:请求接收者ID"`
	Status      FriendshipStatus `gorm:"type:varchar(32);not null;default:'pending';comment:关系状态"`
	CreatedAt   time.Time        `gorm:"comment:创建时间"`
	UpdatedAt   time.Time        `gorm:"comment:更新时间"`

	Requester *User `gorm:"foreignKey:RequesterID"`
	Addressee *User `gorm:"foreignKey:AddresseeID"`
}

func (Friendship) TableName() string { return "friendship" }
