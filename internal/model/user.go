package model

import (
	"time"
)

// User 用户模型
// 用户名唯一且创建后不可修改
// 说明：密码仅存储哈希（PasswordHash），不存储明文

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"type:varchar(64);not null;uniqueIndex;comment:用户名"`
	Name         string    `gorm:"type:varchar(64);not null;comment:显示名"`
	PasswordHash string    `gorm:"type:varchar(255);not null;comment:密码哈希"`
	CreatedAt    time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名（因全局配置使用单数表名，这里与结构体名一致为 user）
func (User) TableName() string { return "user" }
