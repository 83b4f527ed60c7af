package model

import (
	"time"
)

// Post 帖子，创建后不可修改

type Post struct {
	ID        uint      `gorm:"primaryKey"`
	AuthorID  uint      `gorm:"not null;index;comment:作者ID"`
	Content   string    `gorm:"type:text;not null;comment:帖子内容"`
	CreatedAt time.Time `gorm:"index;comment:创建时间"`

	Author *User `gorm:"foreignKey:AuthorID"`
}

func (Post) TableName() string { return "post" }

// All 返回需要迁移的全部模型，父表在前
func All() []interface{} {
	return []interface{}{&User{}, &Friendship{}, &Post{}}
}
