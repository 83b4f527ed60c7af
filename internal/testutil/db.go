// Package testutil 测试辅助：内存 sqlite 数据库
package testutil

import (
	"testing"

	"social-system/config"
	"social-system/internal/model"
	"social-system/pkg/db"

	"gorm.io/gorm"
)

// NewTestDB 打开一个已迁移的内存数据库，测试结束时自动关闭
// ":memory:" 每个连接是独立库，因此限制为单连接
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := db.Open(config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:", MaxOpen: 1, MaxIdle: 1})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(conn) })

	if err := db.AutoMigrate(conn, model.All()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return conn
}

// CreateUser 直接写入用户记录（不经过密码哈希），返回用户
func CreateUser(t *testing.T, conn *gorm.DB, username string) *model.User {
	t.Helper()

	u := &model.User{Username: username, Name: username, PasswordHash: "x"}
	if err := conn.Create(u).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return u
}
