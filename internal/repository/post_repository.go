package repository

import (
	"context"

	"social-system/internal/model"

	"gorm.io/gorm"
)

// PostRepository 帖子数据仓储
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建PostRepository实例
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create 创建帖子
func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	return translate(r.db.WithContext(ctx).Create(post).Error)
}

// ListByAuthor 获取作者的全部帖子，新帖在前
func (r *PostRepository) ListByAuthor(ctx context.Context, authorID uint) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	return posts, err
}
