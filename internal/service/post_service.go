package service

import (
	"context"
	"fmt"
	"strings"

	"social-system/internal/model"
	"social-system/internal/repository"
)

// PostService 帖子服务
type PostService struct {
	postRepo *repository.PostRepository
	friends  *FriendshipService
}

// NewPostService 创建PostService实例
func NewPostService(postRepo *repository.PostRepository, friends *FriendshipService) *PostService {
	return &PostService{
		postRepo: postRepo,
		friends:  friends,
	}
}

// Create 发帖，内容为空（或只有空白）时返回 ErrEmptyContent
func (s *PostService) Create(ctx context.Context, authorID uint, content string) (uint, error) {
	if strings.TrimSpace(content) == "" {
		return 0, ErrEmptyContent
	}

	post := &model.Post{
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	return post.ID, nil
}

// ListVisible 返回 viewer 可见的 subject 的帖子
// 本人或好友可见；否则返回空列表而不是错误
func (s *PostService) ListVisible(ctx context.Context, viewerID, subjectID uint) ([]*model.Post, error) {
	if viewerID != subjectID {
		ok, err := s.friends.AreFriends(ctx, viewerID, subjectID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return []*model.Post{}, nil
		}
	}

	posts, err := s.postRepo.ListByAuthor(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}
