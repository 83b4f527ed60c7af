package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"social-system/internal/model"
	"social-system/internal/repository"
	"social-system/pkg/password"
)

// TokenIssuer 签发访问令牌
type TokenIssuer interface {
	Issue(userID uint, username string) (string, error)
}

// UserService 用户服务：注册、凭证校验、登录
type UserService struct {
	repo   *repository.UserRepository
	hasher *password.Hasher
	tokens TokenIssuer
}

// NewUserService 创建UserService实例
func NewUserService(repo *repository.UserRepository, hasher *password.Hasher, tokens TokenIssuer) *UserService {
	return &UserService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register 注册，返回新用户ID
func (s *UserService) Register(ctx context.Context, username, name, plainPassword string) (uint, error) {
	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)
	if username == "" || name == "" || plainPassword == "" {
		return 0, ErrInvalidInput
	}
	if len(plainPassword) > password.MaxLength {
		return 0, ErrPasswordTooLong
	}

	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return 0, ErrDuplicateUsername
	}

	// 密码哈希
	hash, err := s.hasher.Hash(plainPassword)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Name:         name,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// 并发注册时由唯一索引兜底
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, ErrDuplicateUsername
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return user.ID, nil
}

// Verify 校验用户名和密码，用户不存在与密码错误返回同一错误
func (s *UserService) Verify(ctx context.Context, username, plainPassword string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || plainPassword == "" {
		return nil, ErrAuthFailure
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAuthFailure
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !s.hasher.Verify(plainPassword, u.PasswordHash) {
		return nil, ErrAuthFailure
	}
	return u, nil
}

// Login 登录，校验通过后签发令牌
func (s *UserService) Login(ctx context.Context, username, plainPassword string) (*model.User, string, error) {
	u, err := s.Verify(ctx, username, plainPassword)
	if err != nil {
		return nil, "", err
	}
	token, err := s.tokens.Issue(u.ID, u.Username)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return u, token, nil
}

// Profile 获取用户资料
func (s *UserService) Profile(ctx context.Context, userID uint) (*model.User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
