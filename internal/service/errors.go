package service

import "errors"

// 业务错误，handler 根据这些错误决定HTTP状态码
// 其余错误（存储层失败等）一律按内部错误处理
var (
	ErrInvalidInput      = errors.New("username, name and password are required")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrAuthFailure       = errors.New("invalid username or password")
	ErrPasswordTooLong   = errors.New("password must not exceed 72 bytes")

	ErrSelfRequest      = errors.New("cannot send a friend request to yourself")
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateRequest = errors.New("friend request already sent")
	ErrNoSuchRequest    = errors.New("invalid friend request")

	ErrEmptyContent = errors.New("post content must not be empty")
)
