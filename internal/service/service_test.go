package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"social-system/internal/repository"
	"social-system/internal/testutil"
	"social-system/pkg/db"
	"social-system/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubIssuer struct {
	err error
}

func (s stubIssuer) Issue(userID uint, username string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return fmt.Sprintf("token-%d-%s", userID, username), nil
}

type services struct {
	conn    *gorm.DB
	users   *UserService
	friends *FriendshipService
	posts   *PostService
}

func newServices(t *testing.T, issuer TokenIssuer) *services {
	t.Helper()
	conn := testutil.NewTestDB(t)
	userRepo := repository.NewUserRepository(conn)
	friends := NewFriendshipService(repository.NewFriendshipRepository(conn), userRepo)
	return &services{
		conn:    conn,
		users:   NewUserService(userRepo, password.NewHasher(bcrypt.MinCost), issuer),
		friends: friends,
		posts:   NewPostService(repository.NewPostRepository(conn), friends),
	}
}

func mustRegister(t *testing.T, s *services, username string) uint {
	t.Helper()
	id, err := s.users.Register(context.Background(), username, username+" name", "pw-"+username)
	require.NoError(t, err)
	return id
}

func TestUserService_Register(t *testing.T) {
	s := newServices(t, stubIssuer{})
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		display  string
		password string
		wantErr  error
	}{
		{name: "success", username: "alice", display: "Alice", password: "secret"},
		{name: "duplicate username", username: "alice", display: "Alice Again", password: "other", wantErr: ErrDuplicateUsername},
		{name: "duplicate after trim", username: "  alice ", display: "Alice", password: "x", wantErr: ErrDuplicateUsername},
		{name: "missing username", username: "   ", display: "X", password: "x", wantErr: ErrInvalidInput},
		{name: "missing name", username: "bob", display: "", password: "x", wantErr: ErrInvalidInput},
		{name: "missing password", username: "bob", display: "Bob", password: "", wantErr: ErrInvalidInput},
		{name: "password over bcrypt limit", username: "bob", display: "Bob", password: strings.Repeat("p", password.MaxLength+1), wantErr: ErrPasswordTooLong},
		{name: "password at bcrypt limit", username: "carol", display: "Carol", password: strings.Repeat("p", password.MaxLength)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, err := s.users.Register(ctx, tc.username, tc.display, tc.password)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Zero(t, id)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, id)
		})
	}
}

func TestUserService_PasswordNeverStoredInPlaintext(t *testing.T) {
	s := newServices(t, stubIssuer{})
	id := mustRegister(t, s, "alice")

	u, err := s.users.Profile(context.Background(), id)
	require.NoError(t, err)
	assert.NotEqual(t, "pw-alice", u.PasswordHash)
	assert.NotContains(t, u.PasswordHash, "pw-alice")
}

func TestUserService_VerifyAndLogin(t *testing.T) {
	s := newServices(t, stubIssuer{})
	ctx := context.Background()
	id := mustRegister(t, s, "alice")

	u, err := s.users.Verify(ctx, "alice", "pw-alice")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)

	_, err = s.users.Verify(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrAuthFailure)

	_, err = s.users.Verify(ctx, "ghost", "pw-alice")
	assert.ErrorIs(t, err, ErrAuthFailure)

	_, token, err := s.users.Login(ctx, "alice", "pw-alice")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("token-%d-alice", id), token)

	_, token, err = s.users.Login(ctx, "alice", "nope")
	assert.ErrorIs(t, err, ErrAuthFailure)
	assert.Empty(t, token)
}

func TestUserService_LoginIssuerFailure(t *testing.T) {
	s := newServices(t, stubIssuer{err: errors.New("signing broke")})
	mustRegister(t, s, "alice")

	_, _, err := s.users.Login(context.Background(), "alice", "pw-alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signing broke")
}

func TestUserService_ProfileMissing(t *testing.T) {
	s := newServices(t, stubIssuer{})
	_, err := s.users.Profile(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFriendshipService_SendRequest(t *testing.T) {
	s := newServices(t, stubIssuer{})
	ctx := context.Background()
	alice := mustRegister(t, s, "alice")
	bob := mustRegister(t, s, "bob")

	id, err := s.friends.SendRequest(ctx, alice, bob)
	require.NoError(t, err)
	assert.NotZero(t, id)

	_, err = s.friends.SendRequest(ctx, alice, bob)
	assert.ErrorIs(t, err, ErrDuplicateRequest)

	// 反向请求是独立的边
	_, err = s.friends.SendRequest(ctx, bob, alice)
	assert.NoError(t, err)

	_, err = s.friends.SendRequest(ctx, alice, alice)
	assert.ErrorIs(t, err, ErrSelfRequest)

	_, err = s.friends.SendRequest(ctx, alice, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFriendshipService_Accept(t *testing.T) {
	s := newServices(t, stubIssuer{})
	ctx := context.Background()
	alice := mustRegister(t, s, "alice")
	bob := mustRegister(t, s, "bob")

	// 没有请求时接受失败
	assert.ErrorIs(t, s.friends.Accept(ctx, bob, alice), ErrNoSuchRequest)

	_, err := s.friends.SendRequest(ctx, alice, bob)
	require.NoError(t, err)

	// 只有接收者能接受
	assert.ErrorIs(t, s.friends.Accept(ctx, alice, bob), ErrNoSuchRequest)

	require.NoError(t, s.friends.Accept(ctx, bob, alice))
	assert.ErrorIs(t, s.friends.Accept(ctx, bob, alice), ErrNoSuchRequest, "second accept collapses to no such request")

	ok, err := s.friends.AreFriends(ctx, alice, bob)
	require.NoError(t, err)
	assert.True(t, ok)

	pending, err := s.friends.PendingRequests(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, pending)

	friends, err := s.friends.Friends(ctx, alice)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, bob, friends[0].ID)
}

func TestPostService_Create(t *testing.T) {
	s := newServices(t, stubIssuer{})
	ctx := context.Background()
	alice := mustRegister(t, s, "alice")

	_, err := s.posts.Create(ctx, alice, "")
	assert.ErrorIs(t, err, ErrEmptyContent)
	_, err = s.posts.Create(ctx, alice, " \n\t")
	assert.ErrorIs(t, err, ErrEmptyContent)

	id, err := s.posts.Create(ctx, alice, "hello")
	require.NoError(t, err)

	own, err := s.posts.ListVisible(ctx, alice, alice)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, id, own[0].ID)
	assert.Equal(t, "hello", own[0].Content)
}

func TestPostService_ListVisible(t *testing.T) {
	s := newServices(t, stubIssuer{})
	ctx := context.Background()
	alice := mustRegister(t, s, "alice")
	bob := mustRegister(t, s, "bob")
	charlie := mustRegister(t, s, "charlie")

	_, err := s.friends.SendRequest(ctx, alice, bob)
	require.NoError(t, err)

	postID, err := s.posts.Create(ctx, alice, "hi")
	require.NoError(t, err)

	// 未接受前不可见
	visible, err := s.posts.ListVisible(ctx, bob, alice)
	require.NoError(t, err)
	assert.Empty(t, visible)

	require.NoError(t, s.friends.Accept(ctx, bob, alice))

	visible, err = s.posts.ListVisible(ctx, bob, alice)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, postID, visible[0].ID)

	// 好友关系对称：请求者同样能看到接收者的帖子
	bobPost, err := s.posts.Create(ctx, bob, "bob here")
	require.NoError(t, err)
	visible, err = s.posts.ListVisible(ctx, alice, bob)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, bobPost, visible[0].ID)

	stranger, err := s.posts.ListVisible(ctx, charlie, alice)
	require.NoError(t, err)
	assert.NotNil(t, stranger)
	assert.Empty(t, stranger)
}

func TestServices_StoreFailureIsWrapped(t *testing.T) {
	s := newServices(t, stubIssuer{})
	require.NoError(t, db.Close(s.conn))
	ctx := context.Background()

	_, err := s.users.Register(ctx, "alice", "Alice", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateUsername)

	_, err = s.posts.Create(ctx, 1, "hello")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyContent)

	err = s.friends.Accept(ctx, 1, 2)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSuchRequest)
}
