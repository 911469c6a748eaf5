package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"social-im/internal/dto"
	"social-im/internal/model"
	"social-im/pkg/password"
)

func init() {
	password.Cost = bcrypt.MinCost
}

func TestUserService_RegisterRejectsDuplicate(t *testing.T) {
	users := &mockUserStore{}
	tokens := &mockTokenIssuer{}
	users.On("ExistsConflict", mock.Anything, "alice", "alice@example.com", "").Return(true, nil)

	svc := NewUserService(users, tokens)
	_, _, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "Password123",
	})

	assert.ErrorIs(t, err, ErrDuplicate)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register(t *testing.T) {
	users := &mockUserStore{}
	tokens := &mockTokenIssuer{}
	users.On("ExistsConflict", mock.Anything, "alice", "alice@example.com", "13800000000").Return(false, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) { args.Get(1).(*model.User).ID = 11 }).
		Return(nil)
	tokens.On("GenerateToken", uint(11), "alice").Return("tok", nil)

	svc := NewUserService(users, tokens)
	u, token, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: " alice ",
		Email:    "alice@example.com",
		Password: "Password123!",
		Phone:    "13800000000",
	})

	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, "alice", u.Username)
	require.NotNil(t, u.Phone)
	assert.Equal(t, "13800000000", *u.Phone)
	assert.True(t, password.Verify("Password123!", u.PasswordHash))
	users.AssertExpectations(t)
}

func TestUserService_Login(t *testing.T) {
	hash, err := password.Hash("Password123")
	require.NoError(t, err)
	stored := &model.User{ID: 3, Username: "bob", PasswordHash: hash}

	users := &mockUserStore{}
	tokens := &mockTokenIssuer{}
	users.On("GetByAccount", mock.Anything, "bob@example.com").Return(stored, nil)
	users.On("GetByAccount", mock.Anything, "ghost").Return(nil, ErrNotFound)
	tokens.On("GenerateToken", uint(3), "bob").Return("tok", nil)
	svc := NewUserService(users, tokens)

	_, _, err = svc.Login(context.Background(), dto.LoginRequest{Account: "ghost", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), dto.LoginRequest{Account: "BOB@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	u, token, err := svc.Login(context.Background(), dto.LoginRequest{Account: "BOB@example.com", Password: "Password123"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), u.ID)
	assert.Equal(t, "tok", token)
}
