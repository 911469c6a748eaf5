package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"social-im/internal/dto"
	"social-im/internal/model"
	"social-im/pkg/logger"
	"social-im/pkg/password"
	"social-im/pkg/redis"

	"go.uber.org/zap"
)

type UserService struct {
	users  UserStore
	tokens TokenIssuer
}

func NewUserService(users UserStore, tokens TokenIssuer) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Register 注册，用户名、邮箱、手机号任一已被占用时返回 ErrDuplicate
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, string, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)

	exists, err := s.users.ExistsConflict(ctx, username, email, phone)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", fmt.Errorf("%w: 用户名、邮箱或手机号已被注册", ErrDuplicate)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, "", err
	}
	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Nickname:     strings.TrimSpace(req.Nickname),
		Status:       redis.StatusOffline,
		LastSeen:     time.Now(),
	}
	if phone != "" {
		user.Phone = &phone
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}
	logger.Info("用户注册成功", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	return user, token, nil
}

// Login 账号可以是用户名、邮箱或手机号
func (s *UserService) Login(ctx context.Context, req dto.LoginRequest) (*model.User, string, error) {
	account := strings.TrimSpace(req.Account)
	if strings.Contains(account, "@") {
		account = strings.ToLower(account)
	}

	u, err := s.users.GetByAccount(ctx, account)
	if errors.Is(err, ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if !password.Verify(req.Password, u.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(u.ID, u.Username)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Profile 当前用户信息，Redis可用时以实时在线状态为准
func (s *UserService) Profile(ctx context.Context, userID uint) (*model.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if online, err := redis.IsUserOnline(userID); err == nil && online {
		u.Status = redis.StatusOnline
	}
	return u, nil
}
