package service

import (
	"errors"

	"social-im/internal/repository"
)

var (
	ErrNotFound           = repository.ErrNotFound
	ErrDuplicate          = repository.ErrDuplicate
	ErrPermissionDenied   = errors.New("无权限执行该操作")
	ErrInvalidParent      = errors.New("回复的评论不存在或已删除")
	ErrInvalidCredentials = errors.New("账号或密码错误")
	ErrInvalidTarget      = errors.New("不能对自己执行该操作")
)
