package service

import (
	"context"
	"errors"

	"social-im/internal/dto"
	"social-im/internal/model"
	"social-im/pkg/logger"
	"social-im/pkg/websocket"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MomentService 动态与评论
type MomentService struct {
	moments  MomentStore
	notifier Notifier
	newID    func() string
}

func NewMomentService(moments MomentStore, notifier Notifier) *MomentService {
	return &MomentService{moments: moments, notifier: notifier, newID: uuid.NewString}
}

func (s *MomentService) CreateMoment(ctx context.Context, userID uint, req dto.MomentRequest) (*model.Moment, error) {
	m := &model.Moment{
		ID:      s.newID(),
		UserID:  userID,
		Content: req.Content,
	}
	if err := s.moments.CreateMoment(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// AddComment 发表评论或回复
// 回复时父评论必须存在、未删除且属于同一条动态
func (s *MomentService) AddComment(ctx context.Context, userID uint, momentID string, req dto.CommentRequest) (*model.Comment, error) {
	moment, err := s.moments.GetMoment(ctx, momentID)
	if err != nil {
		return nil, err
	}

	var parent *model.Comment
	if req.IsReply() {
		parent, err = s.moments.GetComment(ctx, *req.ParentID)
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidParent
		}
		if err != nil {
			return nil, err
		}
		if parent.Deleted() || parent.MomentID != momentID {
			return nil, ErrInvalidParent
		}
	}

	c := &model.Comment{
		ID:       s.newID(),
		MomentID: momentID,
		UserID:   userID,
		Content:  req.Content,
		Status:   model.CommentStatusNormal,
	}
	if parent != nil {
		c.ParentID = &parent.ID
	}
	if err := s.moments.CreateComment(ctx, c); err != nil {
		return nil, err
	}

	s.notifyComment(userID, moment, parent, c)
	return c, nil
}

// notifyComment 回复通知父评论作者，一级评论通知动态作者，不通知自己
func (s *MomentService) notifyComment(userID uint, moment *model.Moment, parent, c *model.Comment) {
	target, eventType := moment.UserID, websocket.EventMomentComment
	if parent != nil {
		target, eventType = parent.UserID, websocket.EventCommentReply
	}
	if target == userID {
		return
	}
	delivered := s.notifier.Notify(target, websocket.Event{
		Type: eventType,
		From: userID,
		Data: dto.NewCommentView(c),
	})
	logger.Debug("评论通知", zap.String("comment_id", c.ID), zap.Uint("target", target), zap.Bool("delivered", delivered))
}

// ListComments 动态下未删除的评论
func (s *MomentService) ListComments(ctx context.Context, momentID string) ([]*model.Comment, error) {
	if _, err := s.moments.GetMoment(ctx, momentID); err != nil {
		return nil, err
	}
	return s.moments.ListComments(ctx, momentID)
}

// DeleteComment 软删除，只有评论作者可以删除；已删除的评论视为不存在
func (s *MomentService) DeleteComment(ctx context.Context, userID uint, commentID string) error {
	c, err := s.moments.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if c.Deleted() {
		return ErrNotFound
	}
	if c.UserID != userID {
		return ErrPermissionDenied
	}
	return s.moments.UpdateCommentStatus(ctx, commentID, model.CommentStatusDeleted)
}
