package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"social-im/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      mockDb,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestWrapGormError(t *testing.T) {
	assert.NoError(t, WrapGormError(nil))
	assert.ErrorIs(t, WrapGormError(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, WrapGormError(gorm.ErrDuplicatedKey), ErrDuplicate)
	assert.ErrorIs(t, WrapGormError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}), ErrDuplicate)
	assert.ErrorIs(t, WrapGormError(&mysql.MySQLError{Number: 1146, Message: "no table"}), ErrDatabase)
	assert.ErrorIs(t, WrapGormError(errors.New("boom")), ErrDatabase)
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO `user`").WillReturnResult(sqlmock.NewResult(1, 1))
	u := &model.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, uint(1), u.ID)

	mock.ExpectExec("INSERT INTO `user`").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice'"})
	err := repo.Create(context.Background(), &model.User{Username: "alice", Email: "a@b.co"})
	assert.ErrorIs(t, err, ErrDuplicate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `user` WHERE .*username = \\? OR email = \\? OR phone = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).AddRow(3, "bob", "bob@example.com"))

	u, err := repo.GetByAccount(context.Background(), "13800000000")
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)

	mock.ExpectQuery("SELECT \\* FROM `user`").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err = repo.GetByAccount(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ExistsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `user` WHERE .*phone = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	exists, err := repo.ExistsConflict(context.Background(), "alice", "a@b.co", "138")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `user`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	exists, err = repo.ExistsConflict(context.Background(), "alice", "a@b.co", "")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository_MarkConversationAsRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)

	mock.ExpectExec("UPDATE `message` SET").WillReturnResult(sqlmock.NewResult(0, 3))
	n, err := repo.MarkConversationAsRead(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendshipRepository_Accept(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFriendshipRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `friendship` SET `status`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `friendship` .* ON DUPLICATE KEY UPDATE").WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectCommit()

	req := &model.Friendship{ID: 5, UserID: 1, FriendID: 2, Status: model.FriendStatusPending}
	require.NoError(t, repo.Accept(context.Background(), req))
	assert.Equal(t, model.FriendStatusAccepted, req.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendshipRepository_AcceptRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFriendshipRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `friendship`").WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	req := &model.Friendship{ID: 5, UserID: 1, FriendID: 2}
	err := repo.Accept(context.Background(), req)
	assert.ErrorIs(t, err, ErrDatabase)
	assert.Equal(t, model.FriendStatusPending, req.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendshipRepository_RemoveThenRequestAgain(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFriendshipRepository(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM `friendship` WHERE").WillReturnResult(sqlmock.NewResult(0, 2))
	n, err := repo.DeletePair(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	mock.ExpectQuery("SELECT \\* FROM `friendship`").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err = repo.GetByPair(ctx, 1, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	mock.ExpectExec("INSERT INTO `friendship`").WillReturnResult(sqlmock.NewResult(7, 1))
	f := &model.Friendship{UserID: 1, FriendID: 2, Status: model.FriendStatusPending}
	require.NoError(t, repo.Create(ctx, f))
	assert.Equal(t, uint(7), f.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_Touch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConversationRepository(db)

	mock.ExpectExec("INSERT INTO `conversation` .* ON DUPLICATE KEY UPDATE .*unread_count").
		WillReturnResult(sqlmock.NewResult(1, 1))
	err := repo.Touch(context.Background(), 2, 1, model.SessionTypePrivate, "hi", time.Now(), 1)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConversationRepository(db)
	now := time.Now()
	sessionType := model.SessionTypePrivate

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `conversation` WHERE owner_id = \\? AND type = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `conversation` WHERE owner_id = \\? AND type = \\? ORDER BY last_time DESC LIMIT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "peer_id", "type", "last_message", "last_time", "unread_count"}).
			AddRow(1, 1, 2, 1, "hi", now, 3))
	mock.ExpectQuery("SELECT \\* FROM `user` WHERE `user`.`id` = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(2, "bob"))

	list, total, err := repo.List(context.Background(), 1, &sessionType, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "bob", list[0].Peer.Username)
	assert.Equal(t, int64(3), list[0].UnreadCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMomentRepository_ListCommentsExcludesDeleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMomentRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `comment` WHERE moment_id = \\? AND status = \\? ORDER BY created_at ASC").
		WithArgs("m1", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "moment_id", "user_id", "content", "status"}).
			AddRow("c1", "m1", 1, "first", 0))

	list, err := repo.ListComments(context.Background(), "m1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.CommentStatusNormal, list[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMomentRepository_UpdateCommentStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMomentRepository(db)

	mock.ExpectExec("UPDATE `comment` SET `status`").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateCommentStatus(context.Background(), "c1", model.CommentStatusDeleted))

	mock.ExpectExec("UPDATE `comment` SET `status`").WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdateCommentStatus(context.Background(), "missing", model.CommentStatusDeleted)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
