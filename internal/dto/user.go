package dto

import (
	"strconv"

	"social-im/internal/model"
	"social-im/pkg/contract"
)

// UserView 用户信息（隐藏敏感字段）
type UserView struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	Phone     string `json:"phone,omitempty"`
	Avatar    string `json:"avatar_url,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

var UserViewSchema = contract.NewOutputSchema("UserView", "用户信息",
	contract.Field{Name: "id", Kind: contract.KindString, Required: true},
	contract.Field{Name: "username", Kind: contract.KindString, Required: true},
	contract.Field{Name: "email", Kind: contract.KindString, Required: true},
	contract.Field{Name: "nickname", Kind: contract.KindString, Required: true},
	contract.Field{Name: "phone", Kind: contract.KindString},
	contract.Field{Name: "avatar_url", Kind: contract.KindString},
	contract.Field{Name: "status", Kind: contract.KindString, Required: true, Description: "online/offline"},
	contract.Field{Name: "created_at", Kind: contract.KindString, Required: true},
)

// NewUserView 过滤用户信息
func NewUserView(u *model.User) *UserView {
	if u == nil {
		return nil
	}
	v := &UserView{
		ID:        strconv.FormatUint(uint64(u.ID), 10),
		Username:  u.Username,
		Email:     u.Email,
		Nickname:  u.DisplayName(),
		Avatar:    u.Avatar,
		Status:    u.Status,
		CreatedAt: u.CreatedAt.Format(timeLayout),
	}
	if u.Phone != nil {
		v.Phone = *u.Phone
	}
	return v
}

const timeLayout = "2006-01-02 15:04:05"
