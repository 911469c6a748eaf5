package dto

import (
	"strconv"

	"social-im/internal/model"
	"social-im/pkg/contract"
)

// FriendView 好友关系的只读投影
// Status 为好友关系状态码，含义由好友服务定义
type FriendView struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Username  string  `json:"username"`
	Nickname  string  `json:"nickname"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Status    int     `json:"status"`
}

var FriendViewSchema = contract.NewOutputSchema("FriendView", "好友信息",
	contract.Field{Name: "id", Kind: contract.KindString, Required: true, Description: "好友关系ID"},
	contract.Field{Name: "userId", Kind: contract.KindString, Required: true, Description: "好友的用户ID"},
	contract.Field{Name: "username", Kind: contract.KindString, Required: true},
	contract.Field{Name: "nickname", Kind: contract.KindString, Required: true},
	contract.Field{Name: "avatar_url", Kind: contract.KindString, Description: "头像地址"},
	contract.Field{Name: "status", Kind: contract.KindInteger, Required: true, Description: "关系状态码"},
)

// NewFriendView 由好友关系构造视图，Friend 需已预加载
func NewFriendView(f *model.Friendship) FriendView {
	v := FriendView{
		ID:       strconv.FormatUint(uint64(f.ID), 10),
		UserID:   strconv.FormatUint(uint64(f.FriendID), 10),
		Username: f.Friend.Username,
		Nickname: f.Friend.DisplayName(),
		Status:   f.Status,
	}
	if f.Friend.Avatar != "" {
		avatar := f.Friend.Avatar
		v.AvatarURL = &avatar
	}
	return v
}

// NewIncomingRequestView 收到的好友申请，展示发起方信息，User 需已预加载
func NewIncomingRequestView(f *model.Friendship) FriendView {
	v := FriendView{
		ID:       strconv.FormatUint(uint64(f.ID), 10),
		UserID:   strconv.FormatUint(uint64(f.UserID), 10),
		Username: f.User.Username,
		Nickname: f.User.DisplayName(),
		Status:   f.Status,
	}
	if f.User.Avatar != "" {
		avatar := f.User.Avatar
		v.AvatarURL = &avatar
	}
	return v
}

// FriendRequestCreate 发送好友申请
type FriendRequestCreate struct {
	FriendID uint   `json:"friend_id"`
	Message  string `json:"message,omitempty"`
}

var FriendRequestSchema = contract.NewSchema("FriendRequestCreate", "发送好友申请",
	contract.Field{
		Name:        "friend_id",
		Kind:        contract.KindInteger,
		Required:    true,
		Description: "对方用户ID",
		Example:     2,
		Rules:       []contract.Rule{contract.Min(1)},
	},
	contract.Field{
		Name:        "message",
		Kind:        contract.KindString,
		Description: "申请附言",
		Rules:       []contract.Rule{contract.MaxLength(100)},
	},
)

// FriendListQuery 好友列表查询
type FriendListQuery struct {
	Status *int `json:"status,omitempty"`
}

var FriendListQuerySchema = contract.NewSchema("FriendListQuery", "好友列表过滤",
	contract.Field{
		Name:        "status",
		Kind:        contract.KindInteger,
		Description: "按关系状态过滤，缺省返回已同意的好友",
		Rules: []contract.Rule{contract.OneOf(
			model.FriendStatusPending, model.FriendStatusAccepted, model.FriendStatusBlocked,
		)},
	},
)
