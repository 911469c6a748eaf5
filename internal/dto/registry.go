package dto

import "social-im/pkg/contract"

// Schemas 所有对外契约，用于生成文档
func Schemas() []*contract.Schema {
	return []*contract.Schema{
		LoginSchema,
		RegisterSchema,
		UserViewSchema,
		ConversationQuerySchema,
		ConversationViewSchema,
		FriendViewSchema,
		FriendRequestSchema,
		FriendListQuerySchema,
		CommentSchema,
		CommentViewSchema,
		MomentSchema,
		SendMessageSchema,
		HistoryQuerySchema,
	}
}
