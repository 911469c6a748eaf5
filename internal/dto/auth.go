package dto

import (
	"strings"

	"social-im/pkg/contract"
)

// 用户名只允许字母、数字和下划线
const usernamePattern = `^[A-Za-z0-9_]+$`

// LoginRequest 登录请求，account 可以是用户名、邮箱或手机号
type LoginRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

var LoginSchema = contract.NewSchema("LoginRequest", "账号密码登录",
	contract.Field{
		Name:        "account",
		Kind:        contract.KindString,
		Required:    true,
		Description: "用户名、邮箱或手机号",
		Example:     "alice@example.com",
	},
	contract.Field{
		Name:        "password",
		Kind:        contract.KindString,
		Required:    true,
		Description: "登录密码",
		Example:     "Password123",
	},
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

var RegisterSchema = contract.NewSchema("RegisterRequest", "注册新账号",
	contract.Field{
		Name:        "username",
		Kind:        contract.KindString,
		Required:    true,
		Description: "用户名，3-32位字母、数字或下划线",
		Example:     "alice_01",
		Rules: []contract.Rule{
			contract.Length(3, 32),
			contract.Pattern(usernamePattern, "用户名只能包含字母、数字和下划线"),
		},
	},
	contract.Field{
		Name:        "email",
		Kind:        contract.KindString,
		Required:    true,
		Description: "邮箱",
		Example:     "alice@example.com",
		Rules: []contract.Rule{
			contract.Tag("email", "邮箱格式不正确"),
		},
	},
	contract.Field{
		Name:        "password",
		Kind:        contract.KindString,
		Required:    true,
		Description: "密码，8-20位，至少包含一个字母和一个数字，不能包含空白字符",
		Example:     "Password123!",
		Rules: []contract.Rule{
			contract.Length(8, 20),
			contract.NoWhitespace("密码不能包含空白字符"),
			contract.LetterAndDigit("密码必须至少包含一个字母和一个数字"),
		},
	},
	contract.Field{
		Name:        "nickname",
		Kind:        contract.KindString,
		Description: "昵称",
		Example:     "Alice",
		Rules:       []contract.Rule{contract.MaxLength(64)},
	},
	contract.Field{
		Name:        "phone",
		Kind:        contract.KindString,
		Description: "手机号",
		Example:     "13800000000",
		Rules: []contract.Rule{
			contract.MaxLength(32),
			contract.Custom("phone", "手机号只能包含数字，可带前导+", isPhone),
		},
	},
)

// isPhone 数字串，可带一个前导 +
func isPhone(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// AuthResponse 登录/注册成功后的响应
type AuthResponse struct {
	User        *UserView `json:"user"`
	AccessToken string    `json:"access_token"`
}
