package contract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Rule 可组合的字段校验规则
// Params 只用于生成文档
type Rule struct {
	Name    string
	Params  map[string]any
	Message string
	check   func(v any) bool
}

// message 返回面向用户的提示，%s 替换为字段名
func (r Rule) message(field string) string {
	if strings.Contains(r.Message, "%s") {
		return fmt.Sprintf(r.Message, field)
	}
	return r.Message
}

// Check 对已转换为规范类型的值执行规则
func (r Rule) Check(v any) bool {
	return r.check(v)
}

// Custom 自定义规则
func Custom(name, message string, fn func(v any) bool) Rule {
	return Rule{Name: name, Message: message, check: fn}
}

// Length 字符串长度（按字符计）在 [min, max] 之间，max<=0 表示不限上限
func Length(min, max int) Rule {
	msg := fmt.Sprintf("%%s长度必须在%d到%d个字符之间", min, max)
	if max <= 0 {
		msg = fmt.Sprintf("%%s长度不能少于%d个字符", min)
	}
	return Rule{
		Name:    "length",
		Params:  map[string]any{"min": min, "max": max},
		Message: msg,
		check: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			n := utf8.RuneCountInString(s)
			return n >= min && (max <= 0 || n <= max)
		},
	}
}

// MaxLength 字符串长度上限
func MaxLength(max int) Rule {
	return Rule{
		Name:    "maxLength",
		Params:  map[string]any{"max": max},
		Message: fmt.Sprintf("%%s长度不能超过%d个字符", max),
		check: func(v any) bool {
			s, ok := v.(string)
			return ok && utf8.RuneCountInString(s) <= max
		},
	}
}

// Pattern 正则匹配（整串匹配由表达式自身的锚点决定）
func Pattern(expr, message string) Rule {
	re := regexp.MustCompile(expr)
	return Rule{
		Name:    "pattern",
		Params:  map[string]any{"pattern": expr},
		Message: message,
		check: func(v any) bool {
			s, ok := v.(string)
			return ok && re.MatchString(s)
		},
	}
}

// Tag 复用 go-playground/validator 的内置校验标签，例如 "email"、"uuid4"
func Tag(tag, message string) Rule {
	return Rule{
		Name:    tag,
		Params:  map[string]any{"tag": tag},
		Message: message,
		check: func(v any) bool {
			return validate.Var(v, tag) == nil
		},
	}
}

// Range 整数取值范围，闭区间
func Range(min, max int64) Rule {
	return Rule{
		Name:    "range",
		Params:  map[string]any{"min": min, "max": max},
		Message: fmt.Sprintf("%%s必须在%d到%d之间", min, max),
		check: func(v any) bool {
			n, ok := v.(int64)
			return ok && n >= min && n <= max
		},
	}
}

// Min 整数下限
func Min(min int64) Rule {
	return Rule{
		Name:    "min",
		Params:  map[string]any{"min": min},
		Message: fmt.Sprintf("%%s不能小于%d", min),
		check: func(v any) bool {
			n, ok := v.(int64)
			return ok && n >= min
		},
	}
}

// OneOf 整数枚举
func OneOf(values ...int64) Rule {
	return Rule{
		Name:    "oneOf",
		Params:  map[string]any{"values": values},
		Message: fmt.Sprintf("%%s只能是%v之一", values),
		check: func(v any) bool {
			n, ok := v.(int64)
			if !ok {
				return false
			}
			for _, allowed := range values {
				if n == allowed {
					return true
				}
			}
			return false
		},
	}
}

// LetterAndDigit 至少包含一个字母和一个数字
func LetterAndDigit(message string) Rule {
	return Rule{
		Name:    "letterAndDigit",
		Message: message,
		check: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			var hasLetter, hasDigit bool
			for _, r := range s {
				switch {
				case r <= unicode.MaxASCII && unicode.IsLetter(r):
					hasLetter = true
				case r >= '0' && r <= '9':
					hasDigit = true
				}
			}
			return hasLetter && hasDigit
		},
	}
}

// NoWhitespace 不允许包含空白字符
func NoWhitespace(message string) Rule {
	return Rule{
		Name:    "noWhitespace",
		Message: message,
		check: func(v any) bool {
			s, ok := v.(string)
			return ok && strings.IndexFunc(s, unicode.IsSpace) < 0
		},
	}
}
