// Package contract 请求/响应契约层
//
// 每个请求结构对应一个 Schema：字段描述、默认值、校验规则与文档元数据都声明在
// Schema 上，而不是写在结构体标签里。校验针对的是解码后的原始记录（Record），
// 通过后再转换成强类型结构体。
package contract

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind 字段的值类型
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindBoolean
)

// String 返回类型名（用于文档）
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Record 未经类型转换的请求数据（JSON对象或查询参数）
type Record map[string]any

// source 记录来源。查询参数只有字符串，整数与布尔值需要从字符串解析；
// JSON 请求体中类型不符一律报错，不做转换
type source int

const (
	sourceBody source = iota
	sourceQuery
)

// Field 字段描述符
type Field struct {
	Name        string
	Kind        Kind
	Required    bool
	Default     any
	Description string
	Example     any
	Rules       []Rule
}

// Schema 一个请求/响应契约
type Schema struct {
	Name        string
	Description string
	// OutputOnly 为 true 时表示仅用于响应，不参与校验
	OutputOnly bool
	Fields     []Field
}

// NewSchema 创建Schema，字段名重复或默认值类型不符时 panic（定义期错误）
func NewSchema(name, description string, fields ...Field) *Schema {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, ok := seen[f.Name]; ok {
			panic(fmt.Sprintf("contract: duplicate field %q in schema %s", f.Name, name))
		}
		seen[f.Name] = struct{}{}
		if f.Default != nil {
			if _, ok := coerce(f.Kind, f.Default, sourceBody); !ok {
				panic(fmt.Sprintf("contract: default of %s.%s is not a %s", name, f.Name, f.Kind))
			}
		}
	}
	return &Schema{Name: name, Description: description, Fields: fields}
}

// NewOutputSchema 创建仅用于响应文档的Schema
func NewOutputSchema(name, description string, fields ...Field) *Schema {
	s := NewSchema(name, description, fields...)
	s.OutputOnly = true
	return s
}

// Field 按名称查找字段
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ApplyDefaults 返回补全默认值后的新记录，不修改入参
func (s *Schema) ApplyDefaults(r Record) Record {
	out := make(Record, len(r)+len(s.Fields))
	for k, v := range r {
		out[k] = v
	}
	for _, f := range s.Fields {
		if f.Default == nil {
			continue
		}
		if isAbsent(out[f.Name]) {
			out[f.Name] = f.Default
		}
	}
	return out
}

// Validate 校验记录，所有失败字段汇总到一个 *ValidationError 中
func (s *Schema) Validate(r Record) error {
	return s.validate(r, sourceBody)
}

// ValidateQuery 校验查询参数，整数与布尔字段接受其字符串形式
func (s *Schema) ValidateQuery(r Record) error {
	return s.validate(r, sourceQuery)
}

func (s *Schema) validate(r Record, src source) error {
	verr := &ValidationError{Schema: s.Name}
	for _, f := range s.Fields {
		raw := r[f.Name]
		if isAbsent(raw) {
			if f.Required {
				verr.add(f.Name, "required", fmt.Sprintf("%s不能为空", f.Name))
			}
			continue
		}
		v, ok := coerce(f.Kind, raw, src)
		if !ok {
			verr.add(f.Name, "type", fmt.Sprintf("%s必须是%s类型", f.Name, kindLabel(f.Kind)))
			continue
		}
		// 每个字段只报告第一条不满足的规则
		for _, rule := range f.Rules {
			if !rule.check(v) {
				verr.add(f.Name, rule.Name, rule.message(f.Name))
				break
			}
		}
	}
	if len(verr.Fields) == 0 {
		return nil
	}
	return verr
}

// Normalize 将已校验记录中的值转换为规范类型（integer -> int64），未声明的字段被丢弃
func (s *Schema) Normalize(r Record) Record {
	return s.normalize(r, sourceBody)
}

func (s *Schema) normalize(r Record, src source) Record {
	out := make(Record, len(s.Fields))
	for _, f := range s.Fields {
		raw, ok := r[f.Name]
		if !ok || isAbsent(raw) {
			continue
		}
		if v, ok := coerce(f.Kind, raw, src); ok {
			out[f.Name] = v
		}
	}
	return out
}

// Decode 默认值 -> 校验 -> 规范化 -> 填充强类型结构体，用于JSON请求体
func Decode[T any](s *Schema, r Record) (T, error) {
	return decode[T](s, r, sourceBody)
}

// DecodeQuery 同 Decode，用于查询参数
func DecodeQuery[T any](s *Schema, r Record) (T, error) {
	return decode[T](s, r, sourceQuery)
}

func decode[T any](s *Schema, r Record, src source) (T, error) {
	var out T
	rec := s.ApplyDefaults(r)
	if err := s.validate(rec, src); err != nil {
		return out, err
	}
	data, err := json.Marshal(s.normalize(rec, src))
	if err != nil {
		return out, fmt.Errorf("contract: encode %s: %w", s.Name, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("contract: decode %s: %w", s.Name, err)
	}
	return out, nil
}

// isAbsent nil 与空白字符串都视为未提供
func isAbsent(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	default:
		return false
	}
}

func kindLabel(k Kind) string {
	switch k {
	case KindInteger:
		return "整数"
	case KindBoolean:
		return "布尔"
	default:
		return "字符串"
	}
}

// coerce 判断原始值是否符合字段类型，并返回规范值
// 只有查询参数中能完整解析的字符串才视为整数或布尔值
func coerce(k Kind, v any, src source) (any, bool) {
	switch k {
	case KindString:
		s, ok := v.(string)
		return s, ok
	case KindBoolean:
		switch x := v.(type) {
		case bool:
			return x, true
		case string:
			if src != sourceQuery {
				return nil, false
			}
			b, err := strconv.ParseBool(x)
			return b, err == nil
		}
		return nil, false
	case KindInteger:
		if x, ok := v.(string); ok {
			if src != sourceQuery {
				return nil, false
			}
			n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
			return n, err == nil
		}
		return toInt64(v)
	}
	return nil, false
}

func toInt64(v any) (any, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, false
		}
		return int64(x), true
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) || x > math.MaxInt64 || x < math.MinInt64 {
			return nil, false
		}
		return int64(x), true
	case json.Number:
		n, err := x.Int64()
		return n, err == nil
	}
	return nil, false
}
