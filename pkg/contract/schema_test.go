package contract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var pagingSchema = NewSchema("Paging", "分页参数",
	Field{Name: "page", Kind: KindInteger, Default: 1, Rules: []Rule{Min(1)}},
	Field{Name: "size", Kind: KindInteger, Default: 20, Rules: []Rule{Range(1, 100)}},
	Field{Name: "keyword", Kind: KindString, Rules: []Rule{MaxLength(5)}},
)

var signupSchema = NewSchema("Signup", "注册",
	Field{Name: "name", Kind: KindString, Required: true, Rules: []Rule{
		Length(3, 8),
		Pattern(`^[a-z]+$`, "name只能包含小写字母"),
	}},
	Field{Name: "email", Kind: KindString, Required: true, Rules: []Rule{Tag("email", "邮箱格式不正确")}},
	Field{Name: "agree", Kind: KindBoolean},
)

type paging struct {
	Page    int    `json:"page"`
	Size    int    `json:"size"`
	Keyword string `json:"keyword"`
}

func TestApplyDefaults_DoesNotMutateInput(t *testing.T) {
	in := Record{"keyword": "go"}

	out := pagingSchema.ApplyDefaults(in)

	assert.Equal(t, Record{"keyword": "go"}, in)
	assert.Equal(t, 1, out["page"])
	assert.Equal(t, 20, out["size"])
}

func TestApplyDefaults_KeepsProvidedValues(t *testing.T) {
	out := pagingSchema.ApplyDefaults(Record{"page": "3"})
	assert.Equal(t, "3", out["page"])
}

func TestValidate_AggregatesEveryFailingField(t *testing.T) {
	err := signupSchema.Validate(Record{"name": "AB", "email": "nope"})
	require.Error(t, err)

	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Signup", verr.Schema)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "name", verr.Fields[0].Field)
	assert.Equal(t, "length", verr.Fields[0].Rule)
	assert.Equal(t, "email", verr.Fields[1].Field)
	assert.Equal(t, "邮箱格式不正确", verr.Fields[1].Message)
}

func TestValidate_RequiredTreatsBlankAsMissing(t *testing.T) {
	err := signupSchema.Validate(Record{"name": "   ", "email": "a@b.co"})
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.True(t, verr.Has("name"))
	assert.Equal(t, "required", verr.Fields[0].Rule)
}

func TestValidate_WrongTypeIsReported(t *testing.T) {
	err := pagingSchema.Validate(Record{"page": "two", "size": 1.5})
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "type", verr.Fields[0].Rule)
	assert.Equal(t, "type", verr.Fields[1].Rule)
}

func TestValidate_OptionalFieldSkippedWhenAbsent(t *testing.T) {
	assert.NoError(t, pagingSchema.Validate(Record{}))
	assert.NoError(t, signupSchema.Validate(Record{"name": "abc", "email": "a@b.co"}))
}

func TestValidate_FirstFailingRuleWins(t *testing.T) {
	// 长度不满足时不再报告正则错误
	err := signupSchema.Validate(Record{"name": "A1", "email": "a@b.co"})
	verr, _ := AsValidationError(err)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "length", verr.Fields[0].Rule)
}

func TestDecodeQuery_AppliesDefaultsAndConvertsQueryStrings(t *testing.T) {
	got, err := DecodeQuery[paging](pagingSchema, Record{"size": "50", "keyword": "im"})
	require.NoError(t, err)
	assert.Equal(t, paging{Page: 1, Size: 50, Keyword: "im"}, got)
}

func TestDecode_AcceptsJSONNumbers(t *testing.T) {
	got, err := Decode[paging](pagingSchema, Record{"page": json.Number("4")})
	require.NoError(t, err)
	assert.Equal(t, 4, got.Page)
}

func TestDecode_ReturnsValidationError(t *testing.T) {
	_, err := DecodeQuery[paging](pagingSchema, Record{"size": "1000"})
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.True(t, verr.Has("size"))
}

func TestDecode_BodyDoesNotConvertStrings(t *testing.T) {
	_, err := Decode[paging](pagingSchema, Record{"page": "2"})
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "page", verr.Fields[0].Field)
	assert.Equal(t, "type", verr.Fields[0].Rule)

	assert.Error(t, signupSchema.Validate(Record{"name": "abc", "email": "a@b.co", "agree": "true"}))
	assert.NoError(t, signupSchema.ValidateQuery(Record{"name": "abc", "email": "a@b.co", "agree": "true"}))
}

func TestNewSchema_PanicsOnDuplicateField(t *testing.T) {
	assert.Panics(t, func() {
		NewSchema("Dup", "",
			Field{Name: "a", Kind: KindString},
			Field{Name: "a", Kind: KindString},
		)
	})
}

func TestNewSchema_PanicsOnBadDefault(t *testing.T) {
	assert.Panics(t, func() {
		NewSchema("Bad", "", Field{Name: "n", Kind: KindInteger, Default: "x"})
	})
}

func TestRules(t *testing.T) {
	assert.True(t, Length(2, 3).Check("你好"))
	assert.False(t, Length(2, 3).Check("abcd"))
	assert.True(t, Length(2, 0).Check("abcdefgh"))
	assert.True(t, OneOf(1, 2).Check(int64(2)))
	assert.False(t, OneOf(1, 2).Check(int64(3)))
	assert.True(t, LetterAndDigit("").Check("abc123"))
	assert.False(t, LetterAndDigit("").Check("abcdef"))
	assert.False(t, LetterAndDigit("").Check("123456"))
	assert.False(t, NoWhitespace("").Check("a b"))
	assert.True(t, Tag("uuid", "").Check("0b8f6b9e-6c1e-4a7a-9a55-1f6ad0f1c2d3"))
	assert.False(t, Tag("uuid", "").Check("not-a-uuid"))
}

func TestDocument_IsGeneratedFromSchema(t *testing.T) {
	doc := pagingSchema.Document()

	assert.Equal(t, "Paging", doc.Name)
	require.Len(t, doc.Fields, 3)
	assert.Equal(t, "integer", doc.Fields[0].Type)
	assert.Equal(t, 1, doc.Fields[0].Default)
	assert.Equal(t, "range", doc.Fields[1].Rules[0].Name)
	assert.Equal(t, "size必须在1到100之间", doc.Fields[1].Rules[0].Message)
}

func TestCatalogYAML_SortsByName(t *testing.T) {
	data, err := CatalogYAML(signupSchema, pagingSchema)
	require.NoError(t, err)

	var out struct {
		Contracts []SchemaDoc `yaml:"contracts"`
	}
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.Len(t, out.Contracts, 2)
	assert.Equal(t, "Paging", out.Contracts[0].Name)
	assert.Equal(t, "Signup", out.Contracts[1].Name)
}
