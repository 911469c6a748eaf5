package contract

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// RuleDoc 规则文档
type RuleDoc struct {
	Name    string         `json:"name" yaml:"name"`
	Params  map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
	Message string         `json:"message" yaml:"message"`
}

// FieldDoc 字段文档
type FieldDoc struct {
	Name        string    `json:"name" yaml:"name"`
	Type        string    `json:"type" yaml:"type"`
	Required    bool      `json:"required" yaml:"required"`
	Default     any       `json:"default,omitempty" yaml:"default,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Example     any       `json:"example,omitempty" yaml:"example,omitempty"`
	Rules       []RuleDoc `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// SchemaDoc Schema文档
type SchemaDoc struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	OutputOnly  bool       `json:"output_only,omitempty" yaml:"outputOnly,omitempty"`
	Fields      []FieldDoc `json:"fields" yaml:"fields"`
}

// Document 由Schema生成文档元数据，字段顺序与声明顺序一致
func (s *Schema) Document() SchemaDoc {
	doc := SchemaDoc{
		Name:        s.Name,
		Description: s.Description,
		OutputOnly:  s.OutputOnly,
		Fields:      make([]FieldDoc, 0, len(s.Fields)),
	}
	for _, f := range s.Fields {
		fd := FieldDoc{
			Name:        f.Name,
			Type:        f.Kind.String(),
			Required:    f.Required,
			Default:     f.Default,
			Description: f.Description,
			Example:     f.Example,
		}
		for _, r := range f.Rules {
			fd.Rules = append(fd.Rules, RuleDoc{Name: r.Name, Params: r.Params, Message: r.message(f.Name)})
		}
		doc.Fields = append(doc.Fields, fd)
	}
	return doc
}

// Catalog 按名称排序的契约文档集合
func Catalog(schemas ...*Schema) []SchemaDoc {
	docs := make([]SchemaDoc, 0, len(schemas))
	for _, s := range schemas {
		docs = append(docs, s.Document())
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs
}

// CatalogYAML 以YAML格式导出契约文档
func CatalogYAML(schemas ...*Schema) ([]byte, error) {
	return yaml.Marshal(map[string]any{"contracts": Catalog(schemas...)})
}
