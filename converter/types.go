package converter

import "github.com/viant/docgraph/reflection"

// SourceTypeKind represents analyzer type node kind
type SourceTypeKind string

const (
	SourceIntrinsic SourceTypeKind = "intrinsic"
	SourceLiteral   SourceTypeKind = "literal"
	SourceReference SourceTypeKind = "reference"
	SourceUnion     SourceTypeKind = "union"
	SourceArray     SourceTypeKind = "array"
)

// SourceType represents a type node as produced by the analyzer
type SourceType struct {
	Kind      SourceTypeKind `yaml:"kind"`
	Name      string         `yaml:"name,omitempty"`
	Value     string         `yaml:"value,omitempty"`
	Members   []*SourceType  `yaml:"members,omitempty"`   // Union members
	Arguments []*SourceType  `yaml:"arguments,omitempty"` // Reference type arguments
	Element   *SourceType    `yaml:"element,omitempty"`   // Array element
	Resolved  *SourceType    `yaml:"resolved,omitempty"`  // Resolved alias target of a reference
}

// TypeConverter converts analyzer type nodes into reflection types
type TypeConverter interface {
	// Priority orders converters, higher runs first
	Priority() int
	Supports(sourceType *SourceType) bool
	Convert(ctx *Context, sourceType *SourceType) reflection.Type
}

type intrinsicConverter struct{}

func (intrinsicConverter) Priority() int { return 0 }

func (intrinsicConverter) Supports(sourceType *SourceType) bool {
	return sourceType.Kind == SourceIntrinsic
}

func (intrinsicConverter) Convert(ctx *Context, sourceType *SourceType) reflection.Type {
	return &reflection.IntrinsicType{Name: sourceType.Name}
}

type literalConverter struct{}

func (literalConverter) Priority() int { return 0 }

func (literalConverter) Supports(sourceType *SourceType) bool {
	return sourceType.Kind == SourceLiteral
}

func (literalConverter) Convert(ctx *Context, sourceType *SourceType) reflection.Type {
	return &reflection.LiteralType{Value: sourceType.Value}
}

type arrayConverter struct{}

func (arrayConverter) Priority() int { return 0 }

func (arrayConverter) Supports(sourceType *SourceType) bool {
	return sourceType.Kind == SourceArray
}

func (arrayConverter) Convert(ctx *Context, sourceType *SourceType) reflection.Type {
	return &reflection.ArrayType{Element: ctx.ConvertType(sourceType.Element)}
}

type unionConverter struct{}

func (unionConverter) Priority() int { return 0 }

func (unionConverter) Supports(sourceType *SourceType) bool {
	return sourceType.Kind == SourceUnion
}

func (unionConverter) Convert(ctx *Context, sourceType *SourceType) reflection.Type {
	return &reflection.UnionType{Types: ConvertTypes(ctx, sourceType.Members)}
}

// referenceConverter renders a reference as is, keeping the alias name; the target is bound on resolve
type referenceConverter struct{}

func (referenceConverter) Priority() int { return 0 }

func (referenceConverter) Supports(sourceType *SourceType) bool {
	return sourceType.Kind == SourceReference
}

func (referenceConverter) Convert(ctx *Context, sourceType *SourceType) reflection.Type {
	ret := &reflection.ReferenceType{
		Name:          sourceType.Name,
		TypeArguments: ConvertTypes(ctx, sourceType.Arguments),
	}
	ctx.AddReference(ret)
	return ret
}

// ConvertTypes converts each supplied type
func ConvertTypes(ctx *Context, sourceTypes []*SourceType) []reflection.Type {
	if len(sourceTypes) == 0 {
		return nil
	}
	result := make([]reflection.Type, 0, len(sourceTypes))
	for _, sourceType := range sourceTypes {
		if converted := ctx.ConvertType(sourceType); converted != nil {
			result = append(result, converted)
		}
	}
	return result
}

func defaultTypeConverters() []TypeConverter {
	return []TypeConverter{
		intrinsicConverter{},
		literalConverter{},
		arrayConverter{},
		unionConverter{},
		referenceConverter{},
	}
}
