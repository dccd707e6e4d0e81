package reflection

import "strings"

// Type represents a converted type attached to a reflection
type Type interface {
	// TypeKind returns type kind name, i.e. union, reference
	TypeKind() string
	String() string
}

// IntrinsicType represents a built-in type, i.e. string, int
type IntrinsicType struct {
	Name string `yaml:"name"`
}

func (t *IntrinsicType) TypeKind() string { return "intrinsic" }

func (t *IntrinsicType) String() string { return t.Name }

// LiteralType represents a literal value type
type LiteralType struct {
	Value string `yaml:"value"`
}

func (t *LiteralType) TypeKind() string { return "literal" }

func (t *LiteralType) String() string { return t.Value }

// ArrayType represents a slice or array type
type ArrayType struct {
	Element Type `yaml:"element"`
}

func (t *ArrayType) TypeKind() string { return "array" }

func (t *ArrayType) String() string {
	if t.Element == nil {
		return "[]"
	}
	return "[]" + t.Element.String()
}

// ReferenceType represents a named type reference, optionally with type arguments
type ReferenceType struct {
	Name          string `yaml:"name"`
	TypeArguments []Type `yaml:"typeArguments,omitempty"`
	ReflectionID  int    `yaml:"reflectionId,omitempty"` // Target reflection if declared in the project
}

func (t *ReferenceType) TypeKind() string { return "reference" }

func (t *ReferenceType) String() string {
	if len(t.TypeArguments) == 0 {
		return t.Name
	}
	return t.Name + "[" + joinTypes(t.TypeArguments, ", ") + "]"
}

// UnionType represents a union of member types
type UnionType struct {
	Types []Type `yaml:"types"`
}

func (t *UnionType) TypeKind() string { return "union" }

func (t *UnionType) String() string {
	return joinTypes(t.Types, " | ")
}

func joinTypes(types []Type, separator string) string {
	parts := make([]string, 0, len(types))
	for _, item := range types {
		if item == nil {
			continue
		}
		parts = append(parts, item.String())
	}
	return strings.Join(parts, separator)
}
