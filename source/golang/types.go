package golang

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/docgraph/converter"
)

var builtinTypes = map[string]bool{
	"any": true, "bool": true, "byte": true, "comparable": true, "complex64": true, "complex128": true,
	"error": true, "float32": true, "float64": true, "int": true, "int8": true, "int16": true,
	"int32": true, "int64": true, "rune": true, "string": true, "uint": true, "uint8": true,
	"uint16": true, "uint32": true, "uint64": true, "uintptr": true,
}

// sourceType converts type syntax node into analyzer type node
func (i *fileInspector) sourceType(node *sitter.Node) *converter.SourceType {
	if node == nil {
		return nil
	}
	content := node.Content(i.src)
	switch node.Type() {
	case "type_identifier":
		if builtinTypes[content] {
			return &converter.SourceType{Kind: converter.SourceIntrinsic, Name: content}
		}
		return &converter.SourceType{Kind: converter.SourceReference, Name: content}
	case "qualified_type":
		return &converter.SourceType{Kind: converter.SourceReference, Name: content}
	case "generic_type":
		ret := &converter.SourceType{Kind: converter.SourceReference, Name: content}
		if typeNode := node.ChildByFieldName("type"); typeNode != nil {
			ret.Name = typeNode.Content(i.src)
		}
		if arguments := node.ChildByFieldName("type_arguments"); arguments != nil {
			for j := 0; j < int(arguments.NamedChildCount()); j++ {
				ret.Arguments = append(ret.Arguments, i.sourceType(arguments.NamedChild(j)))
			}
		}
		return ret
	case "pointer_type", "parenthesized_type":
		if node.NamedChildCount() > 0 {
			return i.sourceType(node.NamedChild(0))
		}
	case "slice_type", "array_type":
		return &converter.SourceType{Kind: converter.SourceArray, Element: i.sourceType(node.ChildByFieldName("element"))}
	case "interface_type":
		if members := constraintUnion(node); members != nil {
			return i.union(members)
		}
	case "type_elem", "constraint_elem", "union_type":
		return i.union(unionMembers(node, nil))
	case "interpreted_string_literal", "raw_string_literal", "int_literal", "float_literal":
		return &converter.SourceType{Kind: converter.SourceLiteral, Value: content}
	}
	return &converter.SourceType{Kind: converter.SourceIntrinsic, Name: content}
}

func (i *fileInspector) union(members []*sitter.Node) *converter.SourceType {
	if len(members) == 1 {
		return i.sourceType(members[0])
	}
	ret := &converter.SourceType{Kind: converter.SourceUnion}
	for _, member := range members {
		ret.Members = append(ret.Members, i.sourceType(member))
	}
	return ret
}

// constraintUnion returns union members of a method-less interface with a single type element
func constraintUnion(interfaceNode *sitter.Node) []*sitter.Node {
	var elements []*sitter.Node
	for j := 0; j < int(interfaceNode.NamedChildCount()); j++ {
		child := interfaceNode.NamedChild(j)
		switch child.Type() {
		case "method_elem", "method_spec":
			return nil
		case "type_elem", "constraint_elem":
			elements = append(elements, child)
		}
	}
	if len(elements) != 1 {
		return nil
	}
	members := unionMembers(elements[0], nil)
	if len(members) > 1 || (len(members) == 1 && members[0].Type() == "negated_type") {
		return members
	}
	return nil
}

func unionMembers(node *sitter.Node, members []*sitter.Node) []*sitter.Node {
	for j := 0; j < int(node.NamedChildCount()); j++ {
		child := node.NamedChild(j)
		switch child.Type() {
		case "comment":
		case "constraint_term", "union_type", "type_elem", "constraint_elem":
			members = unionMembers(child, members)
		default:
			members = append(members, child)
		}
	}
	return members
}
