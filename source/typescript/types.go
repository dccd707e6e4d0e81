package typescript

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/docgraph/converter"
)

// sourceType converts type syntax node into analyzer type node
func (i *fileInspector) sourceType(node *sitter.Node) *converter.SourceType {
	if node == nil {
		return nil
	}
	content := node.Content(i.src)
	switch node.Type() {
	case "type_annotation", "parenthesized_type":
		if node.NamedChildCount() > 0 {
			return i.sourceType(node.NamedChild(0))
		}
	case "predefined_type":
		return &converter.SourceType{Kind: converter.SourceIntrinsic, Name: content}
	case "type_identifier", "nested_type_identifier":
		return &converter.SourceType{Kind: converter.SourceReference, Name: content}
	case "generic_type":
		ret := &converter.SourceType{Kind: converter.SourceReference, Name: content}
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			ret.Name = nameNode.Content(i.src)
		}
		if arguments := node.ChildByFieldName("type_arguments"); arguments != nil {
			for j := 0; j < int(arguments.NamedChildCount()); j++ {
				ret.Arguments = append(ret.Arguments, i.sourceType(arguments.NamedChild(j)))
			}
		}
		return ret
	case "array_type":
		if node.NamedChildCount() > 0 {
			return &converter.SourceType{Kind: converter.SourceArray, Element: i.sourceType(node.NamedChild(0))}
		}
	case "union_type":
		members := unionMembers(node, nil)
		if len(members) == 1 {
			return i.sourceType(members[0])
		}
		ret := &converter.SourceType{Kind: converter.SourceUnion}
		for _, member := range members {
			ret.Members = append(ret.Members, i.sourceType(member))
		}
		return ret
	case "literal_type":
		return &converter.SourceType{Kind: converter.SourceLiteral, Value: content}
	}
	return &converter.SourceType{Kind: converter.SourceIntrinsic, Name: content}
}

// unionMembers flattens nested union types
func unionMembers(node *sitter.Node, members []*sitter.Node) []*sitter.Node {
	for j := 0; j < int(node.NamedChildCount()); j++ {
		child := node.NamedChild(j)
		switch child.Type() {
		case "comment":
		case "union_type":
			members = unionMembers(child, members)
		default:
			members = append(members, child)
		}
	}
	return members
}
