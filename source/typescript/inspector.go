package typescript

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	ts "github.com/smacker/go-tree-sitter/typescript/typescript"
	"github.com/viant/docgraph/reflection"
	"github.com/viant/docgraph/source"
	"github.com/viant/docgraph/source/syntax"
)

const docPrefix = "/**"

// fileInspector extracts exported declarations of one source file
type fileInspector struct {
	path   string
	src    []byte
	module *source.Declaration
}

func newFileInspector(path string, src []byte) *fileInspector {
	return &fileInspector{
		path: path,
		src:  src,
		module: &source.Declaration{
			Kind:    reflection.KindExternalModule,
			Name:    moduleName(path),
			Sources: []*reflection.Source{{File: path, Line: 1}},
		},
	}
}

func (i *fileInspector) language() *sitter.Language {
	if strings.HasSuffix(i.path, ".tsx") {
		return tsx.GetLanguage()
	}
	return ts.GetLanguage()
}

func (i *fileInspector) inspect(ctx context.Context) (*source.Declaration, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(i.language())
	tree, err := parser.ParseCtx(ctx, nil, i.src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	root := tree.RootNode()
	fileComment := i.fileComment(root)
	if fileComment != nil {
		i.module.Comment = fileComment.Content(i.src)
	}
	for _, item := range syntax.Children(root) {
		if item.Node.Type() != "export_statement" {
			continue
		}
		declaration := item.Node.ChildByFieldName("declaration")
		if declaration == nil {
			continue
		}
		comment := ""
		if last := item.Last(); last != nil && !sameNode(last, fileComment) && i.isDoc(last) {
			comment = last.Content(i.src)
		}
		i.declare(declaration, comment)
	}
	return i.module, nil
}

// fileComment returns the leading doc comment describing the file: one with a module tag
// or one separated from the first statement
func (i *fileInspector) fileComment(root *sitter.Node) *sitter.Node {
	if root.NamedChildCount() == 0 {
		return nil
	}
	first := root.NamedChild(0)
	if first.Type() != "comment" || !i.isDoc(first) {
		return nil
	}
	content := first.Content(i.src)
	if strings.Contains(content, "@module") || strings.Contains(content, "@packageDocumentation") {
		return first
	}
	if root.NamedChildCount() < 2 {
		return first
	}
	next := root.NamedChild(1)
	if next.Type() == "comment" || next.StartPoint().Row > first.EndPoint().Row+1 {
		return first
	}
	return nil
}

func (i *fileInspector) isDoc(comment *sitter.Node) bool {
	return strings.HasPrefix(comment.Content(i.src), docPrefix)
}

func (i *fileInspector) docComment(item *syntax.Documented) string {
	if last := item.Last(); last != nil && i.isDoc(last) {
		return last.Content(i.src)
	}
	return ""
}

func (i *fileInspector) declaration(kind reflection.Kind, name, comment string, node *sitter.Node) *source.Declaration {
	return &source.Declaration{
		Kind:    kind,
		Name:    name,
		Comment: comment,
		Sources: []*reflection.Source{{File: i.path, Line: syntax.Line(node)}},
	}
}

func (i *fileInspector) name(node *sitter.Node) string {
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		return nameNode.Content(i.src)
	}
	return ""
}

func (i *fileInspector) declare(node *sitter.Node, comment string) {
	switch node.Type() {
	case "class_declaration", "abstract_class_declaration":
		class := i.declaration(reflection.KindClass, i.name(node), comment, node)
		if body := node.ChildByFieldName("body"); body != nil {
			i.classMembers(class, body)
		}
		i.module.Add(class)
	case "interface_declaration":
		anInterface := i.declaration(reflection.KindInterface, i.name(node), comment, node)
		if body := node.ChildByFieldName("body"); body != nil {
			i.interfaceMembers(anInterface, body)
		}
		i.module.Add(anInterface)
	case "function_declaration", "function_signature":
		i.module.Add(i.callable(reflection.KindFunction, i.name(node), comment, node))
	case "enum_declaration":
		enum := i.declaration(reflection.KindEnum, i.name(node), comment, node)
		if body := node.ChildByFieldName("body"); body != nil {
			i.enumMembers(enum, body)
		}
		i.module.Add(enum)
	case "type_alias_declaration":
		alias := i.declaration(reflection.KindTypeAlias, i.name(node), comment, node)
		alias.Type = i.sourceType(node.ChildByFieldName("value"))
		i.module.Add(alias)
	case "lexical_declaration", "variable_declaration":
		for j := 0; j < int(node.NamedChildCount()); j++ {
			declarator := node.NamedChild(j)
			if declarator.Type() != "variable_declarator" {
				continue
			}
			variable := i.declaration(reflection.KindVariable, i.name(declarator), comment, declarator)
			if typeNode := declarator.ChildByFieldName("type"); typeNode != nil {
				variable.Type = i.sourceType(typeNode)
			}
			i.module.Add(variable)
		}
	}
}

// callable creates function, method or constructor declaration with its call signature
func (i *fileInspector) callable(kind reflection.Kind, name, comment string, node *sitter.Node) *source.Declaration {
	ret := i.declaration(kind, name, comment, node)
	signature := i.declaration(reflection.KindCallSignature, name, "", node)
	if returnType := node.ChildByFieldName("return_type"); returnType != nil {
		signature.Type = i.sourceType(returnType)
	}
	ret.Add(signature)
	return ret
}

func (i *fileInspector) classMembers(owner *source.Declaration, body *sitter.Node) {
	for _, member := range syntax.Children(body) {
		name := i.name(member.Node)
		if name == "" || strings.HasPrefix(name, "#") || i.isPrivate(member.Node) {
			continue
		}
		comment := i.docComment(member)
		switch member.Node.Type() {
		case "method_definition", "method_signature", "abstract_method_signature":
			switch {
			case name == "constructor":
				owner.Add(i.callable(reflection.KindConstructor, name, comment, member.Node))
			case syntax.HasChild(member.Node, "get") || syntax.HasChild(member.Node, "set"):
				if !hasChild(owner, name, reflection.KindAccessor) {
					accessor := i.declaration(reflection.KindAccessor, name, comment, member.Node)
					if returnType := member.Node.ChildByFieldName("return_type"); returnType != nil {
						accessor.Type = i.sourceType(returnType)
					}
					owner.Add(accessor)
				}
			default:
				owner.Add(i.callable(reflection.KindMethod, name, comment, member.Node))
			}
		case "public_field_definition":
			property := i.declaration(reflection.KindProperty, name, comment, member.Node)
			if typeNode := member.Node.ChildByFieldName("type"); typeNode != nil {
				property.Type = i.sourceType(typeNode)
			}
			owner.Add(property)
		}
	}
}

func (i *fileInspector) interfaceMembers(owner *source.Declaration, body *sitter.Node) {
	for _, member := range syntax.Children(body) {
		name := i.name(member.Node)
		if name == "" {
			continue
		}
		comment := i.docComment(member)
		switch member.Node.Type() {
		case "property_signature":
			property := i.declaration(reflection.KindProperty, name, comment, member.Node)
			if typeNode := member.Node.ChildByFieldName("type"); typeNode != nil {
				property.Type = i.sourceType(typeNode)
			}
			owner.Add(property)
		case "method_signature":
			owner.Add(i.callable(reflection.KindMethod, name, comment, member.Node))
		}
	}
}

func (i *fileInspector) enumMembers(owner *source.Declaration, body *sitter.Node) {
	for _, member := range syntax.Children(body) {
		name := ""
		switch member.Node.Type() {
		case "property_identifier":
			name = member.Node.Content(i.src)
		case "string":
			name = strings.Trim(member.Node.Content(i.src), `"'`)
		case "enum_assignment":
			if nameNode := member.Node.ChildByFieldName("name"); nameNode != nil {
				name = strings.Trim(nameNode.Content(i.src), `"'`)
			} else if member.Node.NamedChildCount() > 0 {
				name = strings.Trim(member.Node.NamedChild(0).Content(i.src), `"'`)
			}
		}
		if name != "" {
			owner.Add(i.declaration(reflection.KindEnumMember, name, i.docComment(member), member.Node))
		}
	}
}

func (i *fileInspector) isPrivate(node *sitter.Node) bool {
	for j := 0; j < int(node.NamedChildCount()); j++ {
		child := node.NamedChild(j)
		if child.Type() == "accessibility_modifier" && child.Content(i.src) == "private" {
			return true
		}
	}
	return false
}

func hasChild(owner *source.Declaration, name string, kind reflection.Kind) bool {
	for _, child := range owner.Children {
		if child.Name == name && child.Kind == kind {
			return true
		}
	}
	return false
}

func sameNode(node, other *sitter.Node) bool {
	return other != nil && node.StartByte() == other.StartByte() && node.EndByte() == other.EndByte()
}
