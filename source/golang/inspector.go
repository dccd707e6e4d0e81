package golang

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/viant/docgraph/reflection"
	"github.com/viant/docgraph/source"
	"github.com/viant/docgraph/source/syntax"
)

// fileInspector extracts declarations of one source file into its package
type fileInspector struct {
	pkg               *pkg
	path              string
	src               []byte
	includeUnexported bool
}

func (i *fileInspector) inspect(ctx context.Context) error {
	parser := sitter.NewParser()
	parser.SetLanguage(golang.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, i.src)
	if err != nil {
		return fmt.Errorf("failed to parse source: %w", err)
	}
	for _, item := range syntax.Children(tree.RootNode()) {
		switch item.Node.Type() {
		case "package_clause":
			if item.Node.NamedChildCount() > 0 {
				i.pkg.name = item.Node.NamedChild(0).Content(i.src)
			}
			if i.pkg.module.Comment == "" && len(item.Comments) > 0 {
				i.pkg.module.Comment = syntax.Text(item.Comments, i.src)
				i.pkg.module.Sources = i.sources(item.Node)
			}
		case "function_declaration":
			if declaration := i.callable(reflection.KindFunction, item); declaration != nil {
				i.pkg.module.Add(declaration)
			}
		case "method_declaration":
			i.method(item)
		case "type_declaration":
			specs := syntax.Children(item.Node)
			for _, spec := range specs {
				if len(spec.Comments) == 0 && len(specs) == 1 {
					spec.Comments = item.Comments
				}
				i.typeSpec(spec)
			}
		case "const_declaration", "var_declaration":
			i.variables(item)
		}
	}
	return nil
}

func (i *fileInspector) exported(name string) bool {
	return i.includeUnexported || isExported(name)
}

func (i *fileInspector) sources(node *sitter.Node) []*reflection.Source {
	return []*reflection.Source{{File: i.path, Line: syntax.Line(node)}}
}

func (i *fileInspector) declaration(kind reflection.Kind, name string, item *syntax.Documented) *source.Declaration {
	return &source.Declaration{Kind: kind, Name: name, Comment: syntax.Text(item.Comments, i.src), Sources: i.sources(item.Node)}
}

// callable creates function or method declaration with its call signature
func (i *fileInspector) callable(kind reflection.Kind, item *syntax.Documented) *source.Declaration {
	nameNode := item.Node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(i.src)
	if !i.exported(name) {
		return nil
	}
	ret := i.declaration(kind, name, item)
	signature := &source.Declaration{Kind: reflection.KindCallSignature, Name: name, Sources: ret.Sources}
	if result := item.Node.ChildByFieldName("result"); result != nil {
		signature.Type = i.sourceType(result)
	}
	ret.Add(signature)
	return ret
}

func (i *fileInspector) method(item *syntax.Documented) {
	receiver := receiverType(item.Node.ChildByFieldName("receiver"), i.src)
	if receiver == "" {
		return
	}
	declaration := i.callable(reflection.KindMethod, item)
	if declaration == nil {
		return
	}
	i.pkg.methods = append(i.pkg.methods, &method{receiver: receiver, declaration: declaration})
}

// receiverType returns receiver base type name without pointer and type parameters
func receiverType(receiver *sitter.Node, src []byte) string {
	if receiver == nil {
		return ""
	}
	for j := 0; j < int(receiver.NamedChildCount()); j++ {
		parameter := receiver.NamedChild(j)
		if parameter.Type() != "parameter_declaration" {
			continue
		}
		typeNode := parameter.ChildByFieldName("type")
		if typeNode == nil {
			continue
		}
		name := strings.TrimLeft(typeNode.Content(src), "*( ")
		if index := strings.IndexAny(name, "[)"); index != -1 {
			name = name[:index]
		}
		return strings.TrimSpace(name)
	}
	return ""
}

func (i *fileInspector) typeSpec(item *syntax.Documented) {
	if item.Node.Type() != "type_spec" && item.Node.Type() != "type_alias" {
		return
	}
	nameNode := item.Node.ChildByFieldName("name")
	typeNode := item.Node.ChildByFieldName("type")
	if nameNode == nil || typeNode == nil {
		return
	}
	name := nameNode.Content(i.src)
	if !i.exported(name) {
		return
	}
	var declaration *source.Declaration
	switch {
	case item.Node.Type() == "type_spec" && typeNode.Type() == "struct_type":
		declaration = i.declaration(reflection.KindClass, name, item)
		i.fields(declaration, typeNode)
	case item.Node.Type() == "type_spec" && typeNode.Type() == "interface_type" && constraintUnion(typeNode) == nil:
		declaration = i.declaration(reflection.KindInterface, name, item)
		i.interfaceMethods(declaration, typeNode)
	default:
		declaration = i.declaration(reflection.KindTypeAlias, name, item)
		declaration.Type = i.sourceType(typeNode)
	}
	i.pkg.addType(name, declaration)
}

func (i *fileInspector) fields(owner *source.Declaration, structNode *sitter.Node) {
	for j := 0; j < int(structNode.NamedChildCount()); j++ {
		list := structNode.NamedChild(j)
		if list.Type() != "field_declaration_list" {
			continue
		}
		for _, field := range syntax.Children(list) {
			if field.Node.Type() != "field_declaration" {
				continue
			}
			typeNode := field.Node.ChildByFieldName("type")
			for k := 0; k < int(field.Node.NamedChildCount()); k++ {
				nameNode := field.Node.NamedChild(k)
				if nameNode.Type() != "field_identifier" || !i.exported(nameNode.Content(i.src)) {
					continue
				}
				property := i.declaration(reflection.KindProperty, nameNode.Content(i.src), field)
				if typeNode != nil {
					property.Type = i.sourceType(typeNode)
				}
				owner.Add(property)
			}
		}
	}
}

func (i *fileInspector) interfaceMethods(owner *source.Declaration, interfaceNode *sitter.Node) {
	for _, element := range syntax.Children(interfaceNode) {
		switch element.Node.Type() {
		case "method_elem", "method_spec":
			if declaration := i.callable(reflection.KindMethod, element); declaration != nil {
				owner.Add(declaration)
			}
		}
	}
}

func (i *fileInspector) variables(item *syntax.Documented) {
	specs := syntax.Children(item.Node)
	for _, spec := range specs {
		if spec.Node.Type() == "var_spec_list" {
			i.variables(spec)
			continue
		}
		if spec.Node.Type() != "const_spec" && spec.Node.Type() != "var_spec" {
			continue
		}
		if len(spec.Comments) == 0 && len(specs) == 1 {
			spec.Comments = item.Comments
		}
		typeNode := spec.Node.ChildByFieldName("type")
		for k := 0; k < int(spec.Node.NamedChildCount()); k++ {
			nameNode := spec.Node.NamedChild(k)
			if nameNode.Type() != "identifier" {
				continue
			}
			name := nameNode.Content(i.src)
			if name == "_" || !i.exported(name) {
				continue
			}
			variable := i.declaration(reflection.KindVariable, name, spec)
			if typeNode != nil {
				variable.Type = i.sourceType(typeNode)
			}
			i.pkg.module.Add(variable)
		}
	}
}
