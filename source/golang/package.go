package golang

import (
	"unicode"
	"unicode/utf8"

	"github.com/viant/docgraph/reflection"
	"github.com/viant/docgraph/source"
)

// method represents method declaration waiting for its receiver type
type method struct {
	receiver    string
	declaration *source.Declaration
}

// pkg accumulates declarations of one package directory
type pkg struct {
	name    string
	module  *source.Declaration
	types   map[string]*source.Declaration
	methods []*method
}

func newPackage(dir string) *pkg {
	return &pkg{
		module: &source.Declaration{Kind: reflection.KindExternalModule, Name: dir},
		types:  make(map[string]*source.Declaration),
	}
}

func (p *pkg) addType(name string, declaration *source.Declaration) {
	p.types[name] = declaration
	p.module.Add(declaration)
}

// resolve attaches methods to receiver types and links references to package union aliases
func (p *pkg) resolve(includeUnexported bool) {
	for _, item := range p.methods {
		if owner, ok := p.types[item.receiver]; ok {
			owner.Add(item.declaration)
			continue
		}
		if includeUnexported || isExported(item.receiver) {
			p.module.Add(item.declaration)
		}
	}
	p.methods = nil
	source.LinkAliases([]*source.Declaration{p.module})
}

func isExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
