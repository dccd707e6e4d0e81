package converter

import "github.com/viant/docgraph/reflection"

// SourceNode represents the analyzer node a reflection was created from
type SourceNode interface {
	// RawComment returns unprocessed doc comment text of the node
	RawComment() string
}

// BeginHandler is called at the start of a conversion cycle, it must reset all per-run state
type BeginHandler interface {
	Begin(ctx *Context)
}

// DeclarationHandler is called for every declaration reflection created by the analyzer
type DeclarationHandler interface {
	DeclarationCreated(ctx *Context, r *reflection.Reflection, node SourceNode)
}

// SignatureHandler is called for every call signature reflection created by the analyzer
type SignatureHandler interface {
	SignatureCreated(ctx *Context, r *reflection.Reflection, node SourceNode)
}

// ResolveHandler is called once all declarations exist
type ResolveHandler interface {
	ResolveBegin(ctx *Context)
}

// EndHandler is called when a conversion cycle completes, an error aborts the cycle
type EndHandler interface {
	End(ctx *Context) error
}

// Plugin is any value implementing one or more handler interfaces
type Plugin interface{}
