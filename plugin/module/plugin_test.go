package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/docgraph/converter"
	"github.com/viant/docgraph/reflection"
)

type rawComment string

func (r rawComment) RawComment() string { return string(r) }

type declaration struct {
	kind     reflection.Kind
	name     string
	raw      string
	comment  *reflection.Comment
	children []*declaration
}

// convert replays declarations as lifecycle events and runs the resolve phase
func convert(t *testing.T, declarations ...*declaration) (*reflection.Project, *Plugin) {
	plugin := New()
	conv := converter.New(converter.WithPlugins(plugin))
	project := reflection.NewProject("test")
	ctx := conv.Begin(project)
	var create func(parent *reflection.Reflection, decl *declaration)
	create = func(parent *reflection.Reflection, decl *declaration) {
		r := project.CreateReflection(decl.kind, decl.name, parent)
		r.Comment = decl.comment
		if decl.comment == nil && decl.raw != "" {
			r.Comment = reflection.ParseComment(decl.raw)
		}
		var node converter.SourceNode
		if decl.raw != "" {
			node = rawComment(decl.raw)
		}
		conv.DeclarationCreated(ctx, r, node)
		for _, child := range decl.children {
			create(r, child)
		}
	}
	for _, decl := range declarations {
		create(project.Root(), decl)
	}
	conv.ResolveBegin(ctx)
	require.NoError(t, conv.End(ctx))
	require.NoError(t, project.Validate())
	return project, plugin
}

func module(name, raw string, children ...*declaration) *declaration {
	return &declaration{kind: reflection.KindExternalModule, name: name, raw: raw, children: children}
}

func class(name string) *declaration {
	return &declaration{kind: reflection.KindClass, name: name, raw: "// " + name + " docs"}
}

func names(reflections []*reflection.Reflection) []string {
	var result []string
	for _, r := range reflections {
		result = append(result, r.Name)
	}
	return result
}

func TestParseDirective(t *testing.T) {
	var testCases = []struct {
		description string
		text        string
		target      string
		preferred   bool
		ok          bool
	}{
		{description: "simple", text: "// @module shapes.Bar", target: "shapes.Bar", ok: true},
		{description: "preferred on same line", text: "@module shapes.Bar @preferred", target: "shapes.Bar", preferred: true, ok: true},
		{description: "preferred on next line", text: "Docs\n@module a/b-c:d_e\n@preferred", target: "a/b-c:d_e", preferred: true, ok: true},
		{description: "quoted", text: `@module "ui.Button"`, target: "ui.Button", ok: true},
		{description: "block comment", text: "/** @module core */", target: "core", ok: true},
		{description: "absent", text: "// plain comment", ok: false},
		{description: "empty path", text: "@module   \n", ok: false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			target, preferred, ok := ParseDirective(testCase.text)
			assert.Equal(t, testCase.ok, ok)
			assert.Equal(t, testCase.target, target)
			assert.Equal(t, testCase.preferred, preferred)
		})
	}
}

func TestPlugin_Rename(t *testing.T) {
	project, plugin := convert(t,
		module("foo/bar", "// Shapes.\n// @module shapes.Bar", class("Bar")),
		module("foo/qux", "// no directive", class("Qux")),
	)
	assert.Empty(t, plugin.Directives())
	assert.Equal(t, []string{"foo/qux", "shapes"}, names(project.Children))
	shapes := project.Children[1]
	require.Len(t, shapes.Children, 1)
	bar := shapes.Children[0]
	assert.Equal(t, "Bar", bar.Name)
	assert.Equal(t, reflection.KindExternalModule, bar.Kind)
	assert.Equal(t, []string{"Bar"}, names(bar.Children))
	assert.Equal(t, "Shapes.", bar.Comment.ShortText)
	assert.False(t, bar.Comment.HasTag("module"))
}

func TestPlugin_SharedContainers(t *testing.T) {
	var testCases = []struct {
		description string
		first       *declaration
		second      *declaration
	}{
		{
			description: "a.b then a.c",
			first:       module("x", "@module a.b", class("X")),
			second:      module("y", "@module a.c", class("Y")),
		},
		{
			description: "a.c then a.b",
			first:       module("y", "@module a.c", class("Y")),
			second:      module("x", "@module a.b", class("X")),
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			project, _ := convert(t, testCase.first, testCase.second)
			require.Equal(t, []string{"a"}, names(project.Children))
			assert.ElementsMatch(t, []string{"b", "c"}, names(project.Children[0].Children))
		})
	}
}

func TestPlugin_Merge(t *testing.T) {
	yComment := &reflection.Comment{ShortText: "Y module"}
	project, _ := convert(t,
		&declaration{kind: reflection.KindExternalModule, name: "Y", comment: yComment, children: []*declaration{class("foo")}},
		module("X", "// X module\n// @module Y", class("first"), class("second")),
	)
	require.Equal(t, []string{"Y"}, names(project.Children))
	y := project.Children[0]
	assert.Equal(t, []string{"foo", "first", "second"}, names(y.Children))
	assert.Equal(t, "Y module", y.Comment.ShortText)
	for _, r := range project.Reflections() {
		assert.NotEqual(t, "X", r.Name)
	}
	assert.Equal(t, 4, project.Len())
}

func TestPlugin_MergePreferred(t *testing.T) {
	project, _ := convert(t,
		&declaration{kind: reflection.KindExternalModule, name: "Y", comment: &reflection.Comment{ShortText: "Y module"}},
		module("X", "// X module\n// @module Y\n// @preferred", class("first")),
	)
	y := project.Children[0]
	assert.Equal(t, "X module", y.Comment.ShortText)
	assert.False(t, y.Comment.HasTag("module", "preferred"))
	assert.Equal(t, []string{"first"}, names(y.Children))
}

func TestPlugin_MergePreferredCopiesComment(t *testing.T) {
	comment := &reflection.Comment{ShortText: "X module", Tags: []*reflection.Tag{{Name: "see", Text: "Y"}}}
	source := &declaration{kind: reflection.KindExternalModule, name: "X", raw: "// @module Y\n// @preferred", comment: comment, children: []*declaration{class("first")}}
	project, _ := convert(t,
		&declaration{kind: reflection.KindExternalModule, name: "Y", comment: &reflection.Comment{ShortText: "Y module"}},
		source,
	)
	y := project.Children[0]
	require.NotNil(t, y.Comment)
	assert.NotSame(t, comment, y.Comment)
	assert.Equal(t, comment, y.Comment)
	assert.NotSame(t, comment.Tags[0], y.Comment.Tags[0])
}

func TestPlugin_MergeIntoCreatedContainer(t *testing.T) {
	project, _ := convert(t,
		module("src/ui", "@module ui", class("Button")),
		module("src/ui/extra", "@module ui", class("Slider")),
	)
	require.Equal(t, []string{"ui"}, names(project.Children))
	assert.Equal(t, []string{"Button", "Slider"}, names(project.Children[0].Children))
}

func TestPlugin_SelfTarget(t *testing.T) {
	project, _ := convert(t,
		module("core", "@module core", class("Engine")),
	)
	require.Equal(t, []string{"core"}, names(project.Children))
	assert.Equal(t, []string{"Engine"}, names(project.Children[0].Children))

	nested, _ := convert(t,
		module("a", "@module a.b", class("A")),
	)
	require.Equal(t, []string{"a"}, names(nested.Children))
	container := nested.Children[0]
	require.Equal(t, []string{"b"}, names(container.Children))
	assert.Equal(t, []string{"A"}, names(container.Children[0].Children))
}

func TestPlugin_ResetOnBegin(t *testing.T) {
	plugin := New()
	conv := converter.New(converter.WithPlugins(plugin))
	project := reflection.NewProject("stale")
	ctx := conv.Begin(project)
	stale := project.CreateReflection(reflection.KindExternalModule, "old", nil)
	conv.DeclarationCreated(ctx, stale, rawComment("@module renamed"))
	require.Len(t, plugin.Directives(), 1)

	// abandoned cycle, a new begin must not carry directives over
	fresh := reflection.NewProject("fresh")
	ctx = conv.Begin(fresh)
	assert.Empty(t, plugin.Directives())
	conv.ResolveBegin(ctx)
	assert.Equal(t, "old", stale.Name)
	assert.Equal(t, 0, fresh.Len())
}
