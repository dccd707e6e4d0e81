package typescript

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/docgraph/converter"
	"github.com/viant/docgraph/reflection"
	"github.com/viant/docgraph/source"
	"golang.org/x/tools/txtar"
)

const fixture = `
-- tsconfig.json --
{}
-- src/index.ts --
/** Shapes entry point. */

export const version: string = '1.0';
-- src/shapes/bar.ts --
/**
 * Bar shapes.
 * @module shapes.Bar
 */
export type ObjectValues = 'circle' | 'square';

// not a doc
const local = 1;

/** Bar is a shape. */
export class Bar {
  /** Shape kind. */
  kind: ObjectValues;
  private secret: string;
  #hidden = 1;

  /** Creates bar. */
  constructor() {}

  /** Draws the bar. */
  draw(): void {}

  /** Size of the bar. */
  get size(): number { return 1; }
  set size(value: number) {}
}

/** Drawer draws shapes. */
export interface Drawer {
  /** Draws the shape. */
  draw(shape: Bar): boolean;
  /** Shape color. */
  color?: string;
}

/** Colors. */
export enum Color {
  Red,
  Green = 'green',
}

export function helper(value: number): Bar[] {
  return [];
}

/** Default bar. */
export const defaultBar: Bar = new Bar();
-- src/shapes/bar.test.ts --
export function testBar(): void {}
-- src/shapes/bar.d.ts --
export declare function declared(): void;
-- node_modules/lib/index.ts --
export function lib(): void {}
`

func writeArchive(t *testing.T, data string) string {
	root := t.TempDir()
	archive := txtar.Parse([]byte(data))
	for _, file := range archive.Files {
		location := filepath.Join(root, file.Name)
		require.NoError(t, os.MkdirAll(filepath.Dir(location), 0755))
		require.NoError(t, os.WriteFile(location, file.Data, 0644))
	}
	return root
}

func names(declarations []*source.Declaration) []string {
	var ret []string
	for _, declaration := range declarations {
		ret = append(ret, declaration.Name)
	}
	return ret
}

func find(declarations []*source.Declaration, name string) *source.Declaration {
	for _, declaration := range declarations {
		if declaration.Name == name {
			return declaration
		}
	}
	return nil
}

func TestAnalyzer_Declarations(t *testing.T) {
	root := writeArchive(t, fixture)
	declarations, err := New(root).Declarations(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"src/index", "src/shapes/bar"}, names(declarations))

	index := declarations[0]
	assert.Equal(t, "/** Shapes entry point. */", index.RawComment())
	require.Equal(t, []string{"version"}, names(index.Children))
	assert.Empty(t, index.Children[0].Comment)

	bar := declarations[1]
	assert.Equal(t, reflection.KindExternalModule, bar.Kind)
	assert.Equal(t, "/**\n * Bar shapes.\n * @module shapes.Bar\n */", bar.RawComment())
	assert.Equal(t, "src/shapes/bar.ts:1", bar.Sources[0].String())
	assert.Equal(t, []string{"ObjectValues", "Bar", "Drawer", "Color", "helper", "defaultBar"}, names(bar.Children))

	var testCases = []struct {
		description string
		name        string
		kind        reflection.Kind
		comment     string
		location    string
		children    []string
	}{
		{description: "type alias after module comment", name: "ObjectValues", kind: reflection.KindTypeAlias, location: "src/shapes/bar.ts:5"},
		{description: "class", name: "Bar", kind: reflection.KindClass, comment: "/** Bar is a shape. */", location: "src/shapes/bar.ts:11", children: []string{"kind", "constructor", "draw", "size"}},
		{description: "interface", name: "Drawer", kind: reflection.KindInterface, comment: "/** Drawer draws shapes. */", location: "src/shapes/bar.ts:29", children: []string{"draw", "color"}},
		{description: "enum", name: "Color", kind: reflection.KindEnum, comment: "/** Colors. */", location: "src/shapes/bar.ts:37", children: []string{"Red", "Green"}},
		{description: "undocumented function", name: "helper", kind: reflection.KindFunction, location: "src/shapes/bar.ts:42", children: []string{"helper"}},
		{description: "variable", name: "defaultBar", kind: reflection.KindVariable, comment: "/** Default bar. */", location: "src/shapes/bar.ts:47"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			declaration := find(bar.Children, testCase.name)
			require.NotNil(t, declaration)
			assert.Equal(t, testCase.kind, declaration.Kind)
			assert.Equal(t, testCase.comment, declaration.Comment)
			assert.Equal(t, testCase.location, declaration.Sources[0].String())
			assert.Equal(t, testCase.children, names(declaration.Children))
		})
	}

	class := find(bar.Children, "Bar")
	kind := find(class.Children, "kind")
	assert.Equal(t, reflection.KindProperty, kind.Kind)
	assert.Equal(t, "/** Shape kind. */", kind.Comment)
	assert.Equal(t, converter.SourceReference, kind.Type.Kind)
	require.NotNil(t, kind.Type.Resolved)
	assert.Equal(t, converter.SourceUnion, kind.Type.Resolved.Kind)
	assert.Len(t, kind.Type.Resolved.Members, 2)

	assert.Equal(t, reflection.KindConstructor, find(class.Children, "constructor").Kind)
	size := find(class.Children, "size")
	assert.Equal(t, reflection.KindAccessor, size.Kind)
	assert.Equal(t, "number", size.Type.Name)
	draw := find(class.Children, "draw")
	assert.Equal(t, reflection.KindMethod, draw.Kind)
	require.Len(t, draw.Children, 1)
	assert.Equal(t, reflection.KindCallSignature, draw.Children[0].Kind)
	assert.Equal(t, "void", draw.Children[0].Type.Name)

	helper := find(bar.Children, "helper")
	result := helper.Children[0].Type
	assert.Equal(t, converter.SourceArray, result.Kind)
	assert.Equal(t, "Bar", result.Element.Name)

	color := find(find(bar.Children, "Drawer").Children, "color")
	assert.Equal(t, reflection.KindProperty, color.Kind)
	assert.Equal(t, "string", color.Type.Name)
}

func TestAnalyzer_Convert(t *testing.T) {
	root := writeArchive(t, fixture)
	project, err := New(root, WithName("shapes")).Convert(context.Background(), converter.New())
	require.NoError(t, err)
	require.NoError(t, project.Validate())
	assert.Equal(t, "shapes", project.Name)
	assert.Equal(t, root, project.Directory)
	module := project.ChildByName("src/shapes/bar", reflection.KindExternalModule, nil)
	require.NotNil(t, module)
	assert.True(t, module.Comment.HasTag("module"))
	class := module.ChildByName("Bar", reflection.KindClass, nil)
	require.NotNil(t, class)
	assert.Equal(t, "Bar is a shape.", class.Comment.ShortText)
}

func TestAnalyzer_Fingerprint(t *testing.T) {
	ctx := context.Background()
	root := writeArchive(t, fixture)
	analyzer := New(root)
	first, err := analyzer.Fingerprint(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "shapes", "bar.test.ts"), []byte("export {};\n"), 0644))
	unchanged, err := analyzer.Fingerprint(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, unchanged)

	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "extra.ts"), []byte("export {};\n"), 0644))
	changed, err := analyzer.Fingerprint(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first, changed)
}

func TestIsSource(t *testing.T) {
	var testCases = []struct {
		description string
		name        string
		expect      bool
	}{
		{description: "typescript", name: "bar.ts", expect: true},
		{description: "tsx", name: "view.tsx", expect: true},
		{description: "declaration file", name: "bar.d.ts"},
		{description: "test file", name: "bar.test.ts"},
		{description: "spec file", name: "bar.spec.ts"},
		{description: "javascript", name: "bar.js"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.expect, isSource(testCase.name))
		})
	}
}
