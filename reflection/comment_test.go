package reflection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseComment(t *testing.T) {
	var testCases = []struct {
		description string
		raw         string
		expect      *Comment
	}{
		{
			description: "empty",
			raw:         "  ",
			expect:      nil,
		},
		{
			description: "line comment with tags",
			raw: `// Bar draws shapes.
//
// Details follow here.
// @module shapes.Bar
// @preferred`,
			expect: &Comment{
				ShortText: "Bar draws shapes.",
				Text:      "Details follow here.",
				Tags:      []*Tag{{Name: "module", Text: "shapes.Bar"}, {Name: "preferred"}},
			},
		},
		{
			description: "block comment",
			raw: `/**
 * Returns a value.
 * @internal used by tests
 *   only
 */`,
			expect: &Comment{
				ShortText: "Returns a value.",
				Tags:      []*Tag{{Name: "internal", Text: "used by tests\nonly"}},
			},
		},
		{
			description: "tag only",
			raw:         "/* @hidden */",
			expect:      &Comment{Tags: []*Tag{{Name: "hidden"}}},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual := ParseComment(testCase.raw)
			assert.EqualValues(t, testCase.expect, actual)
		})
	}
}

func TestComment_RemoveTags(t *testing.T) {
	comment := ParseComment("Summary\n@module a.b\n@since 1.0\n@Preferred")
	assert.True(t, comment.HasTag("preferred"))
	assert.Equal(t, 2, comment.RemoveTags("module", "preferred"))
	assert.Equal(t, []*Tag{{Name: "since", Text: "1.0"}}, comment.Tags)
	assert.False(t, comment.HasTag("module"))
	assert.False(t, comment.IsEmpty())

	var nilComment *Comment
	assert.True(t, nilComment.IsEmpty())
	assert.Equal(t, 0, nilComment.RemoveTags("module"))
	assert.Nil(t, nilComment.Clone())
}
