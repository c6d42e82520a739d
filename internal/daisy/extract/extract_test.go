package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/ast"
)

func TestParseSingleExample(t *testing.T) {
	lines := []string{
		"### ~Button",
		"```html",
		`<button class="btn">Click</button>`,
		"```",
	}
	examples, err := Parse(lines, "docs/components/button/button.md")
	require.NoError(t, err)
	require.Len(t, examples, 1)

	ex := examples[0]
	assert.Equal(t, "Button", ex.Title)
	assert.Equal(t, "docs/components/button/button.md", ex.SourcePath)
	require.Len(t, ex.Elements, 1)

	tag, ok := ex.Elements[0].(ast.Tag)
	require.True(t, ok)
	assert.Equal(t, "button", tag.Name)
	assert.Equal(t, "btn", tag.Class())
	require.Len(t, tag.Children, 1)
	assert.Equal(t, ast.Text{Value: "Click"}, tag.Children[0])
}

func TestParseDiscardsUntitledBlock(t *testing.T) {
	lines := []string{
		"```html",
		`<div class="alert"></div>`,
		"```",
	}
	examples, err := Parse(lines, "alert.md")
	require.NoError(t, err)
	assert.Empty(t, examples)
}

func TestParseDiscardsEmptyBlock(t *testing.T) {
	lines := []string{
		"### ~Empty",
		"```html",
		"   ",
		"```",
	}
	examples, err := Parse(lines, "x.md")
	require.NoError(t, err)
	assert.Empty(t, examples)
}

func TestParseIgnoresOtherFences(t *testing.T) {
	lines := []string{
		"### ~Install",
		"```sh",
		"npm install daisyui",
		"```",
		"### ~Badge",
		"```html",
		`<span class="badge">New</span>`,
		"```",
	}
	examples, err := Parse(lines, "badge.md")
	require.NoError(t, err)
	require.Len(t, examples, 1)
	assert.Equal(t, "Badge", examples[0].Title)
}

func TestParseMultipleExamplesInOrder(t *testing.T) {
	lines := []string{
		"### ~First",
		"```html",
		"<div>a</div>",
		"```",
		"prose in between",
		"### ~Second",
		"```html",
		"<div>b</div>",
		"```",
	}
	examples, err := Parse(lines, "x.md")
	require.NoError(t, err)
	require.Len(t, examples, 2)
	assert.Equal(t, "First", examples[0].Title)
	assert.Equal(t, "Second", examples[1].Title)
}

func TestParseCleansDynamicMarkers(t *testing.T) {
	lines := []string{
		"### ~Colors",
		"```html",
		`<div class="stack $$stack-lg"><button class="btn $$btn-primary">Go</button></div>`,
		"```",
	}
	examples, err := Parse(lines, "x.md")
	require.NoError(t, err)
	require.Len(t, examples, 1)

	outer := examples[0].Elements[0].(ast.Tag)
	assert.Equal(t, "stack stack-lg", outer.Class())
	inner := outer.Children[0].(ast.Tag)
	assert.Equal(t, "btn btn-primary", inner.Class())
}

func TestParseDropsWhitespaceText(t *testing.T) {
	lines := []string{
		"### ~Stack",
		"```html",
		"<div>",
		`  <span class="badge">a</span>`,
		`  <span class="badge">b</span>`,
		"</div>",
		"```",
	}
	examples, err := Parse(lines, "x.md")
	require.NoError(t, err)
	require.Len(t, examples, 1)

	div := examples[0].Elements[0].(ast.Tag)
	require.Len(t, div.Children, 2)
	for _, c := range div.Children {
		_, ok := c.(ast.Tag)
		assert.True(t, ok)
	}
}

func TestParseKeepsComments(t *testing.T) {
	lines := []string{
		"### ~Note",
		"```html",
		"<div><!-- decorative --><span>x</span></div>",
		"```",
	}
	examples, err := Parse(lines, "x.md")
	require.NoError(t, err)
	div := examples[0].Elements[0].(ast.Tag)
	require.Len(t, div.Children, 2)
	assert.Equal(t, ast.Comment{Value: "decorative"}, div.Children[0])
}
