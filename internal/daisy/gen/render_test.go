package gen

import (
	"go/format"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/ast"
	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/classify"
	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/extract"
)

func formatAgain(src []byte) ([]byte, error) {
	return format.Source(src)
}

func analyzeDoc(t *testing.T, sourcePath string, lines []string) classify.ComponentSpec {
	t.Helper()
	examples, err := extract.Parse(lines, sourcePath)
	require.NoError(t, err)
	require.NotEmpty(t, examples)
	return classify.Analyze(ast.Group(examples), "daisy")
}

func TestRenderButtonEndToEnd(t *testing.T) {
	spec := analyzeDoc(t, "docs/components/button/button.md", []string{
		"### ~Button",
		"```html",
		`<button class="btn btn-primary">Click</button>`,
		"```",
	})
	require.Equal(t, "btn", spec.BaseClass)
	require.Equal(t, []string{"primary"}, spec.Variants[classify.Color])

	src, err := Render(spec)
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "// Code generated by oopsie-daisy from docs/components/button/button.md. DO NOT EDIT.")
	assert.Contains(t, out, "package daisy")

	// Variant declaration with unset value plus detected values.
	assert.Contains(t, out, "type ButtonColor string")
	assert.Contains(t, out, `ButtonColorNone    ButtonColor = ""`)
	assert.Contains(t, out, `ButtonColorPrimary ButtonColor = "primary"`)

	// Primary definition wraps a children slot.
	assert.Contains(t, out, "func Button(p ButtonProps, children ...g.Node) g.Node {")
	assert.Contains(t, out, `daisy.Classes("btn", buttonColorClass(p.Color), p.Class)`)
	assert.Contains(t, out, "g.Group(children)")

	// Per-dimension helper maps values to literal classes, unset to none.
	assert.Contains(t, out, "func buttonColorClass(v ButtonColor) string {")
	assert.Contains(t, out, `return "btn-primary"`)
	assert.Contains(t, out, `return ""`)

	// Example function from the documentation sample.
	assert.Contains(t, out, "func example_button() g.Node {")
	assert.Contains(t, out, `h.Button(h.Class("btn btn-primary"), g.Text("Click"))`)

	// Usage header.
	assert.Contains(t, out, "//\tdaisy.Button(daisy.ButtonProps{}, g.Text(\"Button\"))")
	assert.Contains(t, out, `//	<button class="btn">Button</button>`)
}

func TestRenderVoidTagHasNoSlot(t *testing.T) {
	spec := analyzeDoc(t, "docs/components/text-input/text-input.md", []string{
		"### ~Text input",
		"```html",
		`<input class="input input-sm" placeholder="Type here" />`,
		"```",
	})
	require.Equal(t, "input", spec.BaseClass)

	src, err := Render(spec)
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "func TextInput(p TextInputProps) g.Node {")
	assert.NotContains(t, out, "children ...g.Node")
	assert.NotContains(t, out, "g.Group(children)")
	assert.Contains(t, out, `//	<input class="input" />`)

	// Allow-listed pass-through field for input-like bases.
	assert.Contains(t, out, "Placeholder string")
	assert.Contains(t, out, `g.If(p.Placeholder != "", h.Placeholder(p.Placeholder))`)
}

func TestRenderSizeDefaults(t *testing.T) {
	spec := analyzeDoc(t, "docs/components/button/button.md", []string{
		"### ~Sizes",
		"```html",
		`<button class="btn btn-xs">Tiny</button>`,
		"```",
	})
	require.Equal(t, []string{"xs"}, spec.Variants[classify.Size])
	require.Equal(t, "xs", spec.SizeDefault)

	src, err := Render(spec)
	require.NoError(t, err)
	out := string(src)

	// Size has no unset constant; md is always part of the legal set.
	assert.NotContains(t, out, "ButtonSizeNone")
	assert.Contains(t, out, `ButtonSizeXs ButtonSize = "xs"`)
	assert.Contains(t, out, `ButtonSizeMd ButtonSize = "md"`)
	assert.Contains(t, out, `if p.Size == "" {`)
	assert.Contains(t, out, "p.Size = ButtonSizeXs")
}

func TestRenderWithoutBaseClass(t *testing.T) {
	spec := classify.ComponentSpec{
		Name:       "Spacer",
		Namespace:  "daisy",
		ModuleName: "daisy.Spacer",
		FileName:   "spacer.go",
		Variants:   classify.VariantMap{},
		TitleGroups: []ast.TitleGroup{{
			Title:    "Spacer",
			Elements: []ast.Node{ast.Tag{Name: "div", Attrs: map[string]string{}}},
		}},
		SourcePath: "docs/components/spacer/spacer.md",
	}
	src, err := Render(spec)
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "func Spacer(p SpacerProps, children ...g.Node) g.Node {")
	assert.Contains(t, out, "daisy.Classes(p.Class)")
	assert.NotContains(t, out, "type SpacerSize")
}

func TestRenderedSourceIsGofmtClean(t *testing.T) {
	spec := analyzeDoc(t, "docs/components/button/button.md", []string{
		"### ~Buttons",
		"```html",
		`<div class="grid"><button class="btn btn-lg btn-outline">A</button><button class="btn btn-ghost">B</button></div>`,
		"```",
	})
	src, err := Render(spec)
	require.NoError(t, err)
	// format.Source already ran inside Render; a second pass must be a
	// fixed point.
	again, err := formatAgain(src)
	require.NoError(t, err)
	assert.Equal(t, string(src), string(again))
}
