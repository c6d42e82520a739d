package gen

import (
	"sort"
	"strconv"
	"strings"

	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/ast"
	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/text"
)

const indentUnit = "  "

func ind(n int) string { return strings.Repeat(indentUnit, n) }

// Build renders one title group into example function source fragments.
// When the group's top-level elements contain repeated tag names, each
// element becomes its own function; otherwise the whole group becomes one.
func Build(component string, tg ast.TitleGroup) []string {
	if tags := splitSiblings(tg.Elements); tags != nil {
		out := make([]string, 0, len(tags))
		for _, t := range tags {
			slug := splitSlug(t)
			out = append(out, renderExample(component, slug, strings.TrimPrefix(slug, "_"), []ast.Node{t}))
		}
		return out
	}
	return []string{renderExample(component, text.Slugify(tg.Title), tg.Title, tg.Elements)}
}

// FuncName builds the package-scoped example function name for a component
// and slug. Generated components share one package, so the component name is
// folded into the identifier.
func FuncName(component, slug string) string {
	comp := text.SnakeCase(component)
	s := strings.TrimPrefix(slug, "_")
	if s == "" || s == comp {
		return "example_" + comp
	}
	return "example_" + comp + "_" + s
}

// splitSiblings returns the top-level tags when at least two of them share a
// tag name, nil otherwise. Text and comment siblings never trigger a split.
func splitSiblings(elements []ast.Node) []ast.Tag {
	var tags []ast.Tag
	counts := map[string]int{}
	for _, el := range elements {
		if t, ok := el.(ast.Tag); ok {
			tags = append(tags, t)
			counts[t.Name]++
		}
	}
	for _, c := range counts {
		if c > 1 {
			return tags
		}
	}
	return nil
}

// splitSlug names one split element: the last hyphenated class token's final
// segment, else the first direct text child, else "example".
func splitSlug(t ast.Tag) string {
	toks := strings.Fields(t.Class())
	for i := len(toks) - 1; i >= 0; i-- {
		if j := strings.LastIndex(toks[i], "-"); j > 0 {
			return text.Slugify(toks[i][j+1:])
		}
	}
	if s := strings.TrimSpace(t.FirstText()); s != "" {
		return text.Slugify(s)
	}
	return "example"
}

func renderExample(component, slug, label string, elements []ast.Node) string {
	var b strings.Builder
	if label != "" {
		b.WriteString("// " + label + "\n")
	}
	b.WriteString("func " + FuncName(component, slug) + "() g.Node {\n")
	if len(elements) == 1 {
		switch el := elements[0].(type) {
		case ast.Tag:
			b.WriteString(ind(1) + "return " + tagExpr(el, 1) + "\n")
		case ast.Text:
			b.WriteString(ind(1) + "return g.Text(" + strconv.Quote(el.Value) + ")\n")
		case ast.Comment:
			b.WriteString(ind(1) + "// " + el.Value + "\n")
			b.WriteString(ind(1) + "return nil\n")
		}
	} else {
		b.WriteString(ind(1) + "return g.Group{\n")
		for _, el := range elements {
			writeChild(&b, el, 2)
		}
		b.WriteString(ind(1) + "}\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func writeChild(b *strings.Builder, n ast.Node, indent int) {
	switch c := n.(type) {
	case ast.Comment:
		b.WriteString(ind(indent) + "// " + c.Value + "\n")
	case ast.Text:
		b.WriteString(ind(indent) + "g.Text(" + strconv.Quote(c.Value) + "),\n")
	case ast.Tag:
		b.WriteString(ind(indent) + tagExpr(c, indent) + ",\n")
	}
}

// tagExpr renders a tag as a gomponents call expression. Childless tags stay
// on one line, tags with only text children inline the text, anything else
// renders one child per line at the next indent level.
func tagExpr(t ast.Tag, indent int) string {
	fn, args := elemCall(t.Name)
	args = append(args, attrExprs(t)...)

	if len(t.Children) == 0 {
		return fn + "(" + strings.Join(args, ", ") + ")"
	}
	if allText(t.Children) {
		args = append(args, "g.Text("+strconv.Quote(joinText(t.Children))+")")
		return fn + "(" + strings.Join(args, ", ") + ")"
	}

	var b strings.Builder
	b.WriteString(fn + "(\n")
	for _, a := range args {
		b.WriteString(ind(indent+1) + a + ",\n")
	}
	for _, c := range t.Children {
		writeChild(&b, c, indent+1)
	}
	b.WriteString(ind(indent) + ")")
	return b.String()
}

func elemCall(name string) (fn string, args []string) {
	if f := htmlElementFunc(name); f != "" {
		return "h." + f, nil
	}
	return "g.El", []string{strconv.Quote(name)}
}

// attrExprs renders a tag's attributes, class first, remaining keys sorted.
func attrExprs(t ast.Tag) []string {
	var keys []string
	for k := range t.Attrs {
		if k != "class" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := t.Attrs["class"]; ok {
		keys = append([]string{"class"}, keys...)
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, attrExpr(k, t.Attrs[k]))
	}
	return out
}

func attrExpr(key, val string) string {
	if fn := htmlBoolAttrFunc(key); fn != "" && (val == "" || val == key) {
		return "h." + fn + "()"
	}
	if fn := htmlStringAttrFunc(key); fn != "" {
		return "h." + fn + "(" + strconv.Quote(val) + ")"
	}
	return "g.Attr(" + strconv.Quote(key) + ", " + strconv.Quote(val) + ")"
}

func allText(children []ast.Node) bool {
	for _, c := range children {
		if _, ok := c.(ast.Text); !ok {
			return false
		}
	}
	return true
}

func joinText(children []ast.Node) string {
	parts := make([]string, 0, len(children))
	for _, c := range children {
		parts = append(parts, c.(ast.Text).Value)
	}
	return strings.Join(parts, " ")
}
