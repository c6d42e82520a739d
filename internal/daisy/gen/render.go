// Package gen synthesizes Go source for one component: typed variant
// declarations, the component function, class helpers and the documentation
// examples, emitted as gomponents code.
package gen

import (
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/classify"
	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/text"
)

// runtimeImport is the support package generated files depend on.
const runtimeImport = "github.com/MikeNotThePope/oopsie-daisy/pkg/daisy"

var dimWord = map[classify.Dimension]string{
	classify.Size:     "Size",
	classify.Color:    "Color",
	classify.Style:    "Style",
	classify.Modifier: "Modifier",
}

// Render emits the full generated module for one ComponentSpec. The result
// is gofmt'd; a formatting failure means the synthesizer produced invalid Go
// and is reported against the component's file name.
func Render(spec classify.ComponentSpec) ([]byte, error) {
	var b strings.Builder
	writeHeader(&b, spec)
	writeUsage(&b, spec)
	writeVariantDecls(&b, spec)
	writeProps(&b, spec)
	writeComponent(&b, spec)
	writeHelpers(&b, spec)
	for _, tg := range spec.TitleGroups {
		for _, fn := range Build(spec.Name, tg) {
			b.WriteString("\n")
			b.WriteString(fn)
		}
	}
	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", spec.FileName, err)
	}
	return src, nil
}

func writeHeader(b *strings.Builder, spec classify.ComponentSpec) {
	fmt.Fprintf(b, "// Code generated by oopsie-daisy from %s. DO NOT EDIT.\n\n", spec.SourcePath)
	fmt.Fprintf(b, "package %s\n\n", spec.Namespace)
	b.WriteString("import (\n")
	b.WriteString(ind(1) + "g \"maragu.dev/gomponents\"\n")
	b.WriteString(ind(1) + "h \"maragu.dev/gomponents/html\"\n\n")
	b.WriteString(ind(1) + strconv.Quote(runtimeImport) + "\n")
	b.WriteString(")\n\n")
}

func writeUsage(b *strings.Builder, spec classify.ComponentSpec) {
	tag := InferTag(spec.BaseClass)
	attrs := map[string]string{}
	if spec.BaseClass != "" {
		attrs["class"] = spec.BaseClass
	}
	b.WriteString("// Usage:\n//\n")
	if voidTags[tag] {
		fmt.Fprintf(b, "//\t%s(%sProps{})\n", spec.ModuleName, spec.ModuleName)
		b.WriteString("//\n// which renders\n//\n")
		fmt.Fprintf(b, "//\t<%s%s />\n", tag, text.FormatAttrs(attrs))
	} else {
		fmt.Fprintf(b, "//\t%s(%sProps{}, g.Text(%q))\n", spec.ModuleName, spec.ModuleName, spec.Name)
		b.WriteString("//\n// which renders\n//\n")
		fmt.Fprintf(b, "//\t<%s%s>%s</%s>\n", tag, text.FormatAttrs(attrs), text.EscapeHTML(spec.Name), tag)
	}
	b.WriteString("\n")
}

// variantValues returns the declared value list for a dimension. Size always
// carries md; every other dimension leads with the unset value (emitted as
// the None constant).
func variantValues(spec classify.ComponentSpec, dim classify.Dimension) []string {
	values := append([]string(nil), spec.Variants[dim]...)
	if dim != classify.Size {
		return values
	}
	for _, v := range values {
		if v == "md" {
			return values
		}
	}
	return append(values, "md")
}

func writeVariantDecls(b *strings.Builder, spec classify.ComponentSpec) {
	for _, dim := range classify.Dimensions {
		if len(spec.Variants[dim]) == 0 {
			continue
		}
		typ := spec.Name + dimWord[dim]
		switch dim {
		case classify.Size:
			fmt.Fprintf(b, "// %s selects the %s size class. Defaults to %s%s.\n",
				typ, spec.BaseClass, typ, text.PascalCase(spec.SizeDefault))
		default:
			fmt.Fprintf(b, "// %s selects the %s %s class. Defaults to %sNone, which adds no class.\n",
				typ, spec.BaseClass, string(dim), typ)
		}
		fmt.Fprintf(b, "type %s string\n\n", typ)
		b.WriteString("const (\n")
		if dim != classify.Size {
			fmt.Fprintf(b, "%s%sNone %s = \"\"\n", ind(1), typ, typ)
		}
		for _, v := range variantValues(spec, dim) {
			fmt.Fprintf(b, "%s%s%s %s = %q\n", ind(1), typ, text.PascalCase(v), typ, v)
		}
		b.WriteString(")\n\n")
	}
}

func writeProps(b *strings.Builder, spec classify.ComponentSpec) {
	fmt.Fprintf(b, "// %sProps configures %s.\n", spec.Name, spec.Name)
	fmt.Fprintf(b, "type %sProps struct {\n", spec.Name)
	for _, dim := range classify.Dimensions {
		if len(spec.Variants[dim]) == 0 {
			continue
		}
		fmt.Fprintf(b, "%s%s %s%s\n", ind(1), dimWord[dim], spec.Name, dimWord[dim])
	}
	for _, name := range restAttrs[spec.BaseClass] {
		fmt.Fprintf(b, "%s// %s is forwarded to the rendered element.\n", ind(1), text.PascalCase(name))
		fmt.Fprintf(b, "%s%s string\n", ind(1), text.PascalCase(name))
	}
	fmt.Fprintf(b, "%s// Class is appended verbatim after the variant classes.\n", ind(1))
	fmt.Fprintf(b, "%sClass string\n", ind(1))
	fmt.Fprintf(b, "%s// Rest holds extra attributes forwarded to the rendered element.\n", ind(1))
	fmt.Fprintf(b, "%sRest []g.Node\n", ind(1))
	b.WriteString("}\n\n")
}

func writeComponent(b *strings.Builder, spec classify.ComponentSpec) {
	tag := InferTag(spec.BaseClass)
	fn, extra := elemCall(tag)

	if spec.BaseClass != "" {
		fmt.Fprintf(b, "// %s renders a %q component as a <%s> element.\n", spec.Name, spec.BaseClass, tag)
	} else {
		fmt.Fprintf(b, "// %s renders the component as a <%s> element.\n", spec.Name, tag)
	}
	if voidTags[tag] {
		fmt.Fprintf(b, "func %s(p %sProps) g.Node {\n", spec.Name, spec.Name)
	} else {
		fmt.Fprintf(b, "func %s(p %sProps, children ...g.Node) g.Node {\n", spec.Name, spec.Name)
	}

	if len(spec.Variants[classify.Size]) > 0 {
		fmt.Fprintf(b, "%sif p.Size == \"\" {\n", ind(1))
		fmt.Fprintf(b, "%sp.Size = %sSize%s\n", ind(2), spec.Name, text.PascalCase(spec.SizeDefault))
		fmt.Fprintf(b, "%s}\n", ind(1))
	}

	classArgs := []string{}
	if spec.BaseClass != "" {
		classArgs = append(classArgs, strconv.Quote(spec.BaseClass))
	}
	for _, dim := range classify.Dimensions {
		if len(spec.Variants[dim]) == 0 {
			continue
		}
		classArgs = append(classArgs, fmt.Sprintf("%s(p.%s)", helperName(spec, dim), dimWord[dim]))
	}
	classArgs = append(classArgs, "p.Class")

	fmt.Fprintf(b, "%sreturn %s(\n", ind(1), fn)
	for _, e := range extra {
		fmt.Fprintf(b, "%s%s,\n", ind(2), e)
	}
	fmt.Fprintf(b, "%sdaisy.Classes(%s),\n", ind(2), strings.Join(classArgs, ", "))
	for _, name := range restAttrs[spec.BaseClass] {
		field := text.PascalCase(name)
		attr := htmlStringAttrFunc(name)
		if attr != "" {
			fmt.Fprintf(b, "%sg.If(p.%s != \"\", h.%s(p.%s)),\n", ind(2), field, attr, field)
		} else {
			fmt.Fprintf(b, "%sg.If(p.%s != \"\", g.Attr(%q, p.%s)),\n", ind(2), field, name, field)
		}
	}
	fmt.Fprintf(b, "%sg.Group(p.Rest),\n", ind(2))
	if !voidTags[InferTag(spec.BaseClass)] {
		fmt.Fprintf(b, "%sg.Group(children),\n", ind(2))
	}
	fmt.Fprintf(b, "%s)\n}\n\n", ind(1))
}

func helperName(spec classify.ComponentSpec, dim classify.Dimension) string {
	return text.LowerCamel(spec.Name) + dimWord[dim] + "Class"
}

func writeHelpers(b *strings.Builder, spec classify.ComponentSpec) {
	for _, dim := range classify.Dimensions {
		if len(spec.Variants[dim]) == 0 {
			continue
		}
		typ := spec.Name + dimWord[dim]
		fmt.Fprintf(b, "func %s(v %s) string {\n", helperName(spec, dim), typ)
		fmt.Fprintf(b, "%sswitch v {\n", ind(1))
		for _, v := range variantValues(spec, dim) {
			fmt.Fprintf(b, "%scase %s%s:\n", ind(1), typ, text.PascalCase(v))
			fmt.Fprintf(b, "%sreturn %q\n", ind(2), spec.BaseClass+"-"+v)
		}
		fmt.Fprintf(b, "%s}\n", ind(1))
		fmt.Fprintf(b, "%sreturn \"\"\n}\n\n", ind(1))
	}
}
