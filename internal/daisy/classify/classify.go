// Package classify infers a component's variant model from the class tokens
// observed across its documentation samples.
package classify

import (
	"path/filepath"
	"strings"

	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/ast"
	"github.com/MikeNotThePope/oopsie-daisy/internal/daisy/text"
)

// Dimension is a semantic axis of visual variation.
type Dimension string

const (
	Size     Dimension = "size"
	Color    Dimension = "color"
	Style    Dimension = "style"
	Modifier Dimension = "modifier"
)

// Dimensions lists the variant dimensions in classification precedence
// order. A token matching more than one vocabulary lands in the first.
var Dimensions = []Dimension{Size, Color, Style, Modifier}

var vocab = map[Dimension][]string{
	Size:     {"xs", "sm", "md", "lg", "xl"},
	Color:    {"primary", "secondary", "accent", "neutral", "info", "success", "warning", "error"},
	Style:    {"outline", "soft", "ghost", "link", "dash"},
	Modifier: {"wide", "block", "square", "circle", "active", "disabled", "loading"},
}

// VariantMap holds the detected values per dimension, deduplicated, in
// first-seen order. Dimensions with no matching token are absent.
type VariantMap map[Dimension][]string

// ComponentSpec is the sole artifact crossing from analysis into synthesis.
type ComponentSpec struct {
	Name        string // exported Go identifier, e.g. "RadioButton"
	Namespace   string // generated package name
	ModuleName  string // qualified name, e.g. "daisy.RadioButton"
	FileName    string // generated file name, e.g. "radio_button.go"
	BaseClass   string
	Variants    VariantMap
	SizeDefault string // default size value; "" when the size dimension is absent
	TitleGroups []ast.TitleGroup
	SourcePath  string
}

// Analyze derives a ComponentSpec from one documentation file's samples.
// The namespace is caller-supplied; the analyzer never inspects the
// surrounding project.
func Analyze(pg ast.PathGroup, namespace string) ComponentSpec {
	name := text.PascalCase(componentStem(pg.SourcePath))
	tokens := flattenClasses(pg)
	base := detectBase(tokens)

	spec := ComponentSpec{
		Name:        name,
		Namespace:   namespace,
		ModuleName:  namespace + "." + name,
		FileName:    text.SnakeCase(name) + ".go",
		BaseClass:   base,
		Variants:    VariantMap{},
		TitleGroups: pg.TitleGroups,
		SourcePath:  pg.SourcePath,
	}
	if base == "" {
		return spec
	}

	counts := map[Dimension]map[string]int{}
	for _, tok := range tokens {
		dim, val, ok := classifyToken(tok, base)
		if !ok {
			continue
		}
		if counts[dim] == nil {
			counts[dim] = map[string]int{}
		}
		if counts[dim][val] == 0 {
			spec.Variants[dim] = append(spec.Variants[dim], val)
		}
		counts[dim][val]++
	}
	spec.SizeDefault = sizeDefault(spec.Variants[Size], counts[Size])
	return spec
}

// componentStem is the parent directory name of the documentation file, or
// the file's own stem when there is no meaningful parent.
func componentStem(sourcePath string) string {
	dir := filepath.Base(filepath.Dir(sourcePath))
	if dir != "." && dir != string(filepath.Separator) && dir != "" {
		return dir
	}
	base := filepath.Base(sourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// flattenClasses collects every class token across the path group's element
// trees. Tokens are deduplicated within one title group's pass, not across
// groups, so repeated appearances keep feeding the frequency counts.
func flattenClasses(pg ast.PathGroup) []string {
	var out []string
	for _, tg := range pg.TitleGroups {
		seen := map[string]bool{}
		var walk func(n ast.Node)
		walk = func(n ast.Node) {
			tag, ok := n.(ast.Tag)
			if !ok {
				return
			}
			for _, tok := range strings.Fields(tag.Class()) {
				if !seen[tok] {
					seen[tok] = true
					out = append(out, tok)
				}
			}
			for _, c := range tag.Children {
				walk(c)
			}
		}
		for _, el := range tg.Elements {
			walk(el)
		}
	}
	return out
}

// detectBase picks the most frequent token stem. The stem is the text before
// the last hyphen; a hyphen-less token is its own stem. Ties break by
// first-seen order.
func detectBase(tokens []string) string {
	counts := map[string]int{}
	var order []string
	for _, tok := range tokens {
		stem := tok
		if i := strings.LastIndex(tok, "-"); i > 0 {
			stem = tok[:i]
		}
		if counts[stem] == 0 {
			order = append(order, stem)
		}
		counts[stem]++
	}
	var best string
	for _, stem := range order {
		if best == "" || counts[stem] > counts[best] {
			best = stem
		}
	}
	return best
}

// classifyToken maps one class token to a (dimension, value) pair. The base
// class itself and tokens outside every vocabulary are discarded. The base
// prefix is stripped literally; an unprefixed token is matched whole.
func classifyToken(tok, base string) (Dimension, string, bool) {
	if tok == base {
		return "", "", false
	}
	rest := tok
	if strings.HasPrefix(tok, base+"-") {
		rest = tok[len(base)+1:]
	}
	for _, dim := range Dimensions {
		for _, val := range vocab[dim] {
			if rest == val {
				return dim, val, true
			}
		}
	}
	return "", "", false
}

// sizeDefault applies the default-value policy for the size dimension: "md"
// when detected, otherwise the most frequent observed value (ties break by
// first-seen order).
func sizeDefault(values []string, counts map[string]int) string {
	if len(values) == 0 {
		return ""
	}
	for _, v := range values {
		if v == "md" {
			return "md"
		}
	}
	best := values[0]
	for _, v := range values[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best
}
