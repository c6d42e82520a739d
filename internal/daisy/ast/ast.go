// Package ast defines the element tree extracted from documentation HTML
// samples. It is a closed sum: a node is a Tag, a Text, or a Comment.
package ast

type Node interface {
	node()
}

type Text struct {
	Value string
}

func (Text) node() {}

type Comment struct {
	Value string
}

func (Comment) node() {}

type Tag struct {
	Name string
	// Attrs holds one value per attribute key. Duplicate keys in the
	// source collapse to the first occurrence.
	Attrs    map[string]string
	Children []Node
}

func (Tag) node() {}

// Class returns the tag's class attribute, or "" if absent.
func (t Tag) Class() string {
	return t.Attrs["class"]
}

// FirstText returns the first direct Text child, or "" if there is none.
func (t Tag) FirstText() string {
	for _, c := range t.Children {
		if txt, ok := c.(Text); ok {
			return txt.Value
		}
	}
	return ""
}

// Example is one titled HTML sample extracted from a documentation file.
type Example struct {
	Title      string
	SourcePath string
	Elements   []Node
}

// TitleGroup is an Example handed to code generation. Same shape, different
// stage: extraction produces Examples, generation consumes TitleGroups.
type TitleGroup struct {
	Title    string
	Elements []Node
}

// PathGroup collects every TitleGroup belonging to one documentation file,
// which becomes one generated component.
type PathGroup struct {
	SourcePath  string
	TitleGroups []TitleGroup
}

// Group converts extracted Examples into a PathGroup, preserving document
// order. Returns the zero PathGroup if examples is empty.
func Group(examples []Example) PathGroup {
	if len(examples) == 0 {
		return PathGroup{}
	}
	pg := PathGroup{SourcePath: examples[0].SourcePath}
	for _, ex := range examples {
		pg.TitleGroups = append(pg.TitleGroups, TitleGroup{Title: ex.Title, Elements: ex.Elements})
	}
	return pg
}
