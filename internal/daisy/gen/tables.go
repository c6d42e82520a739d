package gen

// voidTags cannot contain children and render self-closing.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "param": true, "source": true,
	"track": true, "wbr": true,
}

// tagForBase infers the output element from a component's base class.
var tagForBase = map[string]string{
	"btn":      "button",
	"input":    "input",
	"textarea": "textarea",
	"select":   "select",
}

// InferTag returns the output tag for a base class, defaulting to div.
func InferTag(baseClass string) string {
	if tag, ok := tagForBase[baseClass]; ok {
		return tag
	}
	return "div"
}

// restAttrs lists pass-through attribute names that get typed props fields,
// keyed by base class. Bases without an entry get none.
var restAttrs = map[string][]string{
	"input":    {"placeholder"},
	"textarea": {"placeholder"},
}

func htmlElementFunc(tag string) string {
	switch tag {
	case "a":
		return "A"
	case "button":
		return "Button"
	case "div":
		return "Div"
	case "footer":
		return "Footer"
	case "form":
		return "Form"
	case "h1":
		return "H1"
	case "h2":
		return "H2"
	case "h3":
		return "H3"
	case "h4":
		return "H4"
	case "h5":
		return "H5"
	case "h6":
		return "H6"
	case "header":
		return "Header"
	case "img":
		return "Img"
	case "input":
		return "Input"
	case "kbd":
		return "Kbd"
	case "label":
		return "Label"
	case "li":
		return "Li"
	case "main":
		return "Main"
	case "nav":
		return "Nav"
	case "option":
		return "Option"
	case "p":
		return "P"
	case "section":
		return "Section"
	case "select":
		return "Select"
	case "span":
		return "Span"
	case "textarea":
		return "Textarea"
	case "ul":
		return "Ul"
	default:
		return ""
	}
}

func htmlStringAttrFunc(key string) string {
	switch key {
	case "class":
		return "Class"
	case "href":
		return "Href"
	case "id":
		return "ID"
	case "name":
		return "Name"
	case "placeholder":
		return "Placeholder"
	case "src":
		return "Src"
	case "style":
		return "Style"
	case "type":
		return "Type"
	case "value":
		return "Value"
	default:
		return ""
	}
}

func htmlBoolAttrFunc(key string) string {
	switch key {
	case "checked":
		return "Checked"
	case "disabled":
		return "Disabled"
	case "required":
		return "Required"
	case "selected":
		return "Selected"
	default:
		return ""
	}
}
