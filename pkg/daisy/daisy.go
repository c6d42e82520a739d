// Package daisy is the runtime support library imported by generated
// component files.
package daisy

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Classes joins the non-empty names into a single class attribute. Returns
// nil when every name is empty, so the element renders without a class
// attribute at all.
func Classes(names ...string) g.Node {
	kept := make([]string, 0, len(names))
	for _, n := range names {
		if s := strings.TrimSpace(n); s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return h.Class(strings.Join(kept, " "))
}
