package cdxml

import (
	"fmt"
	"strings"

	"github.com/dimelords/cdxlib/pkg/tree"
)

// Difference describes one point of divergence found by Compare.
type Difference struct {
	Path        string
	Type        string // "tag", "attribute", "text", "structure"
	Description string
	Expected    string
	Got         string
}

// Compare walks two element trees in parallel and reports every
// structural, attribute and text difference it finds, rather than
// stopping at the first one.
func Compare(want, got *tree.Element) []Difference {
	var diffs []Difference
	compareElements(want, got, "/"+want.Tag, &diffs)
	return diffs
}

func compareElements(want, got *tree.Element, path string, diffs *[]Difference) {
	if want.Tag != got.Tag {
		*diffs = append(*diffs, Difference{
			Path: path, Type: "tag",
			Description: "tag name mismatch",
			Expected:    want.Tag, Got: got.Tag,
		})
		return
	}

	compareAttrs(want, got, path, diffs)

	wantText := strings.TrimSpace(want.Text)
	gotText := strings.TrimSpace(got.Text)
	if wantText != gotText {
		*diffs = append(*diffs, Difference{
			Path: path, Type: "text",
			Description: "text content differs",
			Expected:    wantText, Got: gotText,
		})
	}

	if len(want.Children) != len(got.Children) {
		*diffs = append(*diffs, Difference{
			Path: path, Type: "structure",
			Description: "child element count mismatch",
			Expected:    fmt.Sprintf("%d children", len(want.Children)),
			Got:         fmt.Sprintf("%d children", len(got.Children)),
		})
	}
	n := len(want.Children)
	if len(got.Children) < n {
		n = len(got.Children)
	}
	for i := 0; i < n; i++ {
		childPath := fmt.Sprintf("%s/%s[%d]", path, want.Children[i].Tag, i)
		compareElements(want.Children[i], got.Children[i], childPath, diffs)
	}
}

func compareAttrs(want, got *tree.Element, path string, diffs *[]Difference) {
	wantAttrs := map[string]string{}
	for _, a := range want.Attrs {
		wantAttrs[a.Name] = a.Value
	}
	gotAttrs := map[string]string{}
	for _, a := range got.Attrs {
		gotAttrs[a.Name] = a.Value
	}

	for name, wv := range wantAttrs {
		gv, ok := gotAttrs[name]
		if !ok {
			*diffs = append(*diffs, Difference{
				Path: path, Type: "attribute",
				Description: fmt.Sprintf("attribute %q missing", name),
				Expected:    wv, Got: "(missing)",
			})
		} else if gv != wv {
			*diffs = append(*diffs, Difference{
				Path: path, Type: "attribute",
				Description: fmt.Sprintf("attribute %q value differs", name),
				Expected:    wv, Got: gv,
			})
		}
	}
	for name, gv := range gotAttrs {
		if _, ok := wantAttrs[name]; !ok {
			*diffs = append(*diffs, Difference{
				Path: path, Type: "attribute",
				Description: fmt.Sprintf("attribute %q present but not expected", name),
				Expected:    "(none)", Got: gv,
			})
		}
	}
}

// FormatDifferences renders a human-readable summary, used by test
// failures and by cmd/cdxconv's --diff verbose output.
func FormatDifferences(diffs []Difference) string {
	if len(diffs) == 0 {
		return "no differences"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "found %d difference(s):\n", len(diffs))
	for i, d := range diffs {
		fmt.Fprintf(&b, "%d. %s [%s] %s\n   want: %s\n   got:  %s\n", i+1, d.Path, d.Type, d.Description, d.Expected, d.Got)
	}
	return b.String()
}
