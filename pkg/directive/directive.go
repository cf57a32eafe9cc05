// Package directive extracts HTML-comment-shaped inline directives from
// page text. Directives occupy a whole line and share one bracketing
// convention: a fixed prefix and the closing " -->" suffix. The prefixes
// are mutually exclusive strings, so the title and class scans may run in
// either order; code-file comments use the same convention and are handled
// separately by pkg/codefile, which must run after these scans.
package directive

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/mdsplit/pkg/textutil"
)

const (
	titlePrefix = "<!-- title: "
	classPrefix = "<!-- class: "
	suffix      = " -->"
)

// Inner returns the inner text of a directive line with the given prefix.
// The line is trimmed before matching; both the prefix and the closing
// suffix must be present.
func Inner(line, prefix string) (string, bool) {
	s := strings.TrimSpace(line)
	if len(s) < len(prefix)+len(suffix) {
		return "", false
	}
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, suffix) {
		return "", false
	}
	return strings.TrimSpace(s[len(prefix) : len(s)-len(suffix)]), true
}

// ExtractTitle removes every title directive line from text and returns
// the remaining text plus the title. When multiple title directives exist,
// the last one wins. The title is "" when no directive matched.
func ExtractTitle(text string) (string, string) {
	title := ""
	var out strings.Builder
	for _, line := range textutil.SplitLines(text) {
		if inner, ok := Inner(line, titlePrefix); ok {
			title = inner
		} else {
			out.WriteString(line)
		}
	}
	return out.String(), title
}

// ExtractClasses removes every class directive line from text and returns
// the remaining text plus the class tokens of all directives, concatenated
// with single spaces in encounter order.
func ExtractClasses(text string) (string, string) {
	var classes []string
	var out strings.Builder
	for _, line := range textutil.SplitLines(text) {
		if inner, ok := Inner(line, classPrefix); ok {
			if inner != "" {
				classes = append(classes, inner)
			}
		} else {
			out.WriteString(line)
		}
	}
	return out.String(), strings.Join(classes, " ")
}

// Heading returns the text and level of the first Markdown heading in the
// page. A heading line starts with a run of '#' characters followed by a
// space and the heading text. Without one, the title defaults to "Page N"
// at level 1.
func Heading(num int, text string) (string, int) {
	for _, line := range textutil.SplitLines(text) {
		s := strings.TrimSpace(line)
		if !strings.HasPrefix(s, "#") {
			continue
		}
		parts := strings.SplitN(s, " ", 2)
		if len(parts) < 2 {
			continue
		}
		return strings.TrimSpace(parts[1]), strings.Count(parts[0], "#")
	}
	return fmt.Sprintf("Page %d", num), 1
}
