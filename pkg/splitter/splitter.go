// Package splitter breaks a Markdown document into an ordered sequence of
// page texts on horizontal-rule delimiter lines.
package splitter

import (
	"strings"

	"github.com/dtnitsch/mdsplit/pkg/textutil"
)

const (
	// Delimiter is the horizontal-rule line separating pages. A line
	// counts as a delimiter only when it equals this exactly after
	// trimming surrounding whitespace.
	Delimiter = "---"

	// NoPublishMarker excludes a page from all output when it appears
	// anywhere in the page text.
	NoPublishMarker = "<!-- no-pub -->"
)

// Split returns the publishable page texts of a document in source order.
// Empty buffers are never appended, so consecutive delimiters or a leading
// delimiter produce no empty pages. Pages containing the no-publish marker
// are dropped.
func Split(text string) []string {
	var pages []string
	var buf strings.Builder

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		if !strings.Contains(buf.String(), NoPublishMarker) {
			pages = append(pages, buf.String())
		}
		buf.Reset()
	}

	for _, line := range textutil.SplitLines(text) {
		if strings.TrimSpace(line) == Delimiter {
			flush()
		} else {
			buf.WriteString(line)
		}
	}
	flush()

	return pages
}
