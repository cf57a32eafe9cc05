// Package textutil provides small text-scanning helpers shared by the
// pipeline stages.
package textutil

// SplitLines splits text into lines with their terminators preserved, so
// that joining the result reproduces the input byte for byte. A final line
// without a trailing newline is returned as-is.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
