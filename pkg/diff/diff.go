// Package diff produces unified line diffs, used to compare rendered output
// against a golden file.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	// Context is the number of unchanged lines kept around each change.
	Context = 3

	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

type line struct {
	op   byte
	text string
}

// Unified returns a unified diff from expected to actual, or "" when both are
// identical. Output longer than 10,000 lines is truncated with a marker.
func Unified(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	lines := lineDiff(string(expected), string(actual))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)
	for _, h := range hunks(lines) {
		writeHunk(&buf, lines, h)
	}

	out := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(out) > maxDiffLines {
		return strings.Join(out[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return buf.String()
}

func lineDiff(expected, actual string) []line {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var out []line
	for _, d := range diffs {
		op := byte(' ')
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = '-'
		case diffmatchpatch.DiffInsert:
			op = '+'
		}
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text == "" {
				continue
			}
			out = append(out, line{op: op, text: strings.TrimSuffix(text, "\n")})
		}
	}
	return out
}

// hunk is a half-open range of diff lines.
type hunk struct {
	start int
	end   int
}

func hunks(lines []line) []hunk {
	var out []hunk
	for i, l := range lines {
		if l.op == ' ' {
			continue
		}
		start := max(i-Context, 0)
		end := min(i+Context+1, len(lines))
		if n := len(out); n > 0 && start <= out[n-1].end {
			out[n-1].end = end
			continue
		}
		out = append(out, hunk{start: start, end: end})
	}
	return out
}

func writeHunk(buf *bytes.Buffer, lines []line, h hunk) {
	oldStart, newStart := 1, 1
	for _, l := range lines[:h.start] {
		if l.op != '+' {
			oldStart++
		}
		if l.op != '-' {
			newStart++
		}
	}
	oldCount, newCount := 0, 0
	for _, l := range lines[h.start:h.end] {
		if l.op != '+' {
			oldCount++
		}
		if l.op != '-' {
			newCount++
		}
	}

	fmt.Fprintf(buf, "@@ -%d,%d +%d,%d @@\n", oldStart, oldCount, newStart, newCount)
	for _, l := range lines[h.start:h.end] {
		buf.WriteByte(l.op)
		buf.WriteString(l.text)
		buf.WriteByte('\n')
	}
}
