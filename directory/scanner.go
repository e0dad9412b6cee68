package directory

import "strings"

// Line is one physical line of a directory-export document.
type Line struct {
	// Number is the 0-based position of the line in the source text.
	Number int

	// Text is the raw line content. Trailing carriage returns are left
	// intact; stripping them is the caller's concern.
	Text string
}

// Blank reports whether the line is empty.
func (l Line) Blank() bool {
	return l.Text == ""
}

// Comment reports whether the line is a comment line.
func (l Line) Comment() bool {
	return strings.HasPrefix(l.Text, "#")
}

// Skippable reports whether the line carries no entry data. Skippable lines
// are still yielded with their number so consumers can reason about
// continuation context.
func (l Line) Skippable() bool {
	return l.Blank() || l.Comment()
}

// Continuation reports whether the line starts with the folding marker
// (a single leading space). The scanner only classifies; resolving the fold
// needs parser context.
func (l Line) Continuation() bool {
	return strings.HasPrefix(l.Text, " ")
}

// Scanner provides restartable, indexable access to the physical lines of a
// document. Splitting happens once up front; iteration is over the in-memory
// slice, matching the all-in-memory processing model of the wizards.
type Scanner struct {
	lines []Line
	pos   int
}

// NewScanner splits raw document text on newlines and returns a scanner
// positioned before the first line.
func NewScanner(content string) *Scanner {
	raw := strings.Split(content, "\n")
	lines := make([]Line, len(raw))
	for i, text := range raw {
		lines[i] = Line{Number: i, Text: text}
	}
	return &Scanner{lines: lines}
}

// Next advances the scanner and returns the next line.
func (s *Scanner) Next() (Line, bool) {
	if s.pos >= len(s.lines) {
		return Line{}, false
	}
	line := s.lines[s.pos]
	s.pos++
	return line, true
}

// Peek returns the line that Next would return, without advancing.
func (s *Scanner) Peek() (Line, bool) {
	if s.pos >= len(s.lines) {
		return Line{}, false
	}
	return s.lines[s.pos], true
}

// Reset rewinds the scanner to the first line.
func (s *Scanner) Reset() {
	s.pos = 0
}

// Len returns the number of physical lines.
func (s *Scanner) Len() int {
	return len(s.lines)
}

// At returns the line at the given 0-based position.
func (s *Scanner) At(i int) Line {
	return s.lines[i]
}
