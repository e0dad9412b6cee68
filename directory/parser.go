package directory

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// Parser errors.
var (
	ErrMalformedInput = errors.New("malformed directory-export input")
)

// Parser converts directory-export text into entries. Structural anomalies
// (lines without a separator, attributes outside an entry) are skipped so a
// partially broken export still yields a usable entry list; the only hard
// failure is input that is not decodable as text.
type Parser struct {
	logger *logrus.Logger
}

func NewParser() *Parser {
	return &Parser{
		logger: logrus.StandardLogger(),
	}
}

// SetLogger replaces the logger used for skip-line diagnostics.
func (p *Parser) SetLogger(logger *logrus.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// ParseResult represents the outcome of parsing one document.
type ParseResult struct {
	// Entries holds every parsed entry in source order.
	Entries []Entry

	// BaseDN is a best-effort directory root derived from the first entry,
	// empty when the document has no entries. Callers may override it.
	BaseDN string
}

// Parse runs the entry state machine over the document text. The returned
// entries are fully accumulated: the open attribute buffer is flushed before
// every entry boundary and at end of input, so no emitted attribute has zero
// values and no emitted entry has an empty DN.
func (p *Parser) Parse(content string) (*ParseResult, error) {
	if !utf8.ValidString(content) {
		return nil, fmt.Errorf("%w: content is not valid text", ErrMalformedInput)
	}

	scanner := NewScanner(content)

	var (
		entries []Entry
		current *Entry
		open    *Attribute
	)

	// flushAttribute moves the open attribute buffer onto the current entry.
	// Called from exactly three sites: a new attribute name, a new entry,
	// and end of input.
	flushAttribute := func() {
		if open == nil {
			return
		}
		if current != nil && len(open.Values) > 0 {
			current.Attributes = append(current.Attributes, *open)
		}
		open = nil
	}

	flushEntry := func() {
		if current == nil {
			return
		}
		if current.DN != "" {
			current.Index = len(entries)
			entries = append(entries, *current)
		}
		current = nil
	}

	for i := 0; i < scanner.Len(); i++ {
		line := scanner.At(i)
		if line.Skippable() {
			continue
		}

		text := line.Text
		if len(text) >= 3 && strings.EqualFold(text[:3], "dn:") {
			value := strings.TrimSpace(text[3:])
			value, i = unfold(scanner, i, value)
			flushAttribute()
			flushEntry()
			current = &Entry{DN: value}
			continue
		}

		if current == nil {
			p.logger.Debugf("skipping line %d outside entry: %q", line.Number, text)
			continue
		}

		colon := strings.Index(text, ":")
		if colon < 0 {
			p.logger.Debugf("skipping line %d: no attribute separator", line.Number)
			continue
		}

		name := strings.TrimSpace(text[:colon])
		value := strings.TrimSpace(text[colon+1:])
		value, i = unfold(scanner, i, value)
		if name == "" {
			p.logger.Debugf("skipping line %d: empty attribute name", line.Number)
			continue
		}

		if strings.EqualFold(name, "objectClass") {
			current.ObjectClasses = append(current.ObjectClasses, value)
			continue
		}

		// Accumulation uses an exact name match while dn/objectClass
		// detection above is case-insensitive. Intentional: existing
		// consumers depend on this asymmetry.
		if open != nil && open.Name == name {
			open.Values = append(open.Values, value)
			open.MultiValued = true
			if !open.Binary && IsBinaryValue(value) {
				open.Binary = true
			}
			continue
		}

		flushAttribute()
		open = &Attribute{
			Name:   name,
			Values: []string{value},
			Binary: IsBinaryValue(value),
		}
	}

	flushAttribute()
	flushEntry()

	result := &ParseResult{Entries: entries}
	if len(entries) > 0 {
		result.BaseDN = DeriveBaseDN(entries[0].DN)
	}
	return result, nil
}

// unfold appends folded continuation lines to value and returns the advanced
// cursor. A bounded loop over the line index, not recursion, so arbitrarily
// long folded values stay O(n) and stack-safe.
func unfold(scanner *Scanner, i int, value string) (string, int) {
	for i+1 < scanner.Len() && scanner.At(i+1).Continuation() {
		i++
		value += strings.TrimRight(scanner.At(i).Text[1:], "\r")
	}
	return value, i
}
