package directory

import (
	"f0oster/schemawiz/inference"
)

// Entry is one record in a directory-export document, identified by its
// distinguished name. An Entry is immutable once the parser has emitted it.
type Entry struct {
	// DN is the distinguished name, never empty on emitted entries.
	DN string `json:"dn"`

	// ObjectClasses holds objectClass values in file order, duplicates preserved.
	ObjectClasses []string `json:"object_classes"`

	// Attributes holds the entry's attributes in file order.
	Attributes []Attribute `json:"attributes"`

	// Index is the 0-based position of the entry in the source document,
	// assigned when the entry is emitted.
	Index int `json:"index"`
}

// Attribute is one named attribute of an entry with its accumulated values.
type Attribute struct {
	// Name preserves the casing used in the source document.
	Name string `json:"name"`

	// Values holds at least one value; consecutive lines with the same
	// attribute name accumulate here.
	Values []string `json:"values"`

	// MultiValued is true when more than one value was accumulated.
	MultiValued bool `json:"multi_valued"`

	// Binary is true when any accumulated value looked like binary data.
	Binary bool `json:"binary"`

	// InferredType is assigned by schema inference, not by the parser.
	// It is empty until classification has run.
	InferredType inference.SemanticType `json:"inferred_type,omitempty"`
}

// GetAttribute returns the named attribute, matching case-sensitively.
func (e *Entry) GetAttribute(name string) (*Attribute, bool) {
	for i := range e.Attributes {
		if e.Attributes[i].Name == name {
			return &e.Attributes[i], true
		}
	}
	return nil, false
}
