// Package inference classifies bounded samples of string values into semantic
// field types. It is format-agnostic: every wizard source feeds it the same
// way, and classification never fails - when nothing matches, the result is
// a plain string.
package inference

// SemanticType is the inferred logical data type of a field, derived from its
// sample values rather than a declared schema.
type SemanticType string

const (
	TypeString            SemanticType = "string"
	TypeInteger           SemanticType = "integer"
	TypeDecimal           SemanticType = "decimal"
	TypeDate              SemanticType = "date"
	TypeBoolean           SemanticType = "boolean"
	TypeEmail             SemanticType = "email"
	TypeDistinguishedName SemanticType = "distinguishedName"
	TypeTelephone         SemanticType = "telephone"
	TypePassword          SemanticType = "password"
	TypeObjectClass       SemanticType = "objectClass"
	TypeTimestamp         SemanticType = "timestamp"
	TypeBinaryHash        SemanticType = "binaryHash"
	TypeBinary            SemanticType = "binary"
)

func (t SemanticType) String() string {
	return string(t)
}

// Classification is the outcome of classifying one field's samples.
type Classification struct {
	Type SemanticType

	// RecommendedLength is a storage length hint for the proposed field.
	// Zero means no recommendation.
	RecommendedLength int
}
