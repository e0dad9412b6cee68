package schema

import (
	"time"

	"github.com/google/uuid"

	"f0oster/schemawiz/inference"
)

// DefaultPreviewLimit bounds the per-field sample values kept for UI preview.
const DefaultPreviewLimit = 5

// Field is one proposed field definition.
type Field struct {
	Name        string                 `json:"name"`
	Type        inference.SemanticType `json:"type"`
	Nullable    bool                   `json:"nullable"`
	MultiValued bool                   `json:"multi_valued"`

	// RecommendedLength is a storage length hint; zero means none.
	RecommendedLength int `json:"recommended_length,omitempty"`

	// SampleValues holds up to the preview limit of observed values.
	SampleValues []string `json:"sample_values"`
}

// Proposal is a complete proposed schema for one sampled input.
type Proposal struct {
	ID           uuid.UUID `json:"id"`
	Fields       []Field   `json:"fields"`
	TotalRecords int       `json:"total_records"`
	TotalFields  int       `json:"total_fields"`
	CreatedAt    time.Time `json:"created_at"`
}

// Builder turns collected observations into a schema proposal.
type Builder struct {
	// Profile selects the classification thresholds for this context.
	Profile inference.Profile

	// Hints, when set, classifies attributes by well-known directory names
	// and value shapes before the generic classifier runs.
	Hints *inference.HintRegistry

	// PreviewLimit caps SampleValues per field; non-positive selects
	// DefaultPreviewLimit.
	PreviewLimit int
}

func NewBuilder(profile inference.Profile) *Builder {
	return &Builder{Profile: profile}
}

// Build emits the proposed fields in first-seen order. A field is nullable
// when a null value was observed or when fewer records carried the field
// than were observed in total.
func (b *Builder) Build(collector *Collector) *Proposal {
	classifier := inference.NewClassifier(b.Profile)
	previewLimit := b.PreviewLimit
	if previewLimit <= 0 {
		previewLimit = DefaultPreviewLimit
	}

	fields := make([]Field, 0, len(collector.order))
	for _, name := range collector.order {
		state := collector.fields[name]

		var classification inference.Classification
		if b.Hints != nil {
			classification = b.Hints.ClassifyAttribute(name, state.samples, state.binary, b.Profile)
		} else {
			classification = classifier.Classify(state.samples)
		}

		preview := state.samples
		if len(preview) > previewLimit {
			preview = preview[:previewLimit]
		}

		fields = append(fields, Field{
			Name:              name,
			Type:              classification.Type,
			Nullable:          state.nullSeen || state.occurrences < collector.records,
			MultiValued:       state.multiValued,
			RecommendedLength: classification.RecommendedLength,
			SampleValues:      preview,
		})
	}

	return &Proposal{
		ID:           uuid.New(),
		Fields:       fields,
		TotalRecords: collector.records,
		TotalFields:  len(fields),
		CreatedAt:    time.Now(),
	}
}

// BuildFromObservations is the direct path for callers that already hold
// bounded observations. Multiplicity cannot be derived from observations
// alone, so MultiValued is false unless a sample list itself proves it.
func (b *Builder) BuildFromObservations(observations []FieldObservation, totalRecords int) *Proposal {
	collector := NewCollector(0)
	collector.records = totalRecords
	for _, obs := range observations {
		state := collector.state(obs.FieldName)
		state.samples = obs.Samples
		state.nullSeen = obs.NullableHint
		state.occurrences = totalRecords
	}
	return b.Build(collector)
}
