// Package schema aggregates per-field sample values into proposed field
// definitions. It is the format-agnostic half of the wizards: sources flatten
// their records into observations, the builder classifies them.
package schema

import "strings"

// DefaultSampleLimit bounds how many non-empty values are retained per field.
const DefaultSampleLimit = 100

// FieldValues is one field's values within a single record.
type FieldValues struct {
	Name   string
	Values []string

	// Binary marks values the producer flagged as binary data.
	Binary bool
}

// Record is the ordered set of field observations from one source record.
type Record []FieldValues

// FieldObservation is the bounded per-field input to the schema builder, for
// callers that collect samples themselves instead of going through a source.
type FieldObservation struct {
	FieldName string

	// Samples holds non-empty values in first-seen order.
	Samples []string

	// NullableHint is true when any observed value was null or absent.
	NullableHint bool
}

// Collector accumulates per-field samples across records, preserving
// first-seen field order. Users expect proposed fields in source-file order,
// not alphabetical.
type Collector struct {
	limit   int
	order   []string
	fields  map[string]*fieldState
	records int
}

type fieldState struct {
	samples     []string
	nullSeen    bool
	occurrences int
	multiValued bool
	binary      bool
}

// NewCollector creates a collector retaining up to sampleLimit non-empty
// values per field. A non-positive limit selects DefaultSampleLimit.
func NewCollector(sampleLimit int) *Collector {
	if sampleLimit <= 0 {
		sampleLimit = DefaultSampleLimit
	}
	return &Collector{
		limit:  sampleLimit,
		fields: make(map[string]*fieldState),
	}
}

// ObserveRecord ingests one record's field observations.
func (c *Collector) ObserveRecord(record Record) {
	c.records++
	for _, fv := range record {
		state := c.state(fv.Name)
		state.occurrences++
		if len(fv.Values) > 1 {
			state.multiValued = true
		}
		if fv.Binary {
			state.binary = true
		}

		nonEmpty := 0
		for _, value := range fv.Values {
			if strings.TrimSpace(value) == "" {
				state.nullSeen = true
				continue
			}
			nonEmpty++
			if len(state.samples) < c.limit {
				state.samples = append(state.samples, value)
			}
		}
		if nonEmpty == 0 {
			state.nullSeen = true
		}
	}
}

// Records returns how many records have been observed.
func (c *Collector) Records() int {
	return c.records
}

// Observations exports the collected state as bounded field observations in
// first-seen order.
func (c *Collector) Observations() []FieldObservation {
	observations := make([]FieldObservation, 0, len(c.order))
	for _, name := range c.order {
		state := c.fields[name]
		observations = append(observations, FieldObservation{
			FieldName:    name,
			Samples:      state.samples,
			NullableHint: state.nullSeen || state.occurrences < c.records,
		})
	}
	return observations
}

func (c *Collector) state(name string) *fieldState {
	if state, ok := c.fields[name]; ok {
		return state
	}
	state := &fieldState{}
	c.fields[name] = state
	c.order = append(c.order, name)
	return state
}
