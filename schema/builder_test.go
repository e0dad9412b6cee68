package schema_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"f0oster/schemawiz/inference"
	"f0oster/schemawiz/schema"
)

func observe(c *schema.Collector, records ...schema.Record) {
	for _, record := range records {
		c.ObserveRecord(record)
	}
}

func TestBuildProposesFieldsInFirstSeenOrder(t *testing.T) {
	collector := schema.NewCollector(0)
	observe(collector,
		schema.Record{
			{Name: "name", Values: []string{"Alice"}},
			{Name: "age", Values: []string{"30"}},
		},
		schema.Record{
			{Name: "age", Values: []string{"25"}},
			{Name: "name", Values: []string{"Bob"}},
			{Name: "city", Values: []string{"Sydney"}},
		},
	)

	proposal := schema.NewBuilder(inference.DelimitedProfile()).Build(collector)
	require.Len(t, proposal.Fields, 3)
	assert.Equal(t, "name", proposal.Fields[0].Name)
	assert.Equal(t, "age", proposal.Fields[1].Name)
	assert.Equal(t, "city", proposal.Fields[2].Name)

	assert.Equal(t, 2, proposal.TotalRecords)
	assert.Equal(t, 3, proposal.TotalFields)
	assert.NotEqual(t, uuid.Nil, proposal.ID)
	assert.False(t, proposal.CreatedAt.IsZero())
}

func TestBuildNullability(t *testing.T) {
	collector := schema.NewCollector(0)
	observe(collector,
		schema.Record{
			{Name: "name", Values: []string{"Alice"}},
			{Name: "nickname", Values: []string{"Al"}},
			{Name: "notes", Values: []string{""}},
		},
		schema.Record{
			{Name: "name", Values: []string{"Bob"}},
			{Name: "notes", Values: []string{"on leave"}},
		},
	)

	proposal := schema.NewBuilder(inference.DelimitedProfile()).Build(collector)
	byName := fieldsByName(proposal.Fields)

	// Present in every record with a value each time.
	assert.False(t, byName["name"].Nullable)

	// Missing from the second record.
	assert.True(t, byName["nickname"].Nullable)

	// Present everywhere but once empty.
	assert.True(t, byName["notes"].Nullable)
}

func TestBuildMultiValuedDetection(t *testing.T) {
	collector := schema.NewCollector(0)
	observe(collector,
		schema.Record{{Name: "mail", Values: []string{"a@x.com", "b@x.com"}}},
		schema.Record{{Name: "mail", Values: []string{"c@x.com"}}},
	)

	proposal := schema.NewBuilder(inference.DelimitedProfile()).Build(collector)
	require.Len(t, proposal.Fields, 1)
	assert.True(t, proposal.Fields[0].MultiValued)
}

func TestBuildSampleAndPreviewCaps(t *testing.T) {
	collector := schema.NewCollector(3)
	observe(collector,
		schema.Record{{Name: "word", Values: []string{"one"}}},
		schema.Record{{Name: "word", Values: []string{"two"}}},
		schema.Record{{Name: "word", Values: []string{"three"}}},
		schema.Record{{Name: "word", Values: []string{"four"}}},
	)

	observations := collector.Observations()
	require.Len(t, observations, 1)
	assert.Equal(t, []string{"one", "two", "three"}, observations[0].Samples)

	builder := schema.NewBuilder(inference.DelimitedProfile())
	builder.PreviewLimit = 2
	proposal := builder.Build(collector)
	assert.Equal(t, []string{"one", "two"}, proposal.Fields[0].SampleValues)
}

func TestBuildWithHints(t *testing.T) {
	collector := schema.NewCollector(0)
	observe(collector,
		schema.Record{
			{Name: "mail", Values: []string{"a@x.com"}},
			{Name: "photo", Values: []string{"AAECAw=="}, Binary: true},
		},
	)

	builder := schema.NewBuilder(inference.DirectoryProfile())
	builder.Hints = inference.NewHintRegistry()
	proposal := builder.Build(collector)
	byName := fieldsByName(proposal.Fields)

	assert.Equal(t, inference.TypeEmail, byName["mail"].Type)
	assert.Equal(t, inference.TypeBinary, byName["photo"].Type)
}

func TestBuildFromObservations(t *testing.T) {
	builder := schema.NewBuilder(inference.DelimitedProfile())
	proposal := builder.BuildFromObservations([]schema.FieldObservation{
		{FieldName: "id", Samples: []string{"1", "2", "3"}},
		{FieldName: "comment", Samples: []string{"fine"}, NullableHint: true},
	}, 3)

	require.Len(t, proposal.Fields, 2)
	assert.Equal(t, inference.TypeInteger, proposal.Fields[0].Type)
	assert.False(t, proposal.Fields[0].Nullable)
	assert.Equal(t, inference.TypeString, proposal.Fields[1].Type)
	assert.True(t, proposal.Fields[1].Nullable)
	assert.Equal(t, 3, proposal.TotalRecords)
}

func fieldsByName(fields []schema.Field) map[string]schema.Field {
	byName := make(map[string]schema.Field, len(fields))
	for _, field := range fields {
		byName[field.Name] = field
	}
	return byName
}
