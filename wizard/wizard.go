// Package wizard exposes the pure entry points the metadata wizards call:
// one document or sample set in, one proposed schema out. There is no hidden
// state; callers own debouncing and memoization when options change.
package wizard

import (
	"github.com/go-ldap/ldap/v3"

	"f0oster/schemawiz/directory"
	"f0oster/schemawiz/inference"
	"f0oster/schemawiz/schema"
	"f0oster/schemawiz/sources"
)

// Options tune sample collection for every inference path.
type Options struct {
	// SampleLimit caps retained non-empty values per field; non-positive
	// selects schema.DefaultSampleLimit.
	SampleLimit int

	// PreviewLimit caps per-field preview values; non-positive selects
	// schema.DefaultPreviewLimit.
	PreviewLimit int
}

// Result is the schema-inference output for non-directory sources.
type Result struct {
	Schema       *schema.Proposal
	TotalRecords int
	TotalFields  int
}

// DirectoryResult is the output of the directory-export path.
type DirectoryResult struct {
	Entries []directory.Entry

	// BaseDN is the heuristic directory root derived from the first entry.
	BaseDN string

	Schema          *schema.Proposal
	TotalEntries    int
	TotalAttributes int
}

// InferDirectory parses directory-export text and proposes a schema for its
// attributes. Attribute types are also written back onto the returned
// entries' InferredType fields.
func InferDirectory(content string, opts Options) (*DirectoryResult, error) {
	parsed, err := directory.NewParser().Parse(content)
	if err != nil {
		return nil, err
	}

	result, err := InferSource(
		sources.NewDirectorySource(parsed.Entries),
		inference.DirectoryProfile(),
		inference.NewHintRegistry(),
		opts,
	)
	if err != nil {
		return nil, err
	}

	typesByField := make(map[string]inference.SemanticType, len(result.Schema.Fields))
	for _, field := range result.Schema.Fields {
		typesByField[field.Name] = field.Type
	}

	totalAttributes := 0
	for i := range parsed.Entries {
		entry := &parsed.Entries[i]
		totalAttributes += len(entry.Attributes)
		for j := range entry.Attributes {
			attr := &entry.Attributes[j]
			attr.InferredType = typesByField[attr.Name]
		}
	}

	return &DirectoryResult{
		Entries:         parsed.Entries,
		BaseDN:          parsed.BaseDN,
		Schema:          result.Schema,
		TotalEntries:    len(parsed.Entries),
		TotalAttributes: totalAttributes,
	}, nil
}

// InferDelimited proposes a schema for CSV/TSV text.
func InferDelimited(content string, delimited sources.DelimitedOptions, opts Options) (*Result, error) {
	return InferSource(sources.NewDelimitedSource(content, delimited), inference.DelimitedProfile(), nil, opts)
}

// InferJSON proposes a schema for a JSON array of objects or NDJSON text.
func InferJSON(content string, jsonOpts sources.JSONOptions, opts Options) (*Result, error) {
	return InferSource(sources.NewJSONSource(content, jsonOpts), inference.DelimitedProfile(), nil, opts)
}

// InferEntries proposes a schema for already-fetched LDAP search results.
func InferEntries(entries []*ldap.Entry, opts Options) (*Result, error) {
	return InferSource(sources.NewEntrySource(entries), inference.DirectoryProfile(), inference.NewHintRegistry(), opts)
}

// InferSource runs the generic pipeline for any record source.
func InferSource(source sources.Source, profile inference.Profile, hints *inference.HintRegistry, opts Options) (*Result, error) {
	records, err := source.Records()
	if err != nil {
		return nil, err
	}

	collector := schema.NewCollector(opts.SampleLimit)
	for _, record := range records {
		collector.ObserveRecord(record)
	}

	builder := schema.NewBuilder(profile)
	builder.Hints = hints
	builder.PreviewLimit = opts.PreviewLimit
	proposal := builder.Build(collector)

	return &Result{
		Schema:       proposal,
		TotalRecords: proposal.TotalRecords,
		TotalFields:  proposal.TotalFields,
	}, nil
}
