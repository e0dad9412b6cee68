package sources

import (
	"f0oster/schemawiz/directory"
	"f0oster/schemawiz/schema"
)

// DirectorySource feeds parsed directory-export entries into schema
// inference. Distinguished names and objectClass values are structural and
// stay out of the field set.
type DirectorySource struct {
	entries []directory.Entry
}

func NewDirectorySource(entries []directory.Entry) *DirectorySource {
	return &DirectorySource{entries: entries}
}

func (s *DirectorySource) Name() string {
	return "directory"
}

func (s *DirectorySource) Records() ([]schema.Record, error) {
	records := make([]schema.Record, 0, len(s.entries))
	for _, entry := range s.entries {
		record := make(schema.Record, 0, len(entry.Attributes))
		for _, attr := range entry.Attributes {
			record = append(record, schema.FieldValues{
				Name:   attr.Name,
				Values: attr.Values,
				Binary: attr.Binary,
			})
		}
		records = append(records, record)
	}
	return records, nil
}
