package sources

import (
	"encoding/base64"
	"unicode/utf8"

	"github.com/go-ldap/ldap/v3"

	"f0oster/schemawiz/schema"
)

// EntrySource adapts search results from a caller-owned LDAP connection.
// Dialing, binding and paging stay with the caller; this source only flattens
// already-fetched entries into sample records.
type EntrySource struct {
	entries []*ldap.Entry
}

func NewEntrySource(entries []*ldap.Entry) *EntrySource {
	return &EntrySource{entries: entries}
}

func (s *EntrySource) Name() string {
	return "ldap"
}

func (s *EntrySource) Records() ([]schema.Record, error) {
	records := make([]schema.Record, 0, len(s.entries))
	for _, entry := range s.entries {
		record := make(schema.Record, 0, len(entry.Attributes))
		for _, attr := range entry.Attributes {
			values, binary := normalizeByteValues(attr.ByteValues)
			record = append(record, schema.FieldValues{
				Name:   attr.Name,
				Values: values,
				Binary: binary,
			})
		}
		records = append(records, record)
	}
	return records, nil
}

// normalizeByteValues converts raw attribute bytes to sample strings. Values
// that are not valid UTF-8 are base64 encoded and the attribute is flagged
// binary.
func normalizeByteValues(byteValues [][]byte) ([]string, bool) {
	values := make([]string, len(byteValues))
	binary := false
	for i, raw := range byteValues {
		if utf8.Valid(raw) {
			values[i] = string(raw)
			continue
		}
		values[i] = base64.StdEncoding.EncodeToString(raw)
		binary = true
	}
	return values, binary
}
