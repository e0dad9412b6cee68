package sources

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"f0oster/schemawiz/schema"
)

// DelimitedOptions control delimited-text record extraction.
type DelimitedOptions struct {
	// Comma is the field delimiter; ',' when unset. Use '\t' for TSV.
	Comma rune

	// HasHeader treats the first row as field names. Without it, fields are
	// named column_1..column_n.
	HasHeader bool

	// MaxRecords caps how many data rows are read; zero reads everything.
	MaxRecords int
}

// DelimitedSource extracts records from CSV/TSV text.
type DelimitedSource struct {
	content string
	opts    DelimitedOptions
}

func NewDelimitedSource(content string, opts DelimitedOptions) *DelimitedSource {
	return &DelimitedSource{content: content, opts: opts}
}

func (s *DelimitedSource) Name() string {
	return "delimited"
}

// Records reads rows into single-valued field observations. Short rows simply
// omit their trailing fields, which the collector reads as absence; long rows
// grow extra column_n names.
func (s *DelimitedSource) Records() ([]schema.Record, error) {
	reader := csv.NewReader(strings.NewReader(s.content))
	reader.Comma = s.opts.Comma
	if reader.Comma == 0 {
		reader.Comma = ','
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var header []string
	if s.opts.HasHeader {
		row, err := reader.Read()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		header = make([]string, len(row))
		for i, name := range row {
			header[i] = headerName(i, name)
		}
	}

	var records []schema.Record
	for {
		if s.opts.MaxRecords > 0 && len(records) >= s.opts.MaxRecords {
			break
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}

		record := make(schema.Record, 0, len(row))
		for i, value := range row {
			record = append(record, schema.FieldValues{
				Name:   columnName(header, i),
				Values: []string{value},
			})
		}
		records = append(records, record)
	}

	return records, nil
}

func headerName(i int, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Sprintf("column_%d", i+1)
	}
	return name
}

func columnName(header []string, i int) string {
	if i < len(header) {
		return header[i]
	}
	return fmt.Sprintf("column_%d", i+1)
}
