package sources

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"f0oster/schemawiz/schema"
)

// JSONOptions control JSON record extraction.
type JSONOptions struct {
	// MaxRecords caps how many objects are read; zero reads everything.
	MaxRecords int
}

// JSONSource extracts records from a top-level JSON array of objects or from
// newline-delimited JSON. Key order within each object is preserved, since
// proposed fields must follow source order.
type JSONSource struct {
	content string
	opts    JSONOptions
}

func NewJSONSource(content string, opts JSONOptions) *JSONSource {
	return &JSONSource{content: content, opts: opts}
}

func (s *JSONSource) Name() string {
	return "json"
}

func (s *JSONSource) Records() ([]schema.Record, error) {
	trimmed := strings.TrimSpace(s.content)
	if trimmed == "" {
		return nil, nil
	}

	var rawObjects []json.RawMessage
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal([]byte(trimmed), &rawObjects); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	} else {
		for _, line := range strings.Split(trimmed, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			rawObjects = append(rawObjects, json.RawMessage(line))
		}
	}

	var records []schema.Record
	for _, raw := range rawObjects {
		if s.opts.MaxRecords > 0 && len(records) >= s.opts.MaxRecords {
			break
		}
		record, err := decodeObject(raw)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// decodeObject turns one JSON object into a record. encoding/json maps do not
// preserve key order, so keys are recovered with a token scan and values
// looked up separately.
func decodeObject(raw json.RawMessage) (schema.Record, error) {
	keys, err := objectKeys(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	values := make(map[string]interface{}, len(keys))
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	record := make(schema.Record, 0, len(keys))
	for _, key := range keys {
		record = append(record, schema.FieldValues{
			Name:   key,
			Values: stringifyValue(values[key]),
		})
	}
	return record, nil
}

// objectKeys scans a JSON object and returns its top-level keys in order.
func objectKeys(raw json.RawMessage) ([]string, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))

	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", token)
	}

	var keys []string
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyToken)
		}
		keys = append(keys, key)

		if err := skipValue(decoder); err != nil {
			return nil, err
		}
	}

	return keys, nil
}

// skipValue consumes one JSON value, descending into nested containers.
func skipValue(decoder *json.Decoder) error {
	token, err := decoder.Token()
	if err != nil {
		return err
	}

	delim, ok := token.(json.Delim)
	if !ok {
		return nil
	}

	switch delim {
	case '{':
		for decoder.More() {
			if _, err := decoder.Token(); err != nil { // key
				return err
			}
			if err := skipValue(decoder); err != nil {
				return err
			}
		}
	case '[':
		for decoder.More() {
			if err := skipValue(decoder); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unexpected delimiter %v", delim)
	}

	_, err = decoder.Token() // closing delimiter
	return err
}

// stringifyValue renders a decoded JSON value as observation strings. Arrays
// become multi-values; nested containers are re-marshalled verbatim; null
// becomes an empty value so the collector records absence.
func stringifyValue(value interface{}) []string {
	switch v := value.(type) {
	case nil:
		return []string{""}
	case string:
		return []string{v}
	case bool:
		return []string{strconv.FormatBool(v)}
	case float64:
		return []string{strconv.FormatFloat(v, 'f', -1, 64)}
	case []interface{}:
		if len(v) == 0 {
			return []string{""}
		}
		values := make([]string, 0, len(v))
		for _, item := range v {
			values = append(values, stringifyValue(item)...)
		}
		return values
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return []string{fmt.Sprintf("%v", v)}
		}
		return []string{string(encoded)}
	}
}
