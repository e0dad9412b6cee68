package inference

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// String length recommendation bounds.
const (
	minStringLength = 10
	maxStringLength = 4000
)

// Profile holds the sample-fraction thresholds and length constants for one
// calling context. Sample sets are small and noisy, so classification is
// threshold-based rather than all-samples-must-match: a strict rule would
// produce too many string fallbacks to be useful as a suggestion.
type Profile struct {
	// DateThreshold is the fraction of date-like samples above which the
	// field classifies as a date.
	DateThreshold float64

	// NumericThreshold is the fraction of numeric samples above which the
	// field classifies as integer or decimal.
	NumericThreshold float64

	// BooleanThreshold is the fraction of boolean-like samples above which
	// the field classifies as a boolean.
	BooleanThreshold float64

	// ShapeThreshold is the fraction of samples that must match a value
	// shape rule (email, DN, timestamp, ...) for attribute-level hints.
	ShapeThreshold float64

	// IntegerFraction is the fraction of numeric samples that must be whole
	// numbers for the integer sub-classification.
	IntegerFraction float64

	// IntegerLength and DecimalLength are display-length hints.
	IntegerLength int
	DecimalLength int
}

// DelimitedProfile is the lenient threshold set used for delimited and other
// tabular sources.
func DelimitedProfile() Profile {
	return Profile{
		DateThreshold:    0.7,
		NumericThreshold: 0.7,
		BooleanThreshold: 0.8,
		ShapeThreshold:   0.8,
		IntegerFraction:  0.9,
		IntegerLength:    12,
		DecimalLength:    18,
	}
}

// DirectoryProfile is the stricter threshold set used for directory-export
// attributes.
func DirectoryProfile() Profile {
	return Profile{
		DateThreshold:    0.8,
		NumericThreshold: 0.8,
		BooleanThreshold: 0.9,
		ShapeThreshold:   0.8,
		IntegerFraction:  0.9,
		IntegerLength:    15,
		DecimalLength:    18,
	}
}

// Classifier infers a semantic type from a bounded sample of a field's
// values. Instances are stateless and safe for reuse across fields.
type Classifier struct {
	profile Profile
}

func NewClassifier(profile Profile) *Classifier {
	return &Classifier{profile: profile}
}

// Classify inspects the samples and returns the first matching type in
// date, numeric, boolean, string order. Samples are expected to be already
// filtered of empty values by the caller; an empty sample set classifies as
// a string with no length analysis.
func (c *Classifier) Classify(samples []string) Classification {
	if len(samples) == 0 {
		return Classification{Type: TypeString}
	}

	var dates, numerics, wholes, booleans, maxLen int
	for _, sample := range samples {
		if n := utf8.RuneCountInString(sample); n > maxLen {
			maxLen = n
		}
		if isDateLike(sample) {
			dates++
		}
		if value, ok := numericValue(sample); ok {
			numerics++
			if value == math.Trunc(value) {
				wholes++
			}
		}
		if isBooleanLike(sample) {
			booleans++
		}
	}

	total := float64(len(samples))
	if float64(dates)/total > c.profile.DateThreshold {
		return Classification{Type: TypeDate}
	}
	if float64(numerics)/total > c.profile.NumericThreshold {
		if float64(wholes)/float64(numerics) > c.profile.IntegerFraction {
			return Classification{Type: TypeInteger, RecommendedLength: c.profile.IntegerLength}
		}
		return Classification{Type: TypeDecimal, RecommendedLength: c.profile.DecimalLength}
	}
	if float64(booleans)/total > c.profile.BooleanThreshold {
		return Classification{Type: TypeBoolean}
	}

	return Classification{Type: TypeString, RecommendedLength: clamp(maxLen, minStringLength, maxStringLength)}
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),     // YYYY-MM-DD
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`), // MM/DD/YYYY
	regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{4}$`), // MM-DD-YYYY
	regexp.MustCompile(`^\d{4}/\d{1,2}/\d{1,2}$`), // YYYY/MM/DD
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

func isDateLike(value string) bool {
	for _, pattern := range datePatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

var numericNoise = strings.NewReplacer(",", "", "$", "", "%", "")

func numericValue(value string) (float64, bool) {
	stripped := numericNoise.Replace(strings.TrimSpace(value))
	if stripped == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(stripped, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, false
	}
	return parsed, true
}

var booleanTokens = map[string]struct{}{
	"true": {}, "false": {},
	"yes": {}, "no": {},
	"1": {}, "0": {},
	"y": {}, "n": {},
	"t": {}, "f": {},
}

func isBooleanLike(value string) bool {
	_, ok := booleanTokens[strings.ToLower(value)]
	return ok
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
