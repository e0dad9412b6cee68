package inference_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"f0oster/schemawiz/inference"
)

func TestClassifyCoreTypes(t *testing.T) {
	classifier := inference.NewClassifier(inference.DelimitedProfile())

	tests := []struct {
		name    string
		samples []string
		want    inference.SemanticType
	}{
		{"integers", []string{"1", "2", "3"}, inference.TypeInteger},
		{"decimals", []string{"1.5", "2.25"}, inference.TypeDecimal},
		{"iso dates", []string{"2024-01-01", "2024-02-01"}, inference.TypeDate},
		{"slash dates", []string{"01/15/2024", "3/4/2024"}, inference.TypeDate},
		{"booleans", []string{"true", "false", "yes"}, inference.TypeBoolean},
		{"boolean letters", []string{"y", "N", "t", "F"}, inference.TypeBoolean},
		{"strings", []string{"hello", "world"}, inference.TypeString},
		{"empty sample set", nil, inference.TypeString},
		{"currency and separators", []string{"$1,200", "$950", "$12,000"}, inference.TypeInteger},
		{"percentages as decimals", []string{"12.5%", "7.25%"}, inference.TypeDecimal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := classifier.Classify(test.samples)
			assert.Equal(t, test.want, got.Type)
		})
	}
}

func TestClassifyToleratesNoise(t *testing.T) {
	classifier := inference.NewClassifier(inference.DelimitedProfile())

	// 3 of 4 numeric: above the lenient 0.7 threshold.
	got := classifier.Classify([]string{"1", "2", "3", "n/a"})
	assert.Equal(t, inference.TypeInteger, got.Type)
}

func TestClassifyStricterProfileRejectsSameNoise(t *testing.T) {
	classifier := inference.NewClassifier(inference.DirectoryProfile())

	// 3 of 4 numeric: below the stricter 0.8 threshold, so string wins.
	got := classifier.Classify([]string{"1", "2", "3", "n/a"})
	assert.Equal(t, inference.TypeString, got.Type)
}

func TestClassifyIntegerSubclassification(t *testing.T) {
	classifier := inference.NewClassifier(inference.DelimitedProfile())

	samples := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
	assert.Equal(t, inference.TypeInteger, classifier.Classify(samples).Type)

	// One fractional value in ten drops the whole-number fraction to
	// exactly 0.9, which no longer clears the strict > 0.9 test.

	samples[0] = "1.5"
	assert.Equal(t, inference.TypeDecimal, classifier.Classify(samples).Type)
}

func TestClassifyLengthRecommendations(t *testing.T) {
	delimited := inference.NewClassifier(inference.DelimitedProfile())
	directory := inference.NewClassifier(inference.DirectoryProfile())

	short := delimited.Classify([]string{"ab", "cd"})
	assert.Equal(t, inference.TypeString, short.Type)
	assert.Equal(t, 10, short.RecommendedLength)

	long := delimited.Classify([]string{strings.Repeat("x", 5000)})
	assert.Equal(t, 4000, long.RecommendedLength)

	mid := delimited.Classify([]string{"exactly twenty chars"})
	assert.Equal(t, 20, mid.RecommendedLength)

	assert.Equal(t, 12, delimited.Classify([]string{"1", "2"}).RecommendedLength)
	assert.Equal(t, 15, directory.Classify([]string{"1", "2"}).RecommendedLength)
	assert.Equal(t, 18, delimited.Classify([]string{"1.5", "2.5"}).RecommendedLength)

	assert.Zero(t, delimited.Classify([]string{"2024-01-01", "2024-02-02"}).RecommendedLength)
	assert.Zero(t, delimited.Classify([]string{"true", "false"}).RecommendedLength)
}

func TestClassifyRejectsNonFiniteNumbers(t *testing.T) {
	classifier := inference.NewClassifier(inference.DelimitedProfile())

	got := classifier.Classify([]string{"Inf", "NaN", "+Inf"})
	assert.Equal(t, inference.TypeString, got.Type)
}
