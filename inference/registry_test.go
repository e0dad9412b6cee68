package inference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"f0oster/schemawiz/inference"
)

func TestHintRegistryNameHints(t *testing.T) {
	registry := inference.NewHintRegistry()
	profile := inference.DirectoryProfile()

	tests := []struct {
		attribute string
		want      inference.SemanticType
	}{
		{"mail", inference.TypeEmail},
		{"MAIL", inference.TypeEmail},
		{"telephoneNumber", inference.TypeTelephone},
		{"userPassword", inference.TypePassword},
		{"memberOf", inference.TypeDistinguishedName},
		{"whenCreated", inference.TypeTimestamp},
		{"objectClass", inference.TypeObjectClass},
		{"jpegPhoto", inference.TypeBinary},
	}

	for _, test := range tests {
		t.Run(test.attribute, func(t *testing.T) {
			got := registry.ClassifyAttribute(test.attribute, []string{"anything"}, false, profile)
			assert.Equal(t, test.want, got.Type)
		})
	}
}

func TestHintRegistryValueShapes(t *testing.T) {
	registry := inference.NewHintRegistry()
	profile := inference.DirectoryProfile()

	tests := []struct {
		name    string
		samples []string
		want    inference.SemanticType
	}{
		{"email shape", []string{"a@example.com", "b@example.org"}, inference.TypeEmail},
		{"generalized time", []string{"20240101120000Z", "20240102130000.0Z"}, inference.TypeTimestamp},
		{"dn shape", []string{"cn=admins,dc=example,dc=com", "cn=users,dc=example,dc=com"}, inference.TypeDistinguishedName},
		{"telephone shape", []string{"+61 2 9999 0000", "(02) 9999-0001"}, inference.TypeTelephone},
		{"tagged hash", []string{"{SSHA}Yz1hLG9wcXJzdHV2d3h5eg==", "{SSHA}dXZ3eHl6YWJjZGVmZ2hpag=="}, inference.TypeBinaryHash},
		{"hex digest", []string{"5f4dcc3b5aa765d61d8327deb882cf99"}, inference.TypeBinaryHash},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := registry.ClassifyAttribute("customAttribute", test.samples, false, profile)
			assert.Equal(t, test.want, got.Type)
		})
	}
}

func TestHintRegistryBinaryFlagWins(t *testing.T) {
	registry := inference.NewHintRegistry()

	got := registry.ClassifyAttribute("mail", []string{"a@example.com"}, true, inference.DirectoryProfile())
	assert.Equal(t, inference.TypeBinary, got.Type)
}

func TestHintRegistryFallsThroughToClassifier(t *testing.T) {
	registry := inference.NewHintRegistry()
	profile := inference.DirectoryProfile()

	numeric := registry.ClassifyAttribute("employeeNumber", []string{"1001", "1002"}, false, profile)
	assert.Equal(t, inference.TypeInteger, numeric.Type)
	assert.Equal(t, 15, numeric.RecommendedLength)

	plain := registry.ClassifyAttribute("givenName", []string{"Alice", "Bob"}, false, profile)
	assert.Equal(t, inference.TypeString, plain.Type)
}

func TestHintRegistryOverride(t *testing.T) {
	registry := inference.NewHintRegistry()
	registry.Override("extensionAttribute7", inference.TypeTelephone)

	hint, ok := registry.Lookup("extensionattribute7")
	require.True(t, ok)
	assert.Equal(t, inference.TypeTelephone, hint)

	got := registry.ClassifyAttribute("extensionAttribute7", []string{"whatever"}, false, inference.DirectoryProfile())
	assert.Equal(t, inference.TypeTelephone, got.Type)
}

func TestHintRegistryShapeThreshold(t *testing.T) {
	registry := inference.NewHintRegistry()
	profile := inference.DirectoryProfile()

	// Half email-shaped is below the shape threshold; the generic classifier
	// takes over and proposes a string.
	got := registry.ClassifyAttribute("contact", []string{"a@example.com", "front desk"}, false, profile)
	assert.Equal(t, inference.TypeString, got.Type)
}
