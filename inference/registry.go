package inference

import (
	"regexp"
	"strings"

	"github.com/go-ldap/ldap/v3"
)

// HintRegistry resolves semantic types for directory attributes before the
// generic classifier runs. Resolution order: per-attribute name hints first,
// then value-shape rules over the sample set, then the generic classifier.
type HintRegistry struct {
	nameHints map[string]SemanticType
}

func NewHintRegistry() *HintRegistry {
	r := &HintRegistry{
		nameHints: make(map[string]SemanticType),
	}
	r.init()
	return r
}

// Override registers (or replaces) a name hint. Attribute names are matched
// case-insensitively.
func (r *HintRegistry) Override(name string, semanticType SemanticType) {
	r.nameHints[strings.ToLower(name)] = semanticType
}

// Lookup returns the name hint for an attribute, if one is registered.
func (r *HintRegistry) Lookup(name string) (SemanticType, bool) {
	hint, ok := r.nameHints[strings.ToLower(name)]
	return hint, ok
}

// ClassifyAttribute classifies one directory attribute from its name and
// sample values. Values flagged binary classify as binary outright; unknown
// attributes with no recognizable value shape fall through to the generic
// classifier with the given profile.
func (r *HintRegistry) ClassifyAttribute(name string, samples []string, binary bool, profile Profile) Classification {
	if binary {
		return Classification{Type: TypeBinary}
	}

	if hint, ok := r.Lookup(name); ok {
		return Classification{Type: hint}
	}

	if shape, ok := matchShape(samples, profile.ShapeThreshold); ok {
		return Classification{Type: shape}
	}

	return NewClassifier(profile).Classify(samples)
}

func (r *HintRegistry) init() {
	// Mail
	r.Override("mail", TypeEmail)
	r.Override("email", TypeEmail)
	r.Override("rfc822Mailbox", TypeEmail)
	r.Override("proxyAddresses", TypeEmail)

	// Telephone
	r.Override("telephoneNumber", TypeTelephone)
	r.Override("homePhone", TypeTelephone)
	r.Override("mobile", TypeTelephone)
	r.Override("pager", TypeTelephone)
	r.Override("facsimileTelephoneNumber", TypeTelephone)

	// Credentials
	r.Override("userPassword", TypePassword)
	r.Override("unicodePwd", TypePassword)

	// DN-valued references
	r.Override("distinguishedName", TypeDistinguishedName)
	r.Override("member", TypeDistinguishedName)
	r.Override("memberOf", TypeDistinguishedName)
	r.Override("uniqueMember", TypeDistinguishedName)
	r.Override("manager", TypeDistinguishedName)
	r.Override("seeAlso", TypeDistinguishedName)

	// Operational timestamps
	r.Override("createTimestamp", TypeTimestamp)
	r.Override("modifyTimestamp", TypeTimestamp)
	r.Override("whenCreated", TypeTimestamp)
	r.Override("whenChanged", TypeTimestamp)

	r.Override("objectClass", TypeObjectClass)

	// Raw binary payloads
	r.Override("jpegPhoto", TypeBinary)
	r.Override("thumbnailPhoto", TypeBinary)
	r.Override("userCertificate", TypeBinary)
	r.Override("objectGUID", TypeBinary)
	r.Override("objectSid", TypeBinary)
}

var (
	emailPattern     = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	telephonePattern = regexp.MustCompile(`^[+(]?[0-9][0-9 ().\-/]{5,}$`)
	timestampPattern = regexp.MustCompile(`^\d{14}(\.\d+)?(Z|[+-]\d{4})$`)
	hashPattern      = regexp.MustCompile(`^\{[A-Za-z0-9-]+\}.+$`)
	hexDigestPattern = regexp.MustCompile(`^(?:[0-9a-fA-F]{32}|[0-9a-fA-F]{40}|[0-9a-fA-F]{64})$`)
)

// shapeRules are checked in order; the first rule matched by more than the
// threshold fraction of samples wins.
var shapeRules = []struct {
	semanticType SemanticType
	match        func(string) bool
}{
	{TypeEmail, emailPattern.MatchString},
	{TypeTimestamp, timestampPattern.MatchString},
	{TypeDistinguishedName, isDNLike},
	{TypeTelephone, telephonePattern.MatchString},
	{TypeBinaryHash, func(s string) bool { return hashPattern.MatchString(s) || hexDigestPattern.MatchString(s) }},
}

func matchShape(samples []string, threshold float64) (SemanticType, bool) {
	if len(samples) == 0 {
		return "", false
	}

	total := float64(len(samples))
	for _, rule := range shapeRules {
		matched := 0
		for _, sample := range samples {
			if rule.match(sample) {
				matched++
			}
		}
		if float64(matched)/total > threshold {
			return rule.semanticType, true
		}
	}
	return "", false
}

// isDNLike reports whether a value parses as a distinguished name with at
// least two components. Single-component DNs are indistinguishable from
// key=value strings, so they do not count.
func isDNLike(value string) bool {
	if !strings.Contains(value, "=") || !strings.Contains(value, ",") {
		return false
	}
	parsed, err := ldap.ParseDN(value)
	if err != nil {
		return false
	}
	return len(parsed.RDNs) >= 2
}
