package directory

import "strings"

// DeriveBaseDN returns a best-effort directory root for a DN by taking its
// last two comma-separated components. When the DN has fewer than two
// components the whole DN is returned. The derivation is a heuristic default
// and may not reflect the true directory root.
func DeriveBaseDN(dn string) string {
	dn = strings.TrimSpace(dn)
	if dn == "" {
		return ""
	}

	parts := strings.Split(dn, ",")
	if len(parts) < 2 {
		return dn
	}

	tail := parts[len(parts)-2:]
	for i, part := range tail {
		tail[i] = strings.TrimSpace(part)
	}
	return strings.Join(tail, ",")
}
