package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// IssuerKey is the single identity policy for issuer names: surrounding
// whitespace trimmed, Unicode NFC, then case folded. Averages and chart groups
// both match on it.
func IssuerKey(name string) string {
	s := norm.NFC.String(strings.TrimSpace(name))
	// cases.Caser is stateful; build one per call.
	return cases.Fold().String(s)
}

// SameIssuer reports whether two issuer names denote the same issuer.
func SameIssuer(a, b string) bool {
	return IssuerKey(a) == IssuerKey(b)
}

// IssuerAverage is the mean transit time of one issuer group.
type IssuerAverage struct {
	// Issuer is the first-seen (trimmed) spelling of the group.
	Issuer      string
	AverageDays float64
	Records     int
}
