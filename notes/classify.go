package notes

import (
	"strings"
	"unicode"
)

// Keys historically used by COBRA-style SBML models. These are accepted
// verbatim, case sensitively, even when they would fail the identifier
// heuristic below (several contain spaces or mixed case).
var knownFieldKeys = []string{
	"FORMULA",
	"CHARGE",
	"GENE_ASSOCIATION",
	"GENE ASSOCIATION",
	"GENE_LIST",
	"GENE LIST",
	"SUBSYSTEM",
	"AUTHORS",
	"EC Number",
	"Confidence Level",
	"NOTES",
}

// Classifier decides whether the left-hand side of a "KEY: VALUE" notes line
// denotes a structured annotation field or is just prose containing a colon.
// The zero set of extra keys gives the stock COBRA behavior.
type Classifier struct {
	known map[string]struct{}
}

// NewClassifier builds a classifier accepting the standard COBRA keys plus
// any extra verbatim keys (typically taken from configuration).
func NewClassifier(extra ...string) *Classifier {
	c := &Classifier{known: make(map[string]struct{}, len(knownFieldKeys)+len(extra))}
	for _, k := range knownFieldKeys {
		c.known[k] = struct{}{}
	}
	for _, k := range extra {
		if k = strings.TrimSpace(k); len(k) > 0 {
			c.known[k] = struct{}{}
		}
	}
	return c
}

// IsFieldKey reports whether candidate looks like a structured field name.
// Rules are applied in order, first match decides:
//  1. empty or all-whitespace candidates are rejected;
//  2. members of the known key set are accepted verbatim;
//  3. candidates containing any lowercase letter are rejected - prose is
//     virtually always mixed case while structured identifiers are not;
//  4. otherwise the candidate is accepted only when every rune is an
//     uppercase letter, digit, underscore, period or space.
func (c *Classifier) IsFieldKey(candidate string) bool {
	if len(strings.TrimSpace(candidate)) == 0 {
		return false
	}
	if _, ok := c.known[candidate]; ok {
		return true
	}
	if strings.ContainsFunc(candidate, unicode.IsLower) {
		return false
	}
	for _, r := range candidate {
		if unicode.IsUpper(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == ' ' {
			continue
		}
		return false
	}
	return true
}

var defaultClassifier = NewClassifier()

// IsFieldKey applies the stock COBRA classifier.
func IsFieldKey(candidate string) bool {
	return defaultClassifier.IsFieldKey(candidate)
}
