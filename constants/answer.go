package constants

import "strings"

// Answer is the tri-state result of a yes/no checkbox on the form.
// Model output arrives as free text ("Yes", "no", "Y", "N", "", ...); we
// canonicalize once at the decode boundary and propagate only these values.
type Answer string

const (
	Yes     Answer = "Yes"
	No      Answer = "No"
	Unknown Answer = "Unknown"
)

var answerSynonyms = map[string]Answer{
	"yes":     Yes,
	"y":       Yes,
	"true":    Yes,
	"checked": Yes,
	"no":      No,
	"n":       No,
	"false":   No,
}

// ParseAnswer canonicalizes a raw yes/no token. The boolean result reports
// whether the token was recognized; unrecognized or empty input yields Unknown.
func ParseAnswer(input string) (Answer, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return Unknown, false
	}
	if a, ok := answerSynonyms[normalized]; ok {
		return a, true
	}
	return Unknown, false
}

// Token returns the storage token for an answer. Unknown degrades to the
// documented "No" default so downstream column typing stays stable.
func (a Answer) Token() string {
	if a == Yes {
		return string(Yes)
	}
	return string(No)
}

// Bool reports the answer as a boolean where the column is guaranteed binary.
func (a Answer) Bool() bool {
	return a == Yes
}
