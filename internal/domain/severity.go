package domain

import "sort"

// Severity labels used by checkstyle rulesets.
const (
	SeverityIgnore  = "ignore"
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// ValidSeverities enumerates all recognized severity labels.
var ValidSeverities = []string{
	SeverityIgnore, SeverityInfo, SeverityWarning, SeverityError,
}

// SeveritySet is an unordered set of severity labels. Selection is by
// membership, not ordering: {"error"} does not imply "warning".
type SeveritySet map[string]struct{}

// NewSeveritySet builds a SeveritySet from the given labels.
func NewSeveritySet(labels ...string) SeveritySet {
	s := make(SeveritySet, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}
	return s
}

// DefaultFailingSeverities returns the severities that fail a build when
// no configuration overrides them.
func DefaultFailingSeverities() SeveritySet {
	return NewSeveritySet(SeverityWarning, SeverityError)
}

func (s SeveritySet) Contains(label string) bool {
	_, ok := s[label]
	return ok
}

// Labels returns the set's members sorted for stable display.
func (s SeveritySet) Labels() []string {
	labels := make([]string, 0, len(s))
	for l := range s {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// IsValidSeverity reports whether label is a recognized severity.
func IsValidSeverity(label string) bool {
	for _, v := range ValidSeverities {
		if v == label {
			return true
		}
	}
	return false
}
