package deduction

import "github.com/zyedidia/generic/mapset"

// Case is one question about the incident that the deduction layer will
// eventually score. RequiredTags is the evidence a confident answer
// rests on; the generator guarantees every required tag is producible
// from reachable evidence.
type Case struct {
	ID           string
	Question     string
	Answer       string
	RequiredTags []Tag
}

// Verdict is the outcome of a scored submission.
type Verdict int

// Verdicts
const (
	VerdictUnscored Verdict = iota
	VerdictRejected
	VerdictAccepted
)

// String returns the string representation of a verdict
func (v Verdict) String() string {
	switch v {
	case VerdictUnscored:
		return "unscored"
	case VerdictRejected:
		return "rejected"
	case VerdictAccepted:
		return "accepted"
	default:
		return "unknown"
	}
}

// Submission records one submitted answer and its verdict.
type Submission struct {
	CaseID  string
	Answer  string
	Turn    int
	Verdict Verdict
}

// RequiredTagUnion collects every tag any case demands, sorted.
func RequiredTagUnion(cases []Case) []Tag {
	union := mapset.New[Tag]()
	for _, c := range cases {
		for _, t := range c.RequiredTags {
			union.Put(t)
		}
	}
	return sortedTags(&union)
}

// MissingTags returns required tags not present in available, sorted.
// An empty result means the case set is fully coverable.
func MissingTags(cases []Case, available []Tag) []Tag {
	have := mapset.New[Tag]()
	for _, t := range available {
		have.Put(t)
	}

	missing := mapset.New[Tag]()
	for _, c := range cases {
		for _, t := range c.RequiredTags {
			if !have.Has(t) {
				missing.Put(t)
			}
		}
	}
	return sortedTags(&missing)
}
