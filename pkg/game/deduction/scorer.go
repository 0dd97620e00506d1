package deduction

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Scorer is the collaborator hook for judging submissions. The turn
// engine routes SubmitDeduction actions through it and records the
// verdict; how verdicts are presented is not the core's business.
type Scorer interface {
	Score(c Case, answer string, collected []Tag) Verdict
}

// ReferenceScorer accepts a submission when the answer matches the case
// key (case-insensitively) and the player has collected every required
// tag. It is the stand-in for the full scoring layer.
type ReferenceScorer struct{}

// Score implements Scorer.
func (ReferenceScorer) Score(c Case, answer string, collected []Tag) Verdict {
	have := mapset.New[Tag]()
	for _, t := range collected {
		have.Put(t)
	}
	for _, t := range c.RequiredTags {
		if !have.Has(t) {
			return VerdictRejected
		}
	}

	if !strings.EqualFold(strings.TrimSpace(answer), c.Answer) {
		return VerdictRejected
	}
	return VerdictAccepted
}
