// Package deduction carries the evidence-tag layer: keyword tag
// derivation from placed narrative text, the generated case files, and
// the scoring hook the turn engine routes submissions through. Scoring
// presentation lives outside the core; this package only decides
// verdicts and guarantees tags are derivable.
package deduction

import (
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Tag labels one fact a piece of evidence can establish.
type Tag string

// Facts the shipped incidents reference.
const (
	TagOverheat      Tag = "overheat"
	TagCoolant       Tag = "coolant"
	TagBreach        Tag = "breach"
	TagVacuum        Tag = "vacuum"
	TagSabotage      Tag = "sabotage"
	TagEvacuation    Tag = "evacuation"
	TagLockdown      Tag = "lockdown"
	TagMaintenance   Tag = "maintenance"
	TagPowerLoss     Tag = "power-loss"
	TagContamination Tag = "contamination"
)

// keywordTags maps lowercase words found in evidence text to the tag
// they establish. Matching is whole-word after trimming punctuation.
var keywordTags = map[string]Tag{
	"scorched":   TagOverheat,
	"burnt":      TagOverheat,
	"melted":     TagOverheat,
	"overheated": TagOverheat,

	"coolant": TagCoolant,
	"glycol":  TagCoolant,

	"breach":         TagBreach,
	"punctured":      TagBreach,
	"micrometeorite": TagBreach,

	"vacuum":        TagVacuum,
	"decompression": TagVacuum,
	"depressurized": TagVacuum,
	"vented":        TagVacuum,

	"tampered":     TagSabotage,
	"forced":       TagSabotage,
	"unauthorized": TagSabotage,

	"evacuate":   TagEvacuation,
	"evacuation": TagEvacuation,
	"abandoned":  TagEvacuation,

	"lockdown":   TagLockdown,
	"quarantine": TagLockdown,

	"scrubber":    TagMaintenance,
	"filters":     TagMaintenance,
	"maintenance": TagMaintenance,
	"overdue":     TagMaintenance,

	"blackout":  TagPowerLoss,
	"brownout":  TagPowerLoss,
	"unpowered": TagPowerLoss,

	"residue":       TagContamination,
	"spores":        TagContamination,
	"contamination": TagContamination,
}

// DeriveTags scans narrative text for tag keywords and merges in any
// forced tags, returning a sorted, deduplicated list.
func DeriveTags(text string, forced ...Tag) []Tag {
	found := mapset.New[Tag]()

	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,;:!?'\"()[]")
		if tag, ok := keywordTags[word]; ok {
			found.Put(tag)
		}
	}
	for _, t := range forced {
		found.Put(t)
	}

	return sortedTags(&found)
}

// MergeTags returns the sorted union of two tag lists.
func MergeTags(a, b []Tag) []Tag {
	union := mapset.New[Tag]()
	for _, t := range a {
		union.Put(t)
	}
	for _, t := range b {
		union.Put(t)
	}
	return sortedTags(&union)
}

// sortedTags flattens a set into a deterministic slice.
func sortedTags(set *mapset.Set[Tag]) []Tag {
	var out []Tag
	set.Each(func(t Tag) {
		out = append(out, t)
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
