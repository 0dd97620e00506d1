package deduction

import "testing"

func TestDeriveTagsFindsKeywords(t *testing.T) {
	tags := DeriveTags("The coolant loop was scorched, then everyone had to evacuate.")

	want := map[Tag]bool{TagCoolant: true, TagOverheat: true, TagEvacuation: true}
	if len(tags) != len(want) {
		t.Fatalf("got %d tags %v, want %d", len(tags), tags, len(want))
	}
	for _, tag := range tags {
		if !want[tag] {
			t.Errorf("unexpected tag %q", tag)
		}
	}
}

func TestDeriveTagsTrimsPunctuation(t *testing.T) {
	tags := DeriveTags("Last word: 'lockdown'.")
	if len(tags) != 1 || tags[0] != TagLockdown {
		t.Errorf("got %v, want [lockdown]", tags)
	}
}

func TestDeriveTagsForced(t *testing.T) {
	tags := DeriveTags("Nothing notable written here.", TagSabotage)
	if len(tags) != 1 || tags[0] != TagSabotage {
		t.Errorf("got %v, want forced [sabotage]", tags)
	}
}

func TestDeriveTagsIsSortedAndDeduplicated(t *testing.T) {
	tags := DeriveTags("vacuum vacuum breach", TagBreach)
	if len(tags) != 2 {
		t.Fatalf("got %v, want exactly [breach vacuum]", tags)
	}
	if tags[0] != TagBreach || tags[1] != TagVacuum {
		t.Errorf("got %v, want sorted [breach vacuum]", tags)
	}
}

func TestMergeTags(t *testing.T) {
	merged := MergeTags([]Tag{TagVacuum, TagBreach}, []Tag{TagBreach, TagCoolant})
	want := []Tag{TagBreach, TagCoolant, TagVacuum}
	if len(merged) != len(want) {
		t.Fatalf("got %v, want %v", merged, want)
	}
	for i := range want {
		if merged[i] != want[i] {
			t.Errorf("merged[%d] = %q, want %q", i, merged[i], want[i])
		}
	}
}

func TestMissingTags(t *testing.T) {
	cases := []Case{
		{ID: "a", RequiredTags: []Tag{TagCoolant, TagOverheat}},
		{ID: "b", RequiredTags: []Tag{TagEvacuation}},
	}

	missing := MissingTags(cases, []Tag{TagCoolant})
	want := []Tag{TagEvacuation, TagOverheat}
	if len(missing) != len(want) {
		t.Fatalf("got %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("missing[%d] = %q, want %q", i, missing[i], want[i])
		}
	}

	if rest := MissingTags(cases, []Tag{TagCoolant, TagOverheat, TagEvacuation}); len(rest) != 0 {
		t.Errorf("full tag set still missing %v", rest)
	}
}

// Every shipped incident must be able to cover its own cases from its
// own evidence pool; the generator relies on this when it places every
// template of the drawn incident.
func TestIncidentPoolsCoverTheirCases(t *testing.T) {
	if len(Incidents) == 0 {
		t.Fatal("no incidents shipped")
	}
	for _, inc := range Incidents {
		var available []Tag
		for _, tpl := range inc.Evidence {
			available = MergeTags(available, DeriveTags(tpl.Text, tpl.Forced...))
		}
		if missing := MissingTags(inc.Cases, available); len(missing) != 0 {
			t.Errorf("incident %q cannot establish tags %v from its own evidence", inc.Name, missing)
		}
	}
}

func TestReferenceScorer(t *testing.T) {
	c := Case{
		ID:           "root-cause",
		Answer:       "coolant loop",
		RequiredTags: []Tag{TagCoolant, TagOverheat},
	}
	scorer := ReferenceScorer{}

	full := []Tag{TagCoolant, TagOverheat, TagEvacuation}

	if got := scorer.Score(c, "Coolant Loop", full); got != VerdictAccepted {
		t.Errorf("correct answer with full tags = %v, want accepted", got)
	}
	if got := scorer.Score(c, "coolant loop", []Tag{TagCoolant}); got != VerdictRejected {
		t.Errorf("correct answer with missing tags = %v, want rejected", got)
	}
	if got := scorer.Score(c, "reactor", full); got != VerdictRejected {
		t.Errorf("wrong answer = %v, want rejected", got)
	}
}
