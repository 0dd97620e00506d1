package deduction

// EvidenceTemplate is an authorable evidence blueprint. Tags are
// derived from Text by keyword, plus the Forced list for tags the text
// must establish regardless of wording.
type EvidenceTemplate struct {
	Title  string
	Text   string
	Forced []Tag
}

// Incident bundles the cases one scenario generates with the evidence
// pool that can establish their tags. Every incident's pool covers its
// own cases' required tags; the content test holds the tables to that.
type Incident struct {
	Name     string
	Cases    []Case
	Evidence []EvidenceTemplate
}

// Incidents is the scenario pool the generator draws from, one per
// seed.
var Incidents = []Incident{
	{
		Name: "Coolant Cascade",
		Cases: []Case{
			{
				ID:           "root-cause",
				Question:     "What failed first aboard the station?",
				Answer:       "coolant loop",
				RequiredTags: []Tag{TagCoolant, TagOverheat},
			},
			{
				ID:           "crew-fate",
				Question:     "What became of the crew?",
				Answer:       "evacuated",
				RequiredTags: []Tag{TagEvacuation},
			},
		},
		Evidence: []EvidenceTemplate{
			{
				Title:  "Engineer's Slate",
				Text:   "Third brownout this shift. The coolant pumps cycle but loop pressure keeps dropping. Requesting parts. Again.",
				Forced: []Tag{TagCoolant},
			},
			{
				Title: "Scorched Panel",
				Text:  "A relay housing, scorched black. Something overheated here long before any alarm sounded.",
			},
			{
				Title: "Evacuation Order",
				Text:  "PA transcript: all hands to evacuation pods. This is not a drill.",
			},
			{
				Title: "Melted Conduit",
				Text:  "Glycol residue pooled under a melted conduit junction.",
			},
			{
				Title: "Duty Roster",
				Text:  "Half the names struck through. Someone wrote ABANDONED across the bottom in grease pencil.",
			},
			{
				Title: "Closed Ticket",
				Text:  "Scrubber bank four flagged for maintenance twice. Ticket closed with no work logged.",
			},
		},
	},
	{
		Name: "Silent Breach",
		Cases: []Case{
			{
				ID:           "root-cause",
				Question:     "What failed first aboard the station?",
				Answer:       "hull breach",
				RequiredTags: []Tag{TagBreach, TagVacuum},
			},
			{
				ID:           "last-order",
				Question:     "What was the final order given?",
				Answer:       "lockdown",
				RequiredTags: []Tag{TagLockdown},
			},
		},
		Evidence: []EvidenceTemplate{
			{
				Title:  "Patch Inventory",
				Text:   "Hull patch inventory: empty. Margin note reads micrometeorite swarm predicted, window unknown.",
				Forced: []Tag{TagBreach},
			},
			{
				Title: "Frozen Console",
				Text:  "The console glass burst in the decompression. Its readings are frozen at the moment the deck vented.",
			},
			{
				Title: "Captain's Note",
				Text:  "Ordered full lockdown of the aft ring. If the seals hold, we hold.",
			},
			{
				Title: "Torn Suit",
				Text:  "An EVA suit punctured at the shoulder, patched in a hurry from the inside.",
			},
			{
				Title: "Popped Locker",
				Text:  "Everything in this depressurized locker is freeze-dried and weightless-scattered.",
			},
			{
				Title: "Empty Watch Post",
				Text:  "The watch station was abandoned mid-entry, stylus still in the clip.",
			},
		},
	},
	{
		Name: "Inside Job",
		Cases: []Case{
			{
				ID:           "root-cause",
				Question:     "What failed first aboard the station?",
				Answer:       "sabotage",
				RequiredTags: []Tag{TagSabotage},
			},
			{
				ID:           "cover-up",
				Question:     "How was the failure hidden?",
				Answer:       "maintenance records",
				RequiredTags: []Tag{TagMaintenance, TagPowerLoss},
			},
		},
		Evidence: []EvidenceTemplate{
			{
				Title:  "Forced Cabinet",
				Text:   "The relay cabinet lock was forced. Tool marks. Unhurried ones.",
				Forced: []Tag{TagSabotage},
			},
			{
				Title: "Access Log",
				Text:  "Unauthorized entry to Engineering, 0340 shiptime. Badge record deleted four minutes later.",
			},
			{
				Title: "Thirty-Second Fix",
				Text:  "A maintenance ticket opened and closed in thirty seconds. Nobody works that fast.",
			},
			{
				Title: "Deck Report",
				Text:  "Blackout across sections nine through twelve. Cause listed as pending.",
			},
			{
				Title: "Load-Shedding Memo",
				Text:  "Memo: treat every brownout as scheduled load shedding. Do not escalate.",
			},
			{
				Title: "Stripped Housing",
				Text:  "Filters pulled from the scrubber housing and never replaced.",
			},
		},
	},
	{
		Name: "Bad Air",
		Cases: []Case{
			{
				ID:           "root-cause",
				Question:     "What failed first aboard the station?",
				Answer:       "air scrubbers",
				RequiredTags: []Tag{TagMaintenance, TagContamination},
			},
			{
				ID:           "crew-fate",
				Question:     "What became of the crew?",
				Answer:       "quarantined",
				RequiredTags: []Tag{TagLockdown},
			},
		},
		Evidence: []EvidenceTemplate{
			{
				Title:  "Intake Mesh",
				Text:   "Grey-green spores crusted across the intake mesh.",
				Forced: []Tag{TagContamination},
			},
			{
				Title: "Diagnostics Printout",
				Text:  "Scrubber diagnostics: efficiency eleven percent and falling.",
			},
			{
				Title: "Quarantine Notice",
				Text:  "Med bay quarantine notice, corners curled with heat.",
			},
			{
				Title: "Sealed Vial",
				Text:  "A sealed vial labelled: residue, deck six vent line. Handle suited.",
			},
			{
				Title: "Wall Calendar",
				Text:  "The maintenance calendar. Every line overdue.",
			},
			{
				Title: "Infirmary Intake",
				Text:  "Intake numbers doubled in a week. Someone circled the word evacuate. Twice.",
			},
		},
	},
}

// FlavorEvidence is the pool of incident-neutral fragments the
// generator sprinkles alongside an incident's own evidence. Their tags
// are derived like any other evidence but no case requires them.
var FlavorEvidence = []EvidenceTemplate{
	{
		Title: "Crew Photo",
		Text:  "Seventeen people in front of the reactor intake. Most are smiling.",
	},
	{
		Title: "Ration Wrapper",
		Text:  "Emergency ration wrapper, licked clean.",
	},
	{
		Title: "Personal Journal",
		Text:  "Day forty. Still no resupply. The hum under deck three is getting louder.",
	},
	{
		Title: "Tool Pouch",
		Text:  "A rigger's pouch, drivers fanned out in size order. Its owner meant to come back.",
	},
}
