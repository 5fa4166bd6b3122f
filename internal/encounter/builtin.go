package encounter

// BuiltInTemplates returns the stock encounter set used by the CLI and tests.
// Content authored in Go mirrors what LoadTemplates accepts from YAML.
func BuiltInTemplates() []*Template {
	return []*Template{
		pirateAmbushTemplate(),
		patrolInspectionTemplate(),
		derelictDrifterTemplate(),
		smugglerOfferTemplate(),
		distressCallTemplate(),
	}
}

func pirateAmbushTemplate() *Template {
	return &Template{
		ID:    "pirate_ambush",
		Name:  "Pirate Ambush",
		Tags:  []string{"pirate", "combat"},
		Entry: "hail",
		Nodes: map[string]*Node{
			"hail": {
				ID:   "hail",
				Text: "The {ship} drops out of cover near {location} and locks weapons. A voice crackles over comms: \"Cut engines and dump cargo, or we open fire.\"",
				Options: []Option{
					{
						ID:   "run",
						Text: "Punch the drives and run for it.",
						Check: &CheckDef{
							Stat:        StatPilot,
							Difficulty:  12,
							BonusTraits: []string{"daredevil"},
						},
						Success: &Outcome{
							Effects:  []Effect{CrewExperience{Amount: 10}},
							NextNode: "escaped",
						},
						Failure: &Outcome{
							Effects:  []Effect{ShipDamage{Amount: 15}, TimeDelay{Days: 1}},
							NextNode: "caught",
						},
					},
					{
						ID:   "talk",
						Text: "Stall them while you size up their captain.",
						Check: &CheckDef{
							Stat:          StatSavvy,
							Difficulty:    13,
							BonusTraits:   []string{"silver_tongue"},
							PenaltyTraits: []string{"hot_headed"},
						},
						Success: &Outcome{
							Effects:  []Effect{ReputationDelta{Faction: "syndicate", Amount: 2}},
							NextNode: "talked_down",
						},
						Failure: &Outcome{NextNode: "caught"},
					},
					{
						ID:         "pay",
						Text:       "Pay the toll. Credits are cheaper than hull plating.",
						Conditions: []Condition{MinResource{Resource: "credits", Amount: 200}},
						Outcome: &Outcome{
							Effects: []Effect{ResourceDelta{Resource: "credits", Amount: -200}},
							End:     true,
						},
					},
					{
						ID:   "fight",
						Text: "Bring the guns around.",
						Outcome: &Outcome{
							Effects: []Effect{TacticalMission{MissionType: "pirate_boarding"}},
							End:     true,
						},
					},
				},
			},
			"escaped": {
				ID:   "escaped",
				Text: "The {ship} falls away astern, its captain cursing you across every open channel.",
			},
			"talked_down": {
				ID:   "talked_down",
				Text: "{npc} laughs and waves you through. \"Courtesy of the syndicate. Don't make a habit of it.\"",
			},
			"caught": {
				ID:   "caught",
				Text: "Grapple lines thud into the hull. The pirates strip what they can reach before casting off.",
				Auto: &Outcome{
					Effects: []Effect{CargoDelta{Descriptor: "plundered freight", Value: -150}},
					End:     true,
				},
			},
		},
	}
}

func patrolInspectionTemplate() *Template {
	return &Template{
		ID:    "patrol_inspection",
		Name:  "Patrol Inspection",
		Tags:  []string{"patrol"},
		Entry: "stop",
		Nodes: map[string]*Node{
			"stop": {
				ID:   "stop",
				Text: "A coalition cutter flags you down outside {location}. \"Routine inspection. Hold for boarding.\"",
				Options: []Option{
					{
						ID:   "comply",
						Text: "Heave to and open the airlock.",
						Outcome: &Outcome{
							NextNode: "search",
						},
					},
					{
						ID:         "bluff",
						Text:       "Claim diplomatic cargo and wave your papers.",
						Conditions: []Condition{MinReputation{Faction: "coalition", Amount: 3}},
						Check: &CheckDef{
							Stat:       StatSavvy,
							Difficulty: 11,
						},
						Success: &Outcome{End: true},
						Failure: &Outcome{
							Effects:  []Effect{ReputationDelta{Faction: "coalition", Amount: -2}},
							NextNode: "search",
						},
					},
					{
						ID:   "flee",
						Text: "Run the blockade.",
						Check: &CheckDef{
							Stat:       StatPilot,
							Difficulty: 14,
						},
						Success: &Outcome{
							Effects: []Effect{
								ReputationDelta{Faction: "coalition", Amount: -3},
								SetFlag{Flag: "coalition_fugitive", Value: true},
							},
							End: true,
						},
						Failure: &Outcome{
							Effects:  []Effect{ShipDamage{Amount: 10}},
							NextNode: "search",
						},
					},
				},
			},
			"search": {
				ID:   "search",
				Text: "Marines sweep the holds deck by deck.",
				Options: []Option{
					{
						ID:         "clean",
						Text:       "Stand by while they finish.",
						Conditions: []Condition{Not{Child: HasFlag{Flag: "carrying_contraband"}}},
						Outcome: &Outcome{
							Effects: []Effect{ReputationDelta{Faction: "coalition", Amount: 1}},
							End:     true,
						},
					},
					{
						ID:         "caught_dirty",
						Text:       "Watch them crack open the wrong crate.",
						Conditions: []Condition{HasFlag{Flag: "carrying_contraband"}},
						Outcome: &Outcome{
							Effects: []Effect{
								CargoDelta{Descriptor: "confiscated contraband", Value: -300, Illegal: true},
								ReputationDelta{Faction: "coalition", Amount: -4},
								TimeDelay{Days: 2},
							},
							End: true,
						},
					},
				},
			},
		},
	}
}

func derelictDrifterTemplate() *Template {
	return &Template{
		ID:    "derelict_drifter",
		Name:  "Derelict Drifter",
		Tags:  []string{"generic", "rare"},
		Entry: "contact",
		Nodes: map[string]*Node{
			"contact": {
				ID:   "contact",
				Text: "Sensors pick up the {ship}, cold and tumbling. No transponder, no lights.",
				Options: []Option{
					{
						ID:   "board",
						Text: "Suit up and board her.",
						Check: &CheckDef{
							Stat:          StatEngineering,
							Difficulty:    10,
							PenaltyTraits: []string{"claustrophobic"},
						},
						Success: &Outcome{NextNode: "salvage"},
						Failure: &Outcome{
							Effects:  []Effect{CrewInjury{Severity: 1}},
							NextNode: "bad_air",
						},
					},
					{
						ID:      "ignore",
						Text:    "Log the position and move on.",
						Outcome: &Outcome{End: true},
					},
				},
			},
			"salvage": {
				ID:   "salvage",
				Text: "The holds are half-stripped, but half is plenty.",
				Auto: &Outcome{
					Effects: []Effect{
						CargoDelta{Descriptor: "salvaged drive parts", Value: 250},
						CrewExperience{Amount: 5},
					},
					NextNode: "stowaway",
				},
			},
			"stowaway": {
				ID:   "stowaway",
				Text: "A survivor stumbles out of a cryo pod: {npc}, last of the crew.",
				Options: []Option{
					{
						ID:   "take_aboard",
						Text: "Take them aboard.",
						Outcome: &Outcome{
							Effects: []Effect{CrewRecruit{Name: "{npc}"}},
							End:     true,
						},
					},
					{
						ID:   "hand_off",
						Text: "Promise to drop them at the next station for a finder's fee.",
						Outcome: &Outcome{
							Effects: []Effect{ResourceDelta{Resource: "credits", Amount: 100}},
							End:     true,
						},
					},
				},
			},
			"bad_air": {
				ID:   "bad_air",
				Text: "Something in the ventilation got into a suit line. You pull everyone back.",
				Auto: &Outcome{End: true},
			},
		},
	}
}

func smugglerOfferTemplate() *Template {
	return &Template{
		ID:    "smuggler_offer",
		Name:  "Smuggler's Offer",
		Tags:  []string{"pirate", "generic"},
		Entry: "offer",
		Nodes: map[string]*Node{
			"offer": {
				ID:   "offer",
				Text: "{npc} matches your course in a battered freighter. \"Got {cargo} that needs to not exist on any manifest. Interested?\"",
				Options: []Option{
					{
						ID:   "accept",
						Text: "Take the job.",
						Outcome: &Outcome{
							Effects: []Effect{
								CargoDelta{Descriptor: "off-manifest freight", Value: 400, Illegal: true},
								SetFlag{Flag: "carrying_contraband", Value: true},
							},
							End: true,
						},
					},
					{
						ID:         "haggle",
						Text:       "Squeeze them for a better cut.",
						Conditions: []Condition{MinBestStat{Stat: StatSavvy, Value: 4}},
						Check: &CheckDef{
							Stat:        StatSavvy,
							Difficulty:  12,
							BonusTraits: []string{"silver_tongue"},
						},
						Success: &Outcome{
							Effects: []Effect{
								CargoDelta{Descriptor: "off-manifest freight", Value: 400, Illegal: true},
								ResourceDelta{Resource: "credits", Amount: 150},
								SetFlag{Flag: "carrying_contraband", Value: true},
							},
							End: true,
						},
						Failure: &Outcome{NextNode: "walked"},
					},
					{
						ID:      "refuse",
						Text:    "Decline and burn away.",
						Outcome: &Outcome{End: true},
					},
				},
			},
			"walked": {
				ID:   "walked",
				Text: "\"Forget it.\" The freighter peels off toward the drift.",
			},
		},
	}
}

func distressCallTemplate() *Template {
	return &Template{
		ID:    "distress_call",
		Name:  "Distress Call",
		Tags:  []string{"generic"},
		Entry: "signal",
		Nodes: map[string]*Node{
			"signal": {
				ID:   "signal",
				Text: "A weak distress beacon repeats from a crippled hauler: reactor failure, life support failing.",
				Options: []Option{
					{
						ID:   "repair",
						Text: "Dock and send over your engineer.",
						Check: &CheckDef{
							Stat:        StatEngineering,
							Difficulty:  11,
							BonusTraits: []string{"tinkerer"},
						},
						Success: &Outcome{
							Effects: []Effect{
								ResourceDelta{Resource: "credits", Amount: 120},
								ReputationDelta{Faction: "free_traders", Amount: 2},
								CrewExperience{Amount: 8},
							},
							End: true,
						},
						Failure: &Outcome{
							Effects:  []Effect{TimeDelay{Days: 1}},
							NextNode: "tow",
						},
					},
					{
						ID:         "medical",
						Text:       "Treat their injured first.",
						Conditions: []Condition{MinBestStat{Stat: StatMedicine, Value: 3}},
						Outcome: &Outcome{
							Effects: []Effect{
								ReputationDelta{Faction: "free_traders", Amount: 3},
								ResourceDelta{Resource: "fuel", Amount: -2},
							},
							End: true,
						},
					},
					{
						ID:      "ignore",
						Text:    "Mark the beacon and keep your schedule.",
						Outcome: &Outcome{End: true},
					},
				},
			},
			"tow": {
				ID:   "tow",
				Text: "The reactor is past saving. You take the hauler under tow to the nearest lane marker, losing a day.",
				Auto: &Outcome{
					Effects: []Effect{ReputationDelta{Faction: "free_traders", Amount: 1}},
					End:     true,
				},
			},
		},
	}
}
