package encounter

// Stat names one of the six crew aptitudes skill checks roll against.
type Stat string

const (
	StatPilot       Stat = "pilot"
	StatGunnery     Stat = "gunnery"
	StatEngineering Stat = "engineering"
	StatMedicine    Stat = "medicine"
	StatSavvy       Stat = "savvy"
	StatGrit        Stat = "grit"
)

type StatBlock struct {
	Pilot       int `json:"pilot"`
	Gunnery     int `json:"gunnery"`
	Engineering int `json:"engineering"`
	Medicine    int `json:"medicine"`
	Savvy       int `json:"savvy"`
	Grit        int `json:"grit"`
}

func (b StatBlock) Value(stat Stat) int {
	switch stat {
	case StatPilot:
		return b.Pilot
	case StatGunnery:
		return b.Gunnery
	case StatEngineering:
		return b.Engineering
	case StatMedicine:
		return b.Medicine
	case StatSavvy:
		return b.Savvy
	case StatGrit:
		return b.Grit
	default:
		return 0
	}
}

// CrewSummary is the read-only view of one crew member a context carries.
type CrewSummary struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Traits []string  `json:"traits,omitempty"`
	Stats  StatBlock `json:"stats"`
}

func (c CrewSummary) HasTrait(trait string) bool {
	for _, t := range c.Traits {
		if t == trait {
			return true
		}
	}
	return false
}
