package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Navigation
	PrevStage     string `yaml:"prev_stage"`
	NextStage     string `yaml:"next_stage"`
	PrevCandidate string `yaml:"prev_candidate"`
	NextCandidate string `yaml:"next_candidate"`

	// Candidates
	GrabCandidate string `yaml:"grab_candidate"`
	DropCandidate string `yaml:"drop_candidate"`
	MoveMenu      string `yaml:"move_menu"`

	// Stage editor
	EditStages    string `yaml:"edit_stages"`
	AddStage      string `yaml:"add_stage"`
	RenameStage   string `yaml:"rename_stage"`
	RecolorStage  string `yaml:"recolor_stage"`
	DeleteStage   string `yaml:"delete_stage"`
	MoveStageUp   string `yaml:"move_stage_up"`
	MoveStageDown string `yaml:"move_stage_down"`
	SaveStages    string `yaml:"save_stages"`

	// Other
	Cancel   string `yaml:"cancel"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevStage:     "h",
		NextStage:     "l",
		PrevCandidate: "k",
		NextCandidate: "j",

		GrabCandidate: "space",
		DropCandidate: "enter",
		MoveMenu:      "m",

		EditStages:    "E",
		AddStage:      "a",
		RenameStage:   "r",
		RecolorStage:  "c",
		DeleteStage:   "d",
		MoveStageUp:   "K",
		MoveStageDown: "J",
		SaveStages:    "ctrl+s",

		Cancel:   "esc",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.PrevStage, d.PrevStage)
	fill(&k.NextStage, d.NextStage)
	fill(&k.PrevCandidate, d.PrevCandidate)
	fill(&k.NextCandidate, d.NextCandidate)
	fill(&k.GrabCandidate, d.GrabCandidate)
	fill(&k.DropCandidate, d.DropCandidate)
	fill(&k.MoveMenu, d.MoveMenu)
	fill(&k.EditStages, d.EditStages)
	fill(&k.AddStage, d.AddStage)
	fill(&k.RenameStage, d.RenameStage)
	fill(&k.RecolorStage, d.RecolorStage)
	fill(&k.DeleteStage, d.DeleteStage)
	fill(&k.MoveStageUp, d.MoveStageUp)
	fill(&k.MoveStageDown, d.MoveStageDown)
	fill(&k.SaveStages, d.SaveStages)
	fill(&k.Cancel, d.Cancel)
	fill(&k.ShowHelp, d.ShowHelp)
	fill(&k.Quit, d.Quit)
}
