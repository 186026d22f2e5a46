package config

// ColorScheme defines the board chrome colors. Stage accents come from the
// palette instead.
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	Accent         string `yaml:"accent"`
	StageBorder    string `yaml:"stage_border"`
	HoverBorder    string `yaml:"hover_border"`
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`
	Subtle         string `yaml:"subtle"`
	Normal         string `yaml:"normal"`
	InfoFg         string `yaml:"info_fg"`
	WarningFg      string `yaml:"warning_fg"`
	ErrorFg        string `yaml:"error_fg"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:         "default",
		Accent:         "#874BFD",
		StageBorder:    "#5F87D7",
		HoverBorder:    "#5FD75F",
		CardBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		Subtle:         "#585858",
		Normal:         "#D0D0D0",
		InfoFg:         "#00AFFF",
		WarningFg:      "#FFD700",
		ErrorFg:        "#FF5F5F",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset:         "monochrome",
		Accent:         "#FFFFFF",
		StageBorder:    "#808080",
		HoverBorder:    "#FFFFFF",
		CardBorder:     "#606060",
		SelectedBorder: "#FFFFFF",
		Subtle:         "#808080",
		Normal:         "#D0D0D0",
		InfoFg:         "#FFFFFF",
		WarningFg:      "#FFFFFF",
		ErrorFg:        "#FFFFFF",
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := DefaultColorScheme()
	if c.Preset == "monochrome" {
		preset = MonochromeColorScheme()
	}
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.StageBorder, preset.StageBorder)
	fill(&c.HoverBorder, preset.HoverBorder)
	fill(&c.CardBorder, preset.CardBorder)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.ErrorFg, preset.ErrorFg)
}
