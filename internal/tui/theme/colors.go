package theme

import "github.com/thenoetrevino/embudo/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	StageBorder    string
	HoverBorder    string
	CardBorder     string
	SelectedBorder string
	Subtle         string
	Normal         string
	InfoFg         string
	WarningFg      string
	ErrorFg        string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	colors.ApplyDefaults()
	Accent = colors.Accent
	StageBorder = colors.StageBorder
	HoverBorder = colors.HoverBorder
	CardBorder = colors.CardBorder
	SelectedBorder = colors.SelectedBorder
	Subtle = colors.Subtle
	Normal = colors.Normal
	InfoFg = colors.InfoFg
	WarningFg = colors.WarningFg
	ErrorFg = colors.ErrorFg
}
