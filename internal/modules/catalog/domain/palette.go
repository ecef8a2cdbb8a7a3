package domain

import "slices"

var VibrantPalette = []string{
	"#ef4444", "#f97316", "#facc15", "#84cc16", "#10b981",
	"#06b6d4", "#3b82f6", "#8b5cf6", "#d946ef", "#f43f5e",
	"#14b8a6", "#6366f1", "#ec4899", "#0ea5e9", "#a855f7",
}

var MonochromePalette = []string{
	"#ffffff", "#fafafa", "#f4f4f5", "#e4e4e7",
	"#d4d4d8", "#a1a1aa", "#71717a", "#52525b",
}

// PaletteFor returns the palette of a colour mode; unknown modes get the
// vibrant palette.
func PaletteFor(mode string) []string {
	if mode == "monochrome" {
		return MonochromePalette
	}
	return VibrantPalette
}

// PickColor draws uniformly from the palette colours no subject uses yet,
// or from the whole palette once every colour is taken. intn(n) must return
// a value in [0, n).
func PickColor(palette, used []string, intn func(int) int) string {
	available := make([]string, 0, len(palette))
	for _, color := range palette {
		if !slices.Contains(used, color) {
			available = append(available, color)
		}
	}
	if len(available) == 0 {
		available = palette
	}
	return available[intn(len(available))]
}
