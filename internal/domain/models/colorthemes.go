// internal/domain/models/colorthemes.go
package models

// ColorThemes is the canonical list of program card color themes. Order
// matters: it is the order the admin form offers them in.
var ColorThemes = []string{
	"green", "blue", "purple", "orange", "red", "indigo", "pink", "yellow",
}

// DefaultColorTheme is applied when a program is created without one.
const DefaultColorTheme = "blue"

// ColorThemeDisplay holds the presentation attributes for one theme.
// Resolved at read time by whatever renders the card; membership is
// validated at the API boundary, not here.
type ColorThemeDisplay struct {
	Label string
	Badge string // CSS class for the swatch/badge
}

var colorThemeDisplays = map[string]ColorThemeDisplay{
	"green":  {Label: "Green", Badge: "bg-green-500"},
	"blue":   {Label: "Blue", Badge: "bg-blue-500"},
	"purple": {Label: "Purple", Badge: "bg-purple-500"},
	"orange": {Label: "Orange", Badge: "bg-orange-500"},
	"red":    {Label: "Red", Badge: "bg-red-500"},
	"indigo": {Label: "Indigo", Badge: "bg-indigo-500"},
	"pink":   {Label: "Pink", Badge: "bg-pink-500"},
	"yellow": {Label: "Yellow", Badge: "bg-yellow-500"},
}

// ColorThemeFor returns the display attributes for a theme, falling back
// to the default theme for unknown values.
func ColorThemeFor(theme string) ColorThemeDisplay {
	if d, ok := colorThemeDisplays[theme]; ok {
		return d
	}
	return colorThemeDisplays[DefaultColorTheme]
}

// IsColorTheme reports whether theme is one of the canonical values.
func IsColorTheme(theme string) bool {
	_, ok := colorThemeDisplays[theme]
	return ok
}
