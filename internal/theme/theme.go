package theme

import (
	"encoding/json"
	"strings"
)

// Theme is a named bundle of visual style values driving the public
// page chrome.
type Theme struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	CardBg     string `json:"cardBg"`
	CardBorder string `json:"cardBorder"`
	Text       string `json:"text"`
	Subtext    string `json:"subtext"`
	Accent     string `json:"accent"`
	Glass      bool   `json:"glass,omitempty"`
}

// DefaultTheme is used whenever a profile carries an unknown theme name.
const DefaultTheme = "gradient"

var themes = map[string]Theme{
	"gradient": {
		Name:       "Gradient Pulse",
		Background: "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
		CardBg:     "rgba(255, 255, 255, 0.1)",
		CardBorder: "rgba(255, 255, 255, 0.2)",
		Text:       "#ffffff",
		Subtext:    "rgba(255, 255, 255, 0.7)",
		Accent:     "#a78bfa",
		Glass:      true,
	},
	"ocean": {
		Name:       "Deep Ocean",
		Background: "linear-gradient(180deg, #0c1929 0%, #1a365d 100%)",
		CardBg:     "rgba(255, 255, 255, 0.05)",
		CardBorder: "rgba(255, 255, 255, 0.1)",
		Text:       "#ffffff",
		Subtext:    "#94a3b8",
		Accent:     "#38bdf8",
		Glass:      true,
	},
	"sunset": {
		Name:       "Sunset Glass",
		Background: "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
		CardBg:     "rgba(255, 255, 255, 0.15)",
		CardBorder: "rgba(255, 255, 255, 0.25)",
		Text:       "#ffffff",
		Subtext:    "rgba(255, 255, 255, 0.8)",
		Accent:     "#f97316",
		Glass:      true,
	},
	"forest": {
		Name:       "Emerald Mist",
		Background: "linear-gradient(135deg, #134e5e 0%, #71b280 100%)",
		CardBg:     "rgba(255, 255, 255, 0.1)",
		CardBorder: "rgba(255, 255, 255, 0.2)",
		Text:       "#ffffff",
		Subtext:    "#d1fae5",
		Accent:     "#6ee7b7",
		Glass:      true,
	},
	"dark": {
		Name:       "Onyx",
		Background: "#0f172a",
		CardBg:     "rgba(30, 41, 59, 0.5)",
		CardBorder: "rgba(51, 65, 85, 0.5)",
		Text:       "#f8fafc",
		Subtext:    "#94a3b8",
		Accent:     "#38bdf8",
	},
	"light": {
		Name:       "Snowfall",
		Background: "#f8fafc",
		CardBg:     "#ffffff",
		CardBorder: "#e2e8f0",
		Text:       "#0f172a",
		Subtext:    "#64748b",
		Accent:     "#2563eb",
	},
	"cyberpunk": {
		Name:       "Neon Night",
		Background: "#020617",
		CardBg:     "rgba(15, 23, 42, 0.8)",
		CardBorder: "#f472b6",
		Text:       "#fdf2f8",
		Subtext:    "#f472b6",
		Accent:     "#f472b6",
	},
	"midnight": {
		Name:       "Midnight Bloom",
		Background: "linear-gradient(135deg, #020617 0%, #1e1b4b 100%)",
		CardBg:     "rgba(255, 255, 255, 0.03)",
		CardBorder: "rgba(255, 255, 255, 0.1)",
		Text:       "#f8fafc",
		Subtext:    "#818cf8",
		Accent:     "#c084fc",
		Glass:      true,
	},
	"marshmallow": {
		Name:       "Pastel Dream",
		Background: "linear-gradient(135deg, #fdf2f8 0%, #fef2f2 100%)",
		CardBg:     "#ffffff",
		CardBorder: "#fbcfe8",
		Text:       "#831843",
		Subtext:    "#be185d",
		Accent:     "#db2777",
	},
	"emerald": {
		Name:       "Royal Emerald",
		Background: "linear-gradient(135deg, #064e3b 0%, #065f46 100%)",
		CardBg:     "rgba(255, 255, 255, 0.08)",
		CardBorder: "rgba(255, 255, 255, 0.15)",
		Text:       "#ecfdf5",
		Subtext:    "#a7f3d0",
		Accent:     "#34d399",
		Glass:      true,
	},
}

// customTheme mirrors Theme plus the marker field that distinguishes an
// inline JSON theme from a theme name that happens to start with "{".
type customTheme struct {
	Theme
	Custom bool `json:"custom"`
}

// Resolve returns the style for a theme name. Input starting with "{"
// is tried as an inline custom theme and used verbatim when it parses
// with custom:true; anything else unknown resolves to the default.
func Resolve(name string) Theme {
	if strings.HasPrefix(name, "{") {
		var c customTheme
		if err := json.Unmarshal([]byte(name), &c); err == nil && c.Custom {
			return c.Theme
		}
	}
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// Names returns all registered theme names.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	return names
}

// IsKnown reports whether name is a registered theme.
func IsKnown(name string) bool {
	_, ok := themes[name]
	return ok
}
