package theme

// Centralized theming and styling for the labeling UI. Provides
// palette constants, RGBA-to-Tk color conversion and InitStyles to
// activate a base theme and configure semantic widget styles.

import (
	"fmt"

	"github.com/JimmyBainbridge/Neptune-moons/domain/selection"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // panels, cards
	ColorBorder    = "#d0d7de"
	ColorPrimary   = "#2563eb" // buttons, accents
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"

	// Canvas colors
	ColorPlotBg = "#14171c" // dark field behind the scatter
	ColorTrail  = "#f2f2f2" // in-progress lasso trail
)

// DefaultPoint is the render color of points before any label is
// assigned, matching the canvas default.
var DefaultPoint = selection.RGBA{R: 0.55, G: 0.55, B: 0.55, A: 1}

// StylePrimaryButton marks the button that ends the session.
const StylePrimaryButton = "primary.TButton"

// Hex converts a normalized RGBA into a Tk color string. Alpha is
// discarded; Tk widget colors are opaque.
func Hex(c selection.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return int(v*255 + 0.5)
}

// InitStyles applies the base theme and semantic widget styles.
func InitStyles() {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(ColorBg))

	StyleConfigure(StylePrimaryButton,
		Background(ColorPrimary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
}
