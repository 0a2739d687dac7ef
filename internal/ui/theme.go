// Package ui provides terminal output helpers: headless detection,
// progress reporting and interactive confirmation. Every component has a
// plain-text fallback for non-TTY runs.
package ui

// Colors holds the hex color pair used by interactive components.
type Colors struct {
	Primary   string
	Secondary string
}

// Theme configures terminal rendering.
type Theme struct {
	Colors  Colors
	NoColor bool
}

// DefaultTheme returns the standard Agent OS terminal theme.
func DefaultTheme() *Theme {
	return &Theme{
		Colors: Colors{
			Primary:   "#DA7756",
			Secondary: "#10B981",
		},
	}
}
