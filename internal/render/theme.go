package render

import (
	"fmt"
	"strings"
)

// Theme is a named background/foreground color pair for the document shell.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme parses a theme name, case-insensitively. The empty string
// selects the default (dark).
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(s) {
	case "light":
		return Light, nil
	case "dark", "":
		return Dark, nil
	}
	return "", fmt.Errorf("invalid theme %q (valid: light, dark)", s)
}

// Background returns the page background color.
func (t Theme) Background() string {
	if t == Light {
		return "#ffffff"
	}
	return "#1e1e1e"
}

// Foreground returns the default text color.
func (t Theme) Foreground() string {
	if t == Light {
		return "#24292e"
	}
	return "#d4d4d4"
}
