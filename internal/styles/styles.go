// Package styles provides shared lipgloss styles for the selection-form UI.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// Exported color aliases, rebuilt by SetTheme.
var (
	ColorPrimary    color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorSuccess    color.Color
	ColorError      color.Color
)

// Style exports, rebuilt by SetTheme.
var (
	TextForegroundStyle lipgloss.Style
	TextMutedStyle      lipgloss.Style
	TextPrimaryStyle    lipgloss.Style

	SelectItemCursorStyle   lipgloss.Style
	SelectItemDisabledStyle lipgloss.Style

	FormTitleStyle        lipgloss.Style
	FormTitleBlurredStyle lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormHelpStyle         lipgloss.Style
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorSuccess = p.Success
	ColorError = p.Error

	TextForegroundStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	TextMutedStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	TextPrimaryStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)

	SelectItemCursorStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	SelectItemDisabledStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Faint(true)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormTitleBlurredStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
