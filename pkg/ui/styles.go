package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// palette holds the adaptive terminal colors.
// Dark backgrounds get the bright ANSI variants.
type palette struct {
	ok      lipgloss.AdaptiveColor
	fail    lipgloss.AdaptiveColor
	brand   lipgloss.AdaptiveColor
	info    lipgloss.AdaptiveColor
	muted   lipgloss.AdaptiveColor
	warn    lipgloss.AdaptiveColor
	key     lipgloss.AdaptiveColor
	photo   lipgloss.AdaptiveColor
	rowText lipgloss.AdaptiveColor
}

var colors = palette{
	ok:      lipgloss.AdaptiveColor{Light: "2", Dark: "10"},
	fail:    lipgloss.AdaptiveColor{Light: "1", Dark: "9"},
	brand:   lipgloss.AdaptiveColor{Light: "5", Dark: "13"},
	info:    lipgloss.AdaptiveColor{Light: "6", Dark: "14"},
	muted:   lipgloss.AdaptiveColor{Light: "8", Dark: "8"},
	warn:    lipgloss.AdaptiveColor{Light: "3", Dark: "11"},
	key:     lipgloss.AdaptiveColor{Light: "4", Dark: "12"},
	photo:   lipgloss.AdaptiveColor{Light: "208", Dark: "214"}, // amber, like a date imprint
	rowText: lipgloss.AdaptiveColor{Light: "0", Dark: "7"},
}

var (
	StyleTitle  lipgloss.Style
	StyleMuted  lipgloss.Style
	StyleAccent lipgloss.Style

	StyleTableHeader lipgloss.Style
	StyleTableRow    lipgloss.Style
	StyleTableRowAlt lipgloss.Style
	StyleTableBorder lipgloss.Style

	styleOK    lipgloss.Style
	styleFail  lipgloss.Style
	styleBrand lipgloss.Style
	styleInfo  lipgloss.Style
	styleWarn  lipgloss.Style
	stylePhoto lipgloss.Style
	styleLabel lipgloss.Style
)

// Message icons
const (
	IconSuccess = "✔"
	IconError   = "✘"
	IconRocket  = "🚀"
	IconInfo    = "ℹ"
	IconWarning = "⚠"
	IconCamera  = "📷"
	IconPrompt  = "›"
)

func init() {
	SetTheme("auto")
}

// SetTheme applies "light", "dark" or "auto" (detect) and rebuilds the styles
func SetTheme(theme string) {
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}

	fg := func(c lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	StyleTitle = fg(colors.brand).Bold(true).Underline(true)
	StyleMuted = fg(colors.muted)
	StyleAccent = fg(colors.key)

	StyleTableHeader = fg(colors.brand).Bold(true)
	StyleTableRow = fg(colors.rowText)
	StyleTableRowAlt = fg(colors.rowText).Faint(true)
	StyleTableBorder = fg(colors.muted)

	styleOK = fg(colors.ok).Bold(true)
	styleFail = fg(colors.fail).Bold(true)
	styleBrand = fg(colors.brand).Bold(true)
	styleInfo = fg(colors.info)
	styleWarn = fg(colors.warn).Bold(true)
	stylePhoto = fg(colors.photo)
	styleLabel = lipgloss.NewStyle().Bold(true)
}

func withIcon(style lipgloss.Style, icon, msg string) string {
	return style.Render(icon + " " + msg)
}

func FormatSuccess(msg string) string { return withIcon(styleOK, IconSuccess, msg) }
func FormatError(msg string) string { return withIcon(styleFail, IconError, msg) }
func FormatInfo(msg string) string { return withIcon(styleInfo, IconInfo, msg) }
func FormatWarning(msg string) string { return withIcon(styleWarn, IconWarning, msg) }
func FormatRocket(msg string) string { return withIcon(styleBrand, IconRocket, msg) }

// FormatCamera renders a line about the photo itself, such as its capture date
func FormatCamera(msg string) string { return withIcon(stylePhoto, IconCamera, msg) }

// FormatPrompt renders "› label (default): ", leaving out empty defaults
func FormatPrompt(label, def string) string {
	prompt := styleBrand.Render(IconPrompt+" ") + styleLabel.Render(label)
	if def != "" {
		prompt += " " + StyleMuted.Render("("+def+")")
	}
	return prompt + ": "
}

// FormatCheck renders one doctor result; a non-nil err adds an indented reason
func FormatCheck(name string, err error) string {
	if err == nil {
		return styleOK.Render(IconSuccess) + " " + name
	}
	return styleFail.Render(IconError) + " " + name + "\n    " + StyleMuted.Render(err.Error())
}

func FormatTitle(title string) string { return StyleTitle.Render(title) }
func FormatMuted(text string) string { return StyleMuted.Render(text) }
