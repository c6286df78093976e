package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vadiminshakov/late/internal/view"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	accent    = lipgloss.AdaptiveColor{Light: "#00A896", Dark: "#00FFCC"}
	danger    = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF4444"}
	warning   = lipgloss.AdaptiveColor{Light: "#C77D00", Dark: "#FFB347"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(0, 2).
			Bold(true)

	taglineStyle = lipgloss.NewStyle().Foreground(subtle)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(0, 1).
			Width(22)

	cardTitleStyle = lipgloss.NewStyle().Foreground(subtle).Bold(true)

	labelStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(subtle)

	trackStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false).
			BorderForeground(accent)

	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(accent).
			Padding(0, 1)

	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(accent).
			Padding(0, 2).
			Bold(true)
)

// toneStyle colours a value by its tone.
func toneStyle(tone view.Tone) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch tone {
	case view.ToneUp, view.ToneSuccess:
		return s.Foreground(special)
	case view.ToneDown, view.ToneFailure:
		return s.Foreground(danger)
	case view.ToneWarning:
		return s.Foreground(warning)
	default:
		return s
	}
}

// buttonToneStyle background of the copy button by its tone.
func buttonToneStyle(tone view.Tone) lipgloss.Style {
	switch tone {
	case view.ToneSuccess:
		return buttonStyle.Background(special).Foreground(lipgloss.Color("0"))
	case view.ToneFailure:
		return buttonStyle.Background(danger)
	default:
		return buttonStyle
	}
}
