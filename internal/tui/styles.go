package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	paneStyle     = lipgloss.NewStyle().Width(26).MarginRight(2)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	activeTab     = lipgloss.NewStyle().Bold(true).Underline(true)
	inactiveTab   = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	excusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	absenceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	unreadStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
)

// gradeColor picks the color for a single grade token by its leading
// digit. Bulgarian grades run from 2 (fail) to 6 (excellent).
func gradeColor(grade string) lipgloss.Color {
	switch {
	case strings.HasPrefix(grade, "6"):
		return lipgloss.Color("2")
	case strings.HasPrefix(grade, "5"):
		return lipgloss.Color("6")
	case strings.HasPrefix(grade, "4"):
		return lipgloss.Color("3")
	case strings.HasPrefix(grade, "3"):
		return lipgloss.Color("5")
	case strings.HasPrefix(grade, "2"):
		return lipgloss.Color("1")
	}
	return lipgloss.Color("7")
}

// averageColor banding mirrors gradeColor for fractional averages.
func averageColor(avg float64) lipgloss.Color {
	switch {
	case avg >= 5.5:
		return lipgloss.Color("2")
	case avg >= 4.5:
		return lipgloss.Color("6")
	case avg >= 3.5:
		return lipgloss.Color("3")
	case avg >= 2.5:
		return lipgloss.Color("5")
	}
	return lipgloss.Color("1")
}
