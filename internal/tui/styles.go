package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	selectedStyle   = lipgloss.NewStyle().Reverse(true)
	tabStyle        = lipgloss.NewStyle().Padding(0, 1)
	activeTabStyle  = tabStyle.Bold(true).Underline(true)
	pendingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	badgeStyle        = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	badgeOfflineStyle = badgeStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("8"))
	badgeSyncingStyle = badgeStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	badgeOnlineStyle  = badgeStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))
	badgeErrorStyle   = badgeStyle.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9"))

	toastInfoStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(0, 1)
	toastSuccessStyle = toastInfoStyle.BorderForeground(lipgloss.Color("10"))
	toastErrorStyle   = toastInfoStyle.BorderForeground(lipgloss.Color("9"))
)
