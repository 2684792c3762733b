package ui

import "github.com/charmbracelet/lipgloss"

// Brand green for the list header, muted greys for chrome.
var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1DB954")).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4040")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).Italic(true)
)
