// Package ui renders CLI output: styled status messages, tables, and
// interactive prompts for missing inputs.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
)

// Success prints a green status line.
func Success(msg string) {
	fmt.Println(successStyle.Render(msg))
}

// Warning prints a yellow status line.
func Warning(msg string) {
	fmt.Println(warningStyle.Render("Warning: " + msg))
}

// Error prints a red status line.
func Error(msg string) {
	fmt.Println(errorStyle.Render(msg))
}

// Dim prints a muted line for secondary information.
func Dim(msg string) {
	fmt.Println(dimStyle.Render(msg))
}

// Field prints a bold label followed by its value.
func Field(label, value string) {
	fmt.Printf("%s %s\n", headingStyle.Render(label+":"), value)
}
