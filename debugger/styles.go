package debugger

import "github.com/charmbracelet/lipgloss"

type styles struct {
	cpu        lipgloss.Style
	mem        lipgloss.Style
	video      lipgloss.Style
	err        lipgloss.Style
	breakpoint lipgloss.Style
	watch      lipgloss.Style
	debugger   lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White

func newStyles() styles {
	return styles{
		cpu:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		mem:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(5)),
		video:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		err:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		breakpoint: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)),
		watch:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(0)).Background(lipgloss.ANSIColor(6)),
		debugger:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
	}
}
