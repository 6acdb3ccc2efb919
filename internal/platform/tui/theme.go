package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-merge/internal/canvas"
)

// TileColor returns the foreground color for a tile value.
// Values past the table share the last color.
func TileColor(value int) canvas.Color {
	switch value {
	case 0:
		return canvas.ColorGray
	case 2:
		return canvas.ColorWhite
	case 4:
		return canvas.ColorBrightWhite
	case 8:
		return canvas.ColorOrange
	case 16:
		return canvas.ColorBrightRed
	case 32:
		return canvas.ColorRed
	case 64:
		return canvas.ColorMagenta
	case 128:
		return canvas.ColorYellow
	case 256:
		return canvas.ColorBrightYellow
	case 512:
		return canvas.ColorGreen
	case 1024:
		return canvas.ColorBrightGreen
	case 2048:
		return canvas.ColorBrightCyan
	default:
		return canvas.ColorBrightMagenta
	}
}

// colorStyles maps canvas.Color to lipgloss styles.
var colorStyles = map[canvas.Color]lipgloss.Style{
	canvas.ColorDefault:       lipgloss.NewStyle(),
	canvas.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	canvas.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	canvas.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	canvas.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	canvas.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	canvas.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	canvas.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	canvas.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	canvas.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	canvas.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	canvas.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	canvas.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	canvas.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	canvas.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	canvas.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	canvas.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
