package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/graphy/network"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginTop(1)

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1)

	gridBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFFF00")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	roleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	cutOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	plainStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// render draws net as its grid: one glyph per vertex and the pipes between
// horizontally and vertically adjacent cells. Red pipes are doubled.
func render(net *network.Network) string {
	side := net.Side()
	vertices := net.Vertices()
	var b strings.Builder
	for y := 0; y < side; y++ {
		// vertex row
		for x := 0; x < side; x++ {
			v := y*side + x
			b.WriteString(glyph(vertices[v]))
			if x+1 < side {
				b.WriteString(link(net, v, v+1, "───", "═══", "   "))
			}
		}
		if y+1 == side {
			break
		}
		b.WriteByte('\n')
		// vertical links
		for x := 0; x < side; x++ {
			v := y*side + x
			b.WriteString(link(net, v, v+side, "│", "║", " "))
			if x+1 < side {
				b.WriteString("   ")
			}
		}
		b.WriteByte('\n')
	}

	return gridBoxStyle.Render(b.String())
}

func glyph(vx network.Vertex) string {
	label, style := "o", plainStyle
	switch vx.Role {
	case network.RoleOrigin:
		label, style = "O", roleStyle
	case network.RoleDestination:
		label, style = "D", roleStyle
	case network.RoleHeadquarters:
		label, style = "H", roleStyle
	case network.RoleSecure:
		label, style = "S", roleStyle
	default:
		if vx.Endurance > 0 {
			label = strconv.Itoa(vx.Endurance)
		}
	}
	switch {
	case vx.Removed:
		label, style = "X", cutOffStyle
	case !vx.Supplied:
		style = cutOffStyle.Underline(true)
	}

	return style.Render(label)
}

func link(net *network.Network, u, v int, blue, red, none string) string {
	e, err := net.EdgeBetween(u, v)
	if err != nil {
		return none
	}
	if e.Color == network.ColorRed {
		return redStyle.Render(red)
	}

	return plainStyle.Render(blue)
}
