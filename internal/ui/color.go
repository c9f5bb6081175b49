// Package ui holds the terminal colours and tables shared by the commands.
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light variants, which read better on dark terminals.
var DarkTheme bool

type colorPair struct {
	dark, light pterm.Color
}

var (
	green   = colorPair{pterm.FgLightGreen, pterm.FgGreen}
	yellow  = colorPair{pterm.FgLightYellow, pterm.FgYellow}
	cyan    = colorPair{pterm.FgLightCyan, pterm.FgCyan}
	red     = colorPair{pterm.FgLightRed, pterm.FgRed}
	magenta = colorPair{pterm.FgLightMagenta, pterm.FgMagenta}
	bright  = colorPair{pterm.FgLightWhite, pterm.FgBlack}
)

func (p colorPair) sprint(a any) string {
	if DarkTheme {
		return p.dark.Sprint(a)
	}

	return p.light.Sprint(a)
}

func Green(a any) string {
	return green.sprint(a)
}

func Yellow(a any) string {
	return yellow.sprint(a)
}

func Cyan(a any) string {
	return cyan.sprint(a)
}

func Red(a any) string {
	return red.sprint(a)
}

func Magenta(a any) string {
	return magenta.sprint(a)
}

func Highlight(a any) string {
	return bright.sprint(a)
}

// State colours a timer state name: running is green, paused is yellow and
// anything else is dimmed.
func State(s string) string {
	switch s {
	case "running":
		return Green(s)
	case "paused":
		return Yellow(s)
	default:
		return pterm.Gray(s)
	}
}
