package tui

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsInteractive reports whether stdout is attached to a terminal. Banners and
// styled output are suppressed when piping into files or other tools.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PrintBanner outputs an ASCII art banner for Espalier.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Green gradient, dark to light
	s1 := termenv.String(`  ___  ___ _ __   __ _| (_) ___ _ __ `).Foreground(p.Color("#15803d"))
	s2 := termenv.String(` / _ \/ __| '_ \ / _` + "`" + ` | | |/ _ \ '__|`).Foreground(p.Color("#16a34a"))
	s3 := termenv.String(`|  __/\__ \ |_) | (_| | | |  __/ |   `).Foreground(p.Color("#22c55e"))
	s4 := termenv.String(` \___||___/ .__/ \__,_|_|_|\___|_|   `).Foreground(p.Color("#4ade80"))
	s5 := termenv.String(`          |_|                        `).Foreground(p.Color("#86efac"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
