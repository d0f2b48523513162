package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Strobe.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Indigo to rose gradient, one color per line.
	s1 := termenv.String("      _             _          ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String("  ___| |_ _ __ ___ | |__   ___ ").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(" / __| __| '__/ _ \\| '_ \\ / _ \\").Foreground(p.Color("#c084fc"))
	s4 := termenv.String(" \\__ \\ |_| | | (_) | |_) |  __/").Foreground(p.Color("#e879f9"))
	s5 := termenv.String(" |___/\\__|_|  \\___/|_.__/ \\___|").Foreground(p.Color("#fb7185"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
