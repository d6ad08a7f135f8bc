package main

import (
	"fmt"
	"os"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

func colorize(color, text string) string {
	if noColor {
		return text
	}
	return color + text + colorReset
}

func printGlyph(color, glyph, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, colorize(color, glyph+" "+msg))
}

func printSuccess(format string, args ...any) { printGlyph(colorGreen, "✓", format, args...) }
func printError(format string, args ...any)   { printGlyph(colorRed, "✗", format, args...) }
func printWarning(format string, args ...any) { printGlyph(colorYellow, "⚠", format, args...) }

// printStatus renders one aligned row of `status` output. The label
// column is sized for the longest label the command prints ("Data dir").
func printStatus(label string, format string, args ...any) {
	val := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "  %s %s\n", colorize(colorBold, fmt.Sprintf("%-9s", label+":")), val)
}
