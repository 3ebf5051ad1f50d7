package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiCyan  = "\x1b[36m"
)

func colorText(text, color string, colorize bool) string {
	if !colorize || color == "" {
		return text
	}
	return color + text + ansiReset
}

// renderBanner frames title between rules one character wider than the
// title, followed by an info line.
func renderBanner(title, info string, colorize bool) []string {
	title = strings.TrimSpace(title)
	rule := strings.Repeat("-", len(title)+1)
	return []string{
		"",
		colorText(rule, ansiGreen, colorize),
		colorText(title, ansiGreen, colorize),
		colorText(rule, ansiGreen, colorize),
		colorText(info, ansiCyan, colorize),
	}
}

func printBanner(out io.Writer, title, info string, colorize bool) {
	for _, line := range renderBanner(title, info, colorize) {
		fmt.Fprintln(out, line)
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
