package color

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

const (
	Reset = "\033[0m"

	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"

	BrightRed = "\033[91m"
)

var colorEnabled = true

func init() {
	colorEnabled = Detect(os.Stdout)
}

// Detect reports whether w is a terminal that accepts color. Pipes, files
// and buffers never do, and NO_COLOR turns color off everywhere.
func Detect(w io.Writer) bool {
	if termenv.EnvNoColor() {
		return false
	}
	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}

func EnableColor(enable bool) {
	colorEnabled = enable
}

func IsColorEnabled() bool {
	return colorEnabled
}

func Colorize(color, text string) string {
	if !colorEnabled {
		return text
	}
	return color + text + Reset
}

func BrightRedText(text string) string {
	return Colorize(BrightRed, text)
}

func GreenText(text string) string {
	return Colorize(Green, text)
}

func YellowText(text string) string {
	return Colorize(Yellow, text)
}

func CyanText(text string) string {
	return Colorize(Cyan, text)
}

func GrayText(text string) string {
	return Colorize(Gray, text)
}

// Error formats the single diagnostic line printed before exiting
func Error(message string) string {
	return BrightRedText("Error: ") + message
}

// Assignment renders a name = value line for symbol dumps
func Assignment(name, value string) string {
	return fmt.Sprintf("%s = %s", CyanText(name), YellowText(value))
}
