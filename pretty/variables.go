package pretty

import (
	"os"

	"github.com/joshyorko/sbomlic/common"
	"github.com/mattn/go-isatty"
)

var (
	Colorless   bool
	Iconic      bool
	Disabled    bool
	Interactive bool
	White       string
	Grey        string
	Black       string
	Red         string
	Green       string
	Blue        string
	Yellow      string
	Magenta     string
	Cyan        string
	Reset       string
	Sparkles    string
	Home        string
	Clear       string
	Bold        string
	Faint       string
	Italic      string
	Underline   string
)

func csi(value string) string {
	return "\033[" + value
}

func Setup() {
	stdin := isatty.IsTerminal(os.Stdin.Fd())
	stdout := isatty.IsTerminal(os.Stdout.Fd())
	stderr := isatty.IsTerminal(os.Stderr.Fd())

	if os.Getenv("NO_COLOR") != "" {
		Colorless = true
	}

	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		Colorless = true
	}

	if common.NoColors {
		Colorless = true
	}

	// Interactive requires all three to be TTY for safe prompt handling.
	// Visual output only needs stdout, so piped stdin still gets colors.
	Interactive = stdin && stdout && stderr
	visualOutput := stdout && !Colorless

	Disabled = !visualOutput
	Iconic = Interactive && !Colorless

	common.Trace("Interactive mode enabled: %v; colors enabled: %v; icons enabled: %v", Interactive, !Disabled, Iconic)
	if visualOutput && !Disabled {
		White = csi("97m")
		Grey = csi("90m")
		Black = csi("30m")
		Red = csi("91m")
		Green = csi("92m")
		Yellow = csi("93m")
		Blue = csi("94m")
		Magenta = csi("95m")
		Cyan = csi("96m")
		Reset = csi("0m")
		Home = csi("1;1H")
		Clear = csi("0J")
		Bold = csi("1m")
		Faint = csi("2m")
		Italic = csi("3m")
		Underline = csi("4m")
	}
	if Iconic {
		Sparkles = "✨ "
	}
}

// Color Conventions:
// - Green: Success messages
// - Yellow: Warnings
// - Red: Errors
// - Bold: Section headers

// Success outputs a success message in Green with a newline.
func Success(message string) {
	common.Stdout("%s%s%s\n", Green, message, Reset)
}

// Error outputs an error message in Red with a newline.
func Error(message string) {
	common.Stdout("%s%s%s\n", Red, message, Reset)
}

// Header outputs a header text in Bold with a newline.
func Header(text string) {
	common.Stdout("%s%s%s\n", Bold, text, Reset)
}
