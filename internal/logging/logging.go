package logging

import (
	"fmt"
	"github.com/olekukonko/tablewriter"
	"io"
	"os"
	"strings"
)

const (
	ColorBlue   = "\033[1;34m"
	ColorGreen  = "\033[1;36m"
	ColorYellow = "\033[1;33m"
	ColorRed    = "\033[1;31m"
	ColorReset  = "\033[0m"

	ColorSuccess  = ColorGreen
	ColorWarning  = ColorYellow
	ColorProgress = ColorBlue
	ColorFailure  = ColorRed
)

// Out receives every user-facing line. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

// NoColor disables ANSI colors.
var NoColor bool

func Colorize(color, text string) string {
	if NoColor {
		return text
	}
	return strings.Join([]string{color, text, ColorReset}, "")
}

// UserInfo prints a plain message
func UserInfo(msg string, format ...interface{}) {
	fmt.Fprintln(Out, fmt.Sprintf(msg, format...))
}

// UserSuccess prints a colorized success message
func UserSuccess(msg string, format ...interface{}) {
	msg = fmt.Sprintf(msg, format...)
	fmt.Fprintln(Out, Colorize(ColorSuccess, msg))
}

// UserWarning prints a colorized warning message
func UserWarning(msg string, format ...interface{}) {
	msg = fmt.Sprintf("WARNING: "+msg, format...)
	fmt.Fprintln(Out, Colorize(ColorWarning, msg))
}

// UserProgress prints a colorized progress message
func UserProgress(msg string, format ...interface{}) {
	msg = fmt.Sprintf(msg, format...)
	fmt.Fprintln(Out, Colorize(ColorProgress, msg))
}

// UserFailure prints a colorized failure message
func UserFailure(msg string, format ...interface{}) {
	msg = fmt.Sprintf("ERROR: "+msg, format...)
	fmt.Fprintln(Out, Colorize(ColorFailure, msg))
}

// UserTitle prints a section title underlined with '='.
func UserTitle(title string) {
	UserProgress(title)
	fmt.Fprintln(Out, strings.Repeat("=", 50))
}

func RenderTable(fields []string, data [][]string) {
	table := tablewriter.NewWriter(Out)
	table.SetHeader(fields)
	table.SetRowLine(true)
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()
}
