package report

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

var (
	successColorFG = pterm.FgLightGreen
	successStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnColorFG    = pterm.FgYellow
	warnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errorColorFG   = pterm.FgRed
	errorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
)

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	errorStyleBG.Print("Internal Error")
	errorColorFG.Println(" " + message)
	fmt.Print("This error was not supposed to happen: please open an issue on the Ember issue tracker\n\n")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	errorStyleBG.Print("Fatal Error")
	errorColorFG.Println(" " + message)
}

// displayInfoMessage displays a tagged informational message.
func displayInfoMessage(tag, message string) {
	successStyleBG.Print(tag)
	successColorFG.Println(" " + message)
}

// displayCompileMessage displays a compilation error or warning.  The label is
// the string to prefix the message with: eg. if we want to display an error,
// the label is "error".
func displayCompileMessage(label, path string, span *TextSpan, message string) {
	style, color := errorStyleBG, errorColorFG
	if label == "warning" {
		style, color = warnStyleBG, warnColorFG
	}

	if span == nil {
		style.Print(label)
		color.Printf(" %s: %s\n", path, message)
	} else {
		style.Print(label)
		color.Printf(" %s:%d:%d: %s\n", path, span.StartLine+1, span.StartCol+1, message)
		displaySourceText(path, span)
	}

	fmt.Println()
}

// displayStdError displays a standard Go error.
func displayStdError(path string, err error) {
	errorStyleBG.Print("error")
	errorColorFG.Printf(" %s: %s\n", path, err)
}

// -----------------------------------------------------------------------------

// displaySourceText displays a segment of source text defined by a text span.
func displaySourceText(path string, span *TextSpan) {
	// Open the file so we can read the desired source text.  Failing to read
	// the source back is not itself an error: the message was already printed.
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	// Collect all the source lines containing the given source text.
	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	if sc.Err() != nil || len(lines) == 0 {
		return
	}

	// Calculate the minimum line indentation so the excerpt can be printed
	// flush against the line-number gutter.
	minIndent := math.MaxInt
	for _, line := range lines {
		lineIndent := 0
		for _, c := range line {
			if c == ' ' {
				lineIndent++
			} else {
				break
			}
		}

		if lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	for i, line := range lines {
		fmt.Printf("%4d | %s\n", span.StartLine+i+1, line[minIndent:])
	}

	// Underline the offending columns on single-line spans.  Spans produced at
	// the end of the input can be empty; those get no underline.
	if span.StartLine == span.EndLine && span.EndCol >= span.StartCol && span.StartCol >= minIndent {
		carets := strings.Repeat("^", span.EndCol-span.StartCol+1)
		fmt.Printf("     | %s%s\n", strings.Repeat(" ", span.StartCol-minIndent), carets)
	}
}
