package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console.
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console.
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the user.
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------
// This section contains the display functions for diagnostics -- these are
// called by the reporter to print errors and warnings to the screen.

// diagCodeStrings maps diagnostic codes to their banner labels.
var diagCodeStrings = map[int]string{
	CodeBadChar:         "Token",
	CodeUnterminated:    "Token",
	CodeUnexpectedToken: "Syntax",
	CodeUnexpectedEOF:   "Syntax",
	CodeUndeclared:      "Name",
	CodeRedeclared:      "Name",
	CodeTypeMismatch:    "Type",
	CodeArityOrRange:    "Range",
	CodeUnused:          "Usage",
	CodeUnsupported:     "Translation",
	CodeDepthExceeded:   "Translation",
}

func (d *Diagnostic) display() {
	d.displayBanner()
	fmt.Println(d.Message)

	if d.Span != nil {
		d.displayCodeSelection()
	} else {
		fmt.Println()
	}
}

// displayBanner displays the banner on top of all diagnostics.
func (d *Diagnostic) displayBanner() {
	fmt.Print("\n\n-- ")
	kindStr := diagCodeStrings[d.Code]
	kindLen := len(kindStr)
	if d.IsWarning {
		WarnStyleBG.Print(kindStr + " Warning")
		kindLen += 9
	} else {
		ErrorStyleBG.Print(kindStr + " Error")
		kindLen += 7
	}

	fmt.Print(" ")

	fileName := filepath.Base(d.Path)
	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}
	dashCount := bannerLen - len(fileName) - kindLen - 1
	if dashCount < 3 {
		dashCount = 3
	}

	fmt.Print(strings.Repeat("-", dashCount) + " ")
	InfoColorFG.Println(fileName)
}

// displayCodeSelection displays the erroneous source text (with line numbers)
// and underlines the spanned section.
func (d *Diagnostic) displayCodeSelection() {
	fmt.Println()

	f, err := os.Open(d.Path)
	if err != nil {
		// The file was readable moments ago; treat this as a bug.
		ReportICE("failed to reopen %s to display a diagnostic: %s", d.Path, err)
	}
	defer f.Close()

	// Collect the source lines the span covers.
	span := d.Span
	lines := make([]string, span.EndLine-span.StartLine+1)
	sc := bufio.NewScanner(f)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines[ln-span.StartLine] = strings.ReplaceAll(sc.Text(), "\t", "    ")
		}
	}

	// Calculate the leading whitespace to trim off every displayed line.
	minIndent := -1
	for _, line := range lines {
		lineIndent := 0
		for _, c := range line {
			if c == ' ' {
				lineIndent++
			} else {
				break
			}
		}

		if minIndent == -1 || lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	// Build the padding format string for line numbers.
	maxLineNumWidth := len(strconv.Itoa(span.EndLine+1)) + 1
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumWidth) + "v"

	// Print each line followed by its underlining carets.
	for i, line := range lines {
		InfoColorFG.Print(fmt.Sprintf(lineNumFmtStr, i+span.StartLine+1))
		fmt.Print("|  ")
		fmt.Println(line[minIndent:])

		fmt.Print(strings.Repeat(" ", maxLineNumWidth), "|  ")

		// Carets begin at the start column on the first line and at the left
		// margin on every continuation line.
		caretStart := 0
		if i == 0 {
			caretStart = span.StartCol - minIndent
		}

		// Carets run to the end column on the last line and to the end of the
		// line on every other line.
		caretEnd := len(line) - minIndent
		if i == len(lines)-1 {
			caretEnd = span.EndCol - minIndent
		}
		if caretEnd <= caretStart {
			caretEnd = caretStart + 1
		}

		fmt.Print(strings.Repeat(" ", caretStart))
		ErrorColorFG.Println(strings.Repeat("^", caretEnd-caretStart))
	}

	fmt.Println()
}

func displayFatalError(msg string) {
	fmt.Print("\n\n")
	ErrorStyleBG.Print("Fatal Error ")
	ErrorColorFG.Println(msg)
}

// -----------------------------------------------------------------------------

// DisplayHeader displays the translator version and the source being
// processed before a run begins.
func DisplayHeader(version, source string) {
	if rep.logLevel < LogLevelVerbose {
		return
	}

	fmt.Print("gclc ")
	InfoColorFG.Print("v" + version)
	fmt.Print(" -- source: ")
	InfoColorFG.Println(source)
}

// phaseSpinner stores the current phase spinner.
var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Translating")

// displayBeginPhase displays the beginning of a pipeline phase.
func displayBeginPhase(phase string) {
	currentPhase = phase
	phaseText := phase + "..." + strings.Repeat(" ", maxPhaseLength-len(phase)+2)
	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	phaseSpinner.Start(phaseText)
	phaseStartTime = time.Now()
}

// displayEndPhase displays the end of the current pipeline phase.
func displayEndPhase(success bool) {
	if phaseSpinner != nil {
		if success {
			phaseSpinner.Success(
				currentPhase+strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2),
				fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()),
			)
		} else {
			phaseSpinner.Fail(currentPhase + strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2))
		}

		phaseSpinner = nil
	}
}

// displayFinished displays the closing line of a run.
func displayFinished(success bool, errorCount, warningCount int) {
	fmt.Print("\n")

	if success {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")

	switch errorCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Print(" errors, ")
	case 1:
		ErrorColorFG.Print(1)
		fmt.Print(" error, ")
	default:
		ErrorColorFG.Print(errorCount)
		fmt.Print(" errors, ")
	}

	switch warningCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Println(" warnings)")
	case 1:
		WarnColorFG.Print(1)
		fmt.Println(" warning)")
	default:
		WarnColorFG.Print(warningCount)
		fmt.Println(" warnings)")
	}
}
