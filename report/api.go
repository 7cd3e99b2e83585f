package report

import (
	"fmt"
	"os"
)

// ReportDiagnostic records a diagnostic: errors are displayed immediately,
// warnings are held and displayed at the end of the run.
func ReportDiagnostic(d *Diagnostic) {
	rep.m.Lock()
	defer rep.m.Unlock()

	d.Kind = KindOfCode(d.Code)
	rep.diags = append(rep.diags, d)

	if d.IsWarning {
		rep.warnings = append(rep.warnings, d)
		return
	}

	rep.errorCount++
	if rep.logLevel > LogLevelSilent {
		displayEndPhase(false)
		d.display()
	}
}

// ReportConfigError reports an error related to project or compiler
// configuration.  Config errors are outside the diagnostic taxonomy: they
// carry no source position and are displayed in plain style.
func ReportConfigError(kind, message string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++
	if rep.logLevel > LogLevelSilent {
		displayEndPhase(false)
		PrintErrorMessage(kind+" Error", fmt.Errorf("%s", message))
	}
}

// ReportStdError reports a non-fatal, standard Go error (eg. a file that
// could not be read).
func ReportStdError(err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++
	if rep.logLevel > LogLevelSilent {
		displayEndPhase(false)
		PrintErrorMessage("Error", err)
	}
}

// ReportFatal reports a fatal error and exits.  Fatal errors are expected
// errors that make continuing impossible: unreadable install state, missing
// requisite files, and the like.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		displayFatalError(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportICE reports an internal compiler error: a bug in the translator
// itself, never erroneous input.  Always displayed regardless of log level.
func ReportICE(message string, args ...interface{}) {
	displayFatalError("internal error: " + fmt.Sprintf(message, args...))
	os.Exit(-1)
}

// -----------------------------------------------------------------------------

// CatchErrors catches local errors raised through a `panic` during a stage of
// the pipeline.  In effect, this handler determines where errors
// "unrecoverable" within a given stage should stop bubbling.  The path is the
// source file the stage was processing.
// NB: This function must ALWAYS be deferred.
func CatchErrors(path string) {
	if x := recover(); x != nil {
		switch err := x.(type) {
		case *Diagnostic:
			ReportDiagnostic(err)
		case *LocalError:
			ReportDiagnostic(&Diagnostic{
				Code:    err.Code,
				Message: err.Message,
				Span:    err.Span,
				Path:    path,
			})
		case error:
			ReportStdError(err)
		default:
			ReportFatal("%s", x)
		}
	}
}

// -----------------------------------------------------------------------------

// BeginPhase displays the start of a named pipeline phase.
func BeginPhase(phase string) {
	if rep.logLevel == LogLevelVerbose {
		displayBeginPhase(phase)
	}
}

// EndPhase displays the end of the current pipeline phase.
func EndPhase(success bool) {
	if rep.logLevel == LogLevelVerbose {
		displayEndPhase(success)
	}
}

// Finished displays the held warnings followed by the closing line with the
// final error and warning counts.
func Finished(success bool) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel >= LogLevelWarning {
		for _, w := range rep.warnings {
			w.display()
		}
	}

	if rep.logLevel > LogLevelSilent {
		displayFinished(success, rep.errorCount, len(rep.warnings))
	}
}
