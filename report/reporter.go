package report

import "sync"

// Reporter stores and logs the output of a single pipeline run.  The reporter
// respects the set log level and is synchronized: its methods can be safely
// called while a watch loop is rebuilding.
type Reporter struct {
	// The mutex used to synchronize reporting calls.
	m *sync.Mutex

	// The selected log level.  This must be one of the enumerated log levels
	// below.
	logLevel int

	// diags is the ordered list of all diagnostics reported so far.
	diags []*Diagnostic

	// warnings is the list of warnings to be displayed at the end of a run.
	warnings []*Diagnostic

	errorCount int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors and the closing success/fail line
	LogLevelWarning        // errors, warnings, and the closing line
	LogLevelVerbose        // errors, warnings, phase progress, closing line (default)
)

// rep is the global reporter instance.
var rep *Reporter

// Init initializes the global reporter from a log level name.  Invalid names
// default to verbose.
func Init(logLevelName string) {
	var logLevel int
	switch logLevelName {
	case "silent":
		logLevel = LogLevelSilent
	case "error":
		logLevel = LogLevelError
	case "warning":
		logLevel = LogLevelWarning
	default:
		logLevel = LogLevelVerbose
	}

	rep = &Reporter{m: &sync.Mutex{}, logLevel: logLevel}
}

// Reset clears all accumulated diagnostics and counts so the reporter can be
// reused for a fresh run.  The log level is preserved.
func Reset() {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.diags = nil
	rep.warnings = nil
	rep.errorCount = 0
}

// LogLevel returns the current log level.
func LogLevel() int {
	return rep.logLevel
}

// -----------------------------------------------------------------------------

// Diagnostics returns all diagnostics reported so far, in report order.
func Diagnostics() []*Diagnostic {
	rep.m.Lock()
	defer rep.m.Unlock()

	diags := make([]*Diagnostic, len(rep.diags))
	copy(diags, rep.diags)
	return diags
}

// ErrorCount returns the number of errors reported so far.
func ErrorCount() int {
	return rep.errorCount
}

// AnyErrors returns whether or not any errors were reported.
func AnyErrors() bool {
	return rep.errorCount > 0
}

// ShouldProceed indicates whether the next pipeline stage should run.
func ShouldProceed() bool {
	return rep.errorCount == 0
}
