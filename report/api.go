package report

import (
	"fmt"
	"os"
)

// ReportICE reports an internal compiler error.  These are errors that
// specifically result from a bug or unexpected condition occurring within the
// compiler: they are not intended to ever happen.  These errors are always
// displayed regardless of log level.
func ReportICE(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayICE(fmt.Sprintf(message, args...))

	os.Exit(-1)
}

// ReportFatal reports a fatal error.  These are errors that should cause all
// compilation to stop immediately.  However, they are expected errors that
// generally result from invalid configuration of some form: a missing input
// file, a malformed build profile, etc.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportCompileError reports a compilation error: ie. erroneous input code.
// The path is the path to the erroneous source file.  The span may be nil in
// which case no position information will be printed.
func ReportCompileError(path string, span *TextSpan, message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true

		displayCompileMessage("error", path, span, fmt.Sprintf(message, args...))
	}
}

// ReportCompileWarning reports a compilation warning.  The arguments are of
// the same form as those to ReportCompileError.
func ReportCompileWarning(path string, span *TextSpan, message string, args ...interface{}) {
	if rep.logLevel > LogLevelError {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayCompileMessage("warning", path, span, fmt.Sprintf(message, args...))
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(path string, err error) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		rep.isErr = true

		displayStdError(path, err)
	}
}

// DisplayInfoMessage displays a tagged informational message to the user.
// These messages are only displayed at the verbose log level.
func DisplayInfoMessage(tag, message string) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayInfoMessage(tag, message)
	}
}

// -----------------------------------------------------------------------------

// AnyErrors returns whether or not any errors were detected.
func AnyErrors() bool {
	return rep.isErr
}

// -----------------------------------------------------------------------------

// CatchErrors catches any errors thrown by a `panic` during a stage of
// compilation.  In effect, this handler determines when any errors
// "unrecoverable" within a given subsection of the compiler should stop
// bubbling.
// NB: This function must ALWAYS be deferred.
func CatchErrors(path string) {
	if x := recover(); x != nil {
		if cerr, ok := x.(*LocalCompileError); ok {
			ReportCompileError(path, cerr.Span, cerr.Message)
		} else if serr, ok := x.(error); ok {
			ReportStdError(path, serr)
		} else {
			ReportFatal("%s", x)
		}
	}
}
