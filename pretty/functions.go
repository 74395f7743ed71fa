package pretty

import (
	"fmt"

	"github.com/joshyorko/sbomlic/common"
)

// Guard watches that given condition holds. When it does not, the
// process exits with given exit code after logging the message.
func Guard(condition bool, exitcode int, form string, details ...interface{}) {
	if !condition {
		Exit(exitcode, form, details...)
	}
}

// Exit ends the process with given exit code and formatted message.
// Panics through common.ExitCode so that deferred cleanup still runs
// before the actual exit at the process boundary.
func Exit(code int, form string, details ...interface{}) {
	span := Red
	if code == 0 {
		span = Green
	}
	message := fmt.Sprintf(form, details...)
	panic(common.ExitCode{Code: code, Message: span + message + Reset})
}

// Ok is a convenience for deferred "ok" outcomes in command bodies.
func Ok() error {
	Exit(0, "OK.")
	return nil
}

func Warning(form string, details ...interface{}) {
	common.Log("%sWarning: %s%s", Yellow, fmt.Sprintf(form, details...), Reset)
}

func Note(form string, details ...interface{}) {
	common.Log("%sNote: %s%s", Cyan, fmt.Sprintf(form, details...), Reset)
}

func Highlight(form string, details ...interface{}) {
	common.Log("%s%s%s", Bold, fmt.Sprintf(form, details...), Reset)
}
