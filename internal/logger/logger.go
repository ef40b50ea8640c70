package logger

import (
	"github.com/fatih/color" // Colored console output
)

// Colorized printing functions for the different log levels. These are
// package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the level.

// Info logs informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan when enabled via Init, otherwise it is a
// no-op. The default is a no-op so packages may log before Init runs.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging. When enabled, Debug prints
// cyan-colored messages; when disabled it silently ignores them.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
