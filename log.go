/*
log.go wires up the core's structured logger. Grounded on FrankyGo's use of
github.com/op/go-logging across its movegen/attacks packages: one
named *logging.Logger per package, backed by a leveled, formatted backend
that callers can redirect or silence.
*/

package chesscore

import (
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("chesscore")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{shortfunc}: %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)
}

// SetLogLevel adjusts the verbosity of the core's logger at runtime;
// callers embedding chesscore in a UCI engine typically wire this to a
// "debug" toggle.
func SetLogLevel(level logging.Level) {
	logging.SetLevel(level, "chesscore")
}
