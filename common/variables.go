package common

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

const (
	SBOMLIC_HOME_VARIABLE = `SBOMLIC_HOME`
)

var (
	Version        = `v0.3.1`
	When           = time.Now().Unix()
	LogLinenumbers bool
	NoColors       bool

	silentFlag bool
	debugFlag  bool
	traceFlag  bool
)

// DefineVerbosity sets the effective verbosity levels. Trace implies
// debug, and silent wins over both.
func DefineVerbosity(silent, debug, trace bool) {
	silentFlag = silent
	debugFlag = debug || trace
	traceFlag = trace
	Trace("Verbosity: silent=%v, debug=%v, trace=%v", silentFlag, debugFlag, traceFlag)
}

func Silent() bool {
	return silentFlag && !debugFlag
}

func DebugFlag() bool {
	return debugFlag
}

func TraceFlag() bool {
	return traceFlag
}

// Product home directory, for persisted settings. Override with
// SBOMLIC_HOME when default location is not usable.
func ProductHome() string {
	home := os.Getenv(SBOMLIC_HOME_VARIABLE)
	if len(home) > 0 {
		return ExpandPath(home)
	}
	return ExpandPath(filepath.Join("~", ".sbomlic"))
}

func ExpandPath(entry string) string {
	intermediate := os.ExpandEnv(entry)
	if len(intermediate) > 0 && intermediate[0] == '~' {
		location, err := os.UserHomeDir()
		if err == nil {
			intermediate = filepath.Join(location, intermediate[1:])
		}
	}
	result, err := filepath.Abs(intermediate)
	if err != nil {
		return intermediate
	}
	return result
}

// OptimalWorkerCount gives worker pool size for CPU bound parsing work.
// One worker is always left for the coordinator side.
func OptimalWorkerCount() int {
	limit := runtime.NumCPU() - 1
	if limit < 1 {
		return 1
	}
	return limit
}
