package metrics

import (
	"fmt"
	"runtime"
	"strings"
)

// modulePath is trimmed from code locations to keep metric labels short.
const modulePath = "github.com/SAP/stewardci-console/"

// CodeLocation returns the function name of the caller without the module
// path, e.g. `pkg/server.(*Server).handleReleaseOverview`.
// `skip` is the number of additional call stack frames to skip.
func CodeLocation(skip uint16) string {
	pc := make([]uintptr, 1)
	// skip runtime.Callers and this function
	if runtime.Callers(int(skip)+2, pc) == 0 {
		panic(fmt.Errorf("cannot identify caller when skipping %d frames", skip))
	}
	frame, _ := runtime.CallersFrames(pc).Next()
	if frame.Function == "" {
		return "<Unknown>"
	}
	return strings.TrimPrefix(frame.Function, modulePath)
}
