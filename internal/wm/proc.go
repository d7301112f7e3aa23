package wm

import (
	"strconv"

	"github.com/shirou/gopsutil/v4/process"
)

// lookupProcessName is swapped out in tests.
var lookupProcessName = func(pid int) (string, error) {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return "", err
	}
	return p.Name()
}

// fillAppFromPID falls back to the owning process name when a backend
// reported a PID but no application identifier. XWayland surfaces and
// windows created before the compositor learned their app id commonly
// hit this path. Lookup failure leaves App empty: an absent identifier
// is a valid classification input.
func fillAppFromPID(w *Window) {
	if w == nil || w.App != "" || w.PID <= 0 {
		return
	}
	name, err := lookupProcessName(w.PID)
	if err != nil {
		return
	}
	w.App = name
}

func atoiSafe(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
