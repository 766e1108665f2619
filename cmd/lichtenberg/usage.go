package main

import (
	"fmt"
	"os"

	"github.com/plan-systems/klog"
	"github.com/shirou/gopsutil/v3/process"
)

// usage reports the driver's own resident memory for progress logs.
type usage struct {
	proc  *process.Process
	reads int // number of rss calls
}

// usageFactory builds the memory reader used by run.
var usageFactory = newUsage

func newUsage() *usage {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		klog.Warningf("process stats unavailable: %v", err)
		return &usage{}
	}

	return &usage{proc: p}
}

// rss returns a human-readable resident set size, or "n/a".
func (u *usage) rss() string {
	u.reads++
	if u.proc == nil {
		return "n/a"
	}
	info, err := u.proc.MemoryInfo()
	if err != nil {
		return "n/a"
	}

	return fmt.Sprintf("%.1fMiB", float64(info.RSS)/(1<<20))
}
