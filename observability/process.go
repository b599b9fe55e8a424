// Package observability exposes technical snapshots of the running
// portal process for the status view and shutdown logs.
package observability

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats is a point-in-time snapshot of the portal process.
type ProcessStats struct {
	Pid        int
	RSSBytes   uint64
	CPUPercent float64
	PidStatus  string
	AllocMemMb uint64
	NumGC      uint32
}

// Snapshot collects OS-level metrics (RSS, CPU, status) for the
// current process plus Go runtime memory stats.
func Snapshot() (ProcessStats, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return ProcessStats{}, err
	}

	memInfo, err := p.MemoryInfo()
	if err != nil {
		return ProcessStats{}, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return ProcessStats{}, err
	}
	status, err := p.Status()
	if err != nil {
		return ProcessStats{}, err
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return ProcessStats{
		Pid:        os.Getpid(),
		RSSBytes:   memInfo.RSS,
		CPUPercent: cpuPercent,
		PidStatus:  status,
		AllocMemMb: m.Alloc / 1024 / 1024,
		NumGC:      m.NumGC,
	}, nil
}
