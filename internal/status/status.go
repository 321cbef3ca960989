package status

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/process"
)

// Report summarizes the running process for the /status command.
func Report(started time.Time) string {
	uptime := time.Since(started).Round(time.Second)

	rss := "n/a"
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mem, err := p.MemoryInfo(); err == nil {
			rss = fmt.Sprintf("%.1f MB", float64(mem.RSS)/(1024*1024))
		}
	}

	hostUptime := "n/a"
	if secs, err := host.Uptime(); err == nil {
		hostUptime = (time.Duration(secs) * time.Second).String()
	}

	return fmt.Sprintf("Up %s | mem %s | goroutines %d | host up %s",
		uptime, rss, runtime.NumGoroutine(), hostUptime)
}
