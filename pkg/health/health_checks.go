package health

import (
	"fmt"
	"time"
)

// AliveCheck always reports healthy. It backs /livez.
func AliveCheck() CheckFunc {
	return func() Check {
		return Check{Name: "process", Status: StatusHealthy}
	}
}

// SnapshotCheck grades the snapshot feed.
// No successful load yet is unhealthy. A failed latest load or a last good
// load older than maxAge is degraded, since the map still shows old data.
func SnapshotCheck(status func() (lastSuccess time.Time, lastErr error), maxAge time.Duration) CheckFunc {
	return snapshotCheck(status, maxAge, time.Now)
}

func snapshotCheck(status func() (time.Time, error), maxAge time.Duration, now func() time.Time) CheckFunc {
	return func() Check {
		check := Check{
			Name:    "snapshot",
			Details: make(map[string]any),
		}

		last, err := status()
		if err != nil {
			check.Details["last_error"] = err.Error()
		}

		switch {
		case last.IsZero():
			check.Status = StatusUnhealthy
			check.Message = "No snapshot loaded"
			return check
		case err != nil:
			check.Status = StatusDegraded
			check.Message = "Latest load failed, showing last good snapshot"
		}

		age := now().Sub(last)
		check.Details["age_seconds"] = age.Seconds()
		if maxAge > 0 && age > maxAge {
			check.Status = StatusDegraded
			check.Message = fmt.Sprintf("Snapshot older than %s", maxAge)
		}

		if check.Status == "" {
			check.Status = StatusHealthy
			check.Message = "Snapshot current"
		}
		return check
	}
}

// LoadedCheck is ready once loaded reports true.
func LoadedCheck(loaded func() bool) CheckFunc {
	return func() Check {
		if loaded() {
			return Check{Name: "loaded", Status: StatusHealthy}
		}
		return Check{Name: "loaded", Status: StatusUnhealthy, Message: "Waiting for first snapshot"}
	}
}

// MemoryCheck creates a health check for memory usage
func MemoryCheck(getUsage func() (alloc, sys uint64)) CheckFunc {
	return func() Check {
		check := Check{
			Name:    "memory",
			Details: make(map[string]any),
		}

		alloc, sys := getUsage()

		check.Details["alloc_bytes"] = alloc
		check.Details["sys_bytes"] = sys

		var usagePercent float64
		if sys > 0 {
			usagePercent = float64(alloc) / float64(sys) * 100
		}

		if usagePercent > 90 {
			check.Status = StatusDegraded
			check.Message = "High memory usage"
		} else {
			check.Status = StatusHealthy
			check.Message = "Memory usage normal"
		}

		return check
	}
}
