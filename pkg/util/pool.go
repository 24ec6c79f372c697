package util

import "runtime"

// OptimalPoolSize returns the worker count for CPU-bound file scanning:
// min(max(NumCPU*2, 4), 32). Scanning is string work with little blocking,
// so 2x cores keeps the pool busy without oversubscribing large machines.
func OptimalPoolSize() int {
	size := runtime.NumCPU() * 2
	if size < 4 {
		size = 4
	}
	if size > 32 {
		size = 32
	}
	return size
}

// PoolSizeWithOverride uses override when positive, the computed optimum
// otherwise.
func PoolSizeWithOverride(override int) int {
	if override > 0 {
		return override
	}
	return OptimalPoolSize()
}
