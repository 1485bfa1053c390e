package typf

import (
	"os"
	"strings"
	"sync/atomic"
)

// cacheGate holds the process-wide cache-enable flag per spec §4.8: 0 means
// "not yet seeded from the environment", 1 means disabled, 2 means enabled.
// Using three states lets the first query seed from CACHE exactly once
// without a separate sync.Once, mirroring logger.go's atomic.Pointer idiom.
var cacheGate atomic.Int32

const (
	cacheGateUnseeded int32 = 0
	cacheGateDisabled int32 = 1
	cacheGateEnabled  int32 = 2
)

// CacheEnabled reports whether process-wide backend caching is on. The
// first call seeds the flag from the CACHE environment variable
// (1/true/yes/on, case-insensitive); every call after that, or after
// SetCacheEnabled, reads the stored flag directly.
func CacheEnabled() bool {
	return cacheEnabled()
}

func cacheEnabled() bool {
	v := cacheGate.Load()
	if v == cacheGateUnseeded {
		seeded := cacheGateDisabled
		if envEnablesCache() {
			seeded = cacheGateEnabled
		}
		cacheGate.CompareAndSwap(cacheGateUnseeded, seeded)
		v = cacheGate.Load()
	}
	return v == cacheGateEnabled
}

// SetCacheEnabled overrides the cache-enable gate at any time, superseding
// whatever the environment-seeded value was.
func SetCacheEnabled(enabled bool) {
	if enabled {
		cacheGate.Store(cacheGateEnabled)
	} else {
		cacheGate.Store(cacheGateDisabled)
	}
}

func envEnablesCache() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("CACHE"))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
