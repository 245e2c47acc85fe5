package absence

import "sync"

var (
	singletonOnce sync.Once
	singleton     *Sentinel
)

// Singleton returns the global absence sentinel. Every call, from any
// goroutine, returns the same pointer; the first call allocates it. The
// singleton's renderings are fixed: "absent" and "absence.Absent".
func Singleton() *Sentinel {
	singletonOnce.Do(func() {
		singleton = &Sentinel{
			strFn:   func(*Sentinel) string { return "absent" },
			goStrFn: func(*Sentinel) string { return "absence.Absent" },
		}
	})
	return singleton
}

// Absent is the global absence sentinel, the canonical "value not supplied"
// marker shared by all consumers. It is the same pointer Singleton returns.
var Absent = Singleton()
