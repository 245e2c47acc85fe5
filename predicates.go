package absence

// IsAbsent reports whether v is the global absence sentinel. The comparison
// is identity, not equality: false for every other value, including nil,
// false, zero numbers, empty containers, and sentinels minted by New.
// Never panics.
//
// Go has no checker-visible narrowing; after a true result, callers that
// need the concrete type assert v.(*Sentinel).
func IsAbsent(v any) bool {
	s, ok := v.(*Sentinel)
	return ok && s == Singleton()
}

// IsSentinel reports whether v is any sentinel produced by this package,
// including the global one. A nil *Sentinel is not a sentinel: the factory
// never produces one. Never panics.
func IsSentinel(v any) bool {
	s, ok := v.(*Sentinel)
	return ok && s != nil
}
