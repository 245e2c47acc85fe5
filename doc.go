// Package absence provides a falsey "no value" sentinel distinct from nil,
// a factory for minting additional independent sentinels, and identity-based
// predicates for classifying them.
//
// The global sentinel Absent marks "no value was supplied" in APIs where nil
// is a legitimate value and cannot carry that meaning:
//
//	func Render(w io.Writer, v any) error {
//	    if absence.IsAbsent(v) {
//	        v = defaultValue
//	    }
//	    // nil is rendered as-is; only Absent means "use the default"
//	    ...
//	}
//
// Absent is identity-stable: every call to Singleton, from any goroutine,
// returns the same pointer, so IsAbsent is a plain identity comparison.
//
// # Additional sentinels
//
// New mints further sentinels, each distinct from Absent and from every
// other, with optional custom renderings:
//
//	var tombstone = absence.New(
//	    absence.WithString(func(*absence.Sentinel) string { return "deleted" }),
//	)
//
// Sentinels never compare equal to one another. Every sentinel reports false
// from its Bool method, and Truth treats sentinels as false alongside nil,
// zero numbers, and empty containers.
//
// # Serialization
//
// Sentinels refuse every serialization hook (JSON, text, binary, gob, YAML)
// with an OperationError: a reconstructed copy would be a distinct object and
// would break every identity-based check downstream.
//
// # Registry installation
//
// Install optionally binds Absent and IsAbsent under well-known names in a
// process-wide Registry, so components can resolve them without importing
// this package directly. Installation is explicit and opt-in; importing the
// package never mutates the default registry.
//
//	if err := absence.Install(); err != nil {
//	    log.Fatal(err)
//	}
//	v, _ := absence.DefaultRegistry().Resolve("Absent")
package absence
