// Package compute selects the simulation engine implementation.
//
// Two engines honor the same capability contract:
//
//   - built-in: pure Go, always available
//   - native: accelerated core library via cgo, available only in
//     builds with the ccore tag on hosts where the library loads
//
// Auto picks the native engine when it is usable and falls back to the
// built-in one otherwise.
package compute

import "github.com/san-kum/syncnet/internal/kuramoto"

// Builtin returns the factory for the pure-Go engine.
func Builtin() kuramoto.EngineFactory {
	return kuramoto.NewBuiltinEngine
}

// Auto returns the native engine factory when the accelerated core is
// usable, else the built-in factory.
func Auto() kuramoto.EngineFactory {
	if NativeAvailable() {
		return Native()
	}
	return Builtin()
}
