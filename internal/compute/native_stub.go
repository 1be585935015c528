//go:build !ccore

package compute

import (
	"fmt"

	"github.com/san-kum/syncnet/internal/kuramoto"
)

// NativeAvailable reports whether the accelerated core library is
// usable. Builds without the ccore tag never link it.
func NativeAvailable() bool { return false }

// Native returns a factory that always fails in builds without ccore
// support. Use Auto to fall back to the built-in engine instead.
func Native() kuramoto.EngineFactory {
	return func(kuramoto.EngineConfig) (kuramoto.Engine, error) {
		return nil, fmt.Errorf("compute: built without ccore support")
	}
}
