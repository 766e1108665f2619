// Sentinel errors for path enumeration and selection.

package paths

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to any function.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrNoPath indicates that no simple path connects the requested endpoints.
	ErrNoPath = errors.New("paths: no path between vertices")
)
