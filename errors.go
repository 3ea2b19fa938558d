package arbor

import "errors"

var (
	// ErrObjectDisposed is returned when a Game, Scene, or GameObject is used
	// after it has been torn down, e.g. running a closed Game's Mainloop.
	ErrObjectDisposed = errors.New("arbor: object disposed")

	// ErrDuplicateTransform is returned when adding a second Transform or
	// removing the mandatory one.
	ErrDuplicateTransform = errors.New("arbor: transform cannot be added or removed")

	// ErrComponentNotFound is returned by GetComponent and DelComponent when no
	// component matches.
	ErrComponentNotFound = errors.New("arbor: component not found")

	// ErrGameRunning is returned when Mainloop or Reopen is called on a Game
	// whose loop is already running.
	ErrGameRunning = errors.New("arbor: game loop already running")

	// ErrTreeModified is the panic value raised when a child list is changed
	// while a live RecurChildren traversal is iterating it.
	ErrTreeModified = errors.New("arbor: children modified during traversal")
)

// ErrNotInScene is returned by GetScene for objects that are not attached to
// any Scene.
var ErrNotInScene = errors.New("arbor: object is not in a scene")
