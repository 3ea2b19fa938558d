package arbor

import (
	"fmt"
	"iter"
)

// Scene is the top-level container of a GameObject tree. It owns exactly one
// root object, created with the scene. The root keeps its Transform and takes
// part in the component lifecycle like any other object.
type Scene struct {
	Source string

	root  *GameObject
	game  *Game
	debug bool
}

// NewScene creates a new scene with a pre-created root object.
func NewScene() *Scene {
	s := &Scene{Source: newSource()}
	root := newGameObject("root")
	root.parent = s
	s.root = root
	return s
}

func (s *Scene) isParent() {}

// String returns a short description of the scene.
func (s *Scene) String() string {
	return fmt.Sprintf("<Scene from=%s>", s.Source)
}

// Root returns the scene's root object, or nil once disposed.
func (s *Scene) Root() *GameObject {
	return s.root
}

// AddChild appends child to the root object.
// Panics if the scene has been disposed.
func (s *Scene) AddChild(child *GameObject) {
	if s.root == nil {
		panic(fmt.Errorf("add %s to %s: %w", child, s, ErrObjectDisposed))
	}
	s.root.AddChild(child)
}

// Game returns the Game running this scene, or nil before a loop starts.
func (s *Scene) Game() *Game {
	return s.game
}

// RecurChildren returns a lazy pre-order sequence of every object in the
// scene, starting with the root.
func (s *Scene) RecurChildren() iter.Seq[*GameObject] {
	return func(yield func(*GameObject) bool) {
		root := s.root
		if root == nil || root.disposed {
			return
		}
		version := root.version
		if !yield(root) {
			return
		}
		root.walk(version, yield)
	}
}

// Find returns the first object in pre-order whose Name equals name.
func (s *Scene) Find(name string) *GameObject {
	for obj := range s.RecurChildren() {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// Debugger returns the Debugger attached to the root, adding one first if
// necessary.
func (s *Scene) Debugger() *Debugger {
	if s.root == nil {
		return nil
	}
	if d, err := GetComponent[*Debugger](s.root); err == nil {
		return d
	}
	c, err := s.root.AddComponent(NewDebugger())
	if err != nil {
		return nil
	}
	return c.(*Debugger)
}

// SetDebugMode enables or disables debug mode. When enabled, use of disposed
// objects panics, tree depth and child count warnings are printed, and
// per-frame phase timings are logged to stderr while a game runs the scene.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that object
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// Dispose releases the root (and with recursive set, every descendant) and
// clears the game reference. Safe to call more than once.
func (s *Scene) Dispose(recursive bool) {
	if s.root != nil {
		s.root.Dispose(recursive)
		s.root = nil
	}
	s.game = nil
}

// IsDisposed returns true if the scene or its root has been disposed.
func (s *Scene) IsDisposed() bool {
	return s.root == nil || s.root.disposed
}
