package arbor

import (
	"fmt"
	"reflect"
)

// Component is a unit of behavior attached to exactly one GameObject.
// Implementations embed Base, which supplies the owner back-reference and the
// forwarding accessors. Lifecycle hooks are opt-in through Awaker, Starter,
// Updater, NextUpdater and Destroyer.
type Component interface {
	// Object returns the owning GameObject, or nil once removed or disposed.
	Object() *GameObject
	base() *Base
}

// Awaker is implemented by components that need setup at construction.
// Awake runs synchronously inside AddComponent, before the component is
// appended to its owner.
type Awaker interface {
	Awake()
}

// Starter is implemented by components that run once when a game loop starts.
type Starter interface {
	Start()
}

// Updater is implemented by components that run every frame.
type Updater interface {
	Update(f *Frame)
}

// NextUpdater is implemented by components that run every frame after every
// component in the scene has finished Update.
type NextUpdater interface {
	NextUpdate(f *Frame)
}

// Destroyer is implemented by components that release resources when they
// are removed or their owner is disposed.
type Destroyer interface {
	OnDestroy()
}

// ComponentFactory builds a component for owner. AddComponent calls it with
// the object the component is being attached to.
type ComponentFactory func(owner *GameObject) Component

// Instance returns a factory that attaches the already-built component c.
func Instance(c Component) ComponentFactory {
	return func(*GameObject) Component { return c }
}

// Base is embedded by every component. It holds a non-owning reference to
// the owner and resolves unknown attributes by forwarding to it.
type Base struct {
	owner  *GameObject
	self   Component
	source string
	attrs  map[string]any
}

func (b *Base) base() *Base { return b }

func (b *Base) bind(owner *GameObject, self Component) {
	b.owner = owner
	b.self = self
	if b.source == "" {
		b.source = newSource()
	}
}

// Object returns the owning GameObject.
func (b *Base) Object() *GameObject {
	return b.owner
}

// Source returns the component's opaque origin tag.
func (b *Base) Source() string {
	return b.source
}

// Transform returns the owner's Transform.
func (b *Base) Transform() *Transform {
	if b.owner == nil {
		return nil
	}
	return b.owner.Transform()
}

// Scene returns the Scene the owner belongs to, or nil.
func (b *Base) Scene() *Scene {
	if b.owner == nil {
		return nil
	}
	s, err := b.owner.GetScene()
	if err != nil {
		return nil
	}
	return s
}

// Game returns the Game currently running the owner's Scene, or nil.
func (b *Base) Game() *Game {
	if s := b.Scene(); s != nil {
		return s.game
	}
	return nil
}

// Resolve looks name up among the component's own attributes and, failing
// that, forwards to the owning GameObject's Attr.
func (b *Base) Resolve(name string) (any, bool) {
	if v, ok := b.attrs[name]; ok {
		return v, true
	}
	if b.owner == nil {
		return nil, false
	}
	return b.owner.Attr(name)
}

// Set stores a component-local attribute. The name "transform" is never
// stored locally; the value must be a *Transform and is copied into the
// owner's Transform so the shared one cannot be shadowed.
// Panics if a "transform" value is not a *Transform.
func (b *Base) Set(name string, value any) {
	if name == "transform" {
		t, ok := value.(*Transform)
		if !ok {
			panic(fmt.Sprintf("arbor: transform must be *Transform, got %T", value))
		}
		if b.owner != nil {
			b.owner.SetTransform(t)
		}
		return
	}
	if b.attrs == nil {
		b.attrs = make(map[string]any)
	}
	b.attrs[name] = value
}

// String describes the component and its owner.
func (b *Base) String() string {
	return fmt.Sprintf("<Component type=%s in=%s>", typeNameOf(b.self), b.owner)
}

// destroyComponent runs OnDestroy and drops the owner link.
func destroyComponent(c Component) {
	if d, ok := c.(Destroyer); ok {
		d.OnDestroy()
	}
	b := c.base()
	b.owner = nil
	b.attrs = nil
}

// live reports whether c is still attached to an undisposed object.
func live(c Component) bool {
	o := c.Object()
	return o != nil && !o.disposed
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

func typeNameOf(c Component) string {
	if c == nil {
		return "<nil>"
	}
	return reflect.TypeOf(c).String()
}
