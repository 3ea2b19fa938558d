package arbor

import (
	"fmt"
	"iter"

	"github.com/google/uuid"
)

// Parent is a node that can own GameObjects: a *Scene or a *GameObject.
type Parent interface {
	AddChild(child *GameObject)
	isParent()
}

// --- ID counter ---

// objectIDCounter is a plain counter; arbor is single-threaded.
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// newSource returns an opaque tag identifying where an object came from.
func newSource() string {
	return "@" + uuid.NewString()
}

// --- GameObject ---

// GameObject is a node in the scene tree. It owns its children and its
// components; the component at index 0 is always its Transform.
type GameObject struct {
	// Identity
	ID     uint32
	Name   string
	Source string

	// Hierarchy. parent is a lookup-only back-reference.
	parent   Parent
	children []*GameObject
	version  uint64 // bumped on every change to children

	components []Component
	attrs      map[string]any

	disposed bool
}

// NewGameObject creates a GameObject with a fresh Transform and appends it to
// parent. Adding to a Scene appends to the scene's root. A nil parent creates
// a detached object that can be added later with AddChild.
func NewGameObject(parent Parent) *GameObject {
	g := newGameObject("")
	if parent != nil {
		parent.AddChild(g)
	}
	return g
}

// NewNamedGameObject is NewGameObject with a Name.
func NewNamedGameObject(parent Parent, name string) *GameObject {
	g := newGameObject(name)
	if parent != nil {
		parent.AddChild(g)
	}
	return g
}

func newGameObject(name string) *GameObject {
	g := &GameObject{
		ID:     nextObjectID(),
		Name:   name,
		Source: newSource(),
	}
	t := newTransform()
	t.bind(g, t)
	g.components = []Component{t}
	return g
}

func (g *GameObject) isParent() {}

// String returns a short description of the object for logs and errors.
func (g *GameObject) String() string {
	if g == nil {
		return "<GameObject nil>"
	}
	if g.Name != "" {
		return fmt.Sprintf("<GameObject %q id=%d>", g.Name, g.ID)
	}
	return fmt.Sprintf("<GameObject id=%d from=%s>", g.ID, g.Source)
}

// --- Tree manipulation ---

// AddChild appends child to this object's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, if either object is disposed, or if child is an
// ancestor of this object (cycle).
func (g *GameObject) AddChild(child *GameObject) {
	if child == nil {
		panic("arbor: cannot add nil child")
	}
	if g.disposed || child.disposed {
		panic(fmt.Errorf("add %s to %s: %w", child, g, ErrObjectDisposed))
	}
	if isAncestor(child, g) {
		panic("arbor: adding child would create a cycle")
	}
	if _, ok := child.parent.(*Scene); ok {
		panic("arbor: cannot reparent a scene root")
	}
	if child.parent != nil {
		child.detach()
	}
	child.parent = g
	g.children = append(g.children, child)
	g.version++
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(g)
	}
}

// RemoveChild detaches child from this object without disposing it.
// Panics if child's parent is not this object.
func (g *GameObject) RemoveChild(child *GameObject) {
	if globalDebug {
		debugCheckDisposed(g, "RemoveChild")
	}
	if child.parent != Parent(g) {
		panic("arbor: child's parent is not this object")
	}
	g.removeChildByPtr(child)
	child.parent = nil
}

// RemoveFromParent detaches this object from its parent GameObject.
// No-op if it has no parent or is a scene root.
func (g *GameObject) RemoveFromParent() {
	if p, ok := g.parent.(*GameObject); ok {
		p.RemoveChild(g)
	}
}

// detach drops the parent link, removing g from a GameObject parent's list.
func (g *GameObject) detach() {
	if p, ok := g.parent.(*GameObject); ok {
		p.removeChildByPtr(g)
	}
	g.parent = nil
}

// Parent returns the object's parent: a *GameObject, the owning *Scene for a
// scene root, or nil when detached.
func (g *GameObject) Parent() Parent {
	return g.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (g *GameObject) Children() []*GameObject {
	return g.children
}

// NumChildren returns the number of children.
func (g *GameObject) NumChildren() int {
	return len(g.children)
}

// ChildAt returns the child at the given index.
func (g *GameObject) ChildAt(index int) *GameObject {
	return g.children[index]
}

// RecurChildren returns a lazy depth-first pre-order sequence of all
// descendants, children in append order. Each call starts a fresh traversal
// of the live tree. Changing a child list while the traversal is iterating it
// panics with ErrTreeModified.
func (g *GameObject) RecurChildren() iter.Seq[*GameObject] {
	return func(yield func(*GameObject) bool) {
		g.walk(g.version, yield)
	}
}

// walk visits g's descendants. version is g.version as observed before g was
// reached; any change to a child list on the current path panics.
func (g *GameObject) walk(version uint64, yield func(*GameObject) bool) bool {
	if g.version != version {
		panic(fmt.Errorf("traverse %s: %w", g, ErrTreeModified))
	}
	for i := 0; i < len(g.children); i++ {
		child := g.children[i]
		childVersion := child.version
		if !yield(child) {
			return false
		}
		if g.version != version {
			panic(fmt.Errorf("traverse %s: %w", g, ErrTreeModified))
		}
		if !child.walk(childVersion, yield) {
			return false
		}
		if g.version != version {
			panic(fmt.Errorf("traverse %s: %w", g, ErrTreeModified))
		}
	}
	return true
}

// GetScene walks parent references upward until it reaches the Scene.
func (g *GameObject) GetScene() (*Scene, error) {
	if g.disposed {
		return nil, fmt.Errorf("scene of %s: %w", g, ErrObjectDisposed)
	}
	var p Parent = g.parent
	for p != nil {
		switch v := p.(type) {
		case *Scene:
			return v, nil
		case *GameObject:
			p = v.parent
		default:
			p = nil
		}
	}
	return nil, fmt.Errorf("scene of %s: %w", g, ErrNotInScene)
}

// --- Components ---

// AddComponent invokes f with this object as owner, binds the result, fires
// its Awake hook, and appends it. Adding a Transform fails with
// ErrDuplicateTransform.
func (g *GameObject) AddComponent(f ComponentFactory) (Component, error) {
	if g.disposed {
		return nil, fmt.Errorf("add component to %s: %w", g, ErrObjectDisposed)
	}
	if f == nil {
		panic("arbor: nil component factory")
	}
	c := f(g)
	if c == nil {
		panic("arbor: component factory returned nil")
	}
	if _, ok := c.(*Transform); ok {
		return nil, fmt.Errorf("add component to %s: %w", g, ErrDuplicateTransform)
	}
	if b := c.base(); b.owner != nil {
		panic(fmt.Sprintf("arbor: component %T is already attached to %s", c, b.owner))
	}
	c.base().bind(g, c)
	if a, ok := c.(Awaker); ok {
		a.Awake()
	}
	g.components = append(g.components, c)
	return c, nil
}

// Components returns the component list; index 0 is the Transform. The
// returned slice MUST NOT be mutated by the caller.
func (g *GameObject) Components() []Component {
	return g.components
}

// Transform returns the object's Transform, or nil once disposed.
func (g *GameObject) Transform() *Transform {
	if len(g.components) == 0 {
		return nil
	}
	return g.components[0].(*Transform)
}

// SetTransform copies position, rotation, and scale from t into the object's
// own Transform. The Transform instance itself is never replaced.
func (g *GameObject) SetTransform(t *Transform) {
	own := g.Transform()
	if own == nil || t == nil || own == t {
		return
	}
	own.Position = t.Position
	own.Rotation = t.Rotation
	own.Scale = t.Scale
}

// GetComponent returns the first component assignable to T, which may be a
// concrete component type or a capability interface.
func GetComponent[T any](g *GameObject) (T, error) {
	if g.disposed {
		var zero T
		return zero, fmt.Errorf("get %s on %s: %w", typeName[T](), g, ErrObjectDisposed)
	}
	for _, c := range g.components {
		if t, ok := c.(T); ok {
			return t, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("get %s on %s: %w", typeName[T](), g, ErrComponentNotFound)
}

// HasComponent reports whether any component is assignable to T.
func HasComponent[T any](g *GameObject) bool {
	for _, c := range g.components {
		if _, ok := c.(T); ok {
			return true
		}
	}
	return false
}

// DelComponent removes the first component assignable to T, preserving the
// order of the rest. It fails with ErrDuplicateTransform when that component
// is the Transform, with ErrComponentNotFound when nothing matches, and with
// ErrObjectDisposed once g is disposed.
func DelComponent[T any](g *GameObject) error {
	if g.disposed {
		return fmt.Errorf("delete %s on %s: %w", typeName[T](), g, ErrObjectDisposed)
	}
	for i, c := range g.components {
		if _, ok := c.(T); !ok {
			continue
		}
		if i == 0 {
			return fmt.Errorf("delete %s on %s: %w", typeName[T](), g, ErrDuplicateTransform)
		}
		copy(g.components[i:], g.components[i+1:])
		g.components[len(g.components)-1] = nil
		g.components = g.components[:len(g.components)-1]
		destroyComponent(c)
		return nil
	}
	return fmt.Errorf("delete %s on %s: %w", typeName[T](), g, ErrComponentNotFound)
}

// --- Attributes ---

// Attr resolves a named attribute. Built-in names are transform, position,
// rotation, scale, parent, children, components, name, source, scene and game;
// anything else is looked up among attributes set with SetAttr.
func (g *GameObject) Attr(name string) (any, bool) {
	switch name {
	case "transform", "position", "rotation", "scale":
		t := g.Transform()
		if t == nil {
			return nil, false
		}
		switch name {
		case "position":
			return t.Position, true
		case "rotation":
			return t.Rotation, true
		case "scale":
			return t.Scale, true
		}
		return t, true
	case "parent":
		return g.parent, g.parent != nil
	case "children":
		return g.children, true
	case "components":
		return g.components, true
	case "name":
		return g.Name, true
	case "source":
		return g.Source, true
	case "scene":
		s, err := g.GetScene()
		return s, err == nil
	case "game":
		s, err := g.GetScene()
		if err != nil || s.game == nil {
			return nil, false
		}
		return s.game, true
	}
	v, ok := g.attrs[name]
	return v, ok
}

// SetAttr assigns a named attribute. transform, position, rotation and scale
// are written through to the Transform and must be a *Transform, Vec2,
// float64 and Vec2 respectively. The other built-in names are read-only.
// Anything else is stored on the object.
// Panics on a wrong type or a read-only name.
func (g *GameObject) SetAttr(name string, value any) {
	t := g.Transform()
	switch name {
	case "transform":
		v, ok := value.(*Transform)
		if !ok {
			panic(fmt.Sprintf("arbor: attribute transform of %s must be *Transform, got %T", g, value))
		}
		g.SetTransform(v)
		return
	case "position", "scale":
		v, ok := value.(Vec2)
		if !ok {
			panic(fmt.Sprintf("arbor: attribute %s of %s must be Vec2, got %T", name, g, value))
		}
		if t == nil {
			return
		}
		if name == "position" {
			t.Position = v
		} else {
			t.Scale = v
		}
		return
	case "rotation":
		v, ok := value.(float64)
		if !ok {
			panic(fmt.Sprintf("arbor: attribute rotation of %s must be float64, got %T", g, value))
		}
		if t != nil {
			t.Rotation = v
		}
		return
	case "parent", "children", "components", "name", "source", "scene", "game":
		panic(fmt.Sprintf("arbor: attribute %s of %s is read-only", name, g))
	}
	if g.attrs == nil {
		g.attrs = make(map[string]any)
	}
	g.attrs[name] = value
}

// --- Disposal ---

// Dispose detaches this object from its parent and releases its children and
// components. With recursive set, all descendants are disposed first;
// otherwise children are only detached. Safe to call more than once.
func (g *GameObject) Dispose(recursive bool) {
	if g.disposed {
		return
	}
	g.detach()
	g.dispose(recursive)
}

func (g *GameObject) dispose(recursive bool) {
	g.disposed = true
	for _, child := range g.children {
		child.parent = nil
		if recursive {
			child.dispose(true)
		}
	}
	g.children = nil
	g.version++
	for i := len(g.components) - 1; i >= 0; i-- {
		destroyComponent(g.components[i])
	}
	g.components = nil
	g.attrs = nil
	g.parent = nil
}

// IsDisposed returns true if this object has been disposed.
func (g *GameObject) IsDisposed() bool {
	return g.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of (or equal to) obj.
func isAncestor(candidate, obj *GameObject) bool {
	for p := obj; p != nil; {
		if p == candidate {
			return true
		}
		next, ok := p.parent.(*GameObject)
		if !ok {
			return false
		}
		p = next
	}
	return false
}

// removeChildByPtr removes child from g.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (g *GameObject) removeChildByPtr(child *GameObject) {
	for i, c := range g.children {
		if c == child {
			copy(g.children[i:], g.children[i+1:])
			g.children[len(g.children)-1] = nil
			g.children = g.children[:len(g.children)-1]
			g.version++
			return
		}
	}
}
