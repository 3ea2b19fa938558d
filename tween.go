package arbor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates up to two fields of its owner's Transform using the frame's
// DeltaTime. Create one with TweenPosition, TweenScale or TweenRotation; start
// values are taken from the Transform when the component is added. If the
// owner is disposed, the tween stops immediately.
type Tween struct {
	Base

	// OnDone, if set, runs once when every field reaches its target.
	OnDone func()

	tweens [2]*gween.Tween
	count  int
	apply  func(t *Transform, vals [2]float64)
	done   bool
}

// Update advances the tween by the frame's DeltaTime and writes the values to
// the Transform.
func (tw *Tween) Update(f *Frame) {
	if tw.done {
		return
	}
	t := tw.Transform()
	if t == nil {
		tw.done = true
		return
	}

	var vals [2]float64
	allDone := true
	for i := 0; i < tw.count; i++ {
		val, finished := tw.tweens[i].Update(float32(f.DeltaTime))
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	tw.apply(t, vals)
	tw.done = allDone
	if tw.done && tw.OnDone != nil {
		tw.OnDone()
	}
}

// Done reports whether every field has reached its target.
func (tw *Tween) Done() bool {
	return tw.done
}

// Reset rewinds the tween to its start values.
func (tw *Tween) Reset() {
	for i := 0; i < tw.count; i++ {
		tw.tweens[i].Reset()
	}
	tw.done = false
}

// TweenPosition returns a factory for a Tween that moves the owner to `to`
// over duration seconds using the easing function.
func TweenPosition(to Vec2, duration float32, fn ease.TweenFunc) ComponentFactory {
	return func(owner *GameObject) Component {
		from := owner.Transform().Position
		tw := &Tween{count: 2}
		tw.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
		tw.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
		tw.apply = func(t *Transform, v [2]float64) {
			t.Position = Vec2{v[0], v[1]}
		}
		return tw
	}
}

// TweenScale returns a factory for a Tween that scales the owner to `to` over
// duration seconds using the easing function.
func TweenScale(to Vec2, duration float32, fn ease.TweenFunc) ComponentFactory {
	return func(owner *GameObject) Component {
		from := owner.Transform().Scale
		tw := &Tween{count: 2}
		tw.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
		tw.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
		tw.apply = func(t *Transform, v [2]float64) {
			t.Scale = Vec2{v[0], v[1]}
		}
		return tw
	}
}

// TweenRotation returns a factory for a Tween that rotates the owner to `to`
// radians over duration seconds using the easing function.
func TweenRotation(to float64, duration float32, fn ease.TweenFunc) ComponentFactory {
	return func(owner *GameObject) Component {
		from := owner.Transform().Rotation
		tw := &Tween{count: 1}
		tw.tweens[0] = gween.New(float32(from), float32(to), duration, fn)
		tw.apply = func(t *Transform, v [2]float64) {
			t.Rotation = v[0]
		}
		return tw
	}
}
