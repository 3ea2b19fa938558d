package arbor

// Sprite draws a Surface at its owner's world position every Update.
type Sprite struct {
	Base

	Surface Surface
	// Offset is added to the world position before drawing.
	Offset Vec2
}

// NewSprite returns a factory for a Sprite showing surface.
func NewSprite(surface Surface) ComponentFactory {
	return func(*GameObject) Component {
		return &Sprite{Surface: surface}
	}
}

// Position returns where the sprite will be drawn this frame.
func (s *Sprite) Position() Vec2 {
	t := s.Transform()
	if t == nil {
		return s.Offset
	}
	return t.WorldPosition().Add(s.Offset)
}

// Update draws the surface through the running Game.
func (s *Sprite) Update(*Frame) {
	g := s.Game()
	if g == nil || s.Surface == nil {
		return
	}
	g.Draw(s.Surface, s.Position())
}
