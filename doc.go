// Package arbor is a scene-graph and component game framework for 2D games.
//
// Games are built Unity-style: a [Scene] holds a tree of [GameObject] nodes,
// each carrying interchangeable [Component] values. Every object has a
// [Transform] at component index 0. A [Game] drives the scene through a fixed
// frame loop on top of a [Platform]: [github.com/phanxgames/arbor/ebitenhost]
// for windows, [github.com/phanxgames/arbor/termhost] for terminals, or
// [HeadlessPlatform] for tests.
//
// # Quick start
//
//	scene := arbor.NewScene()
//	hero := arbor.NewGameObject(scene)
//	hero.Transform().SetPosition(100, 100)
//	hero.AddComponent(arbor.NewSprite(img))
//
//	game := arbor.NewGame(platform, arbor.Config{Width: 640, Height: 480})
//	if err := game.Mainloop(scene); err != nil {
//		log.Fatal(err)
//	}
//
// # Components
//
// A component embeds [Base] and implements any of the lifecycle hooks:
//
//	type Mover struct {
//		arbor.Base
//		Speed float64
//	}
//
//	func (m *Mover) Update(f *arbor.Frame) {
//		m.Transform().Translate(m.Speed*f.DeltaTime, 0)
//	}
//
// Awake runs inside AddComponent. Start runs once when the loop begins. Each
// frame, Update runs on every component in the scene before NextUpdate runs
// on any of them. Components are visited in pre-order tree order, and in
// append order within an object.
//
// Base forwards to the owning object: Transform, Scene, Game, and
// [Base.Resolve] for named attributes. Assigning "transform" through
// [Base.Set] writes to the owner's Transform rather than shadowing it.
//
// # Loop
//
// [Game.Mainloop] runs once per Game. [Game.Close] stops the loop at the next
// frame boundary; a platform quit event stops it immediately. Per-frame
// timing reaches components through the [Frame] passed to Update and
// NextUpdate.
//
// Tweens use [gween]; audio uses [beep]. Lifecycle events can be forwarded
// to a [Donburi] world with arbor/ecs.
//
// [gween]: https://github.com/tanema/gween
// [beep]: https://github.com/gopxl/beep
// [Donburi]: https://github.com/yohamta/donburi
package arbor
