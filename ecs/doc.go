// Package ecs runs stroked text synchronization on a [Donburi] world.
//
// [World] implements [strokedtext.Host] with Donburi components: a
// declaration entity carries [StrokedTextComponent] and [TransformComponent];
// its nine generated children carry [TextChildComponent], their own
// [TransformComponent], and a [ParentComponent]. Changes are tracked with
// the [ChangedTag] component.
//
// Usage:
//
//	e := ecs.NewECS(donburi.NewWorld())
//	w := stecs.Plugin{}.Build(e)
//	w.Spawn(strokedtext.NewBundle(strokedtext.DefaultStrokedText()).WithText("Hi"))
//	// each tick:
//	e.Update()
//	// each frame:
//	w.Draw(screen, fonts)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
