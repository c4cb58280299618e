// Package strokedtext draws outlined ("stroked") text in a retained-mode 2D
// scene for [Ebitengine] without a signed-distance-field renderer.
//
// A [StrokedText] declaration is materialized as nine child text nodes: one
// fill copy at the node origin and eight copies in the stroke color, offset
// by the stroke width in each of the eight neighbouring directions and placed
// at a negative Z so they draw behind the fill.
//
// # Quick start
//
//	scene := strokedtext.NewScene()
//	strokedtext.Plugin{}.Build(scene)
//
//	id := scene.Spawn(strokedtext.NewBundle(strokedtext.DefaultStrokedText()).
//		WithText("Hello, world!").
//		WithTransform(strokedtext.FromTranslation(320, 240, 1)))
//
//	strokedtext.Run(scene, strokedtext.RunConfig{
//		Title: "Stroked", Width: 640, Height: 480,
//	})
//
// # Synchronization
//
// Each [Scene.Update] runs [SyncSystem], which asks the [Host] for the
// declarations that changed since the previous pass. A declaration without
// children gets its nine children created in one batch; one with children
// has every child updated in place: text, font size, justification, line
// breaking, and color (stroke color when the child's Z is negative, fill
// color otherwise). Offsets, font, and anchor are fixed at creation; to
// change them, despawn and respawn the node.
//
// Change a declaration with [Scene.MutateStrokedText] or
// [Scene.SetStrokedText] so the change is detected. Declarations that are
// never changed are never touched.
//
// # Visual checks
//
// [Scene.Screenshot] writes the next drawn frame to a PNG file. A
// [ScriptRunner] loaded with [LoadScript] replays declaration edits and
// screenshots one step per tick, which makes it easy to capture how a stroke
// looks at several widths and colors.
//
// The ECS adapter in strokedtext/ecs implements the same [Host] contract on
// a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package strokedtext
