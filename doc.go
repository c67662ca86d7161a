// Package starburst is a 2D particle animation of a night sky for
// [Ebitengine]: background stars, twinkles, shooting stars and fireworks
// that burst into dots, rings and spinning shards.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window and drives
// the sky at 40 ticks per second:
//
//	sky := starburst.NewSky(starburst.NewRect(starburst.Vec2{}, 1280, 720))
//	if _, err := starburst.ScheduleNight(sky, starburst.DefaultNightConfig()); err != nil {
//		log.Fatal(err)
//	}
//	starburst.Run(sky, starburst.RunConfig{Title: "Fireworks", ShowFPS: true})
//
// For full control, call [Sky.Update] once per tick (or [Sky.Advance] with
// wall-clock time) and [Sky.Draw] with any [Surface]:
//
//	surface := starburst.NewImageSurface(screen)
//	sky.Draw(surface)
//
// # Entities
//
// A [Circle] is a round particle with velocity, acceleration, an optional
// lifetime and a collision step budget. A [Polygon] is a shape anchored at a
// point whose vertices are transformed by a queue of [Animation] values.
// Both can leave a fading trail. Once inert they are culled by the sky.
//
// Generators build the stock effects: [GenStars], [GenShootingStar],
// [TwinklingStar] and the three firework styles behind [SpawnFirework].
//
// # Drivers
//
// The window driver is [Run]. The term package renders the same sky into a
// terminal with tcell, the sound package plays bursts with beep, and the
// ecs package forwards sky events into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package starburst
