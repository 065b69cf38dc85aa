// Package ecs adapts puppet scene documents to a [Donburi] world.
//
// [Populate] creates one entity per scene object, carrying its timeline
// element as an [ElementData] component. [Advance] evaluates every entity
// at an absolute frame and stores the result in its [StateData] component;
// because evaluation is a pure function of the frame, hosts may advance to
// any frame in any order. Each call also publishes a [FrameAdvanced] event
// for systems that subscribe with [FrameAdvancedType].
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.Populate(world, doc, 30)
//	ecs.Advance(world, 42, 30)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
