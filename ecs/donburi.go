package ecs

import (
	"github.com/phanxgames/puppet"
	"github.com/phanxgames/puppet/schema"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// ElementData is the static description of one scene object: its identity
// plus its resolved timeline element. Populate writes it once and it never
// changes afterward.
type ElementData struct {
	SceneID  string
	ObjectID string
	Kind     string
	Element  puppet.Element
}

// StateData holds the result of the most recent Advance call for this
// entity. It is the only component Advance writes.
type StateData struct {
	Frame int
	State puppet.FrameState
}

var (
	// ElementType carries ElementData on every populated entity.
	ElementType = donburi.NewComponentType[ElementData]()
	// StateType carries StateData on every populated entity.
	StateType = donburi.NewComponentType[StateData]()
)

// FrameAdvanced is published to the world once per Advance call, after
// every entity's state has been written.
type FrameAdvanced struct {
	Frame int
	FPS   int
}

// FrameAdvancedType is the Donburi event type for frame advances.
// Subscribe to it in systems that react to the timeline moving.
var FrameAdvancedType = events.NewEventType[FrameAdvanced]()

var elementQuery = donburi.NewQuery(filter.Contains(ElementType, StateType))

// Populate creates one entity per scene object across the whole document
// and returns how many entities it created. fps <= 0 falls back to the
// document frame rate, then to the engine default.
func Populate(world donburi.World, doc *schema.Document, fps int) int {
	if fps <= 0 {
		fps = doc.Meta.FPS
	}
	if fps <= 0 {
		fps = puppet.DefaultFPS
	}
	n := 0
	for i := range doc.Scenes {
		sc := &doc.Scenes[i]
		for j := range sc.Objects {
			o := &sc.Objects[j]
			entry := world.Entry(world.Create(ElementType, StateType))
			ElementType.SetValue(entry, ElementData{
				SceneID:  sc.ID,
				ObjectID: o.ID,
				Kind:     o.Type,
				Element:  o.Element(sc, fps),
			})
			n++
		}
	}
	return n
}

// Advance evaluates every populated entity at the frame and stores the
// result in its StateData, then publishes a FrameAdvanced event. The
// written state is a pure function of the frame, so hosts may advance to
// any frame in any order, including backward.
func Advance(world donburi.World, frame, fps int) {
	elementQuery.Each(world, func(entry *donburi.Entry) {
		el := ElementType.Get(entry)
		StateType.SetValue(entry, StateData{
			Frame: frame,
			State: el.Element.Evaluate(frame, fps),
		})
	})
	FrameAdvancedType.Publish(world, FrameAdvanced{Frame: frame, FPS: fps})
}

// Each visits every populated entity with its element and last written
// state.
func Each(world donburi.World, fn func(el ElementData, st StateData)) {
	elementQuery.Each(world, func(entry *donburi.Entry) {
		fn(*ElementType.Get(entry), *StateType.Get(entry))
	})
}

// Find returns the element and state for the object id, or false when no
// populated entity matches.
func Find(world donburi.World, objectID string) (ElementData, StateData, bool) {
	var (
		el    ElementData
		st    StateData
		found bool
	)
	elementQuery.Each(world, func(entry *donburi.Entry) {
		if found {
			return
		}
		if e := ElementType.Get(entry); e.ObjectID == objectID {
			el, st, found = *e, *StateType.Get(entry), true
		}
	})
	return el, st, found
}
