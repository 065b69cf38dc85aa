package ecs

import (
	"testing"

	"github.com/phanxgames/puppet/schema"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func ecsDocument() *schema.Document {
	return &schema.Document{
		SchemaVersion: schema.SchemaVersion,
		Meta:          schema.Meta{FPS: 30, Width: 320, Height: 180},
		Scenes: []schema.Scene{
			{
				ID: "hook", StartMs: 0, EndMs: 2000,
				Objects: []schema.Object{
					{
						ID: "guide", Type: schema.KindStickman,
						Props: schema.Props{Pose: "standing"},
					},
					{
						ID: "title", Type: schema.KindText,
						Props: schema.Props{Content: "hello"},
						Animation: schema.Animations{
							Enter: &schema.AnimationDef{Type: "fadeIn", DurationMs: 500},
						},
					},
				},
			},
			{
				ID: "payoff", StartMs: 2000, EndMs: 4000,
				Objects: []schema.Object{
					{
						ID: "growth", Type: schema.KindCounter,
						Props: schema.Props{From: 0, To: 250},
					},
				},
			},
		},
	}
}

func TestPopulateCreatesOneEntityPerObject(t *testing.T) {
	world := donburi.NewWorld()
	n := Populate(world, ecsDocument(), 30)
	if n != 3 {
		t.Fatalf("Populate = %d, want 3", n)
	}

	visited := 0
	Each(world, func(el ElementData, st StateData) {
		visited++
		if el.SceneID == "" || el.ObjectID == "" || el.Kind == "" {
			t.Errorf("entity missing identity: %+v", el)
		}
	})
	if visited != 3 {
		t.Errorf("Each visited %d entities, want 3", visited)
	}

	el, _, ok := Find(world, "growth")
	if !ok {
		t.Fatal("growth entity not found")
	}
	if el.SceneID != "payoff" || el.Kind != schema.KindCounter {
		t.Errorf("growth = %+v", el)
	}
	// 2000..4000ms at 30 fps.
	if el.Element.StartFrame != 60 || el.Element.EndFrame != 120 {
		t.Errorf("growth frames = [%d, %d), want [60, 120)", el.Element.StartFrame, el.Element.EndFrame)
	}
}

func TestAdvanceWritesFrameState(t *testing.T) {
	world := donburi.NewWorld()
	Populate(world, ecsDocument(), 30)

	Advance(world, 30, 30)
	el, st, ok := Find(world, "title")
	if !ok {
		t.Fatal("title entity not found")
	}
	if st.Frame != 30 {
		t.Errorf("Frame = %d, want 30", st.Frame)
	}
	if !st.State.Visible || st.State.Opacity != 1 {
		t.Errorf("state at frame 30 = %+v, want fully faded in", st.State)
	}
	if got := el.Element.Evaluate(30, 30); st.State != got {
		t.Errorf("stored state %+v differs from direct evaluation %+v", st.State, got)
	}

	// A scene-two object is not on stage yet.
	_, st, ok = Find(world, "growth")
	if !ok {
		t.Fatal("growth entity not found")
	}
	if st.State.Visible {
		t.Errorf("growth visible at frame 30: %+v", st.State)
	}
}

func TestAdvanceIsOrderIndependent(t *testing.T) {
	world := donburi.NewWorld()
	Populate(world, ecsDocument(), 30)

	Advance(world, 90, 30)
	Advance(world, 15, 30)
	_, back, ok := Find(world, "title")
	if !ok {
		t.Fatal("title entity not found")
	}

	fresh := donburi.NewWorld()
	Populate(fresh, ecsDocument(), 30)
	Advance(fresh, 15, 30)
	_, direct, ok := Find(fresh, "title")
	if !ok {
		t.Fatal("title entity not found in fresh world")
	}

	if back != direct {
		t.Errorf("rewound state %+v differs from fresh state %+v", back, direct)
	}
}

func TestAdvancePublishesFrameEvent(t *testing.T) {
	world := donburi.NewWorld()
	Populate(world, ecsDocument(), 30)

	var received []FrameAdvanced
	FrameAdvancedType.Subscribe(world, func(w donburi.World, e FrameAdvanced) {
		received = append(received, e)
	})

	Advance(world, 42, 30)
	Advance(world, 43, 30)

	// Publish only enqueues; delivery happens on process.
	events.ProcessAllEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Frame != 42 || received[0].FPS != 30 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Frame != 43 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestFindMissingObject(t *testing.T) {
	world := donburi.NewWorld()
	Populate(world, ecsDocument(), 30)
	if _, _, ok := Find(world, "nobody"); ok {
		t.Error("Find reported an entity for an unknown id")
	}
}
