package systems

import (
	"github.com/automoto/merge-drop/components"
	"github.com/automoto/merge-drop/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DispatchContacts delivers the contact events queued during the physics step
// to the world's subscribers, in the order the engine raised them
func DispatchContacts(e *ecs.ECS) {
	components.ContactEvents.ProcessEvents(e.World)
}

// OnContact is the session's contact subscriber. Only fruit/fruit pairs of the
// same tier are tracked; separation clears the record whatever the tiers.
func OnContact(w donburi.World, c physics.Contact) {
	a, okA := fruitForBody(w, c.A)
	b, okB := fruitForBody(w, c.B)
	if !okA || !okB {
		return
	}
	rt, ok := GetRuntime(w)
	if !ok {
		return
	}
	contacts, ok := GetContacts(w)
	if !ok {
		return
	}

	fa := components.Fruit.Get(a)
	fb := components.Fruit.Get(b)
	now := rt.Clock.Now()

	switch c.Phase {
	case physics.ContactBegin:
		if fa.Tier == fb.Tier {
			contacts.Track(fa.ID, fb.ID, now)
		}
	case physics.ContactActive:
		if fa.Tier == fb.Tier {
			contacts.Track(fa.ID, fb.ID, now)
			EvaluateMerge(w, a, b)
		}
	case physics.ContactEnd:
		contacts.Clear(fa.ID, fb.ID)
	}
}

// fruitForBody resolves a body handle to its live fruit entry
func fruitForBody(w donburi.World, body *physics.Body) (*donburi.Entry, bool) {
	if body == nil || body.Removed() {
		return nil, false
	}
	entity, ok := body.Data.(donburi.Entity)
	if !ok || !w.Valid(entity) {
		return nil, false
	}
	entry := w.Entry(entity)
	if !entry.HasComponent(components.Fruit) {
		return nil, false
	}
	return entry, true
}
