package systems

import (
	gomath "math"

	"github.com/automoto/merge-drop/components"
	"github.com/automoto/merge-drop/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// EvaluateMerge queues a and b for merging when both are free, have touched for
// at least Merge.MinContact and are moving calmly relative to each other.
// It returns true if the pair was queued.
func EvaluateMerge(w donburi.World, a, b *donburi.Entry) bool {
	rt, ok := GetRuntime(w)
	if !ok {
		return false
	}
	contacts, ok := GetContacts(w)
	if !ok {
		return false
	}
	queue, ok := GetMergeQueue(w)
	if !ok {
		return false
	}

	fa := components.Fruit.Get(a)
	fb := components.Fruit.Get(b)
	if fa.ID == fb.ID || fa.Tier != fb.Tier {
		return false
	}
	if fa.Merging || fb.Merging || queue.IsMerging(fa.ID) || queue.IsMerging(fb.ID) {
		return false
	}

	rec, ok := contacts.Get(fa.ID, fb.ID)
	if !ok {
		return false
	}
	if rt.Clock.Now().Sub(rec.Start) < rt.Config.Merge.MinContact {
		return false
	}

	va := rt.Engine.Velocity(components.Object.Get(a).Body)
	vb := rt.Engine.Velocity(components.Object.Get(b).Body)
	if gomath.Hypot(va.X-vb.X, va.Y-vb.Y) > rt.Config.Merge.MaxRelSpeed {
		return false
	}

	pair := components.MergePair{
		A: components.MergeRef{Entity: a.Entity(), ID: fa.ID},
		B: components.MergeRef{Entity: b.Entity(), ID: fb.ID},
	}
	if !queue.Claim(pair) {
		return false
	}
	fa.Merging = true
	fb.Merging = true
	return true
}

// UpdateMerges drains up to Merge.BatchSize queued pairs. Pairs beyond the
// batch stay queued in order for the next tick.
func UpdateMerges(e *ecs.ECS) {
	queue, ok := GetMergeQueue(e.World)
	if !ok || queue.Len() == 0 {
		return
	}
	rt, ok := GetRuntime(e.World)
	if !ok {
		return
	}

	for _, pair := range queue.PopBatch(rt.Config.Merge.BatchSize) {
		mergePair(e, rt, queue, pair)
	}
}

func mergePair(e *ecs.ECS, rt *components.RuntimeData, queue *components.MergeQueueData, pair components.MergePair) {
	a, okA := liveFruit(e.World, pair.A)
	b, okB := liveFruit(e.World, pair.B)
	if !okA || !okB {
		// One side was consumed earlier or the world moved on; free the survivor.
		releaseClaim(queue, pair, a, b)
		return
	}

	fa := components.Fruit.Get(a)
	fb := components.Fruit.Get(b)
	next := fa.Tier + 1
	if fa.Tier != fb.Tier || next > rt.Config.MaxTier() {
		releaseClaim(queue, pair, a, b)
		return
	}

	bodyA := components.Object.Get(a).Body
	bodyB := components.Object.Get(b).Body
	pa, pb := rt.Engine.Position(bodyA), rt.Engine.Position(bodyB)
	va, vb := rt.Engine.Velocity(bodyA), rt.Engine.Velocity(bodyB)

	damp := rt.Config.Merge.VelocityDamp
	mid := math.Vec2{X: (pa.X + pb.X) / 2, Y: (pa.Y + pb.Y) / 2}
	vel := math.Vec2{X: (va.X + vb.X) / 2 * damp, Y: (va.Y + vb.Y) / 2 * damp}

	contacts, _ := GetContacts(e.World)
	idA, idB := fa.ID, fb.ID
	if contacts != nil {
		contacts.Clear(idA, idB)
		contacts.ClearFruit(idA)
		contacts.ClearFruit(idB)
	}

	factory.DestroyFruit(e, a)
	factory.DestroyFruit(e, b)
	queue.Release(idA, idB)

	successor := factory.CreateFruit(e, next, mid, rt.Config.Physics.FrictionAir)
	body := components.Object.Get(successor).Body
	rt.Engine.SetVelocity(body, vel)
	nudge := (rt.Rand.Float64() - 0.5) * 2
	rt.Engine.ApplyImpulse(body, math.Vec2{X: nudge * rt.Config.Merge.NudgeImpulse})
	factory.StartPulse(successor, rt.Clock.Now(), rt.Config.Merge.PulseDuration, rt.Config.Merge.PulseMaxScale)

	if session, ok := GetSession(e.World); ok {
		session.Score += rt.Config.Fruits[next].Score
		session.Merges++
	}
}

// liveFruit returns the fruit entry only if the entity is still valid and still
// carries the identity the pair was queued with
func liveFruit(w donburi.World, ref components.MergeRef) (*donburi.Entry, bool) {
	if !w.Valid(ref.Entity) {
		return nil, false
	}
	entry := w.Entry(ref.Entity)
	if !entry.HasComponent(components.Fruit) || components.Fruit.Get(entry).ID != ref.ID {
		return nil, false
	}
	return entry, true
}

func releaseClaim(queue *components.MergeQueueData, pair components.MergePair, entries ...*donburi.Entry) {
	queue.Release(pair.A.ID, pair.B.ID)
	for _, entry := range entries {
		if entry != nil {
			components.Fruit.Get(entry).Merging = false
		}
	}
}
