package systems

import (
	"log"

	"github.com/automoto/merge-drop/components"
	"github.com/automoto/merge-drop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDanger ends the session once some fruit's top edge has stayed above the
// danger line for Danger.HoldTime without a break. Any tick with nothing above
// the line resets the hold timer.
func UpdateDanger(e *ecs.ECS) {
	session, ok := GetSession(e.World)
	if !ok || session.State != components.SessionActive {
		return
	}
	rt, ok := GetRuntime(e.World)
	if !ok {
		return
	}

	if !AnyAboveDangerLine(e.World, rt) {
		session.ClearHold()
		return
	}

	now := rt.Clock.Now()
	if !session.Holding {
		session.Holding = true
		session.HoldStart = now
	}
	if now.Sub(session.HoldStart) < rt.Config.Danger.HoldTime {
		return
	}

	session.State = components.SessionOver
	log.Printf("Game over: score %d after %d merges", session.Score, session.Merges)
	if rt.OnGameOver != nil {
		rt.OnGameOver(session.Score)
	}
}

// AnyAboveDangerLine reports whether any live fruit's top edge is above the line
func AnyAboveDangerLine(w donburi.World, rt *components.RuntimeData) bool {
	above := false
	tags.Fruit.Each(w, func(entry *donburi.Entry) {
		if above {
			return
		}
		fruit := components.Fruit.Get(entry)
		obj := components.Object.Get(entry)
		if obj.Body == nil {
			return
		}
		pos := rt.Engine.Position(obj.Body)
		if pos.Y-rt.Config.Fruits[fruit.Tier].Radius < rt.Config.Danger.LineY {
			above = true
		}
	})
	return above
}
